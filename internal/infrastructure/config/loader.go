package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linenoir/linenoir/assets"
	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/pkg/filesystem"
)

// FileLoader loads YAML configuration from ~/.linenoir/config.yaml
// (overridable via LINENOIR_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load reads the configuration, writing the embedded default file on
// first run.
func (l *FileLoader) Load(context.Context) (domain.EditorConfig, error) {
	path := l.resolvePath()
	if err := filesystem.EnsureParentDir(path, domain.DirectoryPermissions); err != nil {
		return domain.EditorConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.HistoryFilePermissions); err != nil {
				return domain.EditorConfig{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.EditorConfig{}, err
		}
	}

	var cfg domain.EditorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EditorConfig{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved configuration path.
func (l *FileLoader) Path() string { return l.resolvePath() }

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("LINENOIR_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".linenoir", "config.yaml")
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return path
}

// hydrateDefaults fills fields an older or hand-edited config may omit.
func hydrateDefaults(cfg domain.EditorConfig) domain.EditorConfig {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.History.MaxSize <= 0 {
		cfg.History.MaxSize = domain.DefaultMaxHistorySize
	}
	if cfg.WordBreakChars == "" {
		cfg.WordBreakChars = domain.DefaultWordBreakChars
	}
	if cfg.Hints.MaxRows <= 0 {
		cfg.Hints.MaxRows = domain.DefaultMaxHintRows
	}
	if cfg.Hints.DelayMS <= 0 {
		cfg.Hints.DelayMS = int(domain.DefaultHintDelay.Milliseconds())
	}
	switch cfg.Color {
	case domain.ColorModeAuto, domain.ColorModeAlways, domain.ColorModeNever:
	default:
		cfg.Color = domain.ColorModeAuto
	}
	return cfg
}
