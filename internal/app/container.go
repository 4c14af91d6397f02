package app

import (
	"context"

	"github.com/linenoir/linenoir/internal/domain"
	"github.com/linenoir/linenoir/internal/infrastructure/config"
	"github.com/linenoir/linenoir/internal/infrastructure/lineedit"
	"github.com/linenoir/linenoir/internal/infrastructure/session"
	"github.com/linenoir/linenoir/internal/infrastructure/term"
	"github.com/linenoir/linenoir/internal/infrastructure/transcript"
	"github.com/linenoir/linenoir/internal/pkg/logger"
	"github.com/linenoir/linenoir/internal/ports"
)

// Container wires the capability probe, the editing engine and the
// session with their infrastructure adapters.
type Container struct {
	Config       domain.EditorConfig
	ConfigLoader *config.FileLoader
	Probe        *term.Probe
	Engine       ports.LineEngine
	Session      *session.Session
	Transcript   ports.TranscriptRepository
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	probe := term.Detect()
	engine := lineedit.New(probe.Capabilities().StdinIsTTY)
	sess := session.New(engine, probe, log, cfg)

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Probe:        probe,
		Engine:       engine,
		Session:      sess,
		Transcript:   transcript.NewSQLiteStore(),
		Logger:       log,
	}, nil
}
