//go:build windows

package session

// Windows delivers no resize signal; the console is re-measured on each
// explicit RefreshSize call instead.
func installResizeHandler(onResize func()) func() {
	return func() {}
}
