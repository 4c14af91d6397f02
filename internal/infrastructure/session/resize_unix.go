//go:build !windows

package session

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// installResizeHandler invokes onResize for every SIGWINCH until the
// returned stop function is called.
func installResizeHandler(onResize func()) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ch:
				onResize()
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
