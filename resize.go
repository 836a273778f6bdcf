//go:build !windows

package inline

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// WatchResize reports terminal size changes on the returned channel until ctx
// is cancelled, at which point the channel closes. Callers re-render on each
// tick; the renderer reads the new size from its terminal and forces the full
// rewrite that a width change requires. Pending ticks coalesce, a slow
// consumer sees at most one.
func WatchResize(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)

	go func() {
		defer signal.Stop(sig)
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()
	return ch
}
