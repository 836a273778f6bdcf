//go:build windows

package inline

import "context"

// WatchResize returns a channel that closes when ctx is cancelled. Windows
// has no SIGWINCH; callers poll Terminal.Size instead.
func WatchResize(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
