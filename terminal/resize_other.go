//go:build !unix

package terminal

import "context"

// WatchResize returns a channel that never fires; size changes are picked up on the next frame
func WatchResize(ctx context.Context) <-chan struct{} {
	return make(chan struct{})
}
