//go:build unix

package terminal

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWatchResizeNotifies(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := WatchResize(ctx)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGWINCH); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-events:
	case <-time.After(2 * time.Second):
		t.Fatal("no resize notification after SIGWINCH")
	}
}
