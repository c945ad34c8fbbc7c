package terminal

import (
	"io"
	"sync"
)

// Backend abstracts the platform side of an ANSI surface: raw mode, geometry and output
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the terminal dimensions in cells
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	io.Writer
}

// FixedBackend writes to an arbitrary writer with a caller-controlled size.
// Used for headless rendering and tests.
type FixedBackend struct {
	w io.Writer

	mu     sync.Mutex
	width  int
	height int
}

// NewFixedBackend creates a backend reporting width x height cells
func NewFixedBackend(w io.Writer, width, height int) *FixedBackend {
	return &FixedBackend{w: w, width: width, height: height}
}

func (b *FixedBackend) Init() error { return nil }
func (b *FixedBackend) Fini()       {}

func (b *FixedBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

// Resize changes the reported size
func (b *FixedBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.mu.Unlock()
}

func (b *FixedBackend) Write(p []byte) (int, error) {
	return b.w.Write(p)
}
