//go:build !unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type stdioBackend struct {
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State
}

// NewStdioBackend returns a backend driving the process terminal
func NewStdioBackend() Backend {
	return &stdioBackend{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *stdioBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old
	return nil
}

func (b *stdioBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *stdioBackend) Size() (int, int) {
	w, h, err := term.GetSize(b.outFd)
	if err != nil {
		return 80, 24
	}
	return w, h
}

func (b *stdioBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func resetTerminalMode() {}
