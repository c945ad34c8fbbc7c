package terminal

import (
	"bufio"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ANSI is a surface writing ANSI sequences straight to a Backend.
// Cells are not buffered: the renderer's diffing decides what is emitted.
type ANSI struct {
	backend Backend
	writer  *bufio.Writer
	mode    ColorMode

	fg, bg     tcell.Color
	styleValid bool

	mu      sync.Mutex
	entered bool
}

// NewANSI creates a surface over b with the given color capability
func NewANSI(b Backend, mode ColorMode) *ANSI {
	return &ANSI{
		backend: b,
		writer:  bufio.NewWriterSize(b, 32768),
		mode:    mode,
		fg:      tcell.ColorDefault,
		bg:      tcell.ColorDefault,
	}
}

// Enter enters raw mode, alternate screen buffer, hides cursor
func (a *ANSI) Enter() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.entered {
		return nil
	}
	if err := a.backend.Init(); err != nil {
		return err
	}

	w := a.writer
	w.Write(csiAltScreenEnter)
	w.Write(csiCursorHide)
	// Prevents terminal scroll/wrap on bottom-right corner write
	w.Write(csiAutoWrapOff)
	w.Write(csiClear)
	a.styleValid = false
	a.entered = true
	return w.Flush()
}

// Leave restores terminal state. Safe to call multiple times
func (a *ANSI) Leave() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.entered {
		return
	}

	w := a.writer
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	w.Write(csiAutoWrapOn)
	w.Flush()

	a.backend.Fini()
	a.entered = false
}

// Size returns rows and columns
func (a *ANSI) Size() (int, int) {
	w, h := a.backend.Size()
	return h, w
}

// Colors returns the palette size of the configured color mode
func (a *ANSI) Colors() int {
	return a.mode.Colors()
}

// MoveCursor positions the cursor (0-indexed)
func (a *ANSI) MoveCursor(row, col int) {
	writeCursorPos(a.writer, row, col)
}

// WriteGlyph writes r at the cursor, emitting the color pair first when it changed
func (a *ANSI) WriteGlyph(r rune) {
	a.writeStyle()
	a.writer.WriteRune(r)
}

// SetColors sets the pair for following writes; emission is deferred to the next write
func (a *ANSI) SetColors(fg, bg tcell.Color) {
	if a.styleValid && fg == a.fg && bg == a.bg {
		return
	}
	a.fg, a.bg = fg, bg
	a.styleValid = false
}

// Clear erases the screen with the active background
func (a *ANSI) Clear() {
	a.writeStyle()
	a.writer.Write(csiClear)
}

// Flush writes buffered output to the backend
func (a *ANSI) Flush() {
	a.writer.Flush()
}

func (a *ANSI) writeStyle() {
	if a.styleValid {
		return
	}
	writeColor(a.writer, a.fg, true, a.mode)
	writeColor(a.writer, a.bg, false, a.mode)
	a.styleValid = true
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Leave() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via termios - escape sequences alone don't restore it
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
