package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen adapts a tcell.Screen to the bar renderer.
// Writes land in tcell's cell buffer and become visible on Flush.
type Screen struct {
	screen  tcell.Screen
	style   tcell.Style
	bg      tcell.Color
	row     int
	col     int
	entered bool
}

// NewScreen creates a surface on the process terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return WrapScreen(s), nil
}

// WrapScreen adapts an existing, not yet initialized tcell screen
func WrapScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		style:  tcell.StyleDefault,
		bg:     tcell.ColorDefault,
	}
}

// Enter initializes tcell and hides the cursor
func (s *Screen) Enter() error {
	if s.entered {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.SetStyle(tcell.StyleDefault.Background(s.bg))
	s.screen.Clear()
	s.entered = true
	return nil
}

// Leave finalizes tcell. Safe to call multiple times
func (s *Screen) Leave() {
	if !s.entered {
		return
	}
	s.screen.Fini()
	s.entered = false
}

// Size returns rows and columns
func (s *Screen) Size() (int, int) {
	w, h := s.screen.Size()
	return h, w
}

// Colors returns the terminal palette size reported by tcell
func (s *Screen) Colors() int {
	return s.screen.Colors()
}

// MoveCursor positions the next write; the terminal cursor itself stays hidden
func (s *Screen) MoveCursor(row, col int) {
	s.row, s.col = row, col
}

// WriteGlyph sets the cell under the cursor and advances by the glyph's display width
func (s *Screen) WriteGlyph(r rune) {
	s.screen.SetContent(s.col, s.row, r, nil, s.style)
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	s.col += w
}

// SetColors sets the style of following writes and clears
func (s *Screen) SetColors(fg, bg tcell.Color) {
	s.style = tcell.StyleDefault.Foreground(fg).Background(bg)
	s.bg = bg
}

// Clear fills every cell with the active background
func (s *Screen) Clear() {
	s.screen.SetStyle(tcell.StyleDefault.Background(s.bg))
	s.screen.Clear()
}

// Flush shows pending cells
func (s *Screen) Flush() {
	s.screen.Show()
}

// PollEvent blocks until the next tcell event, nil once the screen is finalized
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Sync repaints the physical terminal from tcell's buffer, used after resizes
func (s *Screen) Sync() {
	s.screen.Sync()
}
