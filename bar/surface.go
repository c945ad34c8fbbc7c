package bar

import "github.com/gdamore/tcell/v2"

// Surface is the character-cell display a Renderer paints on.
// Coordinates are 0-indexed with the origin at the top-left cell.
type Surface interface {
	// Enter switches the display into drawing mode: raw input, hidden cursor
	Enter() error
	// Leave restores the display. Safe to call more than once
	Leave()

	// Size returns the current geometry
	Size() (rows, columns int)
	// Colors returns the number of colors the display can show
	Colors() int

	// MoveCursor positions the next glyph write
	MoveCursor(row, col int)
	// WriteGlyph writes one glyph at the cursor and advances it
	WriteGlyph(r rune)
	// SetColors sets the color pair used by following writes and clears
	SetColors(fg, bg tcell.Color)
	// Clear blanks the whole display with the active background
	Clear()
	// Flush makes pending writes visible
	Flush()
}
