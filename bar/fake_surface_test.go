package bar

import "github.com/gdamore/tcell/v2"

type fakeCell struct {
	r  rune
	fg tcell.Color
	bg tcell.Color
}

type cellPos struct {
	row, col int
}

// fakeSurface records every write against a fixed-size grid
type fakeSurface struct {
	rows, cols int
	colors     int
	enterErr   error

	entered int
	left    int
	clears  int
	flushes int
	writes  int
	offGrid int

	row, col int
	fg, bg   tcell.Color
	cells    map[cellPos]fakeCell
}

func newFakeSurface(rows, cols int) *fakeSurface {
	return &fakeSurface{
		rows:   rows,
		cols:   cols,
		colors: 256,
		cells:  make(map[cellPos]fakeCell),
	}
}

func (f *fakeSurface) Enter() error {
	if f.enterErr != nil {
		return f.enterErr
	}
	f.entered++
	return nil
}

func (f *fakeSurface) Leave()                       { f.left++ }
func (f *fakeSurface) Size() (int, int)             { return f.rows, f.cols }
func (f *fakeSurface) Colors() int                  { return f.colors }
func (f *fakeSurface) MoveCursor(row, col int)      { f.row, f.col = row, col }
func (f *fakeSurface) SetColors(fg, bg tcell.Color) { f.fg, f.bg = fg, bg }
func (f *fakeSurface) Flush()                       { f.flushes++ }

func (f *fakeSurface) WriteGlyph(r rune) {
	f.writes++
	if f.row < 0 || f.row >= f.rows || f.col < 0 || f.col >= f.cols {
		f.offGrid++
	}
	f.cells[cellPos{f.row, f.col}] = fakeCell{r: r, fg: f.fg, bg: f.bg}
	f.col++
}

func (f *fakeSurface) Clear() {
	f.clears++
	clear(f.cells)
}

// at returns the glyph at a cell, 0 when never written since the last clear
func (f *fakeSurface) at(row, col int) rune {
	return f.cells[cellPos{row, col}].r
}

// lit reports whether a cell shows a full foreground block
func (f *fakeSurface) lit(row, col int) bool {
	c, ok := f.cells[cellPos{row, col}]
	return ok && c.r == '█' && c.fg != c.bg
}

// height counts the full foreground cells of a column from the bottom up
func (f *fakeSurface) height(col int) int {
	n := 0
	for row := f.rows - 1; row >= 0 && f.lit(row, col); row-- {
		n++
	}
	return n
}
