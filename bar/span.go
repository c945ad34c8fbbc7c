package bar

// SpanStyle selects the color pair a span is painted with
type SpanStyle uint8

const (
	SpanGrow   SpanStyle = iota // Foreground cells added on top of a bar
	SpanShrink                  // Background cells erasing the vacated part of a bar
)

// CellSpan is the region of one series that changes between two frames.
// Full cells cover rows TopRow..BottomRow inclusive, none when TopRow > BottomRow.
// A partial glyph goes to PartialRow when Eighths is non-zero.
type CellSpan struct {
	StartColumn int
	Width       int
	BottomRow   int
	TopRow      int
	PartialRow  int
	Eighths     int
	Style       SpanStyle
}

// FullRows returns the number of full cells per column in the span
func (s CellSpan) FullRows() int {
	if s.TopRow > s.BottomRow {
		return 0
	}
	return s.BottomRow - s.TopRow + 1
}

// HasPartial reports whether the span ends with an eighth glyph
func (s CellSpan) HasPartial() bool {
	return s.Eighths != 0
}

// growSpan covers the cells between the old top and the new, higher, top
func growSpan(prev, next Level, rows, startCol, width int) CellSpan {
	// A fully covered top row of the old bar needs no repaint
	bottom := prev.Row
	if prev.Eighths == 0 {
		bottom--
	}
	if bottom > rows-1 {
		bottom = rows - 1
	}

	top := next.Row
	if next.Eighths != 0 {
		top++
	}

	return CellSpan{
		StartColumn: startCol,
		Width:       width,
		BottomRow:   bottom,
		TopRow:      top,
		PartialRow:  next.Row,
		Eighths:     next.Eighths,
		Style:       SpanGrow,
	}
}

// shrinkSpan covers the rows vacated between the old top and the new, lower, top.
// Vacated full rows are painted in the background color; the boundary partial glyph
// keeps the foreground pair so its unfilled eighths show the background.
func shrinkSpan(prev, next Level, rows, startCol, width int) CellSpan {
	bottom := next.Row - 1
	if bottom > rows-1 {
		bottom = rows - 1
	}

	return CellSpan{
		StartColumn: startCol,
		Width:       width,
		BottomRow:   bottom,
		TopRow:      prev.Row,
		PartialRow:  next.Row,
		Eighths:     next.Eighths,
		Style:       SpanShrink,
	}
}

// diffSpan returns the span turning the bar for prev into the bar for next
// Values landing on the same eighth produce an empty span
func diffSpan(prev, next Level, rows, startCol, width int) CellSpan {
	p, n := prev.position(), next.position()
	if n == p {
		return CellSpan{StartColumn: startCol, Width: width, BottomRow: -1, PartialRow: next.Row}
	}
	if n < p {
		return growSpan(prev, next, rows, startCol, width)
	}
	return shrinkSpan(prev, next, rows, startCol, width)
}
