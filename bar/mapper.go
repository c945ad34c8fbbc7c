package bar

import "math"

// eighthTolerance absorbs float drift on exact eighth boundaries, e.g. 0.3*10 = 3.0000000000000004
const eighthTolerance = 1e-9

// Level locates the top of a bar within a column of rows.
// Rows are counted from the top of the surface, values grow upward.
type Level struct {
	Edge    float64 // Fractional row index of the bar top, in [0, rows]
	Row     int     // Row holding the bar top, rows when the bar is empty
	Eighths int     // Empty eighths at the top of Row, 0 when Row is fully covered
}

// Empty reports whether the bar covers no cell at all
func (l Level) Empty(rows int) bool {
	return l.Row >= rows
}

// position counts the empty eighths above the bar, the quantity actually drawn
func (l Level) position() int {
	return l.Row*8 + l.Eighths
}

// topEdge maps a normalized value to its fractional top row, snapped to eighths
func topEdge(value float64, rows int) float64 {
	if value < 0 || math.IsNaN(value) {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	n := float64(rows)
	scaled := (n - value*n) * 8
	if r := math.Round(scaled); math.Abs(scaled-r) < eighthTolerance {
		scaled = r
	}
	return scaled / 8
}

// MapToRows converts a normalized value into the lowest row touched by its edge and
// the fractional top edge. The axis is inverted: row 0 is the top of the surface.
// bottomRow clamps to rows-1 when the edge sits on or below the last row.
func MapToRows(value float64, rows int) (bottomRow int, edge float64) {
	edge = topEdge(value, rows)
	bottomRow = int(edge)
	if bottomRow >= rows {
		bottomRow = rows - 1
	}
	return bottomRow, edge
}

// TopRow truncates a top edge to its row, clamping negative rows to 0
func TopRow(edge float64) int {
	row := int(edge)
	if row < 0 {
		row = 0
	}
	return row
}

// Eighths returns the empty eighths of the cell at topRow for the given edge, in [0,7]
func Eighths(edge float64, topRow int) int {
	scaled := (edge - float64(topRow)) * 8
	if r := math.Round(scaled); math.Abs(scaled-r) < eighthTolerance {
		scaled = r
	}
	e := int(math.Floor(scaled))
	if e < 0 {
		return 0
	}
	if e > 7 {
		return 7
	}
	return e
}

// Locate maps a normalized value onto a column of rows
func Locate(value float64, rows int) Level {
	if rows <= 0 {
		return Level{}
	}
	edge := topEdge(value, rows)
	row := TopRow(edge)
	if row >= rows {
		return Level{Edge: edge, Row: rows}
	}
	return Level{Edge: edge, Row: row, Eighths: Eighths(edge, row)}
}
