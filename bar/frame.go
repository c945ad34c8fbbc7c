package bar

// frameState remembers what the surface currently shows
type frameState struct {
	previous []float64
	rows     int
	columns  int
	series   int
	limit    float64
	valid    bool
}

// matches reports whether a frame can be diffed against the stored one
func (f *frameState) matches(rows, columns, series int, limit float64) bool {
	return f.valid &&
		f.rows == rows &&
		f.columns == columns &&
		f.series == series &&
		f.limit == limit &&
		len(f.previous) == series
}

// reset zeroes the stored values for a new geometry
func (f *frameState) reset(rows, columns, series int, limit float64) {
	if cap(f.previous) >= series {
		f.previous = f.previous[:series]
		clear(f.previous)
	} else {
		f.previous = make([]float64, series)
	}
	f.rows = rows
	f.columns = columns
	f.series = series
	f.limit = limit
	f.valid = true
}

// invalidate forces a reset on the next frame
func (f *frameState) invalidate() {
	f.valid = false
}

// release drops the stored values
func (f *frameState) release() {
	f.previous = nil
	f.rows, f.columns, f.series = 0, 0, 0
	f.limit = 0
	f.valid = false
}
