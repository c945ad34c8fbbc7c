package bar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		rows        int
		wantRow     int
		wantEighths int
	}{
		{"Empty", 0, 10, 10, 0},
		{"Half", 0.5, 10, 5, 0},
		{"Full", 1, 10, 0, 0},
		{"Fractional", 0.53, 10, 4, 5},
		{"Float drift on boundary", 0.3, 10, 7, 0},
		{"Float drift on seventh row", 0.7, 10, 3, 0},
		{"One eighth", 1.0 / 80, 10, 9, 7},
		{"Above range clamps", 1.5, 10, 0, 0},
		{"Below range clamps", -0.2, 10, 10, 0},
		{"NaN is empty", math.NaN(), 10, 10, 0},
		{"No rows", 0.5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Locate(tt.value, tt.rows)
			assert.Equal(t, tt.wantRow, l.Row, "row")
			assert.Equal(t, tt.wantEighths, l.Eighths, "eighths")
		})
	}
}

func TestLocateExactBoundaries(t *testing.T) {
	// Every multiple of a row height lands on a row edge without a partial glyph
	for _, rows := range []int{3, 7, 10, 24, 48} {
		for k := 0; k <= rows; k++ {
			v := float64(k) / float64(rows)
			l := Locate(v, rows)
			require.Equalf(t, rows-k, l.Row, "rows=%d k=%d", rows, k)
			require.Zerof(t, l.Eighths, "rows=%d k=%d", rows, k)
		}
	}
}

func TestLocateEighthSteps(t *testing.T) {
	const rows = 10
	for j := 0; j <= rows*8; j++ {
		v := float64(j) / float64(rows*8)
		l := Locate(v, rows)
		empty := rows*8 - j
		require.Equalf(t, empty/8, l.Row, "step %d", j)
		require.Equalf(t, empty%8, l.Eighths, "step %d", j)
	}
}

func TestMapToRowsBounds(t *testing.T) {
	for _, rows := range []int{1, 2, 10, 24, 61} {
		for i := 1; i <= 1000; i++ {
			v := float64(i) / 1000
			bottom, edge := MapToRows(v, rows)
			top := TopRow(edge)
			e := Eighths(edge, top)

			require.GreaterOrEqual(t, top, 0)
			require.LessOrEqual(t, top, bottom, "rows=%d v=%v", rows, v)
			require.Less(t, bottom, rows)
			require.GreaterOrEqual(t, e, 0)
			require.LessOrEqual(t, e, 7)
		}
	}
}

func TestMapToRowsEmptyBar(t *testing.T) {
	bottom, edge := MapToRows(0, 10)
	assert.Equal(t, 9, bottom)
	assert.Equal(t, 10.0, edge)
}

func TestEighthsClamps(t *testing.T) {
	assert.Equal(t, 0, Eighths(-0.5, 0))
	assert.Equal(t, 7, Eighths(3.99, 2))
	assert.Equal(t, 0, Eighths(4.0-1e-12, 4))
}
