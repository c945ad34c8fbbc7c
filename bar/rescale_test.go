package bar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescale(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		wantLimit float64
		wantOK    bool
	}{
		{"Maximum", []float64{1, 5, 3}, 5, true},
		{"Skips non-finite", []float64{math.NaN(), math.Inf(1), 2}, 2, true},
		{"Only non-positive", []float64{-1, 0}, 0, false},
		{"Empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, ok := Rescale(tt.values)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
