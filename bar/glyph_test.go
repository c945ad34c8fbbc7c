package bar

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  rune
	}{
		{"Lowest", 0, '▁'},
		{"Half", 3, '▄'},
		{"Full", FullLevel, '█'},
		{"Below range", -3, '▁'},
		{"Above range", 12, '█'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Glyph(tt.level))
		})
	}
}

func TestGlyphsAreSingleCell(t *testing.T) {
	for i, g := range Glyphs {
		assert.Equalf(t, 1, runewidth.RuneWidth(g), "glyph %d (%q) must occupy one cell", i, g)
	}
}

func TestPartialGlyphRunsBackwards(t *testing.T) {
	// One empty eighth leaves seven filled
	assert.Equal(t, '▇', partialGlyph(1))
	assert.Equal(t, '▁', partialGlyph(7))
}
