package bar

// Glyphs holds the eighth-block runes, lowest fill first
var Glyphs = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// FullLevel is the fill level of a completely covered cell
const FullLevel = 7

// Glyph returns the block rune for a fill level in 0..7, level 7 being a full cell.
// Levels outside the range clamp to the nearest end.
func Glyph(level int) rune {
	if level < 0 {
		level = 0
	}
	if level > FullLevel {
		level = FullLevel
	}
	return Glyphs[level]
}

// partialGlyph returns the glyph for a cell whose top eighths are empty
// Origin is at the top, so the fill level runs backwards
func partialGlyph(emptyEighths int) rune {
	return Glyph(FullLevel - emptyEighths)
}
