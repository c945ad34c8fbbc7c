// Package bar draws vertical bar charts on a character-cell surface, redrawing only
// the cells whose value changed since the previous frame.
//
// Bars grow upward from the bottom row. Fractional heights are approximated with
// the eighth-block glyphs U+2581..U+2588, so every cell carries eight vertical levels.
//
// A Renderer is owned by a single render loop and is not safe for concurrent use.
package bar
