// Package terminal provides character-cell surfaces for the bar renderer.
//
// Two surfaces are available:
//   - Screen wraps a tcell.Screen, taking terminfo, input and resize handling from tcell
//   - ANSI emits direct ANSI sequences through a Backend, bypassing terminfo entirely
//
// Both satisfy bar.Surface. Target environments for ANSI: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
