package terminal

import (
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // No color support (dumb terminals)
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// Colors returns the number of colors the mode can show
func (m ColorMode) Colors() int {
	switch m {
	case ColorModeTrueColor:
		return 1 << 24
	case ColorMode256:
		return 256
	default:
		return 0
	}
}

func (m ColorMode) String() string {
	switch m {
	case ColorModeTrueColor:
		return "truecolor"
	case ColorMode256:
		return "256"
	default:
		return "none"
	}
}

// ParseColorMode resolves a mode name; "auto" and unknown names detect from the environment
func ParseColorMode(name string) ColorMode {
	switch strings.ToLower(name) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "none", "mono":
		return ColorModeNone
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	// 3. Check TERM for known true color terminals and dumb terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return ColorModeNone
	}
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	// 4. Default to 256-color
	return ColorMode256
}

var (
	paletteOnce sync.Once
	palette     [256]colorful.Color
)

// paletteIndex returns the xterm palette index closest to c
func paletteIndex(c tcell.Color) int {
	if !c.IsRGB() {
		return int(c-tcell.ColorValid) & 0xff
	}

	paletteOnce.Do(func() {
		for i := range palette {
			r, g, b := tcell.PaletteColor(i).RGB()
			palette[i] = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		}
	})

	r, g, b := c.RGB()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	// Skip the 16 theme-dependent system colors
	best, bestDist := 16, target.DistanceLab(palette[16])
	for i := 17; i < len(palette); i++ {
		if d := target.DistanceLab(palette[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
