package bar

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Alignment places the columns left over when the bars do not fill the surface
type Alignment uint8

const (
	AlignLeft   Alignment = iota // Leftover columns after the last bar
	AlignMiddle                  // Leftover split around the bars
	AlignRight                   // Leftover columns before the first bar
)

var alignmentNames = [...]string{"left", "middle", "right"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// Valid reports whether a is one of the defined alignments
func (a Alignment) Valid() bool {
	return a <= AlignRight
}

// ParseAlignment resolves an alignment name, case-insensitive; "center" is accepted for middle
func ParseAlignment(name string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return AlignLeft, nil
	case "middle", "center", "centre":
		return AlignMiddle, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, &OptionError{Field: "alignment", Value: name, Reason: "expected left, middle or right"}
}

// offset returns the first bar column for the given layout
func (a Alignment) offset(columns, used int) int {
	leftover := columns - used
	if leftover <= 0 {
		return 0
	}
	switch a {
	case AlignMiddle:
		return leftover / 2
	case AlignRight:
		return leftover
	default:
		return 0
	}
}

// Options configures how bars are scaled and painted
type Options struct {
	Limit        float64     // Value drawn as a full-height bar
	DynamicLimit bool        // Grow Limit to the frame maximum instead of rejecting larger values
	CellWidth    int         // Columns per bar, 0 fits the surface
	Alignment    Alignment   // Placement of unused columns
	Foreground   tcell.Color // Bar color
	Background   tcell.Color // Empty cell color
}

// DefaultOptions returns the settings a new renderer starts with
func DefaultOptions() Options {
	return Options{
		Limit:        100,
		DynamicLimit: false,
		CellWidth:    0,
		Alignment:    AlignLeft,
		Foreground:   tcell.ColorRed,
		Background:   tcell.ColorBlack,
	}
}

// Validate checks every field and returns the first violation
func (o Options) Validate() error {
	if o.CellWidth < 0 {
		return &OptionError{Field: "width", Value: o.CellWidth, Reason: "must not be negative"}
	}
	if err := validateLimit(o.Limit); err != nil {
		return err
	}
	if !o.Alignment.Valid() {
		return &OptionError{Field: "alignment", Value: o.Alignment, Reason: "unknown alignment"}
	}
	return nil
}

func validateLimit(limit float64) error {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		return &OptionError{Field: "limit", Value: limit, Reason: "must be a positive finite number"}
	}
	return nil
}
