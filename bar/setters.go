package bar

import "github.com/gdamore/tcell/v2"

// Options returns a copy of the active options
func (r *Renderer) Options() Options {
	return r.opts
}

// SetOptions replaces every option at once. A rejected set leaves all fields unchanged.
// Accepted options always redraw the next frame from scratch.
func (r *Renderer) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		r.log.Warn().Err(err).Msg("options rejected")
		return err
	}

	r.opts = o
	r.applyColors()
	r.frame.invalidate()
	return nil
}

// SetWidth sets the columns per bar, 0 fits the surface
func (r *Renderer) SetWidth(width int) error {
	if width < 0 {
		return &OptionError{Field: "width", Value: width, Reason: "must not be negative"}
	}
	if width != r.opts.CellWidth {
		r.opts.CellWidth = width
		r.frame.invalidate()
	}
	return nil
}

// SetLimit sets the value drawn as a full-height bar
func (r *Renderer) SetLimit(limit float64) error {
	if err := validateLimit(limit); err != nil {
		return err
	}
	if limit != r.opts.Limit {
		r.opts.Limit = limit
		r.frame.invalidate()
	}
	return nil
}

// SetDynamicLimit toggles limit growth. limit is applied only when turning dynamic mode off;
// a dynamic renderer keeps its current limit as the starting scale.
func (r *Renderer) SetDynamicLimit(dynamic bool, limit float64) error {
	if dynamic {
		r.opts.DynamicLimit = true
		return nil
	}
	if err := validateLimit(limit); err != nil {
		return err
	}
	r.opts.DynamicLimit = false
	if limit != r.opts.Limit {
		r.opts.Limit = limit
		r.frame.invalidate()
	}
	return nil
}

// SetAlignment sets where unused columns go
func (r *Renderer) SetAlignment(a Alignment) error {
	if !a.Valid() {
		return &OptionError{Field: "alignment", Value: a, Reason: "unknown alignment"}
	}
	if a != r.opts.Alignment {
		r.opts.Alignment = a
		r.frame.invalidate()
	}
	return nil
}

// SetColors sets the bar and background colors. Frame state is kept.
func (r *Renderer) SetColors(fg, bg tcell.Color) {
	r.opts.Foreground = fg
	r.opts.Background = bg
	r.applyColors()
}

// SetForeground sets the bar color
func (r *Renderer) SetForeground(c tcell.Color) {
	r.SetColors(c, r.opts.Background)
}

// SetBackground sets the empty cell color
func (r *Renderer) SetBackground(c tcell.Color) {
	r.SetColors(r.opts.Foreground, c)
}
