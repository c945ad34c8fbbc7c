package bar

import (
	"fmt"

	"github.com/rs/zerolog"
)

// minColors is the palette size a surface needs for the foreground/background pair
const minColors = 8

// Renderer diffs consecutive frames of series values and paints only what changed
type Renderer struct {
	surface Surface
	opts    Options
	frame   frameState
	skip    SkipPolicy
	log     zerolog.Logger
}

// Option configures a Renderer at construction
type Option func(*Renderer)

// WithLogger routes diagnostics to l
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) {
		r.log = l.With().Str("component", "bar").Logger()
	}
}

// WithSkipPolicy replaces ExactEqualitySkip
func WithSkipPolicy(p SkipPolicy) Option {
	return func(r *Renderer) {
		if p != nil {
			r.skip = p
		}
	}
}

// New creates a renderer painting on s with DefaultOptions
func New(s Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surface: s,
		opts:    DefaultOptions(),
		skip:    ExactEqualitySkip,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init enters the surface and checks that it can show the color pair
func (r *Renderer) Init() error {
	if err := r.surface.Enter(); err != nil {
		return &InitError{Reason: "cannot enter display mode", Err: err}
	}

	if n := r.surface.Colors(); n < minColors {
		r.surface.Leave()
		r.log.Error().Int("colors", n).Msg("terminal does not support colors")
		return &InitError{Reason: fmt.Sprintf("terminal supports %d colors, need %d", n, minColors)}
	}

	r.applyColors()
	r.frame.invalidate()
	r.log.Debug().Msg("renderer initialized")
	return nil
}

// End leaves the surface and drops frame state
func (r *Renderer) End() {
	r.surface.Leave()
	r.frame.release()
	r.log.Debug().Msg("closing renderer")
}

// Draw renders one frame of raw values scaled by Options.Limit.
// Errors are ErrEmptyInput, ErrTooWide or ErrOutOfRange, in that priority.
// ErrTooWide and ErrOutOfRange still leave the drawable part of the frame on screen.
func (r *Renderer) Draw(values []float64) error {
	return r.draw(values, r.opts.Limit, r.opts.DynamicLimit)
}

// DrawNormalized renders one frame of values already scaled to [0,1].
// The dynamic limit does not apply.
func (r *Renderer) DrawNormalized(values []float64) error {
	return r.draw(values, 1, false)
}

func (r *Renderer) draw(values []float64, limit float64, dynamic bool) error {
	if len(values) == 0 {
		r.log.Warn().Msg("received empty frame")
		return ErrEmptyInput
	}

	for retry := 0; ; retry++ {
		exceeded, err := r.render(values, limit, dynamic && retry < maxRescaleRetries)
		if !exceeded {
			return err
		}

		newLimit, ok := Rescale(values)
		if !ok {
			dynamic = false
			continue
		}
		r.log.Info().
			Float64("old_limit", limit).
			Float64("new_limit", newLimit).
			Msg("limit rescaled")
		limit = newLimit
		r.opts.Limit = newLimit
		r.frame.invalidate()
	}
}

// render runs one pass over the frame. exceeded reports a value above the limit
// when rescaling is allowed, in which case nothing is persisted or flushed.
func (r *Renderer) render(values []float64, limit float64, rescale bool) (exceeded bool, err error) {
	rows, columns := r.surface.Size()
	size := len(values)

	if !r.frame.matches(rows, columns, size, limit) {
		r.log.Debug().
			Int("rows", rows).
			Int("columns", columns).
			Int("series", size).
			Float64("limit", limit).
			Msg("data reset")
		r.frame.reset(rows, columns, size, limit)
		r.applyColors()
		r.surface.Clear()
	}

	width := r.cellWidth(columns, size)
	offset := r.opts.Alignment.offset(columns, width*size)

	for i, next := range values {
		start := offset + i*width
		if start+width > columns {
			r.log.Warn().
				Int("series", size).
				Int("width", width).
				Int("columns", columns).
				Msg("cannot fit data on screen")
			err = fmt.Errorf("%w: %d series of width %d on %d columns", ErrTooWide, size, width, columns)
			break
		}

		prev := r.frame.previous[i]

		if !finite(next) {
			r.log.Warn().Int("index", i).Float64("value", next).Msg("received non-finite data")
			if err == nil {
				err = fmt.Errorf("%w: series %d is %v", ErrOutOfRange, i, next)
			}
			continue
		}

		norm := next / limit
		if !inRange(norm) {
			if rescale && norm > 1 {
				return true, nil
			}
			r.log.Warn().Int("index", i).Float64("value", next).Float64("limit", limit).Msg("received out of range data")
			if err == nil {
				err = fmt.Errorf("%w: series %d is %g, limit %g", ErrOutOfRange, i, next, limit)
			}
		}

		if r.skip(prev, next) {
			continue
		}

		span := diffSpan(Locate(prev/limit, rows), Locate(norm, rows), rows, start, width)
		r.paint(span)
		r.frame.previous[i] = next
	}

	r.surface.Flush()
	return false, err
}

// cellWidth resolves the configured width, fitting the surface when unset
func (r *Renderer) cellWidth(columns, series int) int {
	if r.opts.CellWidth != 0 {
		return r.opts.CellWidth
	}
	if w := columns / series; w > 1 {
		return w
	}
	return 1
}

// paint emits a span bottom-up, full cells first
func (r *Renderer) paint(s CellSpan) {
	if n := s.FullRows(); n > 0 {
		if s.Style == SpanShrink {
			r.surface.SetColors(r.opts.Background, r.opts.Background)
		}
		full := Glyph(FullLevel)
		for row := s.BottomRow; row >= s.TopRow; row-- {
			r.writeRow(row, s.StartColumn, s.Width, full)
		}
		if s.Style == SpanShrink {
			r.applyColors()
		}
	}

	if s.HasPartial() {
		r.writeRow(s.PartialRow, s.StartColumn, s.Width, partialGlyph(s.Eighths))
	}
}

func (r *Renderer) writeRow(row, col, width int, g rune) {
	r.surface.MoveCursor(row, col)
	for j := 0; j < width; j++ {
		r.surface.WriteGlyph(g)
	}
}

func (r *Renderer) applyColors() {
	r.surface.SetColors(r.opts.Foreground, r.opts.Background)
}
