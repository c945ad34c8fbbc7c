package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/barviz/bar"
	"github.com/lixenwraith/barviz/config"
	"github.com/lixenwraith/barviz/terminal"
	"github.com/rs/zerolog"
)

const (
	surfaceTcell = "tcell"
	surfaceANSI  = "ansi"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// display is a bar surface plus the event source the driver listens on
type display struct {
	surface bar.Surface
	// resync repaints the physical terminal after a resize, nil when not needed
	resync func()
	// listen delivers quit and resize notifications until ctx ends
	listen func(ctx context.Context, quit func(), resized chan<- struct{})
}

func openDisplay(rc config.RunConfig) (*display, error) {
	switch rc.Surface {
	case surfaceTcell:
		screen, err := terminal.NewScreen()
		if err != nil {
			return nil, err
		}
		return &display{
			surface: screen,
			resync:  screen.Sync,
			listen: func(ctx context.Context, quit func(), resized chan<- struct{}) {
				pollScreen(ctx, screen, quit, resized)
			},
		}, nil

	case surfaceANSI:
		mode := terminal.ParseColorMode(rc.Color)
		return &display{
			surface: terminal.NewANSI(terminal.NewStdioBackend(), mode),
			listen: func(ctx context.Context, quit func(), resized chan<- struct{}) {
				go forwardResizes(ctx, terminal.WatchResize(ctx), resized)
				readKeys(ctx, os.Stdin, quit)
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown surface %q (want %s or %s)", rc.Surface, surfaceTcell, surfaceANSI)
	}
}

// pollScreen forwards tcell key and resize events until the screen is finalized
func pollScreen(ctx context.Context, screen *terminal.Screen, quit func(), resized chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				quit()
				return
			}
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			case <-ctx.Done():
				return
			default:
			}
		}
	}
}

func forwardResizes(ctx context.Context, in <-chan struct{}, resized chan<- struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-in:
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// readKeys watches raw stdin for q, Esc or Ctrl-C.
// A pending Read is not interrupted by ctx; the goroutine stays blocked on stdin until the process exits.
func readKeys(ctx context.Context, r io.Reader, quit func()) {
	buf := make([]byte, 64)
	for ctx.Err() == nil {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			if b == 'q' || b == 'Q' || b == 0x1b || b == 0x03 {
				quit()
				return
			}
		}
	}
}

// run drives the renderer once per interval until the feed ends, the user quits
// or the frame budget is spent
func run(ctx context.Context, rc config.RunConfig, opts bar.Options, feed Feed, logger zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d, err := openDisplay(rc)
	if err != nil {
		return err
	}

	r := bar.New(d.surface, bar.WithLogger(logger))
	if err := r.SetOptions(opts); err != nil {
		return err
	}
	if err := r.Init(); err != nil {
		return err
	}
	defer r.End()

	resized := make(chan struct{}, 1)
	go d.listen(ctx, cancel, resized)

	return drive(ctx, r, feed, rc, resized, d.resync, logger)
}

// drive is the sampling loop; all renderer calls happen on this goroutine
func drive(ctx context.Context, r *bar.Renderer, feed Feed, rc config.RunConfig, resized <-chan struct{}, resync func(), logger zerolog.Logger) error {
	ticker := time.NewTicker(rc.Interval.Duration)
	defer ticker.Stop()

	var last []float64
	frames := 0

	draw := func(values []float64) error {
		var err error
		if normalized {
			err = r.DrawNormalized(values)
		} else {
			err = r.Draw(values)
		}
		switch {
		case err == nil:
		case errors.Is(err, bar.ErrEmptyInput), errors.Is(err, bar.ErrTooWide), errors.Is(err, bar.ErrOutOfRange):
			logger.Warn().Err(err).Int("frame", frames).Msg("Frame drawn partially")
		default:
			return err
		}
		return nil
	}

	next := func() error {
		values, err := feed.Next()
		if err != nil {
			return err
		}
		last = values
		frames++
		return draw(values)
	}

	if err := next(); err != nil {
		return endOfFeed(err)
	}

	for {
		if rc.Frames > 0 && frames >= rc.Frames {
			// Keep the last frame on screen for its interval
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-resized:
			logger.Debug().Msg("Terminal resized")
			if resync != nil {
				resync()
			}
			if last != nil {
				if err := draw(last); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if err := next(); err != nil {
				return endOfFeed(err)
			}
		}
	}
}

func endOfFeed(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
