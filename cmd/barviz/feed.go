package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// Feed produces one frame of series values per call
type Feed interface {
	Next() ([]float64, error)
}

// decayFeed starts every series at a random height and lowers it each frame,
// respawning a series once it reaches zero
type decayFeed struct {
	values []float64
	scale  float64
	step   float64
	rng    *rand.Rand
}

func newDecayFeed(series int, scale float64, rng *rand.Rand) *decayFeed {
	f := &decayFeed{
		values: make([]float64, series),
		scale:  scale,
		step:   0.01 * scale,
		rng:    rng,
	}
	for i := range f.values {
		f.values[i] = rng.Float64() * scale
	}
	return f
}

func (f *decayFeed) Next() ([]float64, error) {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	for i := range f.values {
		f.values[i] -= f.step
		if f.values[i] <= 0 {
			f.values[i] = f.rng.Float64() * f.scale
		}
	}
	return out, nil
}

// lineFeed reads one frame per line: numbers separated by spaces or commas.
// Blank lines and lines starting with '#' are skipped.
type lineFeed struct {
	sc   *bufio.Scanner
	line int
}

func newLineFeed(r io.Reader) *lineFeed {
	return &lineFeed{sc: bufio.NewScanner(r)}
}

func (f *lineFeed) Next() ([]float64, error) {
	for f.sc.Scan() {
		f.line++
		text := strings.TrimSpace(f.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		values := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", f.line, err)
			}
			values = append(values, v)
		}
		return values, nil
	}

	if err := f.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
