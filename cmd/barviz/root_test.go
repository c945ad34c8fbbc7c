package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/barviz/bar"
	"github.com/lixenwraith/barviz/config"
	"github.com/lixenwraith/barviz/terminal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlagsOverridesOnlyChanged(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--limit", "50", "--align", "right", "--frames", "3"}))

	cfg := config.Default()
	cfg.Bars.Foreground = "blue"
	require.NoError(t, applyFlags(cmd, cfg))

	assert.Equal(t, 50.0, cfg.Bars.Limit)
	assert.Equal(t, "right", cfg.Bars.Align)
	assert.Equal(t, 3, cfg.Run.Frames)
	// Unset flags keep file values
	assert.Equal(t, "blue", cfg.Bars.Foreground)
	assert.Equal(t, time.Second, cfg.Run.Interval.Duration)
}

func TestApplyFlagsRejectsBadRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero interval", []string{"--interval", "0s"}},
		{"no series", []string{"--series", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Error(t, applyFlags(cmd, config.Default()))
		})
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.Bars.Width = 3
	require.NoError(t, cfg.Save(path))

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--dynamic"}))

	got, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Bars.Width)
	assert.True(t, got.Bars.Dynamic)
}

func TestConfigCommandPrintsTOML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--limit", "25"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "[bars]")
	assert.Contains(t, out.String(), "limit = 25.0")
}

func TestDriveUntilEndOfFeed(t *testing.T) {
	var buf bytes.Buffer
	surface := terminal.NewANSI(terminal.NewFixedBackend(&buf, 20, 10), terminal.ColorMode256)
	r := bar.New(surface)
	require.NoError(t, r.Init())
	defer r.End()

	feed := newLineFeed(strings.NewReader("10 20\n\n50 50\n# done\n"))
	rc := config.Default().Run
	rc.Interval.Duration = time.Millisecond

	err := drive(context.Background(), r, feed, rc, nil, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}

func TestDriveStopsAfterFrames(t *testing.T) {
	var buf bytes.Buffer
	surface := terminal.NewANSI(terminal.NewFixedBackend(&buf, 20, 10), terminal.ColorMode256)
	r := bar.New(surface)
	require.NoError(t, r.Init())
	defer r.End()

	feed := newDecayFeed(4, 100, newRand())
	rc := config.Default().Run
	rc.Interval.Duration = time.Millisecond
	rc.Frames = 3

	done := make(chan error, 1)
	go func() { done <- drive(context.Background(), r, feed, rc, nil, nil, zerolog.Nop()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("drive did not stop after the frame budget")
	}
}

func TestDriveReportsFeedErrors(t *testing.T) {
	var buf bytes.Buffer
	surface := terminal.NewANSI(terminal.NewFixedBackend(&buf, 20, 10), terminal.ColorMode256)
	r := bar.New(surface)
	require.NoError(t, r.Init())
	defer r.End()

	feed := newLineFeed(strings.NewReader("1 2\nnot-a-number\n"))
	rc := config.Default().Run
	rc.Interval.Duration = time.Millisecond

	err := drive(context.Background(), r, feed, rc, nil, nil, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDriveHoldsLastFrame(t *testing.T) {
	var buf bytes.Buffer
	surface := terminal.NewANSI(terminal.NewFixedBackend(&buf, 20, 10), terminal.ColorMode256)
	r := bar.New(surface)
	require.NoError(t, r.Init())
	defer r.End()

	rc := config.Default().Run
	rc.Interval.Duration = 50 * time.Millisecond
	rc.Frames = 1

	start := time.Now()
	require.NoError(t, drive(context.Background(), r, newDecayFeed(2, 100, newRand()), rc, nil, nil, zerolog.Nop()))
	assert.GreaterOrEqual(t, time.Since(start), rc.Interval.Duration)
}

func TestDriveHoldEndsOnCancel(t *testing.T) {
	var buf bytes.Buffer
	surface := terminal.NewANSI(terminal.NewFixedBackend(&buf, 20, 10), terminal.ColorMode256)
	r := bar.New(surface)
	require.NoError(t, r.Init())
	defer r.End()

	rc := config.Default().Run
	rc.Interval.Duration = time.Hour
	rc.Frames = 1

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, drive(ctx, r, newDecayFeed(2, 100, newRand()), rc, nil, nil, zerolog.Nop()))
}
