package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/barviz/config"
	"github.com/lixenwraith/barviz/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity  int
	configPath string
	logFile    string
	inputPath  string
	normalized bool

	rootCmd = newRootCmd()
)

// Execute runs the root command, cancelled on SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barviz",
		Short: "Incremental bar charts for the terminal",
		Long: `barviz draws a live bar chart in the terminal, repainting only the cells whose
value changed since the previous frame. Frames come from a built-in decaying random
source or, with --input, one line of numbers per frame from a file or stdin.

Quit with q, Esc or Ctrl-C.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/barviz/config.toml)")
	flags.StringVar(&logFile, "log-file", "", "Log file (default $XDG_STATE_HOME/barviz/barviz.log)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read frames from a file, - for stdin")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "Input values are already scaled to [0,1]")

	flags.Float64("limit", 100, "Value drawn as a full-height bar")
	flags.Bool("dynamic", false, "Grow the limit when a value exceeds it")
	flags.Int("width", 0, "Columns per bar, 0 fits the screen")
	flags.String("align", "left", "Placement of unused columns: left, middle, right")
	flags.String("fg", "red", "Bar color (name or #rrggbb)")
	flags.String("bg", "black", "Background color (name or #rrggbb)")

	flags.Duration("interval", time.Second, "Time between frames")
	flags.Int("series", 10, "Number of series for the random source")
	flags.Int("frames", 0, "Stop after this many frames, 0 runs until quit")
	flags.String("surface", "tcell", "Terminal surface: tcell or ansi")
	flags.String("color", "auto", "Color mode for the ansi surface: auto, 256, truecolor")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(logging.Config{Verbosity: verbosity, Path: logFile})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		log.Info().Msg("Closing log")
		closer.Close()
	}()
	log.Debug().Str("surface", cfg.Run.Surface).Int("series", cfg.Run.Series).Msg("Starting")

	feed, closeFeed, err := openFeed(cfg, opts.Limit)
	if err != nil {
		return err
	}
	defer closeFeed()

	return run(cmd.Context(), cfg.Run, opts, feed, logger)
}

// loadConfig reads the config file and applies explicitly set flags over it
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides config values with flags the user set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.File) error {
	flags := cmd.Flags()
	var err error
	set := func(name string, apply func()) {
		if err == nil && flags.Changed(name) {
			apply()
		}
	}

	set("limit", func() { cfg.Bars.Limit, err = flags.GetFloat64("limit") })
	set("dynamic", func() { cfg.Bars.Dynamic, err = flags.GetBool("dynamic") })
	set("width", func() { cfg.Bars.Width, err = flags.GetInt("width") })
	set("align", func() { cfg.Bars.Align, err = flags.GetString("align") })
	set("fg", func() { cfg.Bars.Foreground, err = flags.GetString("fg") })
	set("bg", func() { cfg.Bars.Background, err = flags.GetString("bg") })
	set("interval", func() { cfg.Run.Interval.Duration, err = flags.GetDuration("interval") })
	set("series", func() { cfg.Run.Series, err = flags.GetInt("series") })
	set("frames", func() { cfg.Run.Frames, err = flags.GetInt("frames") })
	set("surface", func() { cfg.Run.Surface, err = flags.GetString("surface") })
	set("color", func() { cfg.Run.Color, err = flags.GetString("color") })
	if err != nil {
		return err
	}

	if cfg.Run.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive, got %s", cfg.Run.Interval.Duration)
	}
	if cfg.Run.Series <= 0 {
		return fmt.Errorf("series must be positive, got %d", cfg.Run.Series)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration, or write it with --write",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := cfg.Options(); err != nil {
				return err
			}

			if !write {
				return writeTOML(cmd.OutOrStdout(), cfg)
			}

			path := configPath
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Save the effective configuration to the config file")
	return cmd
}

func writeTOML(w io.Writer, cfg *config.File) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func openFeed(cfg *config.File, limit float64) (Feed, func(), error) {
	noop := func() {}
	scale := limit
	if normalized {
		scale = 1
	}

	switch inputPath {
	case "":
		return newDecayFeed(cfg.Run.Series, scale, newRand()), noop, nil
	case "-":
		if cfg.Run.Surface == surfaceANSI {
			return nil, noop, fmt.Errorf("the ansi surface reads keys from stdin; use --surface tcell with --input -")
		}
		return newLineFeed(os.Stdin), noop, nil
	default:
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, noop, err
		}
		return newLineFeed(f), func() { f.Close() }, nil
	}
}
