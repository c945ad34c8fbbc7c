package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/barviz/bar"
)

// File holds the on-disk configuration
type File struct {
	Bars BarsConfig `toml:"bars"`
	Run  RunConfig  `toml:"run"`
}

// BarsConfig mirrors bar.Options with names a user can type
type BarsConfig struct {
	Limit      float64 `toml:"limit"`
	Dynamic    bool    `toml:"dynamic"`
	Width      int     `toml:"width"`      // Columns per bar, 0 fits the screen
	Align      string  `toml:"align"`      // left, middle or right
	Foreground string  `toml:"foreground"` // Color name or #rrggbb
	Background string  `toml:"background"`
}

// RunConfig controls the demo driver
type RunConfig struct {
	Interval Duration `toml:"interval"`
	Series   int      `toml:"series"`
	Frames   int      `toml:"frames"`  // 0 runs until interrupted
	Surface  string   `toml:"surface"` // tcell or ansi
	Color    string   `toml:"color"`   // auto, 256, truecolor
}

// Duration decodes TOML strings such as "250ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *File {
	return &File{
		Bars: BarsConfig{
			Limit:      100,
			Width:      0,
			Align:      "left",
			Foreground: "red",
			Background: "black",
		},
		Run: RunConfig{
			Interval: Duration{time.Second},
			Series:   10,
			Surface:  "tcell",
			Color:    "auto",
		},
	}
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "barviz", "config.toml"), nil
}

// LoadError holds details about a config loading error
type LoadError struct {
	FilePath string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("config %s: %v", e.FilePath, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration at path over the defaults
// Returns defaults if the file doesn't exist
// Returns LoadError if the file exists but has parse errors
func Load(path string) (*File, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return cfg, &LoadError{FilePath: path, Err: err}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, &LoadError{FilePath: path, Err: fmt.Errorf("unknown key %q", undecoded[0].String())}
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
func (f *File) Save(path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := out.WriteString("# barviz configuration\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(out).Encode(f)
}

// Options resolves the bar settings into renderer options
func (f *File) Options() (bar.Options, error) {
	b := f.Bars
	align, err := bar.ParseAlignment(b.Align)
	if err != nil {
		return bar.Options{}, err
	}
	fg, err := ParseColor(b.Foreground)
	if err != nil {
		return bar.Options{}, err
	}
	bg, err := ParseColor(b.Background)
	if err != nil {
		return bar.Options{}, err
	}

	opts := bar.Options{
		Limit:        b.Limit,
		DynamicLimit: b.Dynamic,
		CellWidth:    b.Width,
		Alignment:    align,
		Foreground:   fg,
		Background:   bg,
	}
	return opts, opts.Validate()
}

// ParseColor resolves a W3C color name or #rrggbb
func ParseColor(name string) (tcell.Color, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "default") {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		return c, &bar.OptionError{Field: "color", Value: name, Reason: "unknown color"}
	}
	return c, nil
}
