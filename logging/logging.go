package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appName     = "barviz"
	logFileName = "barviz.log"

	// MaxLogSize is the size above which an existing log file is rotated on setup
	MaxLogSize = 10 * 1024 * 1024
)

// Config selects where log output goes
type Config struct {
	Verbosity int    // 0 warn, 1 info, 2 debug, 3+ trace
	Path      string // Log file, DefaultPath() when empty
	Console   bool   // Also write to stderr; leave off while the terminal is in display mode
}

// Level maps a verbosity count to a zerolog level
func Level(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger and returns it with the log file to close on exit
func Setup(cfg Config) (zerolog.Logger, io.Closer, error) {
	zerolog.SetGlobalLevel(Level(cfg.Verbosity))

	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}

	file, err := openLogFile(path)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	writers := []io.Writer{file}
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		})
	}

	logger := zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	// Add caller information for debug and trace levels
	if cfg.Verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger

	logger.Debug().Int("verbosity", cfg.Verbosity).Str("logFile", path).Msg("Logger initialized")
	return logger, file, nil
}

// DefaultPath returns the log file path
// It respects XDG_STATE_HOME if set, otherwise uses ~/.local/state/barviz/
func DefaultPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory if we can't get home
			return logFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, appName, logFileName)
}

// openLogFile creates the parent directories, rotates an oversized file and opens for append
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		if err := os.Rename(path, rotatedName(path, time.Now())); err != nil {
			return nil, fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// rotatedName inserts a timestamp before the extension: barviz.log -> barviz-20060102-150405.log
func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext)
}
