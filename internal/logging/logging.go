// Package logging sets up the process-wide slog logger. Output goes to a
// file because the terminal belongs to the UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// DefaultRelPath is the log file under the XDG state dir.
const DefaultRelPath = "circularmenu/circularmenu.log"

var (
	mu       sync.Mutex
	logFile  *os.File
	filename string
	writer   io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// SetLogFilename chooses the log file. It must be called before the first
// GetLogger; later calls have no effect.
func SetLogFilename(name string) {
	mu.Lock()
	defer mu.Unlock()
	filename = name
}

// SetOutput sends logs to w instead of a file. Same timing rule as
// SetLogFilename.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

func open() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if writer != nil {
		return writer
	}

	path := filename
	if path == "" {
		p, err := xdg.StateFile(DefaultRelPath)
		if err != nil {
			return io.Discard
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return io.Discard
	}
	logFile = f
	return f
}

// GetLogger returns the shared JSON logger, creating it on first use.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		handler := slog.NewJSONHandler(open(), &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// Init creates the logger and installs it as slog's default.
func Init(rawLevel string) *slog.Logger {
	l := GetLogger()
	SetRawLogLevel(rawLevel)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(rawLevel string) (slog.Level, error) {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", rawLevel)
}

// SetRawLogLevel parses a config level name. Unknown names fall back to info.
func SetRawLogLevel(rawLevel string) {
	level, _ := ParseLevel(rawLevel)
	levelVar.Set(level)
}

// Level reports the active level.
func Level() slog.Level {
	return levelVar.Level()
}

func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
