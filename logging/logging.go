// Package logging provides the process-wide file logger. The terminal is owned
// by the TUI, so log output always goes to a rotated file.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envMode  = "WIFISIM_ENV"
	envLevel = "LOG_LEVEL"
)

var (
	logger *Logger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)

	noop = &Logger{zap.NewNop().Sugar()}
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noop
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger, or a no-op logger before Init.
func L() *Logger {
	if logger == nil {
		return noop
	}
	return logger
}

// Component returns a child of the global logger tagged with name.
func Component(name string) *Logger {
	return L().With("component", name)
}

// Options controls Init. Zero values fall back to the environment.
type Options struct {
	// Path of the log file. Empty selects a file under the XDG state dir.
	Path string
	// Level name (debug, info, warn, error). Empty reads LOG_LEVEL.
	Level string
}

// Init installs the global logger and returns the file it writes to.
func Init(appName string, opts Options) (string, error) {
	dev := isDev()

	path := opts.Path
	if path == "" {
		var err error
		if path, err = defaultPath(appName, dev); err != nil {
			return "", err
		}
	}

	lvlName := opts.Level
	if lvlName == "" {
		lvlName = os.Getenv(envLevel)
	}
	level.SetLevel(ParseLevel(lvlName, dev))

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if dev {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	logger = &Logger{zap.New(zapcore.NewCore(enc, writer, level), zap.AddCaller()).Sugar()}
	logger.Infow("logger initialized", "path", path, "level", level.Level().String(), "dev", dev)
	return path, nil
}

// Use installs l as the global logger. Intended for tests.
func Use(l *zap.Logger) {
	if l == nil {
		logger = nil
		return
	}
	logger = &Logger{l.Sugar()}
}

// Sync flushes buffered entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// ParseLevel maps a level name to a zap level. Unknown names give debug in
// dev mode and info otherwise.
func ParseLevel(name string, dev bool) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	}
	if dev {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

func isDev() bool {
	switch strings.ToLower(os.Getenv(envMode)) {
	case "dev", "development":
		return true
	}
	return false
}

func defaultPath(appName string, dev bool) (string, error) {
	name := "wifisim.log"
	if dev {
		name = "wifisim-debug.log"
	}

	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".local", "state")
		} else {
			dir = os.TempDir()
		}
	}
	dir = filepath.Join(dir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
