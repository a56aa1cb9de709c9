package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions configures the optional rotating log file.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileOptions returns rotation settings for the given path.
func DefaultFileOptions(path string) FileOptions {
	return FileOptions{
		Path:       path,
		MaxSizeMB:  100,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// New creates a logger for the given environment.
// "production" yields JSON output at info level; anything else is a
// human-readable development logger at debug level.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// NewNamed creates a logger for env named after the service.
func NewNamed(env, name string) (*zap.Logger, error) {
	l, err := New(env)
	if err != nil {
		return nil, err
	}
	return l.Named(name), nil
}

// NewNamedWithFile is NewNamed with an additional JSON sink rotated by lumberjack.
// An empty path behaves exactly like NewNamed.
func NewNamedWithFile(env, name string, opts FileOptions) (*zap.Logger, error) {
	if opts.Path == "" {
		return NewNamed(env, name)
	}

	level := zapcore.DebugLevel
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	if env == "production" {
		level = zapcore.InfoLevel
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB, // megabytes
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays, // days
		Compress:   opts.Compress,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileWriter, level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(name), nil
}
