package logger

import (
	"io"
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets up the global logger.
// env: "development" gives a readable text handler at debug level, anything else JSON at info.
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(env string, w io.Writer) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if env == "development" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger returns the global logger, initialising a development one if needed.
func GetLogger() *slog.Logger {
	if log == nil {
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal logs and exits with code 1.
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With returns a logger carrying extra fields, e.g. logger.With("user_id", id).Info("login").
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}
