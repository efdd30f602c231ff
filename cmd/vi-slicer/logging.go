package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logDir        = "logs"
	logFileName   = "vi-slicer.log"
	maxLogSizeMB  = 10
	maxLogSize    = maxLogSizeMB * 1024 * 1024
	maxLogBackups = 3
)

// setupLogging routes slog and log to a rotating file in debug mode and
// discards everything otherwise; the terminal belongs to tcell
// Returns the file writer to close on exit, nil when logging is off
func setupLogging(debug bool) *lumberjack.Logger {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		discardLogs()
		return nil
	}

	logFile := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("logging started", "pid", os.Getpid())
	return logFile
}

func discardLogs() {
	slog.SetDefault(slog.New(slog.DiscardHandler))
	log.SetOutput(io.Discard)
}
