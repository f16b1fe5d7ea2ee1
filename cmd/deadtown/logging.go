package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "deadtown.log"
	maxLogSize  = 10 * 1024 * 1024
	rotateStamp = "20060102-150405"
)

// setupLogging routes the standard logger to logs/deadtown.log when debug is set
// The screen owns stdout and stderr, so without debug or on any file error all logging is discarded
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := openLog(logDir, time.Now())
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// openLog opens dir/deadtown.log for append
// A file over maxLogSize is first renamed to deadtown-<stamp>.log
func openLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, filepath.Join(dir, rotatedName(now))); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

func rotatedName(now time.Time) string {
	return fmt.Sprintf("deadtown-%s.log", now.Format(rotateStamp))
}
