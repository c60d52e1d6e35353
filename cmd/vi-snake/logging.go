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
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging routes the standard logger to logs/vi-snake.log when debug is set
// Logging never targets stdout or stderr, the terminal belongs to the screen
// Returns the open file for the caller to close, nil when logging is discarded
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
		// Appends to the oversized file when rotation fails
		rotateErr = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("vi-snake logging started")
	if rotateErr != nil {
		log.Printf("log rotation failed: %v", rotateErr)
	}
	return f
}
