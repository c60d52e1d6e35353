package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test in a scratch directory so logs/ stays out of the tree
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory should not be created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("log file missing message: %q", data)
	}

	output := log.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && strings.HasPrefix(entry.Name(), "vi-snake-") {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file size = %d, want <= %d", info.Size(), maxLogSize)
	}
}
