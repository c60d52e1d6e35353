package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRealMainExitCodes(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name     string
		args     []string
		terminal bool
		want     int
		wantLog  bool
	}{
		{"help", []string{"-h"}, true, 0, false},
		{"unknown flag", []string{"-bogus"}, true, 2, false},
		{"bad difficulty", []string{"-difficulty", "nightmare"}, true, 2, false},
		{"no terminal", nil, false, 1, false},
		{"store fails to open", []string{"-store", "postgres", "-debug"}, true, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			prev := isTerminal
			isTerminal = func() bool { return tt.terminal }
			t.Cleanup(func() { isTerminal = prev })

			if got := realMain(tt.args); got != tt.want {
				t.Errorf("realMain(%v) = %d, want %d", tt.args, got, tt.want)
			}

			data, err := os.ReadFile(filepath.Join(logDir, logFileName))
			if !tt.wantLog {
				if err == nil {
					t.Errorf("log file written without -debug")
				}
				return
			}
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "vi-snake logging started") {
				t.Errorf("log file = %q", data)
			}
		})
	}
}
