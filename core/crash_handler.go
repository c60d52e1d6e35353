// Package core provides the crash handler and the safe goroutine launcher
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finisher restores the terminal, satisfied by tcell.Screen
type Finisher interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finisher
	crashOutput io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report
// Passing nil unregisters it
func SetCrashScreen(s Finisher) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if screen != nil {
		screen.Fini()
	}

	fmt.Fprintf(crashOutput, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
