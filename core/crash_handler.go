package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.RWMutex
	crashHandler func(r any)
)

// SetCrashHandler installs the cleanup routine run before a crash report
// The host uses it to restore the terminal
func SetCrashHandler(fn func(r any)) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashHandler = fn
}

// HandleCrash runs the installed cleanup, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.RLock()
	fn := crashHandler
	crashMu.RUnlock()
	if fn != nil {
		fn(r)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crashing goroutine still restores the terminal
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
