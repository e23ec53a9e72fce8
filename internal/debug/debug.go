package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// file returns the debug log file, opening it on first use.
// Returns nil when DIAL_DEBUG is unset, which disables logging.
// Caller must hold mu.
func file() *os.File {
	if checked {
		return logFile
	}
	checked = true

	path := os.Getenv("DIAL_DEBUG")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Unwritable path: logging stays disabled.
		return nil
	}
	logFile = f
	return logFile
}

// Log writes a timestamped message to the debug log.
// A no-op unless the DIAL_DEBUG environment variable points at a file.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	f := file()
	if f == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f, "[%s] %s\n", timestamp, msg)
}

// Close closes the debug log file and resets state.
// Subsequent Log calls re-read DIAL_DEBUG.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = false
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
