// Package rlog provides the structured leveled logger used across
// rootreader's ambient stack. It wraps log/slog rather than a third-party
// logging library: none of the example repos in the retrieved pack import
// a logging library at their own module root, so the idiomatic choice
// observed across the corpus is the standard library's structured logger
// (see DESIGN.md).
package rlog

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	current = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// Default returns the process-wide logger.
func Default() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return current
}

// SetDefault replaces the process-wide logger, e.g. to swap in a JSON
// handler or route output to a file in cmd/rootdump.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()

	current = l
}
