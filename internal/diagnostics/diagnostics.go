// Package diagnostics is the human-readable trace sink parsers write to
// while walking a package. It is deliberately separate from the typed
// errors.WarningList a caller receives: this is the side channel a person
// tails while debugging a stubborn package, not structured data a caller
// programs against.
package diagnostics

import (
	"fmt"
	"io"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput sets the writer diagnostic trace lines are written to. Pass nil
// to discard them (the default).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Tracef writes a formatted trace line if an output is configured.
func Tracef(format string, args ...interface{}) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[trace] "+format+"\n", args...)
}

// Component writes a formatted trace line tagged with a component name, e.g.
// Component("detect", "probing %s", root).
func Component(component, format string, args ...interface{}) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[trace:%s] "+format+"\n", append([]interface{}{component}, args...)...)
}
