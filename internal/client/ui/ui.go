// Package ui holds the small interaction primitives of the terminal client:
// blocking alerts, yes/no confirmations and a queue of transient toasts
// that are flushed above the next prompt.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Alert prints a notice that the user is expected to read before the next
// prompt appears.
func Alert(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n!! %s\n", msg)
}

// Confirm asks a yes/no question and returns the user's decision. The
// caller sequences destructive work strictly after the answer. A read
// failure or an empty answer yields fallback, so the contract never ends
// without a decision.
func Confirm(reader *bufio.Reader, w io.Writer, question string, fallback bool) bool {
	suffix := "s/N"
	if fallback {
		suffix = "S/n"
	}
	fmt.Fprintf(w, "%s [%s] ", question, suffix)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí", "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return fallback
	}
}

// Toasts queues transient notices. Views push from any goroutine (realtime
// callbacks included); the REPL flushes before printing its prompt.
type Toasts struct {
	mu      sync.Mutex
	pending []string
}

func NewToasts() *Toasts {
	return &Toasts{}
}

// Success queues an ordinary notice.
func (t *Toasts) Success(msg string) {
	t.push("✓ " + msg)
}

// Error queues a failure notice.
func (t *Toasts) Error(msg string) {
	t.push("✗ " + msg)
}

func (t *Toasts) push(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, line)
}

// Flush prints and drops everything queued so far.
func (t *Toasts) Flush(w io.Writer) {
	t.mu.Lock()
	pending := t.pending
	t.pending = nil
	t.mu.Unlock()

	for _, line := range pending {
		fmt.Fprintln(w, line)
	}
}
