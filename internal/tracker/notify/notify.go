// Package notify delivers the store's user-facing outcome messages.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/gophfit/internal/logging"
)

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) NotifySuccess(msg string) {
	n.log.Info(context.Background(), msg, "kind", "success")
}

func (n *LogNotifier) NotifyError(msg string) {
	n.log.Error(context.Background(), msg, "kind", "error")
}

// ConsoleNotifier prints notifications as coloured lines. It is safe for
// concurrent use.
type ConsoleNotifier struct {
	mu  sync.Mutex
	w   io.Writer
	ok  *color.Color
	bad *color.Color
}

// NewConsoleNotifier writes to w; nil means color.Output.
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = color.Output
	}
	return &ConsoleNotifier{
		w:   w,
		ok:  color.New(color.FgGreen),
		bad: color.New(color.FgRed, color.Bold),
	}
}

func (n *ConsoleNotifier) NotifySuccess(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = n.ok.Fprintln(n.w, "✓ "+msg)
}

func (n *ConsoleNotifier) NotifyError(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = n.bad.Fprintln(n.w, "✗ "+msg)
}

// Multi fans a notification out to several notifiers.
type Multi []interface {
	NotifySuccess(string)
	NotifyError(string)
}

func (m Multi) NotifySuccess(msg string) {
	for _, n := range m {
		n.NotifySuccess(msg)
	}
}

func (m Multi) NotifyError(msg string) {
	for _, n := range m {
		n.NotifyError(msg)
	}
}

// Errorf is a convenience for notifying a formatted error.
func Errorf(n interface{ NotifyError(string) }, format string, args ...any) {
	n.NotifyError(fmt.Sprintf(format, args...))
}
