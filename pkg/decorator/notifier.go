package decorator

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultTimeFormat is the timestamp layout used in notification lines.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// Notifier writes one line per executed operation:
//
//	[2025-01-02 15:04:05] Transaction performed: Deposit
//
// The line is written after the operation returns, whatever its outcome.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	now    func() time.Time
	layout string
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithNotifierClock overrides the clock used to stamp notification lines.
func WithNotifierClock(now func() time.Time) NotifierOption {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// WithTimeFormat overrides the timestamp layout.
func WithTimeFormat(layout string) NotifierOption {
	return func(n *Notifier) {
		if layout != "" {
			n.layout = layout
		}
	}
}

// NewNotifier creates a Notifier writing to out.
func NewNotifier(out io.Writer, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		out:    out,
		now:    time.Now,
		layout: DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Execute runs operation then writes the notification line.
func (n *Notifier) Execute(label string, operation func() error) error {
	err := operation()

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.out, "[%s] Transaction performed: %s\n", n.now().Format(n.layout), label) //nolint:errcheck
	return err
}
