// Package linebuf provides a bounded scrolling line buffer for panel widgets.
//
// A Buffer keeps the most recent N lines and renders a height-limited
// snapshot of them. It is not safe for concurrent use; mutate and read it
// only from the UI task that owns it.
package linebuf

import (
	"errors"
	"strings"
)

// DefaultCapacity is the number of lines kept when no capacity is given.
const DefaultCapacity = 40

// ChromeHeight is the number of rows a hosting panel spends on its border
// (top row with title, bottom row).
const ChromeHeight = 2

// ErrEmpty is returned by ReplaceLast when the buffer holds no lines.
var ErrEmpty = errors.New("linebuf: buffer is empty")

// Notifier is told after every successful mutation so the host can re-render.
type Notifier interface {
	Refresh()
}

// NotifierFunc adapts a plain func to Notifier.
type NotifierFunc func()

// Refresh implements Notifier.
func (f NotifierFunc) Refresh() { f() }

// Option configures a Buffer.
type Option func(*Buffer)

// WithNotifier sets the refresh notifier.
func WithNotifier(n Notifier) Option {
	return func(b *Buffer) { b.notifier = n }
}

// Buffer is a fixed-capacity FIFO of text lines, oldest first.
type Buffer struct {
	capacity int
	lines    []string
	notifier Notifier
}

// New creates a buffer that keeps at most capacity lines.
// A non-positive capacity falls back to DefaultCapacity.
func New(capacity int, opts ...Option) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	b := &Buffer{
		capacity: capacity,
		lines:    make([]string, 0, capacity),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetNotifier replaces the refresh notifier. nil disables notification.
func (b *Buffer) SetNotifier(n Notifier) {
	b.notifier = n
}

// Append adds line as the newest entry, evicting the oldest at capacity.
func (b *Buffer) Append(line string) {
	if len(b.lines) == b.capacity {
		// Shift in place so the backing array never grows past capacity.
		copy(b.lines, b.lines[1:])
		b.lines[len(b.lines)-1] = line
	} else {
		b.lines = append(b.lines, line)
	}
	b.refresh()
}

// ReplaceLast overwrites the newest entry. Returns ErrEmpty if there is none.
func (b *Buffer) ReplaceLast(line string) error {
	if len(b.lines) == 0 {
		return ErrEmpty
	}
	b.lines[len(b.lines)-1] = line
	b.refresh()
	return nil
}

// Clear drops all lines.
func (b *Buffer) Clear() {
	b.lines = b.lines[:0]
	b.refresh()
}

// Snapshot returns the last visibleHeight-ChromeHeight lines joined by
// newlines, oldest first. Returns "" when no rows are left for content.
func (b *Buffer) Snapshot(visibleHeight int) string {
	n := visibleHeight - ChromeHeight
	if n <= 0 || len(b.lines) == 0 {
		return ""
	}
	if n > len(b.lines) {
		n = len(b.lines)
	}
	return strings.Join(b.lines[len(b.lines)-n:], "\n")
}

// Lines returns a copy of the buffered lines, oldest first.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Last returns the newest line and whether one exists.
func (b *Buffer) Last() (string, bool) {
	if len(b.lines) == 0 {
		return "", false
	}
	return b.lines[len(b.lines)-1], true
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int { return b.capacity }

func (b *Buffer) refresh() {
	if b.notifier != nil {
		b.notifier.Refresh()
	}
}
