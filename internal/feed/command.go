package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"scrollpanel/internal/pty"
	"scrollpanel/internal/ui"
	"scrollpanel/internal/ui/textutil"
)

// DefaultPTYSize is used when a CommandSource has no explicit size.
var DefaultPTYSize = pty.Size{Rows: 24, Cols: 80}

// CommandSource streams a command's terminal output into a panel.
// Resize may be called from another goroutine while Run is in progress.
type CommandSource struct {
	Label  string
	Panel  string
	Path   string
	Args   []string
	Dir    string
	Env    []string // appended to the current environment
	Runner pty.Runner
	Size   pty.Size // initial size; read Run-time changes through PTYSize

	mu     sync.Mutex
	runner pty.Runner
	term   io.ReadWriteCloser // non-nil while the command runs
}

var _ Source = (*CommandSource)(nil)

// Name implements Source.
func (c *CommandSource) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return "cmd:" + c.Path
}

// Target implements Source.
func (c *CommandSource) Target() string { return c.Panel }

// PTYSize returns the size the terminal has, or will start with.
func (c *CommandSource) PTYSize() pty.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Size.Rows == 0 || c.Size.Cols == 0 {
		return DefaultPTYSize
	}
	return c.Size
}

// Resize changes the command's terminal size. Before Run it only sets the
// starting size. Zero dimensions are ignored.
func (c *CommandSource) Resize(size pty.Size) error {
	if size.Rows == 0 || size.Cols == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Size == size {
		return nil
	}
	c.Size = size
	if c.term == nil {
		return nil
	}
	if err := c.runner.Resize(c.term, size); err != nil {
		return fmt.Errorf("resize %s: %w", c.Path, err)
	}
	return nil
}

// Run implements Source. Returns the command's exit error, if any.
func (c *CommandSource) Run(ctx context.Context, sink Sink) error {
	runner := c.Runner
	if runner == nil {
		runner = &pty.CreackPTY{}
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	// Holding mu across Start keeps a concurrent Resize from being lost.
	c.mu.Lock()
	size := c.Size
	if size.Rows == 0 || size.Cols == 0 {
		size = DefaultPTYSize
	}
	rwc, err := runner.Start(ctx, cmd, size)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("start %s: %w", c.Path, err)
	}
	c.runner, c.term = runner, rwc
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.runner, c.term = nil, nil
		c.mu.Unlock()
		rwc.Close()
	}()

	w := NewLineWriter(c.Panel, sink)
	_, copyErr := io.Copy(w, rwc)
	w.Flush()

	if copyErr != nil && !isPTYClosed(copyErr) && ctx.Err() == nil {
		return fmt.Errorf("read %s: %w", c.Path, copyErr)
	}
	if cmd.Process != nil {
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("%s: %w", c.Path, err)
		}
	}
	return ctx.Err()
}

// isPTYClosed reports read errors that just mean the child side went away.
func isPTYClosed(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed) || errors.Is(err, io.EOF)
}

// LineWriter turns a terminal byte stream into line messages.
// A line ended by "\n" (or "\r\n") is appended; a bare "\r" followed by more
// text rewrites the newest line, which is how progress bars redraw.
type LineWriter struct {
	target string
	sink   Sink
	cur    []byte
	shown  bool // cur's line has already been sent once
	cr     bool // saw "\r", waiting to see if "\n" follows
}

var _ io.Writer = (*LineWriter)(nil)

// NewLineWriter creates a LineWriter sending to the panel named target.
func NewLineWriter(target string, sink Sink) *LineWriter {
	return &LineWriter{target: target, sink: sink}
}

// Write implements io.Writer. It never fails.
func (w *LineWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		if w.cr {
			w.cr = false
			if b == '\n' {
				w.endLine()
				continue
			}
			w.rewind()
		}
		switch b {
		case '\r':
			w.cr = true
		case '\n':
			w.endLine()
		default:
			w.cur = append(w.cur, b)
		}
	}
	return len(p), nil
}

// Flush sends any partial line.
func (w *LineWriter) Flush() {
	if w.cr {
		w.cr = false
		w.endLine()
		return
	}
	if len(w.cur) > 0 {
		w.emit()
	}
}

func (w *LineWriter) endLine() {
	if !w.shown || len(w.cur) > 0 {
		w.emit()
	}
	w.cur = w.cur[:0]
	w.shown = false
}

// rewind handles a carriage return: show what we have, then overwrite it.
func (w *LineWriter) rewind() {
	if len(w.cur) > 0 || !w.shown {
		w.emit()
	}
	w.cur = w.cur[:0]
	w.shown = true
}

func (w *LineWriter) emit() {
	text := textutil.Sanitize(string(w.cur))
	if w.shown {
		w.sink(ui.ReplaceLastLineMsg{Target: w.target, Text: text})
		return
	}
	w.sink(ui.AppendLineMsg{Target: w.target, Text: text})
	w.shown = true
}
