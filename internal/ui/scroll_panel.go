package ui

import (
	"errors"
	"fmt"

	"scrollpanel/internal/linebuf"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// ScrollPanelKind is the name prefix for panels created without a name.
const ScrollPanelKind = "ScrollPanel"

// DefaultName builds the "<Kind>_<instance>" label used as a panel title.
func DefaultName(kind string, instance int) string {
	return fmt.Sprintf("%s_%d", kind, instance)
}

// ScrollPanel shows the most recent lines of a linebuf.Buffer in a titled frame.
// It owns its buffer; nothing else holds a reference to it.
type ScrollPanel struct {
	name     string
	instance int
	buf      *linebuf.Buffer
	log      zerolog.Logger
	onResize func(cols, rows int)

	width   int
	height  int
	focused bool

	cache     string
	dirty     bool
	refreshes int
}

// Ensure ScrollPanel implements View and the layout hooks.
var (
	_ View             = (*ScrollPanel)(nil)
	_ Sizer            = (*ScrollPanel)(nil)
	_ Focusable        = (*ScrollPanel)(nil)
	_ linebuf.Notifier = (*ScrollPanel)(nil)
)

// ScrollPanelOption configures a ScrollPanel.
type ScrollPanelOption func(*scrollPanelConfig)

type scrollPanelConfig struct {
	name     string
	capacity int
	log      zerolog.Logger
	onResize func(cols, rows int)
}

// WithName overrides the default "<Kind>_<instance>" title.
func WithName(name string) ScrollPanelOption {
	return func(c *scrollPanelConfig) { c.name = name }
}

// WithCapacity sets the buffer capacity (default linebuf.DefaultCapacity).
func WithCapacity(n int) ScrollPanelOption {
	return func(c *scrollPanelConfig) { c.capacity = n }
}

// WithLogger sets the logger used for rejected updates.
func WithLogger(l zerolog.Logger) ScrollPanelOption {
	return func(c *scrollPanelConfig) { c.log = l }
}

// WithResizeHook registers fn to receive the panel's text area, as given by
// ContentSize, whenever the panel is resized. A command feeding the panel
// uses it to keep its terminal the same size.
func WithResizeHook(fn func(cols, rows int)) ScrollPanelOption {
	return func(c *scrollPanelConfig) { c.onResize = fn }
}

// NewScrollPanel creates a panel with its own empty buffer.
func NewScrollPanel(instance int, opts ...ScrollPanelOption) *ScrollPanel {
	cfg := scrollPanelConfig{
		capacity: linebuf.DefaultCapacity,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = DefaultName(ScrollPanelKind, instance)
	}
	p := &ScrollPanel{
		name:     cfg.name,
		instance: instance,
		log:      cfg.log.With().Str("panel", cfg.name).Logger(),
		onResize: cfg.onResize,
		dirty:    true,
	}
	p.buf = linebuf.New(cfg.capacity, linebuf.WithNotifier(p))
	return p
}

// Name returns the panel title; messages address panels by it.
func (p *ScrollPanel) Name() string { return p.name }

// Instance returns the instance number the panel was created with.
func (p *ScrollPanel) Instance() int { return p.instance }

// Buffer exposes the panel's buffer for reads.
func (p *ScrollPanel) Buffer() *linebuf.Buffer { return p.buf }

// Refreshes counts buffer notifications received.
func (p *ScrollPanel) Refreshes() int { return p.refreshes }

// Refresh implements linebuf.Notifier. Invalidates the cached render.
func (p *ScrollPanel) Refresh() {
	p.refreshes++
	p.dirty = true
}

// AddLine appends text to the scrolling display.
func (p *ScrollPanel) AddLine(text string) {
	p.buf.Append(text)
}

// ChangeLastLine rewrites the newest line. Returns linebuf.ErrEmpty if
// nothing has been added yet.
func (p *ScrollPanel) ChangeLastLine(text string) error {
	return p.buf.ReplaceLast(text)
}

// SetSize implements Sizer.
func (p *ScrollPanel) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	p.dirty = true
	if p.onResize != nil {
		p.onResize(ContentSize(width, height))
	}
}

// SetFocused implements Focusable.
func (p *ScrollPanel) SetFocused(focused bool) {
	if p.focused == focused {
		return
	}
	p.focused = focused
	p.dirty = true
}

// Init implements View.
func (p *ScrollPanel) Init() tea.Cmd { return nil }

// Update implements View.
func (p *ScrollPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case AppendLineMsg:
		if targets(msg.Target, p.name) {
			p.AddLine(msg.Text)
		}
	case ReplaceLastLineMsg:
		if targets(msg.Target, p.name) {
			if err := p.ChangeLastLine(msg.Text); err != nil {
				if errors.Is(err, linebuf.ErrEmpty) {
					p.log.Warn().Str("text", msg.Text).Msg("replace-last on empty panel ignored")
				} else {
					p.log.Error().Err(err).Msg("replace-last failed")
				}
			}
		}
	case ClearMsg:
		if targets(msg.Target, p.name) {
			p.buf.Clear()
		}
	}
	return p, nil
}

// View implements View.
func (p *ScrollPanel) View() string {
	if !p.dirty {
		return p.cache
	}
	fs := DefaultFrameStyle()
	if p.focused {
		fs = FocusedFrameStyle()
	}
	p.cache = Frame(fs, p.name, p.buf.Snapshot(p.height), p.width, p.height)
	p.dirty = false
	return p.cache
}
