package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// footerHeight is the number of rows reserved for the key help line.
const footerHeight = 1

// AppModel is the root model. It lays out panels, routes messages to them,
// and owns focus and key handling.
type AppModel struct {
	Layout Layout
	Focus  *FocusManager
	Keys   *KeybindRegistry

	help   help.Model
	keyMap help.KeyMap
	log    zerolog.Logger
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AppOption configures an AppModel.
type AppOption func(*AppModel)

// WithAppLogger sets the application logger.
func WithAppLogger(l zerolog.Logger) AppOption {
	return func(a *AppModel) { a.log = l }
}

// WithPanelKeys binds focus rotation and clearing on top of quit.
func WithPanelKeys() AppOption {
	return func(a *AppModel) {
		a.Keys.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next panel")
		a.Keys.Bind("shift+tab", func() tea.Msg { return FocusPrevMsg{} })
		a.Keys.BindWithDesc("c", func() tea.Msg { return ClearFocusedMsg{} }, "clear")
	}
}

// NewAppModel creates the root application model over layout.
// q and ctrl+c always quit.
func NewAppModel(layout Layout, opts ...AppOption) *AppModel {
	a := &AppModel{
		Layout: layout,
		Keys:   NewKeybindRegistry(),
		help:   NewHelpModel(),
		log:    zerolog.Nop(),
	}
	a.Keys.BindWithDesc("q", tea.Quit, "quit")
	a.Keys.Bind("ctrl+c", tea.Quit)
	a.keyMap = NewKeyMap(a.Keys)

	for _, opt := range opts {
		opt(a)
	}

	a.Focus = NewFocusManager(layout.FocusOrder(), a.onFocusChange)
	return a
}

// AsTeaModel returns a tea.Model that delegates to this AppModel.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Panel returns the panel with the given id.
func (a *AppModel) Panel(id string) (Panel, bool) {
	for _, p := range a.Layout.Panels() {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

func (a *AppModel) onFocusChange(from, to string) {
	for _, p := range a.Layout.Panels() {
		if f, ok := p.View.(Focusable); ok {
			f.SetFocused(p.ID == to)
		}
	}
	a.log.Debug().Str("from", from).Str("to", to).Msg("focus changed")
}

func (a *AppModel) resize(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
	body := height - footerHeight
	if body < 0 {
		body = 0
	}
	for _, p := range a.Layout.Panels() {
		if s, ok := p.View.(Sizer); ok {
			_, _, w, h := p.Bounds(width, body)
			s.SetSize(w, h)
		}
	}
}

// broadcast forwards msg to every panel and batches the resulting commands.
func (a *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	panels := a.Layout.Panels()
	cmds := make([]tea.Cmd, 0, len(panels))
	for _, p := range panels {
		_, cmd := p.View.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// checkTarget logs messages addressed to a panel that does not exist.
func (a *AppModel) checkTarget(target string) {
	if target == "" {
		return
	}
	if _, ok := a.Panel(target); !ok {
		a.log.Debug().Str("target", target).Msg("message for unknown panel dropped")
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	panels := a.Layout.Panels()
	cmds := make([]tea.Cmd, 0, len(panels))
	for _, p := range panels {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.Keys.Handle(msg); consumed {
			return a, cmd
		}
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, nil
	case ClearFocusedMsg:
		if a.Focus.Current == "" {
			return a, nil
		}
		return a, a.broadcast(ClearMsg{Target: a.Focus.Current})
	case AppendLineMsg:
		a.checkTarget(msg.Target)
	case ReplaceLastLineMsg:
		a.checkTarget(msg.Target)
	case SourceDoneMsg:
		if msg.Err != nil {
			a.log.Error().Err(msg.Err).Str("source", msg.Source).Msg("source failed")
			return a, a.broadcast(AppendLineMsg{
				Target: msg.Target,
				Text:   fmt.Sprintf("[%s failed: %v]", msg.Source, msg.Err),
			})
		}
		a.log.Info().Str("source", msg.Source).Msg("source finished")
		return a, nil
	}
	return a, a.broadcast(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	panels := a.Layout.Panels()
	views := make([]string, 0, len(panels))
	for _, p := range panels {
		views = append(views, p.View.View())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	return body + "\n" + a.help.View(a.keyMap)
}
