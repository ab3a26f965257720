package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizer is implemented by views that render to a fixed cell area.
// The layout engine calls SetSize on every terminal resize.
type Sizer interface {
	SetSize(width, height int)
}

// Focusable is implemented by views that draw differently when focused.
type Focusable interface {
	SetFocused(bool)
}
