package ui

// AppendLineMsg appends Text to the panel named Target.
// An empty Target addresses every scroll panel.
type AppendLineMsg struct {
	Target string
	Text   string
}

// ReplaceLastLineMsg overwrites the newest line of the panel named Target.
type ReplaceLastLineMsg struct {
	Target string
	Text   string
}

// ClearMsg empties the panel named Target.
type ClearMsg struct {
	Target string
}

// FocusNextMsg moves focus to the next panel (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous panel (shift+tab).
type FocusPrevMsg struct{}

// ClearFocusedMsg empties the focused panel.
type ClearFocusedMsg struct{}

// SourceDoneMsg reports that a line producer finished.
// Err is nil on a clean exit.
type SourceDoneMsg struct {
	Source string
	Target string
	Err    error
}

func targets(target, name string) bool {
	return target == "" || target == name
}
