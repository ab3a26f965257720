package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles
	ColorHighlight = "205" // Magenta - for focused borders, key hints
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for idle borders, hints
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across panels.
var Styles = struct {
	Title      lipgloss.Style // Bold accent color - panel titles
	TitleFocus lipgloss.Style // Bold highlight color - focused panel title
	Body       lipgloss.Style // Normal panel text
	Hint       lipgloss.Style // Help/hint text (muted color)
	HintKey    lipgloss.Style // Key names in the help footer
	Error      lipgloss.Style // Error text (danger color)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleFocus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HintKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// DefaultFrameStyle is the idle panel frame.
func DefaultFrameStyle() FrameStyle {
	return FrameStyle{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color(ColorMuted),
		Title:       Styles.Title,
		Body:        Styles.Body,
		TitleAlign:  lipgloss.Left,
	}
}

// FocusedFrameStyle is the frame of the panel holding focus.
func FocusedFrameStyle() FrameStyle {
	fs := DefaultFrameStyle()
	fs.BorderColor = lipgloss.Color(ColorHighlight)
	fs.Title = Styles.TitleFocus
	return fs
}

// NewHelpModel returns a bubbles/help model styled for the footer.
func NewHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.HintKey
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = Styles.HintKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}
