package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StaticPanel shows fixed text inside a titled border.
type StaticPanel struct {
	Text       string
	Title      string
	TitleAlign lipgloss.Position

	frame  FrameStyle
	width  int
	height int
}

var (
	_ View  = (*StaticPanel)(nil)
	_ Sizer = (*StaticPanel)(nil)
)

// NewStaticPanel creates a panel showing text under title.
func NewStaticPanel(text, title string) *StaticPanel {
	return &StaticPanel{
		Text:       text,
		Title:      title,
		TitleAlign: lipgloss.Left,
		frame:      DefaultFrameStyle(),
	}
}

// SetBackground fills the body with the hex color bg and switches the
// text to its contrast color. An empty bg restores the default body style.
func (s *StaticPanel) SetBackground(bg string) error {
	if bg == "" {
		s.frame.Body = Styles.Body
		return nil
	}
	fg, err := ContrastText(bg)
	if err != nil {
		return err
	}
	s.frame.Body = lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
	return nil
}

// SetSize implements Sizer.
func (s *StaticPanel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Init implements View.
func (s *StaticPanel) Init() tea.Cmd { return nil }

// Update implements View.
func (s *StaticPanel) Update(tea.Msg) (View, tea.Cmd) { return s, nil }

// View implements View.
func (s *StaticPanel) View() string {
	fs := s.frame
	fs.TitleAlign = s.TitleAlign
	return Frame(fs, s.Title, strings.TrimRight(s.Text, "\n"), s.width, s.height)
}
