package ui

import (
	"strings"

	"scrollpanel/internal/linebuf"
	"scrollpanel/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// FrameStyle controls how Frame draws a titled border.
type FrameStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	Title       lipgloss.Style
	Body        lipgloss.Style
	TitleAlign  lipgloss.Position // lipgloss.Left, Center or Right
}

// Frame draws body inside a bordered box of exactly width x height cells,
// with title embedded in the top border. The box spends linebuf.ChromeHeight
// rows on chrome; body rows beyond the rest are cut from the top, long lines
// are truncated, and short bodies are padded with blank rows.
func Frame(fs FrameStyle, title, body string, width, height int) string {
	if width < 2 || height < linebuf.ChromeHeight {
		return ""
	}
	inner := width - 2
	rows := height - linebuf.ChromeHeight
	border := lipgloss.NewStyle().Foreground(fs.BorderColor)

	var lines []string
	if body != "" {
		lines = strings.Split(body, "\n")
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}

	out := make([]string, 0, height)
	out = append(out, topBorder(fs, border, title, inner))

	left := border.Render(fs.Border.Left)
	right := border.Render(fs.Border.Right)
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out = append(out, left+fs.Body.Render(bodyCell(line, inner))+right)
	}

	out = append(out, border.Render(
		fs.Border.BottomLeft+strings.Repeat(fs.Border.Bottom, inner)+fs.Border.BottomRight))
	return strings.Join(out, "\n")
}

// ContentSize is the area Frame leaves for body text in a width x height
// box: the columns inside the border and padding, and the rows between the
// border lines.
func ContentSize(width, height int) (cols, rows int) {
	inner := width - 2
	cols = inner
	if inner >= 2 {
		cols = inner - 2
	}
	rows = height - linebuf.ChromeHeight
	return max(cols, 0), max(rows, 0)
}

// bodyCell pads line to inner columns with one space of padding either side.
func bodyCell(line string, inner int) string {
	if inner < 2 {
		return textutil.PadRightVisual(line, inner)
	}
	return " " + textutil.PadRightVisual(line, inner-2) + " "
}

func topBorder(fs FrameStyle, border lipgloss.Style, title string, inner int) string {
	seg := ""
	if title != "" && inner > 2 {
		seg = " " + textutil.Truncate(title, inner-2) + " "
	}
	fill := inner - textutil.VisualWidth(seg)
	if fill < 0 {
		fill = 0
	}

	var l int
	switch fs.TitleAlign {
	case lipgloss.Center:
		l = fill / 2
	case lipgloss.Right:
		l = fill - 1
	default:
		l = 1
	}
	if l > fill {
		l = fill
	}
	if l < 0 {
		l = 0
	}
	r := fill - l

	s := border.Render(fs.Border.TopLeft + strings.Repeat(fs.Border.Top, l))
	if seg != "" {
		s += fs.Title.Render(seg)
	}
	return s + border.Render(strings.Repeat(fs.Border.Top, r)+fs.Border.TopRight)
}

// ParseTitleAlign maps "left", "center" or "right" to a lipgloss position.
func ParseTitleAlign(s string) (lipgloss.Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return lipgloss.Left, true
	case "center", "centre":
		return lipgloss.Center, true
	case "right":
		return lipgloss.Right, true
	}
	return lipgloss.Left, false
}
