package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame_Basic(t *testing.T) {
	got := plainLines(Frame(DefaultFrameStyle(), "T", "a\nb", 8, 4))
	assert.Equal(t, []string{
		"╭─ T ──╮",
		"│ a    │",
		"│ b    │",
		"╰──────╯",
	}, got)
}

func TestFrame_DimensionsAlwaysExact(t *testing.T) {
	body := "one\ntwo\nthree\nfour\na line that is much wider than the frame"
	for _, size := range [][2]int{{2, 2}, {4, 3}, {10, 4}, {30, 12}} {
		w, h := size[0], size[1]
		lines := plainLines(Frame(DefaultFrameStyle(), "Title", body, w, h))
		require.Len(t, lines, h, "size %dx%d", w, h)
		for _, l := range lines {
			assert.Equal(t, w, lipgloss.Width(l), "size %dx%d line %q", w, h, l)
		}
	}
}

func TestFrame_KeepsNewestRows(t *testing.T) {
	lines := plainLines(Frame(DefaultFrameStyle(), "", "1\n2\n3\n4", 6, 4))
	assert.Equal(t, "│ 3  │", lines[1])
	assert.Equal(t, "│ 4  │", lines[2])
}

func TestFrame_TruncatesWideLines(t *testing.T) {
	lines := plainLines(Frame(DefaultFrameStyle(), "", "abcdefghij", 8, 3))
	assert.Equal(t, "│ abc… │", lines[1])
}

func TestFrame_TooSmall(t *testing.T) {
	assert.Empty(t, Frame(DefaultFrameStyle(), "T", "x", 1, 5))
	assert.Empty(t, Frame(DefaultFrameStyle(), "T", "x", 10, 1))
}

func TestFrame_TitleAlign(t *testing.T) {
	fs := DefaultFrameStyle()

	fs.TitleAlign = lipgloss.Center
	assert.Equal(t, "╭── ab ──╮", plainLines(Frame(fs, "ab", "", 10, 2))[0])

	fs.TitleAlign = lipgloss.Right
	assert.Equal(t, "╭─── ab ─╮", plainLines(Frame(fs, "ab", "", 10, 2))[0])

	fs.TitleAlign = lipgloss.Left
	assert.Equal(t, "╭─ ab ───╮", plainLines(Frame(fs, "ab", "", 10, 2))[0])
}

func TestFrame_LongTitleTruncated(t *testing.T) {
	top := plainLines(Frame(DefaultFrameStyle(), "a very long title", "", 10, 2))[0]
	assert.Equal(t, "╭ a ver… ╮", top)
}

func TestParseTitleAlign(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.Position
		ok   bool
	}{
		{"", lipgloss.Left, true},
		{"left", lipgloss.Left, true},
		{"Center", lipgloss.Center, true},
		{" right ", lipgloss.Right, true},
		{"top", lipgloss.Left, false},
	}
	for _, tt := range tests {
		got, ok := ParseTitleAlign(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestContentSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cols, rows    int
	}{
		{"typical", 84, 26, 80, 24},
		{"narrow inner keeps no padding", 3, 5, 1, 3},
		{"too small", 1, 1, 0, 0},
		{"zero", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := ContentSize(tt.width, tt.height)
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestContentSize_MatchesFrameBody(t *testing.T) {
	out := plainLines(Frame(DefaultFrameStyle(), "", "", 12, 5))
	cols, rows := ContentSize(12, 5)
	require.Len(t, out, rows+2)
	assert.Equal(t, "│ "+strings.Repeat(" ", cols)+" │", out[1])
}
