// Package textutil provides unicode-aware text utilities for panel rendering.
package textutil

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	result := make([]rune, 0, len(s))
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > available {
			break
		}
		result = append(result, r)
		width += rw
	}
	return string(result) + TruncateEllipsis
}

// PadRightVisual pads s with spaces to exactly targetWidth visual columns,
// truncating it first if it is wider.
func PadRightVisual(s string, targetWidth int) string {
	if targetWidth <= 0 {
		return ""
	}
	s = Truncate(s, targetWidth)
	return s + runewidth.FillRight("", targetWidth-VisualWidth(s))
}

// Sanitize makes raw program output safe to place in a cell grid:
// escape sequences are stripped and tabs expand to spaces.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	out := make([]rune, 0, len(s))
	col := 0
	for _, r := range s {
		switch {
		case r == '\t':
			n := 8 - col%8
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			col += n
		case r < 0x20 || r == 0x7f:
			// drop remaining control characters
		default:
			out = append(out, r)
			col += runewidth.RuneWidth(r)
		}
	}
	return string(out)
}
