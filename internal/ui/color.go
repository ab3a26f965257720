package ui

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// contrastAlpha is how strongly the contrast color is blended over the background.
const contrastAlpha = 0.95

// ContrastText picks a readable text color for the hex background bg:
// near-black on light backgrounds, near-white on dark ones.
func ContrastText(bg string) (string, error) {
	c, err := colorful.Hex(bg)
	if err != nil {
		return "", fmt.Errorf("parse background %q: %w", bg, err)
	}
	fg := colorful.Color{R: 1, G: 1, B: 1}
	if brightness(c) >= 0.5 {
		fg = colorful.Color{}
	}
	return c.BlendRgb(fg, contrastAlpha).Clamped().Hex(), nil
}

// brightness is perceived brightness in [0, 1] (ITU-R 601 weights).
func brightness(c colorful.Color) float64 {
	return (299*c.R + 587*c.G + 114*c.B) / 1000
}
