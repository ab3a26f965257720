package ui

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastText(t *testing.T) {
	tests := []struct {
		name     string
		bg       string
		wantDark bool
	}{
		{name: "lemonchiffon", bg: "#FFFACD", wantDark: true},
		{name: "white", bg: "#ffffff", wantDark: true},
		{name: "black", bg: "#000000", wantDark: false},
		{name: "navy", bg: "#000080", wantDark: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastText(tt.bg)
			require.NoError(t, err)
			c, err := colorful.Hex(got)
			require.NoError(t, err)
			if tt.wantDark {
				assert.Less(t, brightness(c), 0.2, got)
			} else {
				assert.Greater(t, brightness(c), 0.8, got)
			}
		})
	}
}

func TestContrastText_InvalidColor(t *testing.T) {
	_, err := ContrastText("lemonchiffon")
	assert.Error(t, err)
}
