package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnBounds(t *testing.T) {
	var total int
	for i := 0; i < 3; i++ {
		x, y, w, h := ColumnBounds(i, 3)(100, 30)
		assert.Equal(t, total, x)
		assert.Equal(t, 0, y)
		assert.Equal(t, 30, h)
		total += w
	}
	assert.Equal(t, 100, total, "columns fill the width")

	_, _, w, _ := ColumnBounds(0, 0)(100, 30)
	assert.Equal(t, 0, w)
}

func TestColumnsLayout(t *testing.T) {
	a, b := NewScrollPanel(1), NewScrollPanel(2)
	l := NewColumnsLayout([]string{a.Name(), b.Name()}, []View{a, b})
	assert.Equal(t, []string{"ScrollPanel_1", "ScrollPanel_2"}, l.FocusOrder())
	assert.Len(t, l.Panels(), 2)

	short := NewColumnsLayout([]string{"only"}, []View{a, b})
	assert.Len(t, short.Panels(), 1)
}

func TestSingleLayout(t *testing.T) {
	l := NewSingleLayout("main", NewStaticPanel("x", "t"))
	assert.Equal(t, []string{"main"}, l.FocusOrder())
	x, y, w, h := l.Panels()[0].Bounds(80, 24)
	assert.Equal(t, [4]int{0, 0, 80, 24}, [4]int{x, y, w, h})
}
