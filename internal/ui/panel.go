package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// FullBounds gives the panel the whole area.
func FullBounds(width, height int) (x, y, w, h int) {
	return 0, 0, width, height
}

// ColumnBounds returns bounds for column i of n equal-width columns.
// The last column absorbs the remainder so the columns fill the width.
func ColumnBounds(i, n int) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		if n <= 0 {
			return 0, 0, 0, 0
		}
		w = width / n
		x = i * w
		if i == n-1 {
			w = width - x
		}
		return x, 0, w, height
	}
}
