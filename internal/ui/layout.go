package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// ColumnsLayout places panels side by side, left to right.
type ColumnsLayout struct {
	panels []Panel
}

var _ Layout = (*ColumnsLayout)(nil)

// NewColumnsLayout lays out views as equal-width columns keyed by id.
// ids and views are matched by index.
func NewColumnsLayout(ids []string, views []View) *ColumnsLayout {
	n := len(views)
	if len(ids) < n {
		n = len(ids)
	}
	l := &ColumnsLayout{panels: make([]Panel, 0, n)}
	for i := 0; i < n; i++ {
		l.panels = append(l.panels, Panel{
			ID:     ids[i],
			View:   views[i],
			Bounds: ColumnBounds(i, n),
		})
	}
	return l
}

// Panels implements Layout.
func (l *ColumnsLayout) Panels() []Panel { return l.panels }

// FocusOrder implements Layout. Focus follows column order.
func (l *ColumnsLayout) FocusOrder() []string {
	order := make([]string, len(l.panels))
	for i, p := range l.panels {
		order[i] = p.ID
	}
	return order
}

// SingleLayout hosts one panel that fills the screen.
type SingleLayout struct {
	panel Panel
}

var _ Layout = (*SingleLayout)(nil)

// NewSingleLayout wraps v as the only panel.
func NewSingleLayout(id string, v View) *SingleLayout {
	return &SingleLayout{panel: Panel{ID: id, View: v, Bounds: FullBounds}}
}

// Panels implements Layout.
func (l *SingleLayout) Panels() []Panel { return []Panel{l.panel} }

// FocusOrder implements Layout.
func (l *SingleLayout) FocusOrder() []string { return []string{l.panel.ID} }
