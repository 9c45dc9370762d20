package hexview

// ScrollInfo is the scrollbar range for one axis: Max is the largest scroll
// position, Page the page-step. Recomputed after every load and resize.
type ScrollInfo struct {
	Max  int
	Page int
}

// View renders a byte buffer as an address column, a hex grid and an ASCII
// column, and translates pointer input into a byte-range selection. All
// methods run on the event thread; the damage callback fires synchronously
// within the call that invalidates a region.
type View struct {
	metrics Metrics
	chunks  *Chunks

	// cursor is the last interacted-with cell, always in bounds. cursorPane
	// remembers which pane the interaction happened in; both panes address
	// the same byte.
	cursor     Cell
	cursorPane Pane

	// selEnd is the active end of a drag selection; NoCell means no
	// selection, show the caret instead. The anchor is the cursor.
	selEnd Cell

	scrollRow int
	scrollCol int
	width     int
	height    int

	vScroll ScrollInfo
	hScroll ScrollInfo

	damage func(Rect)
}

// New returns an empty view. Call ShowData before feeding events.
func New(m Metrics) *View {
	return &View{
		metrics: m,
		chunks:  NewChunks(nil, m.RowWidth),
		selEnd:  NoCell,
	}
}

// SetDamageFunc registers the redraw-region callback. The view invokes it
// synchronously whenever part of the content must be repainted.
func (v *View) SetDamageFunc(fn func(Rect)) { v.damage = fn }

func (v *View) Metrics() Metrics   { return v.metrics }
func (v *View) Chunks() *Chunks    { return v.chunks }
func (v *View) Cursor() Cell       { return v.cursor }
func (v *View) CursorPane() Pane   { return v.cursorPane }
func (v *View) ScrollRow() int     { return v.scrollRow }
func (v *View) VScroll() ScrollInfo { return v.vScroll }
func (v *View) HScroll() ScrollInfo { return v.hScroll }

// HasSelection reports whether the view is in selection mode.
func (v *View) HasSelection() bool { return v.selEnd != NoCell }

// Selection returns the normalized selection bounds.
func (v *View) Selection() (begin, end Cell, ok bool) {
	if v.selEnd == NoCell {
		return Cell{}, Cell{}, false
	}
	begin, end = normalizeCells(v.cursor, v.selEnd)
	return begin, end, true
}

// SelectedRange returns the selection as inclusive byte offsets.
func (v *View) SelectedRange() (start, end int, ok bool) {
	begin, fin, ok := v.Selection()
	if !ok {
		return 0, 0, false
	}
	w := v.chunks.RowWidth()
	return begin.Row*w + begin.Col, fin.Row*w + fin.Col, true
}

// ShowData installs a new buffer and atomically resets cursor, selection
// and scroll state before any subsequent paint.
func (v *View) ShowData(data []byte) {
	v.chunks = NewChunks(data, v.metrics.RowWidth)
	v.cursor = Cell{}
	v.cursorPane = PaneHex
	v.selEnd = NoCell
	v.scrollRow = 0
	v.scrollCol = 0
	v.adjust()
	v.invalidate(Rect{X: 0, Y: 0, W: v.width, H: v.height})
}

// Resize installs the new viewport size and recomputes the scroll ranges.
func (v *View) Resize(width, height int) {
	v.width = width
	v.height = height
	v.adjust()
}

// VisibleRows is the number of rows the viewport can show, derived from the
// available height with a quarter row of breathing room for the last line.
func (v *View) VisibleRows() int {
	if v.metrics.CharH <= 0 {
		return 0
	}
	rows := (v.height - v.metrics.CharH/4) / v.metrics.CharH
	if rows < 0 {
		rows = 0
	}
	return rows
}

// ScrollBy scrolls vertically by a row delta, clamped to the scroll range.
func (v *View) ScrollBy(rows int) {
	pos := v.scrollRow + rows
	if pos > v.vScroll.Max {
		pos = v.vScroll.Max
	}
	if pos < 0 {
		pos = 0
	}
	if pos == v.scrollRow {
		return
	}
	v.scrollRow = pos
	v.invalidate(Rect{X: 0, Y: 0, W: v.width, H: v.height})
}

// MousePress begins a single-point interaction: any active selection
// collapses and the caret moves to the clicked cell.
func (v *View) MousePress(x, y int) {
	if v.chunks.RowCount() == 0 {
		return
	}
	if v.selEnd != NoCell {
		v.damageSelection()
		v.selEnd = NoCell
	}
	v.damageCursor()
	v.cursor, v.cursorPane = v.PosToCell(Point{X: x, Y: y})
	v.damageCursor()
}

// MouseDrag extends the selection to the cell under the pointer while a
// button is held. The transition from caret to selection mode happens on
// the first drag event after a press.
func (v *View) MouseDrag(x, y int) {
	if v.chunks.RowCount() == 0 {
		return
	}
	if v.selEnd != NoCell {
		v.damageSelection()
	}
	v.selEnd, _ = v.PosToCell(Point{X: x, Y: y})
	v.damageSelection()
}

// PosToCell maps a viewport-local pixel position to the cell under it and
// the pane the position falls in. Out-of-range positions clamp: below the
// last row the column snaps to the row's first or last valid cell depending
// on which side of the content the x falls. An empty buffer maps every
// position to the zero cell.
func (v *View) PosToCell(pt Point) (Cell, Pane) {
	c, pane := v.metrics.posToCell(pt, v.scrollRow)
	rows := v.chunks.RowCount()
	if rows == 0 {
		return Cell{}, pane
	}
	if c.Row >= rows {
		c.Row = rows - 1
		if c.Col < 0 {
			c.Col = 0
		} else {
			c.Col = v.chunks.RowLen(c.Row) - 1
		}
	} else if c.Row < 0 {
		c.Row = 0
	}
	if last := v.chunks.RowLen(c.Row) - 1; c.Col > last {
		c.Col = last
	} else if c.Col < 0 {
		c.Col = 0
	}
	return c, pane
}

// CellToPos is the forward mapping in content coordinates.
func (v *View) CellToPos(c Cell, pane Pane) Point {
	return v.metrics.CellToPos(c, pane)
}

// adjust recomputes the scrollbar ranges from the buffer and viewport.
func (v *View) adjust() {
	m := v.metrics
	contentW := m.ASCIIStartX()
	if v.chunks.RowCount() > 0 {
		contentW += v.chunks.RowLen(0) * m.CharW
	}
	hMax := 0
	if over := contentW - v.width; over > 0 {
		hMax = (over + m.CharW - 1) / m.CharW
	}
	v.hScroll = ScrollInfo{Max: hMax, Page: v.width / m.CharW}

	visible := v.VisibleRows()
	vMax := v.chunks.RowCount() - visible
	if vMax < 0 {
		vMax = 0
	}
	v.vScroll = ScrollInfo{Max: vMax, Page: visible}
	if v.scrollRow > vMax {
		v.scrollRow = vMax
	}
}

// invalidate reports a viewport-coordinate damage region.
func (v *View) invalidate(r Rect) {
	if v.damage != nil {
		v.damage(r)
	}
}

func (v *View) toViewport(r Rect) Rect {
	m := v.metrics
	return r.Translated(-v.scrollCol*m.CharW, -v.scrollRow*m.CharH)
}

// damageCursor invalidates the caret cell in both panes.
func (v *View) damageCursor() {
	for _, pane := range []Pane{PaneHex, PaneASCII} {
		r := v.metrics.SelectionRects(v.cursor, v.cursor, pane)[0]
		v.invalidate(v.toViewport(r))
	}
}

// damageSelection invalidates the current selection region in both panes.
func (v *View) damageSelection() {
	if v.selEnd == NoCell {
		return
	}
	for _, pane := range []Pane{PaneHex, PaneASCII} {
		for _, r := range v.metrics.SelectionRects(v.cursor, v.selEnd, pane) {
			v.invalidate(v.toViewport(r))
		}
	}
}
