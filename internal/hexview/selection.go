package hexview

// normalizeCells orders two cells so begin precedes end in row-major order.
func normalizeCells(a, b Cell) (begin, end Cell) {
	begin, end = a, b
	if a.Row == b.Row {
		if a.Col > b.Col {
			begin, end = b, a
		}
	} else if a.Row > b.Row {
		begin, end = b, a
	}
	return begin, end
}

// spanWidth is the pixel width of a selection spanning k columns beyond the
// first one. Hex cells are visually wider than ASCII cells for the same
// byte: each hex byte is two digit glyphs plus a separator glyph.
func (m Metrics) spanWidth(k int, pane Pane) int {
	if pane == PaneASCII {
		return (k + 1) * m.CharW
	}
	return (2*k + 1) * 2 * m.CharW
}

// SelectionRects computes the minimal axis-aligned rectangles covering every
// cell from a to b inclusive, in row-major order, for one pane. A single-row
// selection yields one rectangle; a multi-row selection yields the partial
// first row, one merged rectangle for any full middle rows, and the partial
// last row. Rectangles are in content coordinates; translate by the scroll
// offset before painting or requesting damage.
func (m Metrics) SelectionRects(a, b Cell, pane Pane) []Rect {
	begin, end := normalizeCells(a, b)
	x := m.paneStartX(pane) + begin.Col*m.panePitch(pane)
	y := begin.Row * m.CharH

	if begin.Row == end.Row {
		return []Rect{{
			X: x, Y: y,
			W: m.spanWidth(end.Col-begin.Col, pane),
			H: m.CharH,
		}}
	}

	rects := []Rect{{
		X: x, Y: y,
		W: m.spanWidth(m.RowWidth-1-begin.Col, pane),
		H: m.CharH,
	}}

	if r := begin.Row + 1; r < end.Row {
		rects = append(rects, Rect{
			X: m.paneStartX(pane),
			Y: r * m.CharH,
			W: m.spanWidth(m.RowWidth-1, pane),
			H: (end.Row - r) * m.CharH,
		})
	}

	rects = append(rects, Rect{
		X: m.paneStartX(pane),
		Y: end.Row * m.CharH,
		W: m.spanWidth(end.Col, pane),
		H: m.CharH,
	})
	return rects
}

// rowSpan reports the inclusive column range of the selection on one row,
// using the same first/middle/last split as SelectionRects. ok is false when
// the row is outside the selection.
func rowSpan(begin, end Cell, row, rowLen int) (c0, c1 int, ok bool) {
	if row < begin.Row || row > end.Row {
		return 0, 0, false
	}
	c0, c1 = 0, rowLen-1
	if row == begin.Row {
		c0 = begin.Col
	}
	if row == end.Row && end.Col < c1 {
		c1 = end.Col
	}
	return c0, c1, true
}
