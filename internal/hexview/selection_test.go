package hexview

import "testing"

func TestSelectionNormalization(t *testing.T) {
	m := NewMetrics(8, 16, 16)
	a := Cell{Col: 2, Row: 1}
	b := Cell{Col: 5, Row: 4}

	for _, pane := range []Pane{PaneHex, PaneASCII} {
		fwd := m.SelectionRects(a, b, pane)
		rev := m.SelectionRects(b, a, pane)
		if len(fwd) != len(rev) {
			t.Fatalf("pane %v: %d rects forward, %d reversed", pane, len(fwd), len(rev))
		}
		for i := range fwd {
			if fwd[i] != rev[i] {
				t.Errorf("pane %v rect %d: %v != %v", pane, i, fwd[i], rev[i])
			}
		}
	}
}

func TestSingleRowSelection(t *testing.T) {
	m := NewMetrics(8, 16, 16)
	begin := Cell{Col: 2, Row: 0}
	end := Cell{Col: 5, Row: 0}

	hex := m.SelectionRects(begin, end, PaneHex)
	if len(hex) != 1 {
		t.Fatalf("expected 1 hex rect, got %d", len(hex))
	}
	// k = 3 columns beyond the first: (2k+1)*2*glyphWidth.
	if want := (2*3 + 1) * 2 * m.CharW; hex[0].W != want {
		t.Errorf("expected hex width %d, got %d", want, hex[0].W)
	}
	if hex[0].X != m.HexStartX()+2*4*m.CharW {
		t.Errorf("unexpected hex rect x %d", hex[0].X)
	}
	if hex[0].H != m.CharH {
		t.Errorf("unexpected hex rect height %d", hex[0].H)
	}

	ascii := m.SelectionRects(begin, end, PaneASCII)
	if len(ascii) != 1 {
		t.Fatalf("expected 1 ASCII rect, got %d", len(ascii))
	}
	if want := (3 + 1) * m.CharW; ascii[0].W != want {
		t.Errorf("expected ASCII width %d, got %d", want, ascii[0].W)
	}
}

func TestMultiRowSelection(t *testing.T) {
	m := NewMetrics(8, 16, 16)
	begin := Cell{Col: 6, Row: 2}
	end := Cell{Col: 3, Row: 5}

	rects := m.SelectionRects(begin, end, PaneHex)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rect groups, got %d", len(rects))
	}

	first, middle, last := rects[0], rects[1], rects[2]

	if first.Y != 2*m.CharH || first.H != m.CharH {
		t.Errorf("unexpected first row rect %v", first)
	}
	if want := m.spanWidth(16-1-6, PaneHex); first.W != want {
		t.Errorf("expected first row width %d, got %d", want, first.W)
	}

	// Rows 3 and 4 merged into one full-width rectangle.
	if middle.Y != 3*m.CharH || middle.H != 2*m.CharH {
		t.Errorf("unexpected middle rect %v", middle)
	}
	if middle.X != m.HexStartX() || middle.W != m.spanWidth(15, PaneHex) {
		t.Errorf("unexpected middle rect extent %v", middle)
	}

	if last.Y != 5*m.CharH || last.X != m.HexStartX() {
		t.Errorf("unexpected last row rect %v", last)
	}
	if want := m.spanWidth(3, PaneHex); last.W != want {
		t.Errorf("expected last row width %d, got %d", want, last.W)
	}
}

func TestAdjacentRowSelectionHasNoMiddle(t *testing.T) {
	m := NewMetrics(1, 1, 16)
	rects := m.SelectionRects(Cell{Col: 4, Row: 1}, Cell{Col: 2, Row: 2}, PaneASCII)
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects for adjacent rows, got %d", len(rects))
	}
}

func TestRowSpan(t *testing.T) {
	begin := Cell{Col: 6, Row: 2}
	end := Cell{Col: 3, Row: 5}

	cases := []struct {
		row    int
		c0, c1 int
		ok     bool
	}{
		{1, 0, 0, false},
		{2, 6, 15, true},
		{3, 0, 15, true},
		{4, 0, 15, true},
		{5, 0, 3, true},
		{6, 0, 0, false},
	}
	for _, c := range cases {
		c0, c1, ok := rowSpan(begin, end, c.row, 16)
		if ok != c.ok || (ok && (c0 != c.c0 || c1 != c.c1)) {
			t.Errorf("row %d: expected (%d,%d,%v), got (%d,%d,%v)",
				c.row, c.c0, c.c1, c.ok, c0, c1, ok)
		}
	}
}

func TestRectTranslated(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 6}
	got := r.Translated(-3, -20)
	if got != (Rect{X: 7, Y: 0, W: 5, H: 6}) {
		t.Errorf("unexpected translation %v", got)
	}
}
