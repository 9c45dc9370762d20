package hexview

import (
	"fmt"
	"math"
)

// Pane identifies which of the two byte-addressing display regions a
// coordinate refers to. Both panes map to the same underlying byte.
type Pane int

const (
	PaneHex Pane = iota
	PaneASCII
)

// Cell addresses one byte cell: Col is local to a row, Row is global.
type Cell struct {
	Col, Row int
}

// NoCell is the "no selection, show cursor only" sentinel.
var NoCell = Cell{Col: -1, Row: -1}

// Point is a position in view pixels. In a terminal a pixel is one cell.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in content coordinates until translated.
type Rect struct {
	X, Y, W, H int
}

// Translated shifts the rectangle, typically by the negated scroll offset
// when converting content coordinates to viewport coordinates.
func (r Rect) Translated(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale converts logical units to device pixels relative to the 96-DPI
// baseline. Terminals (and macOS) report already-scaled coordinates, so the
// factor there is 1. One scalar primitive; callers compose it per quantity.
type Scale float64

// ScaleForDPI derives the factor from the display's logical horizontal DPI.
func ScaleForDPI(dpiX float64) Scale {
	if dpiX <= 0 {
		return 1
	}
	return Scale(dpiX / 96.0)
}

func (s Scale) Px(v int) int {
	return int(math.Round(float64(v) * float64(s)))
}

// Metrics carries the monospace glyph footprint and the fixed row width,
// and derives every layout x-coordinate from them. The hex pane spends four
// glyph widths per byte (two digits plus spacing), the ASCII pane one.
type Metrics struct {
	CharW    int
	CharH    int
	RowWidth int
}

// NewMetrics validates the font metrics. Non-positive glyph sizes are a
// caller bug (no valid monospace font supplied), not a runtime condition.
func NewMetrics(charW, charH, rowWidth int) Metrics {
	if charW <= 0 || charH <= 0 {
		panic(fmt.Sprintf("hexview: invalid glyph metrics %dx%d", charW, charH))
	}
	if rowWidth <= 0 {
		panic(fmt.Sprintf("hexview: invalid row width %d", rowWidth))
	}
	return Metrics{CharW: charW, CharH: charH, RowWidth: rowWidth}
}

// AddrSepX is the x of the address/hex separator glyph.
func (m Metrics) AddrSepX() int { return m.CharW * 9 }

// HexStartX is the x of the first hex digit: separator glyph plus one gap.
func (m Metrics) HexStartX() int { return m.AddrSepX() + 2*m.CharW }

// HexSepX is the x of the hex/ASCII separator glyph.
func (m Metrics) HexSepX() int { return m.HexStartX() + m.CharW*(4*m.RowWidth-1) }

// ASCIIStartX is the x of the first ASCII glyph.
func (m Metrics) ASCIIStartX() int { return m.HexSepX() + 2*m.CharW }

// ContentWidth is the total content width for a full row.
func (m Metrics) ContentWidth() int { return m.ASCIIStartX() + m.RowWidth*m.CharW }

func (m Metrics) paneStartX(pane Pane) int {
	if pane == PaneASCII {
		return m.ASCIIStartX()
	}
	return m.HexStartX()
}

func (m Metrics) panePitch(pane Pane) int {
	if pane == PaneASCII {
		return m.CharW
	}
	return 4 * m.CharW
}

// Caret nudges. Derived from the glyph footprint rather than fixed pixel
// literals so the pos/cell round trip stays exact at any font size; both
// collapse to zero at terminal cell metrics.
func (m Metrics) nudgeX() int { return m.CharW / 8 }
func (m Metrics) nudgeY() int { return m.CharH / 4 }

// CellToPos is the forward mapping used to place the caret. The result is
// in content coordinates; subtract the scroll offset before drawing.
func (m Metrics) CellToPos(c Cell, pane Pane) Point {
	return Point{
		X: m.paneStartX(pane) + c.Col*m.panePitch(pane) - m.nudgeX(),
		Y: c.Row*m.CharH + m.nudgeY(),
	}
}

// posToCell is the unclamped inverse of CellToPos. pt is viewport-local;
// scrollRow is the vertical scroll position in rows. The returned cell may
// be out of range; View.PosToCell clamps it against the actual rows.
func (m Metrics) posToCell(pt Point, scrollRow int) (Cell, Pane) {
	pane := PaneHex
	var col int
	if pt.X >= m.HexSepX() {
		pane = PaneASCII
		col = floorDiv(pt.X+m.nudgeX()-m.ASCIIStartX(), m.CharW)
	} else {
		// The half-pitch bias rounds a click in the trailing gap to the
		// nearer byte, mirroring the -nudgeX applied by CellToPos.
		col = floorDiv(pt.X+m.nudgeX()+2*m.CharW-m.HexStartX(), 4*m.CharW)
	}
	row := floorDiv(pt.Y-m.nudgeY(), m.CharH) + scrollRow
	return Cell{Col: col, Row: row}, pane
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
