package hexview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the palette the render pipeline paints with.
type Styles struct {
	Address     lipgloss.Style
	Separator   lipgloss.Style
	HexEven     lipgloss.Style
	HexOdd      lipgloss.Style
	ASCII       lipgloss.Style
	Selection   lipgloss.Style
	Caret       lipgloss.Style
	CaretShadow lipgloss.Style
}

// Render paints the rows intersecting the viewport, one text line per row:
// address column, separator, hex bytes with alternating per-byte color,
// separator, ASCII column. In selection mode the selected cells of both
// panes are highlighted; in cursor mode the caret cell is marked in both
// panes, with the active pane getting the primary caret style.
func (v *View) Render(st Styles) string {
	total := v.chunks.RowCount()
	if total == 0 {
		return ""
	}
	shown := v.VisibleRows()
	if shown > total-v.scrollRow {
		shown = total - v.scrollRow
	}

	var selBegin, selEnd Cell
	selecting := v.HasSelection()
	if selecting {
		selBegin, selEnd, _ = v.Selection()
	}

	sep := st.Separator.Render("│")
	var b strings.Builder
	for i := 0; i < shown; i++ {
		row := v.scrollRow + i
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(st.Address.Render(fmt.Sprintf("%08X", row*v.chunks.RowWidth())))
		b.WriteString(" ")
		b.WriteString(sep)
		b.WriteString(" ")

		tokens := v.chunks.Row(row)
		rowLen := len(tokens)

		c0, c1 := -1, -1
		if selecting {
			if s0, s1, ok := rowSpan(selBegin, selEnd, row, rowLen); ok {
				c0, c1 = s0, s1
			}
		}

		// Hex pane.
		for col, tok := range tokens {
			style := st.HexOdd
			if col%2 == 0 {
				style = st.HexEven
			}
			style = v.cellStyle(style, st, row, col, c0, c1, selecting, PaneHex)
			b.WriteString(style.Render(tok))
			if col < v.chunks.RowWidth()-1 {
				gap := "  "
				if selecting && col >= c0 && col < c1 {
					gap = st.Selection.Render(gap)
				}
				b.WriteString(gap)
			}
		}
		// Pad short rows so the ASCII pane stays aligned.
		for col := rowLen; col < v.chunks.RowWidth(); col++ {
			b.WriteString("  ")
			if col < v.chunks.RowWidth()-1 {
				b.WriteString("  ")
			}
		}

		b.WriteString(" ")
		b.WriteString(sep)
		b.WriteString(" ")

		// ASCII pane: printable range 0x20..0x7E, '.' otherwise.
		for col := 0; col < rowLen; col++ {
			style := v.cellStyle(st.ASCII, st, row, col, c0, c1, selecting, PaneASCII)
			b.WriteString(style.Render(ASCIIChar(v.chunks.Byte(row, col))))
		}
	}
	return b.String()
}

// cellStyle layers the selection highlight or the caret on top of the base
// text style for one cell. Cursor and selection modes are mutually
// exclusive: a drag replaces the caret, a new press restores it.
func (v *View) cellStyle(base lipgloss.Style, st Styles, row, col, c0, c1 int, selecting bool, pane Pane) lipgloss.Style {
	if selecting {
		if c0 >= 0 && col >= c0 && col <= c1 {
			return st.Selection
		}
		return base
	}
	if row == v.cursor.Row && col == v.cursor.Col {
		if pane == v.cursorPane {
			return st.Caret
		}
		return st.CaretShadow
	}
	return base
}

// ASCIIChar maps one byte to its display character in the ASCII pane.
func ASCIIChar(b byte) string {
	if b >= 0x20 && b <= 0x7E {
		return string(rune(b))
	}
	return "."
}
