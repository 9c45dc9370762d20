package hexview

import "fmt"

// Chunks slices a byte buffer into fixed-width rows and decodes each row
// into two-character uppercase hex tokens on first access. Decoded rows are
// cached in a flat slice indexed by row number, so an unscrolled region of a
// large buffer costs nothing beyond the raw bytes until it is visited.
type Chunks struct {
	data     []byte
	rowWidth int
	rows     []chunkRow
}

type chunkRow struct {
	decoded bool
	tokens  []string
}

// NewChunks wraps data with the given row width. rowWidth must be positive.
func NewChunks(data []byte, rowWidth int) *Chunks {
	if rowWidth <= 0 {
		panic(fmt.Sprintf("hexview: invalid row width %d", rowWidth))
	}
	n := (len(data) + rowWidth - 1) / rowWidth
	return &Chunks{
		data:     data,
		rowWidth: rowWidth,
		rows:     make([]chunkRow, n),
	}
}

func (c *Chunks) RowCount() int { return len(c.rows) }

func (c *Chunks) RowWidth() int { return c.rowWidth }

func (c *Chunks) Size() int { return len(c.data) }

// RowLen returns the byte count of row i. Only the last row may be short.
// i must be in [0, RowCount).
func (c *Chunks) RowLen(i int) int {
	if i < 0 || i >= len(c.rows) {
		panic(fmt.Sprintf("hexview: row %d out of range [0,%d)", i, len(c.rows)))
	}
	start := i * c.rowWidth
	end := start + c.rowWidth
	if end > len(c.data) {
		end = len(c.data)
	}
	return end - start
}

// Row returns the hex tokens of row i, decoding and caching them the first
// time the row is read. i must be in [0, RowCount); callers clamp first.
func (c *Chunks) Row(i int) []string {
	if i < 0 || i >= len(c.rows) {
		panic(fmt.Sprintf("hexview: row %d out of range [0,%d)", i, len(c.rows)))
	}
	r := &c.rows[i]
	if !r.decoded {
		start := i * c.rowWidth
		end := start + c.rowWidth
		if end > len(c.data) {
			end = len(c.data)
		}
		tokens := make([]string, 0, end-start)
		for _, b := range c.data[start:end] {
			tokens = append(tokens, fmt.Sprintf("%02X", b))
		}
		r.tokens = tokens
		r.decoded = true
	}
	return r.tokens
}

// Byte returns the raw byte at (row, col). Bounds follow Row/RowLen.
func (c *Chunks) Byte(row, col int) byte {
	if col < 0 || col >= c.RowLen(row) {
		panic(fmt.Sprintf("hexview: column %d out of range in row %d", col, row))
	}
	return c.data[row*c.rowWidth+col]
}
