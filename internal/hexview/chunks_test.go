package hexview

import (
	"fmt"
	"testing"
)

func TestRowCount(t *testing.T) {
	cases := []struct {
		length   int
		rowWidth int
		want     int
		lastLen  int
	}{
		{0, 16, 0, 0},
		{1, 16, 1, 1},
		{15, 16, 1, 15},
		{16, 16, 1, 16},
		{17, 16, 2, 1},
		{256, 16, 16, 16},
		{100, 8, 13, 4},
	}

	for _, c := range cases {
		ch := NewChunks(make([]byte, c.length), c.rowWidth)
		if ch.RowCount() != c.want {
			t.Errorf("length %d width %d: expected %d rows, got %d",
				c.length, c.rowWidth, c.want, ch.RowCount())
		}
		if c.want > 0 {
			if got := ch.RowLen(c.want - 1); got != c.lastLen {
				t.Errorf("length %d width %d: expected last row len %d, got %d",
					c.length, c.rowWidth, c.lastLen, got)
			}
		}
	}
}

func TestRowTokens(t *testing.T) {
	data := []byte{0x00, 0x41, 0xFF, 0x7E, 0x0A}
	ch := NewChunks(data, 4)

	row := ch.Row(0)
	want := []string{"00", "41", "FF", "7E"}
	if len(row) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(row))
	}
	for i, tok := range row {
		if tok != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tok)
		}
		if tok != fmt.Sprintf("%02X", data[i]) {
			t.Errorf("token %d does not match %%02X of byte %#02x", i, data[i])
		}
	}

	last := ch.Row(1)
	if len(last) != 1 || last[0] != "0A" {
		t.Errorf("expected short last row [0A], got %v", last)
	}
}

func TestRowCached(t *testing.T) {
	ch := NewChunks([]byte{1, 2, 3, 4}, 2)

	first := ch.Row(1)
	second := ch.Row(1)
	if &first[0] != &second[0] {
		t.Error("expected repeated Row calls to return the cached slice")
	}

	// Only the visited row should be decoded.
	if ch.rows[0].decoded {
		t.Error("expected row 0 to stay undecoded until read")
	}
	if !ch.rows[1].decoded {
		t.Error("expected row 1 to be decoded after read")
	}
}

func TestRowOutOfRangePanics(t *testing.T) {
	ch := NewChunks([]byte{1, 2, 3}, 2)

	for _, i := range []int{-1, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected Row(%d) to panic", i)
				}
			}()
			ch.Row(i)
		}()
	}
}

func TestByte(t *testing.T) {
	ch := NewChunks([]byte{0x10, 0x20, 0x30}, 2)
	if b := ch.Byte(1, 0); b != 0x30 {
		t.Errorf("expected 0x30 at (1,0), got %#02x", b)
	}
}
