package hexview

import (
	"strings"
	"testing"
)

func TestASCIIChar(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x41, "A"},
		{0x01, "."},
		{0x20, " "},
		{0x7E, "~"},
		{0x7F, "."},
		{0x00, "."},
		{0xFF, "."},
	}
	for _, c := range cases {
		if got := ASCIIChar(c.b); got != c.want {
			t.Errorf("byte %#02x: expected %q, got %q", c.b, c.want, got)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	v := termView([]byte("ABC"))
	out := v.Render(Styles{})

	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	line := lines[0]
	if !strings.HasPrefix(line, "00000000 │ 41  42  43") {
		t.Errorf("unexpected line prefix %q", line)
	}
	if !strings.HasSuffix(line, "│ ABC") {
		t.Errorf("unexpected line suffix %q", line)
	}

	// The ASCII pane must start at the column the coordinate mapper uses.
	runes := []rune(line)
	if idx := v.metrics.ASCIIStartX(); string(runes[idx:idx+3]) != "ABC" {
		t.Errorf("ASCII pane misaligned: %q at column %d", string(runes[idx:idx+3]), idx)
	}
	if runes[v.metrics.AddrSepX()] != '│' || runes[v.metrics.HexSepX()] != '│' {
		t.Error("separator glyphs misaligned with layout columns")
	}
	if idx := v.metrics.HexStartX(); string(runes[idx:idx+2]) != "41" {
		t.Errorf("hex pane misaligned at column %d", idx)
	}
}

func TestRenderAddresses(t *testing.T) {
	v := termView(make([]byte, 16*40))
	v.ScrollBy(10)
	out := v.Render(Styles{})

	lines := strings.Split(out, "\n")
	if len(lines) != v.VisibleRows() {
		t.Fatalf("expected %d visible rows, got %d", v.VisibleRows(), len(lines))
	}
	if !strings.HasPrefix(lines[0], "000000A0") {
		t.Errorf("expected first visible address 000000A0, got %q", lines[0][:8])
	}
	if !strings.HasPrefix(lines[1], "000000B0") {
		t.Errorf("expected second visible address 000000B0, got %q", lines[1][:8])
	}
}

func TestRenderNonPrintable(t *testing.T) {
	v := termView([]byte{0x00, 0x41, 0x7F, 0x0A})
	out := v.Render(Styles{})

	if !strings.HasSuffix(out, "│ .A..") {
		t.Errorf("unexpected ASCII rendering in %q", out)
	}
}

func TestRenderEmpty(t *testing.T) {
	v := termView(nil)
	if out := v.Render(Styles{}); out != "" {
		t.Errorf("expected empty render, got %q", out)
	}
}

func TestRenderClampsToContent(t *testing.T) {
	v := New(NewMetrics(1, 1, 16))
	v.Resize(100, 50)
	v.ShowData(make([]byte, 16*3))

	lines := strings.Split(v.Render(Styles{}), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 rows, got %d", len(lines))
	}
}
