package detect

import "testing"

func TestIsImageMIME(t *testing.T) {
	cases := []struct {
		mime string
		want bool
	}{
		{"image/png", true},
		{"image/x-whatever", true},
		{`application/x-qt-windows-mime;value="PNG"`, true},
		{`application/x-qt-windows-mime;value="JFIF"`, true},
		{`application/x-qt-windows-mime;value="FileName"`, false},
		{"text/plain", false},
		{"application/zip", false},
	}
	for _, c := range cases {
		if got := IsImageMIME(c.mime); got != c.want {
			t.Errorf("%q: expected %v, got %v", c.mime, c.want, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(`application/x-qt-windows-mime;value="FileName"`); got != "FileName" {
		t.Errorf("expected wrapped value, got %q", got)
	}
	if got := DisplayName("text/plain"); got != "text/plain" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestIsZipData(t *testing.T) {
	if !IsZipData([]byte("PK\x03\x04rest")) {
		t.Error("expected zip magic to match")
	}
	if !IsZipData([]byte("PK\x05\x06")) {
		t.Error("expected empty-archive magic to match")
	}
	if IsZipData([]byte("PK\x01\x02")) {
		t.Error("expected central-directory record alone not to match")
	}
	if IsZipData(nil) || IsZipData([]byte("PNG")) {
		t.Error("expected non-zip data not to match")
	}
}

func TestDecodeTextUTF8(t *testing.T) {
	if got := DecodeText([]byte("héllo")); got != "héllo" {
		t.Errorf("unexpected decode %q", got)
	}
}

func TestDecodeTextUTF16(t *testing.T) {
	// "Hi" little-endian with BOM.
	le := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}
	if got := DecodeText(le); got != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", got)
	}

	// Big-endian with BOM.
	be := []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'}
	if got := DecodeText(be); got != "Hi" {
		t.Errorf("expected %q, got %q", "Hi", got)
	}
}

func TestDecodeTextLatin1(t *testing.T) {
	// 0xE9 alone is invalid UTF-8 but valid Latin-1 ('é').
	if got := DecodeText([]byte{'a', 0xE9, 'b'}); got != "aéb" {
		t.Errorf("expected %q, got %q", "aéb", got)
	}
}

func TestSanitizeText(t *testing.T) {
	in := "a\x00b\tc\nd\x1Be\x7F"
	want := "a.b\tc\nd.e."
	if got := SanitizeText(in); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
