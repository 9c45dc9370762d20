// Package detect classifies clipboard payloads: image formats by MIME name,
// zip archives by magic bytes, and everything else by best-effort text
// decoding.
package detect

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Windows clipboards surface native formats under a wrapped MIME name; the
// value names the original format.
var windowsMimeRe = regexp.MustCompile(`^application/x-qt-windows-mime;value="([a-zA-Z]+)"$`)

var supportedImages = map[string]bool{
	"BMP": true, "GIF": true, "JPG": true, "JPEG": true, "MNG": true,
	"PNG": true, "PBM": true, "PGM": true, "PPM": true, "TIFF": true,
	"XBM": true, "XPM": true, "SVG": true, "TGA": true, "JFIF": true,
}

// IsImageMIME reports whether the format name denotes an image payload.
func IsImageMIME(mime string) bool {
	if strings.HasPrefix(mime, "image/") {
		return true
	}
	if m := windowsMimeRe.FindStringSubmatch(mime); m != nil {
		return supportedImages[strings.ToUpper(m[1])]
	}
	return false
}

// DisplayName shortens wrapped Windows format names to the wrapped value;
// every other MIME name passes through unchanged.
func DisplayName(mime string) string {
	if m := windowsMimeRe.FindStringSubmatch(mime); m != nil {
		return m[1]
	}
	return mime
}

var (
	zipMagic      = []byte("PK\x03\x04")
	zipEmptyMagic = []byte("PK\x05\x06")
)

// IsZipData reports whether the payload starts like a zip archive,
// including the empty-archive marker.
func IsZipData(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic) || bytes.HasPrefix(data, zipEmptyMagic)
}

// DecodeText decodes a payload to a string: UTF-16 when a BOM is present,
// UTF-8 when valid, Latin-1 as the last resort (every byte maps to a rune,
// so arbitrary data still yields something inspectable).
func DecodeText(data []byte) string {
	if len(data) >= 2 && (data[0] == 0xFF && data[1] == 0xFE || data[0] == 0xFE && data[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(data); err == nil {
			return string(out)
		}
	}
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// SanitizeText replaces control characters that would corrupt a terminal
// text view, keeping newlines and tabs.
func SanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return '.'
		}
		return r
	}, s)
}
