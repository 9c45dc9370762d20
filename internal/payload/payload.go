// Package payload models one clipboard payload: the raw bytes of a single
// MIME representation, immutable for the time a view displays it. A new
// clipboard state produces new Payload values; there is no in-place editing.
package payload

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

type Payload struct {
	mime string
	data []byte
	hash string
}

func New(mime string, data []byte) *Payload {
	sum := sha256.Sum256(data)
	return &Payload{
		mime: mime,
		data: data,
		hash: hex.EncodeToString(sum[:]),
	}
}

func (p *Payload) MIME() string { return p.mime }

func (p *Payload) Size() int { return len(p.data) }

// Bytes returns the raw payload. The slice is owned by the payload; callers
// must not mutate it while a view displays it.
func (p *Payload) Bytes() []byte { return p.data }

// Hash is the sha256 of the data, used to dedupe clipboard change polls.
func (p *Payload) Hash() string { return p.hash }

// Equal reports whether two payloads carry the same format and content.
func (p *Payload) Equal(other *Payload) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.mime == other.mime && p.hash == other.hash
}

// SaveTo writes the raw bytes to a file.
func (p *Payload) SaveTo(path string) error {
	if path == "" {
		return fmt.Errorf("no filename set")
	}
	return os.WriteFile(path, p.data, 0644)
}
