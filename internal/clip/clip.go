// Package clip provides access to the system clipboard via
// golang.design/x/clipboard. The library exposes two formats, text and PNG
// image; both are surfaced under their MIME names. On headless systems
// (no X11/Wayland display, no cgo clipboard) a stub backend is returned so
// CLI subcommands can fail with a useful error instead of crashing.
package clip

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.design/x/clipboard"
)

const (
	FormatText  = "text/plain"
	FormatImage = "image/png"
)

var (
	ErrUnavailable = errors.New("clipboard unavailable")
	ErrEmpty       = errors.New("clipboard has no data for this format")
	ErrUnsupported = errors.New("unsupported MIME type")
)

// Backend is the clipboard surface the inspector consumes.
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Formats lists the MIME names currently present on the clipboard.
	Formats() ([]string, error)

	// Read returns the raw bytes of one format.
	Read(mime string) ([]byte, error)

	// Write replaces the clipboard contents for one format.
	Write(mime string, data []byte) error

	// Watch returns a channel that receives a signal whenever the clipboard
	// changes. The channel is never closed; receivers re-read on signal.
	Watch() <-chan struct{}

	// Close releases the backend's resources.
	Close()
}

// New initializes the system clipboard, falling back to a headless stub
// when no display environment is available.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, using headless backend", "err", err)
		return &headlessBackend{watchCh: make(chan struct{})}
	}
	b := &systemBackend{
		watchCh: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go b.poll()
	return b
}

const pollInterval = 250 * time.Millisecond

type systemBackend struct {
	watchCh  chan struct{}
	done     chan struct{}
	lastText []byte
	lastImg  []byte
}

func (b *systemBackend) Name() string { return "system clipboard (poll)" }

func (b *systemBackend) Formats() ([]string, error) {
	var formats []string
	if text := clipboard.Read(clipboard.FmtText); text != nil {
		formats = append(formats, FormatText)
	}
	if img := clipboard.Read(clipboard.FmtImage); img != nil {
		formats = append(formats, FormatImage)
	}
	return formats, nil
}

func (b *systemBackend) Read(mime string) ([]byte, error) {
	var data []byte
	switch mime {
	case FormatText:
		data = clipboard.Read(clipboard.FmtText)
	case FormatImage:
		data = clipboard.Read(clipboard.FmtImage)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}
	if data == nil {
		return nil, ErrEmpty
	}
	return data, nil
}

func (b *systemBackend) Write(mime string, data []byte) error {
	switch mime {
	case FormatText:
		clipboard.Write(clipboard.FmtText, data)
	case FormatImage:
		clipboard.Write(clipboard.FmtImage, data)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, mime)
	}
	return nil
}

func (b *systemBackend) Watch() <-chan struct{} { return b.watchCh }

func (b *systemBackend) Close() { close(b.done) }

// poll watches for clipboard changes. golang.design/x/clipboard has a
// native Watch, but it delivers content for a single format; polling both
// formats keeps the format list in sync the same way suffuse does.
func (b *systemBackend) poll() {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			text := clipboard.Read(clipboard.FmtText)
			img := clipboard.Read(clipboard.FmtImage)
			if !bytes.Equal(text, b.lastText) || !bytes.Equal(img, b.lastImg) {
				b.lastText = text
				b.lastImg = img
				select {
				case b.watchCh <- struct{}{}:
				default:
				}
			}
		}
	}
}

type headlessBackend struct {
	watchCh chan struct{}
}

func (b *headlessBackend) Name() string { return "headless (no clipboard)" }

func (b *headlessBackend) Formats() ([]string, error) { return nil, ErrUnavailable }

func (b *headlessBackend) Read(string) ([]byte, error) { return nil, ErrUnavailable }

func (b *headlessBackend) Write(string, []byte) error { return ErrUnavailable }

func (b *headlessBackend) Watch() <-chan struct{} { return b.watchCh }

func (b *headlessBackend) Close() {}
