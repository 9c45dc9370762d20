package clip

import (
	"errors"
	"testing"
)

func TestHeadlessBackend(t *testing.T) {
	b := &headlessBackend{watchCh: make(chan struct{})}

	if _, err := b.Formats(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if _, err := b.Read(FormatText); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if err := b.Write(FormatText, []byte("x")); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}

	select {
	case <-b.Watch():
		t.Error("expected headless watch channel to stay silent")
	default:
	}
	b.Close()
}

func TestSystemBackendRejectsUnknownMIME(t *testing.T) {
	b := &systemBackend{}

	if _, err := b.Read("application/x-unknown"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for unknown MIME read, got %v", err)
	}
	if err := b.Write("application/x-unknown", nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported for unknown MIME write, got %v", err)
	}
}
