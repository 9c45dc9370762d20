// Package inspector is the terminal UI: a format bar listing the MIME
// representations on the clipboard, four content views (text, image info,
// zip listing, hex grid) and key/mouse wiring between them.
package inspector

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"clipx/internal/clip"
	"clipx/internal/config"
	"clipx/internal/detect"
	"clipx/internal/hexview"
	"clipx/internal/payload"
	"clipx/internal/ziptree"
)

// ViewMode mirrors the View menu of the original: Visual picks a view from
// the content, Raw forces the decoded-text view, Hex forces the hex grid.
type ViewMode int

const (
	ModeVisual ViewMode = iota
	ModeRaw
	ModeHex
)

// Tab is the visible content view.
type Tab int

const (
	TabText Tab = iota
	TabImage
	TabZip
	TabHex
)

type uiState int

const (
	stateMain uiState = iota
	stateSaveAs
	stateHelp
)

// rowWidth is the fixed byte count per hex row.
const rowWidth = 16

// headerLines is the chrome above the content area: legend, format bar,
// tab bar. Mouse positions are translated by it before reaching the hex view.
const headerLines = 3

// footerLines is the status line below the content area.
const footerLines = 1

type clipChangedMsg struct{}

type Model struct {
	backend clip.Backend
	cfg     *config.Config
	styles  *config.Styles

	formats   []string
	formatIdx int
	pl        *payload.Payload

	mode ViewMode
	tab  Tab

	textarea  textarea.Model
	editing   bool
	imageInfo string
	zip       *ziptree.Tree
	zipRows   []ziptree.Row
	zipIndex  int
	zipScroll int
	hex       *hexview.View

	// cleanupExtract releases the temp dir of the last zip extraction.
	cleanupExtract func()

	width  int
	height int

	state       uiState
	saveAsInput string
	statusMsg   string
	statusErr   bool
}

func NewModel(backend clip.Backend, cfg *config.Config) *Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.Placeholder = "no text content"

	hv := hexview.New(hexview.NewMetrics(1, 1, rowWidth))
	hv.SetDamageFunc(func(r hexview.Rect) {
		slog.Debug("hexview damage", "x", r.X, "y", r.Y, "w", r.W, "h", r.H)
	})

	m := &Model{
		backend:  backend,
		cfg:      cfg,
		styles:   config.NewStyles(&cfg.Theme),
		mode:     ModeVisual,
		textarea: ta,
		hex:      hv,
	}
	m.refreshFormats()
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForClipboard()
}

// waitForClipboard blocks on the backend's watch channel and turns each
// signal into a message; re-armed after every delivery.
func (m *Model) waitForClipboard() tea.Cmd {
	ch := m.backend.Watch()
	return func() tea.Msg {
		<-ch
		return clipChangedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hex.Resize(msg.Width, m.contentHeight())
		m.textarea.SetWidth(msg.Width)
		m.textarea.SetHeight(m.contentHeight())
		return m, nil

	case clipChangedMsg:
		m.refreshFormats()
		return m, m.waitForClipboard()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) contentHeight() int {
	h := m.height - headerLines - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

// refreshFormats re-reads the clipboard's format list, keeps the previously
// selected format when it is still present, and re-shows the payload.
func (m *Model) refreshFormats() {
	current := m.currentFormat()

	formats, err := m.backend.Formats()
	if err != nil {
		m.formats = nil
		m.pl = nil
		m.setError(fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.formats = formats
	m.formatIdx = 0
	for i, f := range formats {
		if f == current {
			m.formatIdx = i
			break
		}
	}

	// Skip the reload when the payload is unchanged, so a spurious poll
	// signal does not reset the cursor, selection or an edit in progress.
	if mime := m.currentFormat(); mime != "" && m.pl != nil {
		if data, err := m.backend.Read(mime); err == nil && payload.New(mime, data).Equal(m.pl) {
			return
		}
	}
	m.showCurrent()
}

func (m *Model) currentFormat() string {
	if m.formatIdx < 0 || m.formatIdx >= len(m.formats) {
		return ""
	}
	return m.formats[m.formatIdx]
}

// showCurrent loads the selected format into a fresh payload and picks the
// tab for the active view mode. Loading resets every view: hex cursor and
// selection, zip tree position, text content.
func (m *Model) showCurrent() {
	mime := m.currentFormat()
	if mime == "" {
		m.pl = nil
		m.hex.ShowData(nil)
		m.textarea.SetValue("")
		m.zip = nil
		m.zipRows = nil
		m.zipIndex = 0
		m.zipScroll = 0
		m.imageInfo = ""
		m.tab = TabText
		return
	}

	data, err := m.backend.Read(mime)
	if err != nil {
		m.setError(fmt.Sprintf("read %s: %v", mime, err))
		return
	}
	m.pl = payload.New(mime, data)
	m.hex.ShowData(data)
	m.zip = nil
	m.zipRows = nil
	m.zipIndex = 0
	m.zipScroll = 0
	m.editing = false
	m.textarea.Blur()

	switch m.mode {
	case ModeRaw:
		m.tab = TabText
		m.textarea.SetValue(detect.SanitizeText(detect.DecodeText(data)))
	case ModeHex:
		m.tab = TabHex
	default:
		m.showVisual(mime, data)
	}
}

// showVisual is the Visual mode auto-pick: image info for image formats,
// zip tree for archive payloads, decoded text for everything else.
func (m *Model) showVisual(mime string, data []byte) {
	if detect.IsImageMIME(mime) {
		m.tab = TabImage
		m.imageInfo = describeImage(data)
		return
	}
	if detect.IsZipData(data) {
		tree, err := ziptree.Parse(data)
		if err == nil {
			m.tab = TabZip
			m.zip = tree
			m.zipRows = tree.Flatten()
			return
		}
		slog.Debug("zip-like payload failed to parse", "err", err)
	}
	m.tab = TabText
	m.textarea.SetValue(detect.SanitizeText(detect.DecodeText(data)))
}

func describeImage(data []byte) string {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Sprintf("Undecodable image data (%d bytes): %v", len(data), err)
	}
	return fmt.Sprintf("Format: %s\nDimensions: %d x %d\nSize: %d bytes", format, cfg.Width, cfg.Height, len(data))
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusErr = true
	slog.Warn(msg)
}

// writeBack replaces the clipboard's text content with the edited text.
// Only the text view can write back: in the hex view the textarea still
// holds the previously shown format's text, so writing it would corrupt
// the clipboard. Binary formats are saved to a file instead.
func (m *Model) writeBack() {
	if m.tab != TabText {
		m.setError("write back from the text view (v or r)")
		return
	}
	mime := m.currentFormat()
	if mime == "" {
		m.setError("no format selected")
		return
	}
	if !strings.HasPrefix(mime, "text/") {
		m.setError("only text formats can be written back; use Save instead")
		return
	}
	if err := m.backend.Write(mime, []byte(m.textarea.Value())); err != nil {
		m.setError(fmt.Sprintf("write clipboard: %v", err))
		return
	}
	m.setStatus("Clipboard updated")
}

// extractSelected copies the selected archive member to a temp dir scoped
// to this operation; the previous extraction's dir is released first.
func (m *Model) extractSelected() {
	if m.zip == nil || m.zipIndex >= len(m.zipRows) {
		return
	}
	entry := m.zipRows[m.zipIndex].Entry
	if entry.Dir {
		return
	}
	if m.cleanupExtract != nil {
		m.cleanupExtract()
		m.cleanupExtract = nil
	}
	path, cleanup, err := m.zip.Extract(entry.Path)
	if err != nil {
		m.setError(fmt.Sprintf("extract: %v", err))
		return
	}
	m.cleanupExtract = cleanup
	m.setStatus("Extracted to " + path)
}

// Close releases resources held by the model; called when the program ends.
func (m *Model) Close() {
	if m.cleanupExtract != nil {
		m.cleanupExtract()
		m.cleanupExtract = nil
	}
}
