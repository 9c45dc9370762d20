package inspector

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Close()
		return m, tea.Quit
	}

	switch m.state {
	case stateSaveAs:
		return m.handleSaveAsKey(msg)
	case stateHelp:
		m.state = stateMain
		return m, nil
	}

	if m.editing {
		return m.handleEditKey(msg)
	}

	// Status messages are transient; any key clears the previous one.
	m.statusMsg = ""
	m.statusErr = false

	switch msg.String() {
	case "q":
		m.Close()
		return m, tea.Quit

	case "?":
		m.state = stateHelp

	case "v":
		m.mode = ModeVisual
		m.showCurrent()
	case "r":
		m.mode = ModeRaw
		m.showCurrent()
	case "x":
		m.mode = ModeHex
		m.showCurrent()

	case "left", "h":
		if len(m.formats) > 0 {
			m.formatIdx = (m.formatIdx + len(m.formats) - 1) % len(m.formats)
			m.showCurrent()
		}
	case "right", "l":
		if len(m.formats) > 0 {
			m.formatIdx = (m.formatIdx + 1) % len(m.formats)
			m.showCurrent()
		}

	case "e":
		if m.tab == TabText {
			m.editing = true
			return m, m.textarea.Focus()
		}
		m.setError("editing is only available in the text view")

	case "w":
		m.writeBack()

	case "s":
		if m.pl == nil {
			m.setError("nothing to save")
			break
		}
		m.state = stateSaveAs
		m.saveAsInput = ""

	case "enter":
		if m.tab == TabZip {
			m.extractSelected()
		}

	case "up":
		m.scrollContent(-1)
	case "down":
		m.scrollContent(1)
	case "pgup":
		m.scrollContent(-m.contentHeight())
	case "pgdown":
		m.scrollContent(m.contentHeight())
	}

	return m, nil
}

func (m *Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.editing = false
		m.textarea.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Model) handleSaveAsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMain
		m.saveAsInput = ""
	case "enter":
		m.state = stateMain
		if m.saveAsInput == "" {
			break
		}
		if err := m.pl.SaveTo(m.saveAsInput); err != nil {
			m.setError("save: " + err.Error())
		} else {
			m.setStatus("Saved to " + m.saveAsInput)
		}
		m.saveAsInput = ""
	case "backspace":
		if len(m.saveAsInput) > 0 {
			m.saveAsInput = m.saveAsInput[:len(m.saveAsInput)-1]
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.saveAsInput += string(msg.Runes)
		}
	}
	return m, nil
}

// scrollContent moves the active view by a line delta.
func (m *Model) scrollContent(delta int) {
	switch m.tab {
	case TabHex:
		m.hex.ScrollBy(delta)
	case TabZip:
		m.moveZipCursor(delta)
	}
}

func (m *Model) moveZipCursor(delta int) {
	if len(m.zipRows) == 0 {
		return
	}
	m.zipIndex += delta
	if m.zipIndex < 0 {
		m.zipIndex = 0
	}
	if m.zipIndex >= len(m.zipRows) {
		m.zipIndex = len(m.zipRows) - 1
	}
	// Keep the cursor inside the window; one line is spent on the header.
	visible := m.contentHeight() - 1
	if visible < 1 {
		visible = 1
	}
	if m.zipIndex < m.zipScroll {
		m.zipScroll = m.zipIndex
	}
	if m.zipIndex >= m.zipScroll+visible {
		m.zipScroll = m.zipIndex - visible + 1
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.state != stateMain {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollContent(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollContent(3)
		return m, nil
	}

	y := msg.Y - headerLines
	if y < 0 || y >= m.contentHeight() {
		return m, nil
	}

	switch m.tab {
	case TabHex:
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.hex.MousePress(msg.X, y)
		case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
			m.hex.MouseDrag(msg.X, y)
		}
	case TabZip:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if row := m.zipScroll + y - 1; row >= 0 && row < len(m.zipRows) {
				m.zipIndex = row
			}
		}
	}

	return m, nil
}
