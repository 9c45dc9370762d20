package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"clipx/internal/detect"
	"clipx/internal/ziptree"
)

var tabNames = map[Tab]string{
	TabText:  "Text Browser",
	TabImage: "Image Viewer",
	TabZip:   "Zip Viewer",
	TabHex:   "Hex Viewer",
}

func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderLegend())
	b.WriteString("\n")
	b.WriteString(m.renderFormatBar())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	var content string
	if m.state == stateHelp {
		content = m.renderHelp()
	} else {
		content = m.renderContent()
	}
	b.WriteString(m.padContent(content))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// padContent clips the content block to the content area and pads it to
// exactly contentHeight lines so the status line stays at the bottom.
func (m *Model) padContent(content string) string {
	lines := strings.Split(content, "\n")
	h := m.contentHeight()
	if len(lines) > h {
		lines = lines[:h]
	}
	clip := lipgloss.NewStyle().MaxWidth(m.width)
	for i, line := range lines {
		lines[i] = clip.Render(line)
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLegend() string {
	hints := []struct{ key, label string }{
		{"q", "Quit"},
		{"?", "Help"},
		{"v", "Visual"},
		{"r", "Raw"},
		{"x", "Hex"},
		{"←→", "Format"},
		{"e", "Edit"},
		{"w", "Write"},
		{"s", "Save"},
	}

	var b strings.Builder
	for _, h := range hints {
		b.WriteString(m.styles.LegendHighlight.Render(" " + h.key))
		b.WriteString(m.styles.Legend.Render(":" + h.label + " "))
	}
	bar := b.String()
	if pad := m.width - lineWidth(bar); pad > 0 {
		bar += m.styles.Legend.Render(strings.Repeat(" ", pad))
	}
	return bar
}

func (m *Model) renderFormatBar() string {
	if len(m.formats) == 0 {
		return m.styles.FormatBar.Render(
			runewidth.FillRight(" Formats: (clipboard empty or unavailable)", m.width))
	}

	var b strings.Builder
	b.WriteString(m.styles.FormatBar.Render(" Formats: "))
	used := lineWidth(" Formats: ")
	for i, f := range m.formats {
		label := " " + detect.DisplayName(f) + " "
		if used+runewidth.StringWidth(label) > m.width {
			break
		}
		used += runewidth.StringWidth(label)
		if i == m.formatIdx {
			b.WriteString(m.styles.FormatActive.Render(label))
		} else {
			b.WriteString(m.styles.FormatBar.Render(label))
		}
	}
	if pad := m.width - used; pad > 0 {
		b.WriteString(m.styles.FormatBar.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

func (m *Model) renderTabBar() string {
	var b strings.Builder
	for _, tab := range []Tab{TabText, TabImage, TabZip, TabHex} {
		label := " [" + tabNames[tab] + "] "
		if tab == m.tab {
			b.WriteString(m.styles.TabActive.Render(label))
		} else {
			b.WriteString(m.styles.Disabled.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

func (m *Model) renderContent() string {
	switch m.tab {
	case TabImage:
		return m.imageInfo
	case TabZip:
		return m.renderZip()
	case TabHex:
		return m.hex.Render(m.styles.Hex)
	default:
		return m.textarea.View()
	}
}

func (m *Model) renderZip() string {
	if len(m.zipRows) == 0 {
		return "Empty archive"
	}

	var b strings.Builder
	b.WriteString(m.styles.Disabled.Render(fmt.Sprintf("%-42s %10s  %-6s %s", "Name", "Size", "Type", "Modified")))

	visible := m.contentHeight() - 1
	end := m.zipScroll + visible
	if end > len(m.zipRows) {
		end = len(m.zipRows)
	}
	for i := m.zipScroll; i < end; i++ {
		row := m.zipRows[i]
		e := row.Entry

		kind, size := "File", ziptree.FormatSize(e.Size)
		if e.Dir {
			kind, size = "Folder", ""
		}
		name := strings.Repeat("  ", row.Depth) + e.Name
		line := fmt.Sprintf("%s %10s  %-6s %s",
			runewidth.FillRight(runewidth.Truncate(name, 42, "…"), 42),
			size, kind, ziptree.FormatDate(e.Modified))

		style := m.styles.TreeFile
		if e.Dir {
			style = m.styles.TreeDir
		}
		if i == m.zipIndex {
			style = m.styles.TreeSelected
		}
		b.WriteString("\n")
		b.WriteString(style.Render(runewidth.Truncate(line, m.width, "")))
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	return strings.Join([]string{
		"",
		"  clipx — clipboard inspector",
		"",
		"  v / r / x      Visual, Raw text, Hex view mode",
		"  ← / → (h / l)  previous / next clipboard format",
		"  ↑ / ↓          scroll (hex view, zip listing)",
		"  mouse          click to place the caret, drag to select bytes",
		"  e              edit text (esc leaves the editor)",
		"  w              write edited text back to the clipboard",
		"  s              save the current format to a file",
		"  enter          extract the selected archive member",
		"  q / ctrl+c     quit",
		"",
		"  press any key to return",
	}, "\n")
}

func (m *Model) renderStatus() string {
	if m.state == stateSaveAs {
		return m.styles.Prompt.Render(" Save to file: " + m.saveAsInput + "█")
	}

	left := " " + m.backend.Name()
	if m.pl != nil {
		left = fmt.Sprintf(" %s — %d bytes", m.pl.MIME(), m.pl.Size())
	}
	if m.tab == TabHex {
		if start, end, ok := m.hex.SelectedRange(); ok {
			left += fmt.Sprintf("  selected 0x%X..0x%X (%d bytes)", start, end, end-start+1)
		}
	}
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}

	style := m.styles.Status
	if m.statusErr {
		style = m.styles.Error
	}
	return style.Render(runewidth.Truncate(left, m.width, "…"))
}

// lineWidth is the printable width of a styled line.
func lineWidth(s string) int {
	return lipgloss.Width(s)
}
