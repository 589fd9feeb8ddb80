package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettegen/internal/palette"
)

// View renders the current model state.
func (m Model) View() string {
	switch m.viewMode {
	case ViewHistory:
		return m.renderHistoryView()
	case ViewExport:
		return m.renderExportView()
	case ViewHelp:
		return m.renderHelpView()
	case ViewConfirm:
		return m.renderConfirmView()
	default:
		return m.renderPaletteView()
	}
}

func (m Model) renderPaletteView() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.ctrl.Palette()) == 0 {
		b.WriteString(metaStyle.Render(m.ctrl.Translator().T("messages.generate")))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSwatches())
		b.WriteString("\n")
		b.WriteString(m.renderInfo())
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func (m Model) renderHeader() string {
	tr := m.ctrl.Translator()
	meta := fmt.Sprintf("%s: %s  %s: %s  %s: %s",
		tr.T("info.mode"), tr.Mode(m.ctrl.Mode()),
		tr.T("ui.format"), tr.T("formats."+m.ctrl.Format().String()),
		tr.T("ui.language"), tr.T("name"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render(tr.T("ui.title")), metaStyle.Render(meta))
}

func (m Model) swatchWidth() int {
	w := (m.width - 2) / palette.Size
	return max(12, min(w, 20))
}

func (m Model) renderSwatches() string {
	pal := m.ctrl.Palette()
	codes := m.ctrl.Codes()
	width := m.swatchWidth()

	swatches := make([]string, len(pal))
	cursors := make([]string, len(pal))
	for i, c := range pal {
		hex := c.Hex()
		label := fmt.Sprintf("%s\n\n%d %s", codes[i], i+1, m.lockMark(i))
		swatches[i] = swatchStyle.
			Width(width).
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(labelColor(hex))).
			Render(label)

		mark := ""
		if i == m.slotCursor {
			mark = "^"
			if m.useUnicode {
				mark = "▲"
			}
		}
		cursors[i] = cursorStyle.Width(width).Render(mark)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, swatches...),
		lipgloss.JoinHorizontal(lipgloss.Top, cursors...),
	)
}

func (m Model) lockMark(i int) string {
	if !m.ctrl.Locked(i) {
		return ""
	}
	if m.useUnicode {
		return "🔒"
	}
	return "[" + m.ctrl.Translator().T("ui.locked") + "]"
}

func (m Model) renderInfo() string {
	info, ok := m.ctrl.Info()
	if !ok {
		return ""
	}
	tr := m.ctrl.Translator()
	return fmt.Sprintf("%s %s   %s %s   %s %d",
		labelStyle.Render(tr.T("info.contrast")+":"), tr.T("info."+string(info.Contrast)),
		labelStyle.Render(tr.T("info.temperature")+":"), tr.T("info."+string(info.Temperature)),
		labelStyle.Render(tr.T("ui.history")+":"), len(m.ctrl.History()),
	)
}

func (m Model) renderStatus() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHistoryView() string {
	tr := m.ctrl.Translator()
	var b strings.Builder

	b.WriteString(titleStyle.Render(tr.T("ui.history")))
	b.WriteString("\n\n")

	entries := m.ctrl.History()
	if len(entries) == 0 {
		b.WriteString(metaStyle.Render(tr.T("messages.historyEmpty")))
		b.WriteString("\n")
	}
	for i, entry := range entries {
		pointer := "  "
		if i == m.historyCursor {
			pointer = cursorStyle.Render("> ")
		}
		chips := make([]string, len(entry))
		for j, hex := range entry {
			chips[j] = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		}
		fmt.Fprintf(&b, "%s%2d  %s  %s\n", pointer, i+1, strings.Join(chips, ""), metaStyle.Render(strings.Join(entry, " ")))
	}

	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Load, m.keys.Clear, m.keys.Back})))
	return b.String()
}

func (m Model) renderExportView() string {
	if m.export == nil {
		return m.renderPaletteView()
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.export.Title))
	b.WriteString("\n")
	b.WriteString(exportBoxStyle.Render(m.export.Body))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(footerStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Copy, m.keys.Back})))
	return b.String()
}

func (m Model) renderHelpView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.ctrl.Translator().T("ui.title")),
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
	)
}

func (m Model) renderConfirmView() string {
	return confirmBoxStyle.Render(m.ctrl.Translator().T("messages.confirmClear"))
}
