package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/i18n"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.viewMode != ViewConfirm {
			return m, tea.Quit
		}
		switch m.viewMode {
		case ViewHistory:
			return m.handleHistoryKeys(msg)
		case ViewExport:
			return m.handleExportKeys(msg)
		case ViewHelp:
			m.viewMode = ViewPalette
			return m, nil
		case ViewConfirm:
			return m.handleConfirmKeys(msg)
		default:
			return m.handlePaletteKeys(msg)
		}
	}

	return m, nil
}

func (m Model) handlePaletteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Generate):
		m.dispatch(app.Generate{})

	case key.Matches(msg, m.keys.Lock):
		m.dispatch(app.ToggleLock{Index: int(msg.String()[0] - '1')})

	case key.Matches(msg, m.keys.Left):
		m.slotCursor = (m.slotCursor + palette.Size - 1) % palette.Size

	case key.Matches(msg, m.keys.Right):
		m.slotCursor = (m.slotCursor + 1) % palette.Size

	case key.Matches(msg, m.keys.Copy):
		cmd := m.copyResult(m.dispatch(app.Copy{Index: m.slotCursor}))
		return m, cmd

	case key.Matches(msg, m.keys.Mode):
		m.dispatch(app.ChangeMode{Mode: m.ctrl.Mode().Next()})

	case key.Matches(msg, m.keys.Format):
		m.dispatch(app.ChangeFormat{Format: m.ctrl.Format().Next()})

	case key.Matches(msg, m.keys.ExportCSS):
		m.openExport(format.ExportCSS)

	case key.Matches(msg, m.keys.ExportTailwind):
		m.openExport(format.ExportTailwind)

	case key.Matches(msg, m.keys.ExportJSON):
		m.openExport(format.ExportJSON)

	case key.Matches(msg, m.keys.History):
		m.historyCursor = 0
		m.viewMode = ViewHistory

	case key.Matches(msg, m.keys.Clear):
		m.viewMode = ViewConfirm

	case key.Matches(msg, m.keys.Language):
		m.dispatch(app.SetLanguage{Tag: i18n.Next(m.ctrl.Translator().Lang())})

	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
	}

	return m, nil
}

func (m Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.ctrl.History())

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.History):
		m.viewMode = ViewPalette

	case key.Matches(msg, m.keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.historyCursor < count-1 {
			m.historyCursor++
		}

	case key.Matches(msg, m.keys.Load):
		if count == 0 {
			return m, nil
		}
		if _, ok := m.dispatch(app.LoadHistory{Index: m.historyCursor}); ok {
			m.viewMode = ViewPalette
		}

	case key.Matches(msg, m.keys.Clear):
		m.viewMode = ViewConfirm
	}

	return m, nil
}

func (m Model) handleExportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.export = nil
		m.viewMode = ViewPalette

	case key.Matches(msg, m.keys.Copy):
		if m.export == nil {
			return m, nil
		}
		cmd := m.copyResult(m.dispatch(app.CopyExport{Kind: m.export.Kind}))
		return m, cmd
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.viewMode = ViewPalette
		if _, ok := m.dispatch(app.ClearHistory{}); ok {
			m.historyCursor = 0
			cmd := m.showToast(m.ctrl.Translator().T("messages.historyCleared"))
			return m, cmd
		}
	case "n", "N", "esc", "q":
		m.viewMode = ViewPalette
	}
	return m, nil
}

func (m *Model) openExport(kind format.ExportKind) {
	res, ok := m.dispatch(app.Export{Kind: kind})
	if !ok {
		return
	}
	m.export = res.Export
	m.viewMode = ViewExport
}

func (m *Model) copyResult(res app.Result, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	tr := m.ctrl.Translator()
	if res.Copied {
		return m.showToast(tr.T("messages.copied"))
	}
	return m.showToast(tr.T("messages.copyFailed"))
}
