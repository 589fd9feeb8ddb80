// Package tui is the interactive terminal front end. It renders the
// controller's state and turns key presses into intents.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
)

// ToastDuration is how long transient messages stay on screen.
const ToastDuration = 2 * time.Second

// ViewMode determines which screen to render.
type ViewMode int

const (
	ViewPalette ViewMode = iota
	ViewHistory
	ViewExport
	ViewHelp
	ViewConfirm
)

type toastExpiredMsg struct {
	id int
}

// Model is the bubbletea model for the palette screen.
type Model struct {
	ctrl *app.Controller
	ctx  context.Context

	keys keyMap
	help help.Model

	viewMode      ViewMode
	slotCursor    int
	historyCursor int
	export        *format.Payload

	toast   string
	toastID int
	errMsg  string

	width      int
	height     int
	useUnicode bool
}

// NewModel wraps ctrl. The controller should already hold a palette.
func NewModel(ctx context.Context, ctrl *app.Controller, useUnicode bool) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctrl:       ctrl,
		ctx:        ctx,
		keys:       defaultKeyMap(),
		help:       help.New(),
		viewMode:   ViewPalette,
		width:      80,
		height:     24,
		useUnicode: useUnicode,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.ctrl.Translator().T("ui.title"))
}

// ViewMode returns the active screen.
func (m Model) ViewMode() ViewMode {
	return m.viewMode
}

func (m *Model) showToast(text string) tea.Cmd {
	m.toastID++
	m.toast = text
	id := m.toastID
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) dispatch(in app.Intent) (app.Result, bool) {
	res, err := m.ctrl.Dispatch(m.ctx, in)
	if err != nil {
		m.errMsg = err.Error()
		return app.Result{}, false
	}
	m.errMsg = ""
	return res, true
}
