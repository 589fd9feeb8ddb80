package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewBeforeFirstPalette(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	view := m.View()
	require.Contains(t, view, "Palette Generator")
	require.Contains(t, view, "Press space to generate a palette")
}

func TestViewRendersPaletteAndInfo(t *testing.T) {
	m, ctrl, _ := newTestModel(t, true)

	view := m.View()
	for _, code := range ctrl.Codes() {
		require.Contains(t, view, code)
	}
	require.Contains(t, view, "Complementary")
	require.Contains(t, view, "Contrast:")
	require.Contains(t, view, "Temperature:")
}

func TestViewShowsLockMarker(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	m, _ = press(t, m, runes("2"))

	require.Contains(t, m.View(), "[locked]")
}

func TestViewTranslates(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	m, _ = press(t, m, runes("l"))
	m, _ = press(t, m, runes("l"))

	view := m.View()
	require.Contains(t, view, "Générateur de palettes")
	require.Contains(t, view, "Complémentaire")
}

func TestViewHistoryAndExport(t *testing.T) {
	m, ctrl, _ := newTestModel(t, true)

	m, _ = press(t, m, runes("h"))
	view := m.View()
	require.Contains(t, view, ctrl.History()[0][0])

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = press(t, m, runes("c"))
	require.Contains(t, m.View(), "CSS Variables")
	require.Contains(t, m.View(), "--color-1:")
}

func TestViewHistoryEmptyAndConfirm(t *testing.T) {
	m, _, _ := newTestModel(t, false)

	m, _ = press(t, m, runes("h"))
	require.Contains(t, m.View(), "No palettes yet")

	m, _ = press(t, m, runes("X"))
	require.Contains(t, m.View(), "Clear all history? (y/n)")
}
