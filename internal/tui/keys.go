package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Generate       key.Binding
	Lock           key.Binding
	Left           key.Binding
	Right          key.Binding
	Copy           key.Binding
	Mode           key.Binding
	Format         key.Binding
	ExportCSS      key.Binding
	ExportTailwind key.Binding
	ExportJSON     key.Binding
	History        key.Binding
	Up             key.Binding
	Down           key.Binding
	Load           key.Binding
	Clear          key.Binding
	Language       key.Binding
	Back           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Generate:       key.NewBinding(key.WithKeys(" ", "g"), key.WithHelp("space", "generate")),
		Lock:           key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "lock")),
		Left:           key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "select")),
		Right:          key.NewBinding(key.WithKeys("right")),
		Copy:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Mode:           key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Format:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "format")),
		ExportCSS:      key.NewBinding(key.WithKeys("c", "e"), key.WithHelp("c", "css")),
		ExportTailwind: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tailwind")),
		ExportJSON:     key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "json")),
		History:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		Up:             key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:           key.NewBinding(key.WithKeys("down")),
		Load:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Clear:          key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear history")),
		Language:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Back:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Lock, k.Copy, k.Mode, k.Format, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Lock, k.Left, k.Copy},
		{k.Mode, k.Format, k.Language},
		{k.ExportCSS, k.ExportTailwind, k.ExportJSON},
		{k.History, k.Up, k.Load, k.Clear},
		{k.Back, k.Help, k.Quit},
	}
}
