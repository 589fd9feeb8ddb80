package app

import (
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

// Intent is a user action handled by the Controller. The set is closed.
type Intent interface {
	intentName() string
}

// Generate derives a new palette, keeping locked slots.
type Generate struct{}

// ToggleLock flips the lock on a zero-based slot.
type ToggleLock struct{ Index int }

// ChangeMode switches the harmony rule and regenerates.
type ChangeMode struct{ Mode harmony.Mode }

// ChangeFormat switches the display code format.
type ChangeFormat struct{ Format format.CodeFormat }

// Export renders the current palette.
type Export struct{ Kind format.ExportKind }

// ClearHistory forgets every past palette.
type ClearHistory struct{}

// LoadHistory restores a history entry, where 0 is the most recent.
type LoadHistory struct{ Index int }

// SetLanguage changes the UI language. Unknown tags resolve to English.
type SetLanguage struct{ Tag string }

// Copy places one slot's hex code on the clipboard.
type Copy struct{ Index int }

// CopyExport renders an export and places it on the clipboard.
type CopyExport struct{ Kind format.ExportKind }

func (Generate) intentName() string     { return "generate" }
func (ToggleLock) intentName() string   { return "toggle_lock" }
func (ChangeMode) intentName() string   { return "change_mode" }
func (ChangeFormat) intentName() string { return "change_format" }
func (Export) intentName() string       { return "export" }
func (ClearHistory) intentName() string { return "clear_history" }
func (LoadHistory) intentName() string  { return "load_history" }
func (SetLanguage) intentName() string  { return "set_language" }
func (Copy) intentName() string         { return "copy" }
func (CopyExport) intentName() string   { return "copy_export" }

// Notification tells a UI which part of the view is stale.
type Notification int

const (
	PaletteChanged Notification = iota + 1
	HistoryChanged
	InfoChanged
)

func (n Notification) String() string {
	switch n {
	case PaletteChanged:
		return "palette-changed"
	case HistoryChanged:
		return "history-changed"
	case InfoChanged:
		return "info-changed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a dispatched intent.
type Result struct {
	Notifications []Notification
	Export        *format.Payload
	Copied        bool
}

// Has reports whether n was emitted.
func (r Result) Has(n Notification) bool {
	for _, got := range r.Notifications {
		if got == n {
			return true
		}
	}
	return false
}

func notify(ns ...Notification) Result {
	return Result{Notifications: ns}
}
