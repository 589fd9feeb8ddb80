package palette

import "fmt"

// HistoryCapacity bounds how many past palettes are remembered.
const HistoryCapacity = 10

// Entry is a frozen palette snapshot stored as hex codes.
type Entry []string

// History keeps the most recent palettes, newest first.
type History struct {
	entries []Entry
}

// NewHistory builds a history from entries ordered newest first. Entries past
// capacity are dropped.
func NewHistory(entries []Entry) History {
	h := History{}
	for i := len(entries) - 1; i >= 0; i-- {
		h.Push(entries[i])
	}
	return h
}

// Push inserts entry at the front, evicting the oldest when full.
func (h *History) Push(entry Entry) {
	frozen := make(Entry, len(entry))
	copy(frozen, entry)

	h.entries = append([]Entry{frozen}, h.entries...)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[:HistoryCapacity]
	}
}

// At returns entry i, where 0 is the most recent.
func (h History) At(i int) (Entry, error) {
	if i < 0 || i >= len(h.entries) {
		return nil, fmt.Errorf("%w: history entry %d of %d", ErrIndexOutOfRange, i, len(h.entries))
	}
	out := make(Entry, len(h.entries[i]))
	copy(out, h.entries[i])
	return out, nil
}

// Len returns the number of stored entries.
func (h History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, newest first.
func (h History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		out[i] = append(Entry(nil), e...)
	}
	return out
}

// Clear drops every entry.
func (h *History) Clear() {
	h.entries = nil
}
