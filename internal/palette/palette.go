// Package palette holds the generator state: the current five-color palette,
// locked slots, the active mode and code format, and the bounded history.
package palette

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

// Size is the number of colors in a generated palette.
const Size = 5

// ErrIndexOutOfRange is returned for slot or history indices that do not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// Palette is an ordered set of colors. It is empty until first generated and
// holds exactly Size colors afterwards.
type Palette []color.HSL

// Hexes returns the #RRGGBB form of each color.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Clone returns an independent copy.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Sampler supplies base colors for generation.
type Sampler interface {
	Sample() color.HSL
}

// Regenerate merges a freshly derived palette with the previous one. Locked
// slots keep their previous color when one exists; every other slot takes the
// derived color at the same index, or the last derived color if the derived
// sequence is shorter.
func Regenerate(previous Palette, locks LockSet, derived []color.HSL) Palette {
	if len(derived) == 0 {
		return previous.Clone()
	}

	next := make(Palette, Size)
	for i := range Size {
		if locks.Has(i) && i < len(previous) {
			next[i] = previous[i]
			continue
		}
		next[i] = derived[min(i, len(derived)-1)]
	}
	return next
}

// State is the single owner of all mutable generator state.
type State struct {
	Palette  Palette
	Locks    LockSet
	Mode     harmony.Mode
	Format   format.CodeFormat
	History  History
	Language string
}

// NewState returns the default empty state.
func NewState() *State {
	return &State{
		Mode:     harmony.DefaultMode,
		Format:   format.DefaultCodeFormat,
		Language: "en",
	}
}

// Generate derives a new palette from a sampled base color, keeps locked
// slots, and records the result in history.
func (s *State) Generate(sampler Sampler) Palette {
	derived := harmony.Derive(sampler.Sample(), s.Mode)
	s.Palette = Regenerate(s.Palette, s.Locks, derived)
	s.History.Push(s.Palette.Hexes())
	return s.Palette.Clone()
}

// ToggleLock flips the lock on slot i. It does not regenerate.
func (s *State) ToggleLock(i int) (bool, error) {
	return s.Locks.Toggle(i)
}

// SetMode changes the harmony rule used by the next generation.
func (s *State) SetMode(m harmony.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("unknown harmony mode %d", int(m))
	}
	s.Mode = m
	return nil
}

// SetFormat changes how colors are displayed.
func (s *State) SetFormat(f format.CodeFormat) error {
	if !f.Valid() {
		return fmt.Errorf("unknown code format %d", int(f))
	}
	s.Format = f
	return nil
}

// LoadHistory replaces the palette with history entry i and clears all locks.
// The loaded palette is not pushed to history again.
func (s *State) LoadHistory(i int) (Palette, error) {
	entry, err := s.History.At(i)
	if err != nil {
		return nil, err
	}

	loaded := make(Palette, 0, len(entry))
	for _, hex := range entry {
		c, err := color.HexToHSL(hex)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		loaded = append(loaded, c)
	}

	s.Palette = loaded
	s.Locks.Clear()
	return s.Palette.Clone(), nil
}

// ClearHistory forgets every past palette.
func (s *State) ClearHistory() {
	s.History.Clear()
}

// Info describes the current palette.
func (s *State) Info() (format.Info, bool) {
	return format.Describe(s.Palette)
}

// Codes renders the current palette in the active code format.
func (s *State) Codes() []string {
	return format.Colors(s.Palette, s.Format)
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	return &State{
		Palette:  s.Palette.Clone(),
		Locks:    s.Locks.clone(),
		Mode:     s.Mode,
		Format:   s.Format,
		History:  NewHistory(s.History.Entries()),
		Language: s.Language,
	}
}
