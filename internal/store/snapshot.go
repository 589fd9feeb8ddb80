// Package store persists generator state between sessions.
package store

import (
	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
)

// DefaultLanguage is the language tag used when none has been saved.
const DefaultLanguage = "en"

// Snapshot is the serialized form of the generator state.
type Snapshot struct {
	Palette      []color.HSL `json:"palette" validate:"omitempty,len=5,dive"`
	LockedColors []int       `json:"lockedColors" validate:"max=5,unique,dive,min=0,max=4"`
	ColorMode    string      `json:"colorMode" validate:"omitempty,mode"`
	CodeFormat   string      `json:"codeFormat" validate:"omitempty,code_format"`
	History      [][]string  `json:"history" validate:"max=10,dive,len=5,dive,hex6"`
	Language     string      `json:"language" validate:"omitempty,lang"`
}

// Default returns the snapshot of a fresh session.
func Default() Snapshot {
	return Snapshot{
		Palette:      []color.HSL{},
		LockedColors: []int{},
		ColorMode:    harmony.DefaultMode.String(),
		CodeFormat:   format.DefaultCodeFormat.String(),
		History:      [][]string{},
		Language:     DefaultLanguage,
	}
}

// FromState captures s.
func FromState(s *palette.State) Snapshot {
	entries := s.History.Entries()
	history := make([][]string, len(entries))
	for i, e := range entries {
		history[i] = []string(e)
	}

	pal := []color.HSL(s.Palette.Clone())
	if pal == nil {
		pal = []color.HSL{}
	}

	return Snapshot{
		Palette:      pal,
		LockedColors: s.Locks.Indices(),
		ColorMode:    s.Mode.String(),
		CodeFormat:   s.Format.String(),
		History:      history,
		Language:     s.Language,
	}
}

// State rebuilds generator state from the snapshot. Fields that are missing
// fall back to defaults.
func (s Snapshot) State() (*palette.State, error) {
	st := palette.NewState()

	if s.ColorMode != "" {
		m, err := harmony.ParseMode(s.ColorMode)
		if err != nil {
			return nil, err
		}
		st.Mode = m
	}
	if s.CodeFormat != "" {
		f, err := format.ParseCodeFormat(s.CodeFormat)
		if err != nil {
			return nil, err
		}
		st.Format = f
	}
	if s.Language != "" {
		st.Language = s.Language
	}

	locks, err := palette.NewLockSet(s.LockedColors...)
	if err != nil {
		return nil, err
	}
	st.Locks = locks

	if len(s.Palette) > 0 {
		st.Palette = palette.Palette(s.Palette).Clone()
	}

	entries := make([]palette.Entry, len(s.History))
	for i, e := range s.History {
		entries[i] = palette.Entry(e)
	}
	st.History = palette.NewHistory(entries)

	return st, nil
}
