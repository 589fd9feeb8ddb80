package harmony

import (
	"fmt"
	"strings"
)

// Mode selects the rule used to derive a palette from its base color.
type Mode int

const (
	Complementary Mode = iota
	Analogous
	Triadic
	Tetradic
	Monochromatic
)

// DefaultMode is used when no mode has been chosen or persisted.
const DefaultMode = Complementary

var modeNames = map[Mode]string{
	Complementary: "complementary",
	Analogous:     "analogous",
	Triadic:       "triadic",
	Tetradic:      "tetradic",
	Monochromatic: "monochromatic",
}

var modeOrder = []Mode{Complementary, Analogous, Triadic, Tetradic, Monochromatic}

// Modes returns every mode in display order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// ParseMode resolves a mode from its name, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range modeOrder {
		if modeNames[m] == name {
			return m, nil
		}
	}
	return DefaultMode, fmt.Errorf("unknown harmony mode %q", s)
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Next returns the following mode, wrapping after the last one.
func (m Mode) Next() Mode {
	for i, candidate := range modeOrder {
		if candidate == m {
			return modeOrder[(i+1)%len(modeOrder)]
		}
	}
	return DefaultMode
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("unknown harmony mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
