package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/palettegen/internal/color"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

// ExportKind names an export payload.
type ExportKind int

const (
	ExportCSS ExportKind = iota
	ExportTailwind
	ExportJSON
)

type exportSpec struct {
	name     string
	title    string
	filename string
}

var exportSpecs = map[ExportKind]exportSpec{
	ExportCSS:      {name: "css", title: "CSS Variables", filename: "palette.css"},
	ExportTailwind: {name: "tailwind", title: "Tailwind Config", filename: "tailwind.palette.js"},
	ExportJSON:     {name: "json", title: "JSON Export", filename: "palette.json"},
}

var exportOrder = []ExportKind{ExportCSS, ExportTailwind, ExportJSON}

// ExportKinds returns every export kind in display order.
func ExportKinds() []ExportKind {
	out := make([]ExportKind, len(exportOrder))
	copy(out, exportOrder)
	return out
}

// ParseExportKind resolves an export kind by name.
func ParseExportKind(s string) (ExportKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range exportOrder {
		if exportSpecs[k].name == name {
			return k, nil
		}
	}
	return ExportCSS, fmt.Errorf("unknown export format %q", s)
}

func (k ExportKind) String() string {
	if spec, ok := exportSpecs[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("export(%d)", int(k))
}

// Title is the human readable heading for the payload.
func (k ExportKind) Title() string {
	return exportSpecs[k].title
}

// Filename is the conventional file name the payload is written to.
func (k ExportKind) Filename() string {
	return exportSpecs[k].filename
}

// Payload is a rendered export.
type Payload struct {
	Kind  ExportKind
	Title string
	Body  string
}

// Export renders the palette as the requested payload. now stamps JSON exports.
func Export(kind ExportKind, colors []color.HSL, mode harmony.Mode, now time.Time) (Payload, error) {
	var (
		body string
		err  error
	)

	switch kind {
	case ExportCSS:
		body = CSS(colors)
	case ExportTailwind:
		body = Tailwind(colors)
	case ExportJSON:
		body, err = JSON(colors, mode, now)
	default:
		return Payload{}, fmt.Errorf("unknown export format %d", int(kind))
	}
	if err != nil {
		return Payload{}, err
	}

	return Payload{Kind: kind, Title: kind.Title(), Body: body}, nil
}

// CSS renders the palette as custom properties on :root.
func CSS(colors []color.HSL) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c.Hex())
	}
	b.WriteString("}")
	return b.String()
}

// Tailwind renders the palette as a tailwind.config.js module.
func Tailwind(colors []color.HSL) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n  theme: {\n    colors: {\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "      'palette-%d': '%s',\n", i+1, c.Hex())
	}
	b.WriteString("    }\n  }\n}")
	return b.String()
}

type jsonDocument struct {
	Palette   []jsonColor `json:"palette"`
	Mode      string      `json:"mode"`
	Timestamp string      `json:"timestamp"`
}

type jsonColor struct {
	Hex string    `json:"hex"`
	RGB color.RGB `json:"rgb"`
	HSL jsonHSL   `json:"hsl"`
}

type jsonHSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// timestampLayout is ISO 8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// SameExport reports whether a and b are the same export once the JSON
// timestamp line is ignored.
func SameExport(a, b string) bool {
	return stripTimestamp(a) == stripTimestamp(b)
}

func stripTimestamp(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), `"timestamp":`) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// JSON renders the palette with every color in all three notations.
func JSON(colors []color.HSL, mode harmony.Mode, now time.Time) (string, error) {
	doc := jsonDocument{
		Palette:   make([]jsonColor, 0, len(colors)),
		Mode:      mode.String(),
		Timestamp: now.UTC().Format(timestampLayout),
	}
	for _, c := range colors {
		doc.Palette = append(doc.Palette, jsonColor{
			Hex: c.Hex(),
			RGB: c.RGB(),
			HSL: jsonHSL{H: round(c.H), S: round(c.S), L: round(c.L)},
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json export: %w", err)
	}
	return string(data), nil
}
