package colour

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Label represents one of the fixed set of human colour names the
// classifier can produce. The set is closed: five chromatic labels plus
// LabelUnknown for achromatic or unclassifiable input.
type Label string

const (
	LabelRed     Label = "red"
	LabelYellow  Label = "yellow"
	LabelGreen   Label = "green"
	LabelBlue    Label = "blue"
	LabelPurple  Label = "purple"
	LabelUnknown Label = "unknown"
)

// ChromaticLabels returns the labels a palette entry may reference.
// LabelUnknown is excluded: it is a classification outcome, never a
// classification target.
func ChromaticLabels() []Label {
	return []Label{LabelRed, LabelYellow, LabelGreen, LabelBlue, LabelPurple}
}

// ParseLabel parses a label name. Returns an error for unrecognised names
// and for "unknown", which cannot appear in a palette.
func ParseLabel(s string) (Label, error) {
	name := Label(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range ChromaticLabels() {
		if name == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown colour label: %q (valid labels: %v)", s, ChromaticLabels())
}

// PaletteEntry pairs a label with the reference hue it is anchored to.
type PaletteEntry struct {
	Label Label   `json:"label"`
	Hue   float64 `json:"hue"`
}

// Palette is the ordered list of reference entries the classifier matches
// against. The mapping from hue to label is deliberately many-to-one:
// several hue landmarks may share a label, and entry order is the tie-break
// when two entries are equidistant from an input hue.
type Palette []PaletteEntry

// DefaultPalette returns the built-in reference palette. Purple carries two
// hue landmarks that collapse to a single label.
func DefaultPalette() Palette {
	return Palette{
		{Label: LabelRed, Hue: 0},
		{Label: LabelYellow, Hue: 60},
		{Label: LabelGreen, Hue: 120},
		{Label: LabelBlue, Hue: 240},
		{Label: LabelPurple, Hue: 275},
		{Label: LabelPurple, Hue: 290},
	}
}

// Validate checks that every entry references a chromatic label and a hue
// within [0, 360).
func (p Palette) Validate() error {
	for i, entry := range p {
		if _, err := ParseLabel(string(entry.Label)); err != nil {
			return fmt.Errorf("palette entry %d: %w", i, err)
		}
		if entry.Hue < 0 || entry.Hue >= 360 {
			return fmt.Errorf("palette entry %d: hue %.1f out of range [0, 360)", i, entry.Hue)
		}
	}
	return nil
}

// Result is the outcome of one classification: the matched label, a
// confidence in [0, 1], and the RGB/HSV triples the decision was made from.
// Results are immutable values with no lifecycle beyond the call that
// produced them.
type Result struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	RGB        RGB     `json:"rgb"`
	HSV        HSV     `json:"hsv"`
}

// resultJSON mirrors Result with a hex rendering of the colour added for
// output consumers.
type resultJSON struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	HSV        HSV     `json:"hsv"`
}

// ResultsToJSON converts a sequence of results to indented JSON.
func ResultsToJSON(results []Result) ([]byte, error) {
	out := make([]resultJSON, len(results))
	for i, r := range results {
		out[i] = resultJSON{
			Label:      r.Label,
			Confidence: r.Confidence,
			Hex:        r.RGB.Hex(),
			RGB:        r.RGB,
			HSV:        r.HSV,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	return data, nil
}
