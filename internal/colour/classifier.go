package colour

import (
	"fmt"
	"image"
	"math"
)

// UnknownConfidence is the confidence attached to achromatic input: the
// colour is plausibly real but indeterminate, which is distinct from the
// zero confidence of degenerate (empty-region) input.
const UnknownConfidence = 0.5

// Config holds the construction-time tunables of a Classifier. Different
// deployments use different thresholds, radii and palettes; none of these
// are hidden constants.
type Config struct {
	// SaturationThreshold is the saturation percentage below which input
	// is treated as achromatic and classified LabelUnknown.
	SaturationThreshold float64

	// ValueThreshold is the value percentage below which input is treated
	// as achromatic (too dark to name) and classified LabelUnknown.
	ValueThreshold float64

	// ConfidenceRadius is the hue distance in degrees at which match
	// confidence reaches zero.
	ConfidenceRadius float64

	// RejectBelowFloor downgrades any match whose confidence falls below
	// ConfidenceFloor to LabelUnknown instead of forcing the input into
	// the nearest but implausible bucket. Both this policy and the
	// always-return-nearest default are valid deployments.
	RejectBelowFloor bool

	// ConfidenceFloor is the rejection floor used when RejectBelowFloor
	// is set.
	ConfidenceFloor float64

	// Palette is the ordered reference palette to match against.
	Palette Palette
}

// DefaultConfig returns the default classifier configuration: thresholds
// at 20%, a 60 degree confidence radius (adjacent primaries sit 60 degrees
// apart on the wheel), floor rejection off, and the built-in palette.
func DefaultConfig() Config {
	return Config{
		SaturationThreshold: 20,
		ValueThreshold:      20,
		ConfidenceRadius:    60,
		RejectBelowFloor:    false,
		ConfidenceFloor:     0.3,
		Palette:             DefaultPalette(),
	}
}

// Validate validates the classifier configuration.
func (c Config) Validate() error {
	if c.SaturationThreshold < 0 || c.SaturationThreshold > 100 {
		return fmt.Errorf("saturation threshold must be in [0, 100], got %.1f", c.SaturationThreshold)
	}
	if c.ValueThreshold < 0 || c.ValueThreshold > 100 {
		return fmt.Errorf("value threshold must be in [0, 100], got %.1f", c.ValueThreshold)
	}
	if c.ConfidenceRadius <= 0 {
		return fmt.Errorf("confidence radius must be positive, got %.1f", c.ConfidenceRadius)
	}
	if c.ConfidenceFloor < 0 || c.ConfidenceFloor > 1 {
		return fmt.Errorf("confidence floor must be in [0, 1], got %.2f", c.ConfidenceFloor)
	}
	if err := c.Palette.Validate(); err != nil {
		return err
	}
	return nil
}

// Classifier maps HSV triples onto the closest palette label with a
// confidence score. A Classifier holds no mutable state and is safe for
// concurrent use.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a Classifier from the given configuration.
func NewClassifier(cfg Config) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid classifier configuration: %w", err)
	}
	return &Classifier{cfg: cfg}, nil
}

// Config returns the configuration the classifier was built with.
func (c *Classifier) Config() Config {
	return c.cfg
}

// Classify maps an HSV triple to the closest palette label and a
// confidence in [0, 1]. Achromatic input (saturation or value below the
// configured thresholds) yields LabelUnknown at UnknownConfidence. With
// RejectBelowFloor set, matches below the configured floor are also
// downgraded to LabelUnknown, keeping their computed confidence.
func (c *Classifier) Classify(hsv HSV) (Label, float64) {
	if hsv.S < c.cfg.SaturationThreshold || hsv.V < c.cfg.ValueThreshold {
		return LabelUnknown, UnknownConfidence
	}

	label, dist, ok := c.nearest(hsv.H)
	if !ok {
		return LabelUnknown, 0
	}

	confidence := math.Max(0, 1-dist/c.cfg.ConfidenceRadius)
	if c.cfg.RejectBelowFloor && confidence < c.cfg.ConfidenceFloor {
		return LabelUnknown, confidence
	}
	return label, confidence
}

// ForceClassify runs the nearest-hue search without the achromatic gate or
// confidence floor. It never returns LabelUnknown while the palette is
// non-empty, making it a last-resort fallback for callers that already
// attempted Classify and want a best guess regardless of confidence.
func (c *Classifier) ForceClassify(h float64) Label {
	label, _, ok := c.nearest(h)
	if !ok {
		return LabelUnknown
	}
	return label
}

// ClassifyRGB converts an RGB triple through HSV and classifies it,
// returning the full result.
func (c *Classifier) ClassifyRGB(rgb RGB) Result {
	hsv := RGBToHSV(rgb)
	label, confidence := c.Classify(hsv)
	return Result{
		Label:      label,
		Confidence: confidence,
		RGB:        rgb,
		HSV:        hsv,
	}
}

// ClassifyRegion classifies the strided mean colour of a rectangular
// sub-region of img. An empty clipped region yields the explicit
// empty-region result: LabelUnknown at confidence zero with zero RGB/HSV.
// A nil image is a caller contract violation and returns an error.
func (c *Classifier) ClassifyRegion(img image.Image, rect image.Rectangle) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("image cannot be nil")
	}
	mean, ok := SampleMean(img, rect)
	if !ok {
		return Result{Label: LabelUnknown}, nil
	}
	return c.ClassifyRGB(mean), nil
}

// nearest finds the palette entry with minimal circular hue distance to h.
// Ties keep the first-encountered entry; palette order is the tie-break.
// The boolean is false when the palette is empty.
func (c *Classifier) nearest(h float64) (Label, float64, bool) {
	if len(c.cfg.Palette) == 0 {
		return LabelUnknown, 0, false
	}

	h = normaliseHue(h)

	best := c.cfg.Palette[0].Label
	bestDist := math.MaxFloat64
	for _, entry := range c.cfg.Palette {
		dist := hueDistance(h, entry.Hue)
		// Hues just below 360 and just above 0 are the same red region;
		// for the zero-degree entry both representations must collapse to
		// the minimal distance.
		if entry.Hue == 0 {
			dist = math.Min(dist, 360-h)
		}
		if dist < bestDist {
			bestDist = dist
			best = entry.Label
		}
	}
	return best, bestDist, true
}
