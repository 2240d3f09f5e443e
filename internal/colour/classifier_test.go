package colour

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func mustClassifier(t *testing.T, cfg Config) *Classifier {
	t.Helper()
	c, err := NewClassifier(cfg)
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func TestClassifyPaletteReflexive(t *testing.T) {
	// Feeding a palette's exact reference hue with full saturation and
	// value must yield that entry's label at confidence 1.0.
	c := mustClassifier(t, DefaultConfig())
	for _, entry := range DefaultPalette() {
		label, confidence := c.Classify(HSV{H: entry.Hue, S: 100, V: 100})
		if label != entry.Label {
			t.Errorf("Classify(hue %.0f) = %q, want %q", entry.Hue, label, entry.Label)
		}
		if confidence != 1.0 {
			t.Errorf("Classify(hue %.0f) confidence = %.3f, want 1.0", entry.Hue, confidence)
		}
	}
}

func TestClassifyCircularSymmetry(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	for _, h := range []float64{0, 30, 59.5, 120, 238, 275, 348, 359.9} {
		label1, conf1 := c.Classify(HSV{H: h, S: 80, V: 80})
		label2, conf2 := c.Classify(HSV{H: h + 360, S: 80, V: 80})
		if label1 != label2 || math.Abs(conf1-conf2) > 1e-9 {
			t.Errorf("Classify(%.1f) = (%q, %.3f) but Classify(%.1f) = (%q, %.3f)",
				h, label1, conf1, h+360, label2, conf2)
		}
	}
}

func TestClassifyAchromaticGate(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	tests := []struct {
		name string
		hsv  HSV
	}{
		{name: "low saturation", hsv: HSV{H: 120, S: 5, V: 90}},
		{name: "low value", hsv: HSV{H: 240, S: 90, V: 5}},
		{name: "both low", hsv: HSV{H: 0, S: 0, V: 0}},
		{name: "just below saturation threshold", hsv: HSV{H: 60, S: 19.9, V: 100}},
		{name: "just below value threshold", hsv: HSV{H: 60, S: 100, V: 19.9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, confidence := c.Classify(tt.hsv)
			if label != LabelUnknown {
				t.Errorf("Classify(%v) = %q, want %q", tt.hsv, label, LabelUnknown)
			}
			if confidence != UnknownConfidence {
				t.Errorf("Classify(%v) confidence = %.3f, want %.3f", tt.hsv, confidence, UnknownConfidence)
			}
		})
	}
}

func TestClassifyRedWrap(t *testing.T) {
	// Hues just below 360 represent the same red region as hues just
	// above 0 and must classify identically.
	c := mustClassifier(t, DefaultConfig())

	label, confidence := c.Classify(HSV{H: 359, S: 90, V: 90})
	if label != LabelRed {
		t.Fatalf("Classify(359) = %q, want %q", label, LabelRed)
	}
	want := 1 - 1.0/60
	if math.Abs(confidence-want) > 1e-9 {
		t.Errorf("Classify(359) confidence = %.4f, want %.4f", confidence, want)
	}

	label1, conf1 := c.Classify(HSV{H: 358, S: 90, V: 90})
	label2, conf2 := c.Classify(HSV{H: 2, S: 90, V: 90})
	if label1 != label2 || math.Abs(conf1-conf2) > 1e-9 {
		t.Errorf("358 and 2 degrees should match: (%q, %.4f) vs (%q, %.4f)", label1, conf1, label2, conf2)
	}
}

func TestClassifyTieBreakPaletteOrder(t *testing.T) {
	// 90 degrees sits exactly between yellow (60) and green (120); the
	// first palette entry wins the tie.
	cfg := DefaultConfig()
	cfg.Palette = Palette{
		{Label: LabelYellow, Hue: 60},
		{Label: LabelGreen, Hue: 120},
	}
	c := mustClassifier(t, cfg)
	if label, _ := c.Classify(HSV{H: 90, S: 100, V: 100}); label != LabelYellow {
		t.Errorf("Classify(90) = %q, want %q (first entry wins ties)", label, LabelYellow)
	}

	// Reversed order flips the winner.
	cfg.Palette = Palette{
		{Label: LabelGreen, Hue: 120},
		{Label: LabelYellow, Hue: 60},
	}
	c = mustClassifier(t, cfg)
	if label, _ := c.Classify(HSV{H: 90, S: 100, V: 100}); label != LabelGreen {
		t.Errorf("Classify(90) = %q, want %q (first entry wins ties)", label, LabelGreen)
	}
}

func TestClassifyFloorRejection(t *testing.T) {
	// 180 degrees is 60 away from both green and blue, so confidence is
	// zero under the default radius.
	hsv := HSV{H: 180, S: 90, V: 90}

	always := mustClassifier(t, DefaultConfig())
	label, confidence := always.Classify(hsv)
	if label != LabelGreen {
		t.Errorf("always-nearest Classify(180) = %q, want %q", label, LabelGreen)
	}
	if confidence != 0 {
		t.Errorf("always-nearest Classify(180) confidence = %.3f, want 0", confidence)
	}

	cfg := DefaultConfig()
	cfg.RejectBelowFloor = true
	rejecting := mustClassifier(t, cfg)
	label, confidence = rejecting.Classify(hsv)
	if label != LabelUnknown {
		t.Errorf("floor-rejecting Classify(180) = %q, want %q", label, LabelUnknown)
	}
	if confidence != 0 {
		t.Errorf("floor-rejecting Classify(180) confidence = %.3f, want 0", confidence)
	}

	// A confident match is unaffected by the floor.
	if label, _ = rejecting.Classify(HSV{H: 120, S: 90, V: 90}); label != LabelGreen {
		t.Errorf("floor-rejecting Classify(120) = %q, want %q", label, LabelGreen)
	}
}

func TestForceClassifyNeverUnknown(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	for _, h := range []float64{0, 0.1, 59.9, 90, 180, 270, 359.9, 360, 720, -30} {
		if label := c.ForceClassify(h); label == LabelUnknown {
			t.Errorf("ForceClassify(%.1f) = %q, want a chromatic label", h, label)
		}
	}

	// 0 and 360 are the same point on the wheel.
	if l0, l360 := c.ForceClassify(0), c.ForceClassify(360); l0 != l360 {
		t.Errorf("ForceClassify(0) = %q but ForceClassify(360) = %q", l0, l360)
	}
}

func TestClassifyRGBCrimson(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	result := c.ClassifyRGB(RGB{R: 220, G: 20, B: 60})
	if result.Label != LabelRed {
		t.Errorf("crimson label = %q, want %q", result.Label, LabelRed)
	}
	if result.Confidence < 0.7 {
		t.Errorf("crimson confidence = %.3f, want high", result.Confidence)
	}
	if math.Abs(result.HSV.H-348) > 0.5 {
		t.Errorf("crimson hue = %.1f, want ~348", result.HSV.H)
	}
}

func TestClassifyRGBNearWhite(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	result := c.ClassifyRGB(RGB{R: 245, G: 245, B: 245})
	if result.Label != LabelUnknown {
		t.Errorf("near-white label = %q, want %q", result.Label, LabelUnknown)
	}
	if result.Confidence != UnknownConfidence {
		t.Errorf("near-white confidence = %.3f, want %.3f", result.Confidence, UnknownConfidence)
	}
}

func TestClassifyRegionEmpty(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	result, err := c.ClassifyRegion(img, Region(0, 0, 0, 10))
	if err != nil {
		t.Fatalf("ClassifyRegion: %v", err)
	}
	if result.Label != LabelUnknown {
		t.Errorf("empty region label = %q, want %q", result.Label, LabelUnknown)
	}
	if result.Confidence != 0 {
		t.Errorf("empty region confidence = %.3f, want 0", result.Confidence)
	}
	if (result.RGB != RGB{}) || (result.HSV != HSV{}) {
		t.Errorf("empty region should carry zero RGB/HSV, got %v / %v", result.RGB, result.HSV)
	}
}

func TestClassifyRegionNilImage(t *testing.T) {
	c := mustClassifier(t, DefaultConfig())
	if _, err := c.ClassifyRegion(nil, Region(0, 0, 10, 10)); err == nil {
		t.Error("ClassifyRegion(nil) should return an error")
	}
}

func TestClassifyEmptyPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = Palette{}
	c := mustClassifier(t, cfg)

	label, confidence := c.Classify(HSV{H: 120, S: 90, V: 90})
	if label != LabelUnknown || confidence != 0 {
		t.Errorf("empty palette Classify = (%q, %.3f), want (%q, 0)", label, confidence, LabelUnknown)
	}
	if label := c.ForceClassify(120); label != LabelUnknown {
		t.Errorf("empty palette ForceClassify = %q, want %q", label, LabelUnknown)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "default valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "negative radius", mutate: func(c *Config) { c.ConfidenceRadius = -1 }, wantErr: true},
		{name: "zero radius", mutate: func(c *Config) { c.ConfidenceRadius = 0 }, wantErr: true},
		{name: "saturation threshold too high", mutate: func(c *Config) { c.SaturationThreshold = 101 }, wantErr: true},
		{name: "value threshold negative", mutate: func(c *Config) { c.ValueThreshold = -5 }, wantErr: true},
		{name: "floor above one", mutate: func(c *Config) { c.ConfidenceFloor = 1.5 }, wantErr: true},
		{name: "palette hue out of range", mutate: func(c *Config) {
			c.Palette = Palette{{Label: LabelRed, Hue: 360}}
		}, wantErr: true},
		{name: "unknown in palette", mutate: func(c *Config) {
			c.Palette = Palette{{Label: LabelUnknown, Hue: 0}}
		}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// uniformImage builds an image filled with a single colour.
func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
