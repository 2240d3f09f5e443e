package cli

import (
	"image"
	"math"
	"testing"

	"github.com/huesense/huesense/internal/colour"
)

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    colour.Palette
		wantErr bool
	}{
		{
			name:    "numeric hues",
			entries: []string{"red=0", "green=120.5"},
			want: colour.Palette{
				{Label: colour.LabelRed, Hue: 0},
				{Label: colour.LabelGreen, Hue: 120.5},
			},
		},
		{
			name:    "hex value",
			entries: []string{"blue=#0000ff"},
			want: colour.Palette{
				{Label: colour.LabelBlue, Hue: 240},
			},
		},
		{
			name:    "many-to-one labels",
			entries: []string{"purple=275", "purple=290"},
			want: colour.Palette{
				{Label: colour.LabelPurple, Hue: 275},
				{Label: colour.LabelPurple, Hue: 290},
			},
		},
		{name: "missing separator", entries: []string{"red"}, wantErr: true},
		{name: "unknown label", entries: []string{"magenta=300"}, wantErr: true},
		{name: "bad hue", entries: []string{"red=abc"}, wantErr: true},
		{name: "bad hex", entries: []string{"red=#zzz"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePalette(tt.entries)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePalette(%v) error = %v, wantErr %v", tt.entries, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parsePalette returned %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Label != tt.want[i].Label || math.Abs(got[i].Hue-tt.want[i].Hue) > 0.5 {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input   string
		want    image.Rectangle
		wantErr bool
	}{
		{input: "0,0,100,50", want: image.Rect(0, 0, 100, 50)},
		{input: "10, 20, 30, 40", want: image.Rect(10, 20, 40, 60)},
		{input: "5,5,-10,10", want: image.Rect(5, 5, 5, 15)}, // negative width clamps
		{input: "1,2,3", wantErr: true},
		{input: "a,b,c,d", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseRegion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRegion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseRegion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifierFlagsConfig(t *testing.T) {
	f := classifierFlags{
		saturationThreshold: 15,
		valueThreshold:      10,
		radius:              45,
		floor:               0.4,
	}
	cfg, err := f.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.SaturationThreshold != 15 || cfg.ValueThreshold != 10 || cfg.ConfidenceRadius != 45 {
		t.Errorf("thresholds not applied: %+v", cfg)
	}
	if !cfg.RejectBelowFloor || cfg.ConfidenceFloor != 0.4 {
		t.Errorf("floor > 0 should enable rejection: %+v", cfg)
	}

	// Zero floor leaves rejection disabled.
	f.floor = 0
	cfg, err = f.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.RejectBelowFloor {
		t.Error("zero floor should leave rejection disabled")
	}
	if len(cfg.Palette) == 0 {
		t.Error("default palette should be used when no entries are given")
	}
}
