package cli

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/huesense/huesense/internal/colour"
)

// classifierFlags holds the classifier tunables shared by the classify and
// dominant commands.
type classifierFlags struct {
	saturationThreshold float64
	valueThreshold      float64
	radius              float64
	floor               float64
	palette             []string
}

// register adds the shared classifier flags to a command.
func (f *classifierFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.saturationThreshold, "saturation-threshold", 20, "saturation percentage below which colours are unclassifiable")
	cmd.Flags().Float64Var(&f.valueThreshold, "value-threshold", 20, "value percentage below which colours are unclassifiable")
	cmd.Flags().Float64Var(&f.radius, "radius", 60, "hue distance in degrees at which confidence reaches zero")
	cmd.Flags().Float64Var(&f.floor, "floor", 0, "reject matches below this confidence (0 disables rejection)")
	cmd.Flags().StringSliceVar(&f.palette, "palette", nil, "palette entries as label=hue or label=#hex (default: built-in palette)")
}

// config builds a classifier configuration from the parsed flags.
func (f *classifierFlags) config() (colour.Config, error) {
	cfg := colour.DefaultConfig()
	cfg.SaturationThreshold = f.saturationThreshold
	cfg.ValueThreshold = f.valueThreshold
	cfg.ConfidenceRadius = f.radius
	if f.floor > 0 {
		cfg.RejectBelowFloor = true
		cfg.ConfidenceFloor = f.floor
	}
	if len(f.palette) > 0 {
		palette, err := parsePalette(f.palette)
		if err != nil {
			return colour.Config{}, err
		}
		cfg.Palette = palette
	}
	return cfg, nil
}

// parsePalette parses palette entries of the form "label=hue" or
// "label=#hex". Hex values are converted through HSV and anchored at the
// resulting hue.
func parsePalette(entries []string) (colour.Palette, error) {
	palette := make(colour.Palette, 0, len(entries))
	for _, entry := range entries {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("invalid palette entry %q (expected label=hue or label=#hex)", entry)
		}

		label, err := colour.ParseLabel(name)
		if err != nil {
			return nil, fmt.Errorf("invalid palette entry %q: %w", entry, err)
		}

		var hue float64
		if strings.HasPrefix(value, "#") {
			c, err := colorful.Hex(value)
			if err != nil {
				return nil, fmt.Errorf("invalid palette entry %q: %w", entry, err)
			}
			hue = colour.RGBToHSV(colour.RGB{
				R: uint8(c.R*255 + 0.5),
				G: uint8(c.G*255 + 0.5),
				B: uint8(c.B*255 + 0.5),
			}).H
		} else {
			hue, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid palette entry %q: %w", entry, err)
			}
		}

		palette = append(palette, colour.PaletteEntry{Label: label, Hue: hue})
	}
	return palette, nil
}

// parseRegion parses a region flag of the form "x,y,w,h".
func parseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q (expected x,y,w,h)", s)
	}
	values := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		values[i] = v
	}
	return colour.Region(values[0], values[1], values[2], values[3]), nil
}
