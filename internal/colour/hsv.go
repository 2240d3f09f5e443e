// Package colour provides region-based colour classification: HSV
// conversion, palette matching and dominant-colour extraction.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// HSV represents a colour in HSV space: hue in degrees [0, 360),
// saturation and value as percentages [0, 100]. HSV values are always
// derived from an RGB triple via RGBToHSV, never constructed directly.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// String returns the HSV colour as a string in the format "hsv(h, s%, v%)".
func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%.0f, %.0f%%, %.0f%%)", hsv.H, hsv.S, hsv.V)
}

// RGBToHSV converts an RGB triple to HSV. It is a total function with no
// failure states. When the colour is achromatic (max == min) the hue is
// defined as 0. Channel ties are resolved in declaration order (r, then g,
// then b) so the conversion is bit-for-bit reproducible.
func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := r
	if g > maxVal {
		maxVal = g
	}
	if b > maxVal {
		maxVal = b
	}
	minVal := r
	if g < minVal {
		minVal = g
	}
	if b < minVal {
		minVal = b
	}
	diff := maxVal - minVal

	v := maxVal * 100

	var s float64
	if maxVal > 0 {
		s = diff / maxVal * 100
	}

	var h float64
	if diff > 0 {
		// Six-sector hue formula dispatched on the first channel that
		// attains the maximum, in r, g, b order.
		switch maxVal {
		case r:
			h = 60 * ((g - b) / diff)
		case g:
			h = 60 * ((b-r)/diff + 2)
		case b:
			h = 60 * ((r-g)/diff + 4)
		}
		if h < 0 {
			h += 360
		}
	}

	return HSV{H: h, S: s, V: v}
}

// hueDistance calculates the angular distance between two hues on the
// colour wheel. Returns a value between 0 and 180 degrees (shortest path
// around the wheel).
func hueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// normaliseHue maps an arbitrary hue value onto [0, 360).
func normaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
