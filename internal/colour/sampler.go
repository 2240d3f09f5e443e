package colour

import (
	"image"
	"math"
)

// meanStride is the fixed sampling step used by SampleMean: every second
// row and column, trading exactness for speed on large regions.
const meanStride = 2

// Region builds a sampling rectangle from an origin and dimensions.
// Negative dimensions clamp to zero so malformed geometry degrades toward
// the empty-region case instead of erroring.
func Region(x, y, width, height int) image.Rectangle {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return image.Rect(x, y, x+width, y+height)
}

// SampleMean returns the per-channel mean colour of rect clipped to the
// image bounds, sampling every second row and column. The boolean reports
// whether any pixel was sampled: an empty clipped region yields the zero
// RGB and false, never an out-of-range access.
func SampleMean(img image.Image, rect image.Rectangle) (RGB, bool) {
	clipped := rect.Intersect(img.Bounds())

	var sumR, sumG, sumB, count int64
	for y := clipped.Min.Y; y < clipped.Max.Y; y += meanStride {
		for x := clipped.Min.X; x < clipped.Max.X; x += meanStride {
			rgb := ToRGB(img.At(x, y))
			sumR += int64(rgb.R)
			sumG += int64(rgb.G)
			sumB += int64(rgb.B)
			count++
		}
	}
	if count == 0 {
		return RGB{}, false
	}

	return RGB{
		R: uint8(math.Round(float64(sumR) / float64(count))),
		G: uint8(math.Round(float64(sumG) / float64(count))),
		B: uint8(math.Round(float64(sumB) / float64(count))),
	}, true
}

// SamplePixels collects the pixels of rect clipped to the image bounds at
// the given stride, as the population for clustering. A stride below 1 is
// treated as 1. The returned slice is materialised once per call and owned
// by the caller.
func SamplePixels(img image.Image, rect image.Rectangle, stride int) []RGB {
	if stride < 1 {
		stride = 1
	}
	clipped := rect.Intersect(img.Bounds())
	if clipped.Empty() {
		return nil
	}

	capacity := ((clipped.Dx() + stride - 1) / stride) * ((clipped.Dy() + stride - 1) / stride)
	pixels := make([]RGB, 0, capacity)
	for y := clipped.Min.Y; y < clipped.Max.Y; y += stride {
		for x := clipped.Min.X; x < clipped.Max.X; x += stride {
			pixels = append(pixels, ToRGB(img.At(x, y)))
		}
	}
	return pixels
}
