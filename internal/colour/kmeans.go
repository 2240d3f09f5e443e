package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"
)

// Options holds the construction-time tunables of an Extractor.
type Options struct {
	// ClusterCount is the number of dominant colours to extract (k).
	ClusterCount int

	// Stride is the sampling step used to build the pixel population.
	Stride int

	// Iterations is the fixed number of k-means refinement rounds. There
	// is no convergence check; the extractor always runs the full count.
	Iterations int
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		ClusterCount: 3,
		Stride:       4,
		Iterations:   10,
	}
}

// Validate validates the extraction options.
func (o Options) Validate() error {
	if o.ClusterCount < 1 {
		return fmt.Errorf("cluster count must be at least 1, got %d", o.ClusterCount)
	}
	if o.Stride < 1 {
		return fmt.Errorf("stride must be at least 1, got %d", o.Stride)
	}
	if o.Iterations < 1 {
		return fmt.Errorf("iteration count must be at least 1, got %d", o.Iterations)
	}
	return nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) toRGB() RGB {
	return RGB{
		R: uint8(math.Round(p.R)),
		G: uint8(math.Round(p.G)),
		B: uint8(math.Round(p.B)),
	}
}

// Extractor finds the dominant colours of an image region via k-means
// clustering and classifies each against the palette. The random source
// used for centroid initialisation is injectable so clustering is
// reproducible under test.
type Extractor struct {
	opts       Options
	classifier *Classifier
	rng        *rand.Rand
}

// NewExtractor creates an Extractor with a time-seeded random source.
func NewExtractor(cfg Config, opts Options) (*Extractor, error) {
	return NewExtractorWithRand(cfg, opts, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewExtractorWithRand creates an Extractor using the caller's random
// source. Tests pass a fixed seed to make centroid initialisation, and
// with it the whole extraction, deterministic.
func NewExtractorWithRand(cfg Config, opts Options, rng *rand.Rand) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extraction options: %w", err)
	}
	classifier, err := NewClassifier(cfg)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &Extractor{opts: opts, classifier: classifier, rng: rng}, nil
}

// Classifier returns the classifier the extractor was built with.
func (e *Extractor) Classifier() *Classifier {
	return e.classifier
}

// Extract returns up to ClusterCount dominant colours of the given region,
// each classified against the palette. Centroids that classify as
// LabelUnknown are filtered out, so an all-achromatic region yields an
// empty slice — a valid outcome, not an error. When the sampled population
// is smaller than the cluster count the extractor degrades to the
// single-mean path and returns exactly one result.
func (e *Extractor) Extract(img image.Image, rect image.Rectangle) ([]Result, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	pixels := SamplePixels(img, rect, e.opts.Stride)

	// Clustering an under-determined population is meaningless; fall back
	// to classifying the region mean.
	if len(pixels) < e.opts.ClusterCount {
		result, err := e.classifier.ClassifyRegion(img, rect)
		if err != nil {
			return nil, err
		}
		return []Result{result}, nil
	}

	centroids := e.cluster(pixels)

	results := make([]Result, 0, len(centroids))
	for _, centroid := range centroids {
		result := e.classifier.ClassifyRGB(centroid.toRGB())
		if result.Label == LabelUnknown {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// cluster runs fixed-iteration k-means over the pixel population and
// returns the final centroids. The centroid slice is owned by this call
// for its duration and discarded after conversion to results.
func (e *Extractor) cluster(pixels []RGB) []point3D {
	points := make([]point3D, len(pixels))
	for i, rgb := range pixels {
		points[i] = point3D{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B)}
	}

	k := e.opts.ClusterCount

	// Initialise centroids from random population picks, with replacement:
	// a short population duplicates an existing pick rather than leaving a
	// slot unfilled.
	centroids := make([]point3D, k)
	for i := range centroids {
		centroids[i] = points[e.rng.Intn(len(points))]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < e.opts.Iterations; iter++ {
		// Assign every point to its nearest centroid by Euclidean RGB
		// distance; ties keep the lowest centroid index.
		for i, point := range points {
			nearest := 0
			minDist := math.MaxFloat64
			for j, centroid := range centroids {
				if dist := point.distance(centroid); dist < minDist {
					minDist = dist
					nearest = j
				}
			}
			assignments[i] = nearest
		}

		// Recompute each non-empty cluster's centroid as the mean of its
		// members. Clusters with no members this round keep their previous
		// centroid unchanged.
		sums := make([]point3D, k)
		counts := make([]int, k)
		for i, point := range points {
			cluster := assignments[i]
			sums[cluster].R += point.R
			sums[cluster].G += point.G
			sums[cluster].B += point.B
			counts[cluster]++
		}
		for i := range centroids {
			if counts[i] > 0 {
				centroids[i] = point3D{
					R: sums[i].R / float64(counts[i]),
					G: sums[i].G / float64(counts[i]),
					B: sums[i].B / float64(counts[i]),
				}
			}
		}
	}

	return centroids
}
