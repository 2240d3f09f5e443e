package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/huesense/huesense/internal/colour"
	"github.com/huesense/huesense/internal/image"
)

var (
	// Dominant command flags
	dominantRegion     string
	dominantFormat     string
	dominantPreview    bool
	dominantClusters   int
	dominantStride     int
	dominantIterations int
	dominantSeed       int64
	dominantFlags      classifierFlags
)

// dominantCmd represents the dominant command
var dominantCmd = &cobra.Command{
	Use:   "dominant <image>",
	Short: "Extract and classify the dominant colours of an image region",
	Long: `Dominant clusters the pixels of a rectangular region with k-means and
names each cluster centroid against the reference palette.

Centroids that cannot be named (achromatic or unclassifiable) are left
out of the output; a region of pure greys legitimately yields no colours.
When the region holds fewer sampled pixels than requested clusters the
command falls back to classifying the region mean.

Examples:
  # Find the 3 dominant colours (default) of the whole image
  huesense dominant photo.jpg

  # Find 5 dominant colours of a region, with swatches
  huesense dominant -k 5 --region 0,0,320,240 --preview photo.jpg

  # Reproducible clustering for scripting
  huesense dominant --seed 42 --format json photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runDominant,
}

func init() {
	dominantCmd.Flags().StringVarP(&dominantRegion, "region", "r", "", "region to analyse as x,y,w,h (default: whole image)")
	dominantCmd.Flags().StringVarP(&dominantFormat, "format", "f", "table", "output format (table, json)")
	dominantCmd.Flags().BoolVar(&dominantPreview, "preview", false, "show colour swatches in terminal output")
	dominantCmd.Flags().IntVarP(&dominantClusters, "clusters", "k", 3, "number of dominant colours to extract")
	dominantCmd.Flags().IntVar(&dominantStride, "stride", 4, "pixel sampling stride for the clustering population")
	dominantCmd.Flags().IntVar(&dominantIterations, "iterations", 10, "number of k-means refinement rounds")
	dominantCmd.Flags().Int64Var(&dominantSeed, "seed", 0, "random seed for centroid initialisation (0 = non-deterministic)")
	dominantFlags.register(dominantCmd)
}

// runDominant executes the dominant command.
func runDominant(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	cfg, err := dominantFlags.config()
	if err != nil {
		return err
	}
	opts := colour.Options{
		ClusterCount: dominantClusters,
		Stride:       dominantStride,
		Iterations:   dominantIterations,
	}

	var extractor *colour.Extractor
	if dominantSeed != 0 {
		extractor, err = colour.NewExtractorWithRand(cfg, opts, rand.New(rand.NewSource(dominantSeed)))
	} else {
		extractor, err = colour.NewExtractor(cfg, opts)
	}
	if err != nil {
		return err
	}

	img, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "path", imagePath, "width", bounds.Dx(), "height", bounds.Dy())

	rect := bounds
	if dominantRegion != "" {
		rect, err = parseRegion(dominantRegion)
		if err != nil {
			return err
		}
	}

	results, err := extractor.Extract(img, rect)
	if err != nil {
		return err
	}
	logger.Debug("region analysed", "region", rect.String(), "colours", len(results))
	for _, result := range results {
		logger.Debug("dominant colour",
			"label", string(result.Label),
			"hex", result.RGB.Hex(),
			"confidence", fmt.Sprintf("%.2f", result.Confidence))
	}

	if len(results) == 0 {
		logger.Warn("no classifiable colours in region", "region", rect.String())
	}

	return printResults(cmd, results, dominantFormat, dominantPreview)
}
