package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huesense/huesense/internal/colour"
	"github.com/huesense/huesense/internal/image"
)

var (
	// Classify command flags
	classifyRegion  string
	classifyFormat  string
	classifyPreview bool
	classifyFlags   classifierFlags
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <image>",
	Short: "Classify the mean colour of an image region",
	Long: `Classify averages the pixels of a rectangular region and names the
resulting colour against the reference palette.

The region is clipped to the image bounds; an empty region yields the
unknown label at zero confidence rather than an error.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Classify the whole image
  huesense classify photo.jpg

  # Classify a 100x100 region at (50, 50)
  huesense classify --region 50,50,100,100 photo.jpg

  # Classify with a custom palette and JSON output
  huesense classify --palette red=0,blue=210 --format json photo.jpg

  # Reject low-confidence matches instead of forcing the nearest label
  huesense classify --floor 0.3 photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyRegion, "region", "r", "", "region to classify as x,y,w,h (default: whole image)")
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "table", "output format (table, json)")
	classifyCmd.Flags().BoolVar(&classifyPreview, "preview", false, "show a colour swatch in terminal output")
	classifyFlags.register(classifyCmd)
}

// runClassify executes the classify command.
func runClassify(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	cfg, err := classifyFlags.config()
	if err != nil {
		return err
	}
	classifier, err := colour.NewClassifier(cfg)
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
	if classifyRegion != "" {
		rect, err = parseRegion(classifyRegion)
		if err != nil {
			return err
		}
	}

	result, err := classifier.ClassifyRegion(img, rect)
	if err != nil {
		return err
	}
	logger.Debug("region classified",
		"region", rect.String(),
		"label", string(result.Label),
		"confidence", fmt.Sprintf("%.2f", result.Confidence))

	return printResults(cmd, []colour.Result{result}, classifyFormat, classifyPreview)
}
