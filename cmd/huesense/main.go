// Huesense - region-based colour classification
//
// Huesense samples rectangular regions of an image and classifies them
// into a small set of human colour names with a confidence score.
package main

import (
	"github.com/huesense/huesense/internal/cli"
)

func main() {
	cli.Execute()
}
