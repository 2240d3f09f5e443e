package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huesense/huesense/internal/colour"
)

// printResults renders classification results to the command's stdout in
// the requested format.
func printResults(cmd *cobra.Command, results []colour.Result, format string, preview bool) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := colour.ResultsToJSON(results)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil

	case "table":
		if preview {
			for _, result := range results {
				fmt.Fprintln(out, colour.ColourPreviewWithText(result.RGB, string(result.Label), 16))
			}
			fmt.Fprintln(out)
		}

		table := NewTable([]string{"LABEL", "CONFIDENCE", "HEX", "RGB", "HSV"})
		for _, result := range results {
			table.AddRow([]string{
				string(result.Label),
				fmt.Sprintf("%.2f", result.Confidence),
				result.RGB.Hex(),
				result.RGB.String(),
				result.HSV.String(),
			})
		}
		fmt.Fprint(out, table.Render())
		return nil

	default:
		return fmt.Errorf("invalid output format: %s (valid: table, json)", format)
	}
}
