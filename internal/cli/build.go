package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardforge/pkg/pipeline"
)

// buildCommand creates the build command for assembling cards from raw data.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		title       string
		format      string
		cardVersion string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "build [input-file]",
		Short: "Build an adaptive card from JSON or CSV data",
		Long: `Build an adaptive card from structured data.

The build command reads JSON or CSV from a file (or stdin with "-"), infers
the shape of the data, and synthesizes a card: maps become fact lists,
arrays of records become tables, plain arrays become bullet lists.

Malformed input never fails the build; the problem is rendered as an inline
error element so it is visible in the card itself.

Examples:
  cardforge build data.json                      # Card from a JSON file
  cardforge build report.csv --format csv        # Card from CSV
  echo '{"Name":"John"}' | cardforge build -     # Card from stdin
  cardforge build data.json --title "Report" -o card.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input %s: %w", args[0], err)
			}

			opts := pipeline.Options{
				Input:          input,
				Format:         format,
				Title:          title,
				Version:        cardVersion,
				SkipValidation: true,
				Logger:         c.Logger,
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			crd := c.newRunner().Assemble(opts)
			data, err := crd.JSON()
			if err != nil {
				return fmt.Errorf("encode card: %w", err)
			}
			if err := writeOutput(output, data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if output != "" {
				printSuccess("Built card with %d elements", len(crd.Body))
				printFile(output)
				printNextStep("Validate it", fmt.Sprintf("cardforge validate %s", output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "heading to place above the mapped data")
	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: auto (default), json, csv")
	cmd.Flags().StringVar(&cardVersion, "card-version", "", "adaptive card schema version (default 1.5)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
