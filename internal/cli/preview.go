package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardforge/pkg/validate"
)

// previewCommand creates the preview command for browsing a card's element
// tree in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "preview [card-file]",
		Short: "Browse a card's element tree interactively",
		Long: `Browse a card's element tree in an interactive terminal view.

The preview command reads a card JSON file and shows its body as an
indented tree of elements. Navigate with the arrow keys and press enter
to toggle the JSON of the selected element.

Examples:
  cardforge preview card.json
  cardforge preview card.json --target teams`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crd, err := readCard(args[0])
			if err != nil {
				return fmt.Errorf("read card %s: %w", args[0], err)
			}

			validator, err := validate.New(target)
			if err != nil {
				return err
			}

			m := NewCardTreeModel(crd, validator.Size(crd))
			p := tea.NewProgram(m)
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", validate.DefaultTarget, "target platform used for the size readout")

	return cmd
}
