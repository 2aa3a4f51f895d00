package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardforge/pkg/validate"
)

// validateCommand creates the validate command for checking cards against a
// platform profile.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		target   string
		profiles string
	)

	cmd := &cobra.Command{
		Use:   "validate [card-file]",
		Short: "Validate a card against a platform's constraints",
		Long: `Validate a card against a target platform's size and schema constraints.

The validate command reads a card JSON file (or stdin with "-") and checks
it against the target's profile: structural soundness, schema version
compatibility, and serialized size. The command exits non-zero when the
card is invalid so it can gate CI pipelines.

Profiles can be overridden with a TOML file:

  [profiles.teams]
  size_limit_kb = 25.0

Examples:
  cardforge validate card.json
  cardforge validate card.json --target teams
  cardforge validate card.json --profiles ./profiles.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crd, err := readCard(args[0])
			if err != nil {
				return fmt.Errorf("read card %s: %w", args[0], err)
			}

			validator, err := buildValidator(target, profiles)
			if err != nil {
				return err
			}

			report := validator.Validate(crd)
			printReport(target, report)

			if !report.Valid {
				return fmt.Errorf("card is invalid for target %q", target)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", validate.DefaultTarget, "target platform profile")
	cmd.Flags().StringVar(&profiles, "profiles", "", "TOML file with profile overrides")

	return cmd
}

// buildValidator resolves a validator from a target name and an optional
// profile override file.
func buildValidator(target, profilesPath string) (*validate.Validator, error) {
	if profilesPath == "" {
		return validate.New(target)
	}

	overrides, err := validate.LoadProfiles(profilesPath)
	if err != nil {
		return nil, err
	}
	profile, ok := overrides[strings.ToLower(target)]
	if !ok {
		return nil, fmt.Errorf("target %q not defined in %s", target, profilesPath)
	}
	return validate.NewWithProfile(profile), nil
}

// printReport renders a validation report with styled status lines.
func printReport(target string, report validate.Report) {
	if report.Valid {
		printSuccess("Card is valid for %s", StyleHighlight.Render(target))
	} else {
		printError("Card is invalid for %s", StyleHighlight.Render(target))
	}

	printKeyValue("size", fmt.Sprintf("%.2f KB / %g KB", report.SizeKB, report.SizeLimitKB))

	for _, detail := range report.Details {
		printDetail("%s", string(detail))
	}
	for _, warning := range report.Warnings {
		printWarning("%s", warning)
	}
	for _, suggestion := range report.Suggestions {
		printDetail("%s", suggestion)
	}
}
