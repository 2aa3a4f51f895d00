package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardforge/pkg/delivery"
	"github.com/matzehuels/cardforge/pkg/validate"
)

// sendCommand creates the send command for delivering cards to a webhook.
func (c *CLI) sendCommand() *cobra.Command {
	var (
		webhookURL string
		target     string
		noValidate bool
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "send [card-file]",
		Short: "Deliver a card to a webhook endpoint",
		Long: `Deliver a card to a platform webhook endpoint.

The send command reads a card JSON file (or stdin with "-"), validates it
against the target platform and posts it to the webhook wrapped in the
platform's message envelope. Validation failures block delivery unless
--no-validate is set.

The webhook URL and target can be set per invocation or stored in the
config file (default ~/.config/cardforge/config.toml):

  webhook_url = "https://outlook.office.com/webhook/..."
  target = "teams"

Examples:
  cardforge send card.json --webhook https://example.com/hook
  cardforge send card.json --target teams
  cardforge send card.json --no-validate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			crd, err := readCard(args[0])
			if err != nil {
				return fmt.Errorf("read card %s: %w", args[0], err)
			}

			cfg, err := resolveConfig(configFile)
			if err != nil {
				return err
			}
			if webhookURL == "" {
				webhookURL = cfg.WebhookURL
			}
			if target == "" {
				target = cfg.Target
			}
			if target == "" {
				target = validate.DefaultTarget
			}
			if webhookURL == "" {
				return fmt.Errorf("no webhook URL: pass --webhook or set webhook_url in %s", defaultConfigPathHint())
			}

			opts := []delivery.Option{}
			if cfg.Profiles != "" {
				validator, err := buildValidator(target, cfg.Profiles)
				if err != nil {
					return err
				}
				opts = append(opts, delivery.WithValidator(validator))
			}

			client, err := delivery.New(webhookURL, target, opts...)
			if err != nil {
				return err
			}

			logger.Debug("sending card", "target", target)
			track := newProgress(logger)
			if noValidate {
				printInfo("Validation skipped")
			}
			spinner := newSpinnerWithContext(ctx, "Delivering card to "+target)
			spinner.Start()

			var result *delivery.Result
			if noValidate {
				result = client.SendUnchecked(ctx, crd)
			} else {
				result = client.Send(ctx, crd)
			}

			if spinner.Cancelled() {
				spinner.Stop()
				return ctx.Err()
			}

			if !result.Success {
				spinner.StopWithError(result.Message)
				if result.Validation != nil {
					printReport(target, *result.Validation)
				}
				return fmt.Errorf("delivery failed")
			}

			spinner.StopWithSuccess(result.Message)
			track.done("card delivered")
			printKeyValue("delivery", result.DeliveryID)
			if result.Validation != nil {
				printStats(0, result.Validation.SizeKB, result.Validation.Valid)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&webhookURL, "webhook", "", "webhook URL (overrides config)")
	cmd.Flags().StringVar(&target, "target", "", "target platform (overrides config)")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip validation before delivery")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path")

	return cmd
}

// resolveConfig loads the config from an explicit path or the default
// location. A missing default config is not an error.
func resolveConfig(path string) (config, error) {
	if path != "" {
		return loadConfig(path)
	}
	return defaultConfig(), nil
}

func defaultConfigPathHint() string {
	path, err := configPath()
	if err != nil {
		return "the config file"
	}
	return path
}
