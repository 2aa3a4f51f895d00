package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/card/factory"
	"github.com/matzehuels/cardforge/pkg/delivery"
	"github.com/matzehuels/cardforge/pkg/mapper"
	"github.com/matzehuels/cardforge/pkg/observability"
	"github.com/matzehuels/cardforge/pkg/validate"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger

	// ClientOptions are applied to delivery clients the runner builds,
	// mainly useful for tightening timeouts and retry policy in tests.
	ClientOptions []delivery.Option
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete map → validate → deliver pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Map
	mapStart := time.Now()
	crd := r.Assemble(opts)
	result.Card = crd
	result.Stats.MapTime = time.Since(mapStart)
	result.Stats.ElementCount = len(crd.Body)

	r.Logger.Info("mapped input",
		"format", opts.Format,
		"elements", result.Stats.ElementCount,
		"duration", result.Stats.MapTime)

	// Stage 2: Validate
	if !opts.SkipValidation {
		validateStart := time.Now()
		report, err := r.Validate(ctx, crd, opts)
		if err != nil {
			return nil, fmt.Errorf("validate: %w", err)
		}
		result.Report = &report
		result.Stats.ValidateTime = time.Since(validateStart)

		r.Logger.Info("validated card",
			"target", opts.Target,
			"valid", report.Valid,
			"size_kb", report.SizeKB,
			"duration", result.Stats.ValidateTime)

		if !report.Valid && opts.Deliver {
			r.Logger.Warn("skipping delivery, card failed validation",
				"details", report.Details)
			return result, nil
		}
	}

	// Stage 3: Deliver
	if opts.Deliver {
		deliverStart := time.Now()
		dres, err := r.Deliver(ctx, crd, opts)
		if err != nil {
			return nil, fmt.Errorf("deliver: %w", err)
		}
		result.Delivery = dres
		result.Stats.DeliverTime = time.Since(deliverStart)

		r.Logger.Info("delivered card",
			"target", opts.Target,
			"success", dres.Success,
			"status", dres.StatusCode,
			"duration", result.Stats.DeliverTime)
	}

	return result, nil
}

// Assemble maps raw input into a card without validating or delivering it.
// Malformed input never fails: the mapper degrades to inline error elements
// so the problem is visible in the card itself.
func (r *Runner) Assemble(opts Options) *card.Card {
	ctx := context.Background()
	observability.Pipeline().OnMapStart(ctx, opts.Format)
	start := time.Now()

	var elements []card.Element
	switch opts.Format {
	case FormatCSV:
		elements = mapper.CSV(opts.Input)
	case FormatJSON:
		elements = mapper.FromJSON(opts.Input)
	default:
		elements = autoMap(opts.Input)
	}

	crd := card.NewWithVersion(opts.Version)
	if opts.Title != "" {
		crd.AddElement(factory.Heading(opts.Title, 1))
	}
	crd.AddElements(elements...)

	observability.Pipeline().OnMapComplete(ctx, opts.Format, len(crd.Body), time.Since(start), nil)
	return crd
}

// Validate checks a card against the target named in opts.
func (r *Runner) Validate(ctx context.Context, crd *card.Card, opts Options) (validate.Report, error) {
	v, err := validate.New(opts.Target)
	if err != nil {
		return validate.Report{}, err
	}

	observability.Pipeline().OnValidateStart(ctx, opts.Target)
	start := time.Now()
	report := v.Validate(crd)
	observability.Pipeline().OnValidateComplete(ctx, opts.Target, report.Valid, report.SizeKB, time.Since(start))
	return report, nil
}

// Deliver posts a card to the webhook named in opts. Validation is assumed
// to have happened already; the card is sent as-is.
func (r *Runner) Deliver(ctx context.Context, crd *card.Card, opts Options) (*delivery.Result, error) {
	client, err := delivery.New(opts.WebhookURL, opts.Target, r.ClientOptions...)
	if err != nil {
		return nil, err
	}
	return client.SendUnchecked(ctx, crd), nil
}

// autoMap picks the mapper for unannotated input: values with a comma in
// the first line but no JSON structure are treated as CSV, everything else
// goes through JSON shape inference.
func autoMap(input string) []card.Element {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{', '[', '"':
			return mapper.FromJSON(input)
		}
	}
	firstLine, _, _ := strings.Cut(trimmed, "\n")
	if strings.Contains(firstLine, ",") {
		return mapper.CSV(input)
	}
	return mapper.FromJSON(input)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
