// Package pipeline provides the core card pipeline for Cardforge.
//
// This package implements the complete map → validate → deliver pipeline
// that can be used by CLI and library consumers. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Map: Infer the shape of raw input (JSON, CSV) and synthesize card elements
//  2. Validate: Check the assembled card against the target platform's profile
//  3. Deliver: Post the card to a webhook endpoint (optional)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:  rawJSON,
//	    Title:  "Build Report",
//	    Target: "teams",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := result.Card.JSON()
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/delivery"
	"github.com/matzehuels/cardforge/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

// Input format constants.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidFormats is the set of supported input formats.
var ValidFormats = map[string]bool{
	FormatAuto: true,
	FormatJSON: true,
	FormatCSV:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the card pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Map options
	Input  string `json:"input"`
	Format string `json:"format,omitempty"`
	Title  string `json:"title,omitempty"`

	// Card options
	Version string `json:"version,omitempty"`

	// Validate options
	Target         string `json:"target,omitempty"`
	SkipValidation bool   `json:"skip_validation,omitempty"`

	// Deliver options
	Deliver    bool   `json:"deliver,omitempty"`
	WebhookURL string `json:"webhook_url,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Card is the assembled card.
	Card *card.Card

	// Report is the validation report, nil when validation was skipped.
	Report *validate.Report

	// Delivery is the delivery outcome, nil when delivery was not requested
	// or was blocked by a failed validation.
	Delivery *delivery.Result

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	MapTime      time.Duration
	ValidateTime time.Duration
	DeliverTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an input format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: auto, json, csv)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return fmt.Errorf("input is required")
	}
	if o.Format == "" {
		o.Format = FormatAuto
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Version == "" {
		o.Version = card.DefaultVersion
	}
	if o.Target == "" {
		o.Target = validate.DefaultTarget
	}
	if o.Deliver && o.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required for delivery")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
