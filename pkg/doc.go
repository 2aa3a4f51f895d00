// Package pkg provides the core libraries for Cardforge adaptive card tooling.
//
// # Overview
//
// Cardforge turns structured data into platform-ready adaptive cards. The pkg
// directory is organized into a handful of focused areas:
//
//  1. [card] - Card document model (elements, actions, JSON codec)
//  2. [mapper] - Data-to-card mapping with shape inference (JSON, CSV)
//  3. [validate] - Platform profiles, validation, and optimization hints
//  4. [delivery] - Webhook delivery with envelopes and retries
//  5. [pipeline] - Orchestration (map → validate → deliver)
//
// # Architecture
//
// The typical data flow through Cardforge:
//
//	JSON / CSV input
//	         ↓
//	    [mapper] package (infer shape, build elements)
//	         ↓
//	    [card] package (assemble the document)
//	         ↓
//	    [validate] package (profile checks, size, versions)
//	         ↓
//	    [delivery] package (envelope + webhook POST)
//
// # Quick Start
//
// Map data, validate and deliver:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/cardforge/pkg/card"
//	    "github.com/matzehuels/cardforge/pkg/mapper"
//	    "github.com/matzehuels/cardforge/pkg/validate"
//	    "github.com/matzehuels/cardforge/pkg/delivery"
//	)
//
//	// 1. Map input data to elements
//	elements := mapper.FromJSON(`{"status": "ok", "count": 3}`)
//
//	// 2. Assemble the card
//	crd := card.New().AddElements(elements...)
//
//	// 3. Validate against a platform profile
//	validator, _ := validate.New("teams")
//	report := validator.Validate(crd)
//
//	// 4. Deliver to a webhook
//	client, _ := delivery.New(webhookURL, "teams")
//	result := client.Send(context.Background(), crd)
//
// # Main Packages
//
// [card] - The document model. Typed elements (TextBlock, Image, FactSet,
// Container, ColumnSet, inputs) and actions with insertion-order JSON
// marshalling, plus a decoder that round-trips unknown element types.
//
// [card/factory] - Constructors for single elements with sensible defaults:
// headings, styled text, images, and input controls.
//
// [card/layout] - Composition helpers for containers and column arrangements:
// equal columns, weighted two-column splits, and header/body/footer sections.
//
// [mapper] - Shape inference over arbitrary data. Scalars, flat maps, lists
// of maps, and nested structures each map to an appropriate element tree.
//
// [template] - Prebuilt card patterns (notification, form, article, dashboard,
// confirmation) assembled from the factory and layout helpers.
//
// [validate] - Platform profiles with size limits and minimum schema versions,
// a validator producing structured reports, and an optimization suggester.
// Profiles can be overridden from TOML files.
//
// [delivery] - Webhook delivery. Wraps cards in the platform message envelope,
// validates before sending, and retries transient failures with backoff.
//
// [pipeline] - The complete map → validate → deliver pipeline used by the CLI.
//
// ## Supporting Packages
//
// [errors] - Structured errors with codes plus input validation helpers.
//
// [httputil] - Retry with exponential backoff and retryable status detection.
//
// [observability] - Pluggable hooks for pipeline stages and HTTP traffic.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/validate/...   # Specific package
//
// [card]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/card
// [card/factory]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/card/factory
// [card/layout]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/card/layout
// [mapper]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/mapper
// [template]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/template
// [validate]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/validate
// [delivery]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/delivery
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cardforge/pkg/buildinfo
package pkg
