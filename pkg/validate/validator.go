package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/errors"
)

// Failure identifies a constraint violation found during validation.
type Failure string

const (
	FailureEmptyCard           Failure = "EMPTY_CARD"
	FailureInvalidFieldVersion Failure = "INVALID_FIELD_VERSION"
	FailureSizeLimitExceeded   Failure = "SIZE_LIMIT_EXCEEDED"
)

// Report is the result of validating a single card. Failures are collected
// rather than raised: the caller decides whether they block delivery.
type Report struct {
	Valid       bool      `json:"valid"`
	SizeKB      float64   `json:"size"`
	SizeLimitKB float64   `json:"size_limit"`
	Details     []Failure `json:"details"`
	Warnings    []string  `json:"warnings"`
	Suggestions []string  `json:"suggestions"`
}

// Validator checks cards against a single platform profile. The zero value
// is not usable; construct with [New] or [NewWithProfile].
type Validator struct {
	profile Profile
}

// New builds a validator for a named target. Unlike [ProfileFor], unknown
// targets are rejected here: a misconfigured target must fail loudly at
// construction time rather than validate against the wrong limits.
func New(target string) (*Validator, error) {
	target = strings.ToLower(target)
	if err := errors.ValidateTargetName(target); err != nil {
		return nil, err
	}
	if !SupportedTarget(target) {
		return nil, errors.New(errors.ErrCodeInvalidTarget, "unsupported target platform: %s", target)
	}
	return &Validator{profile: ProfileFor(target)}, nil
}

// NewWithProfile builds a validator around an explicit profile, typically
// one loaded via [LoadProfiles].
func NewWithProfile(p Profile) *Validator {
	if p.SizeLimitKB <= 0 {
		p.SizeLimitKB = DefaultSizeLimitKB
	}
	return &Validator{profile: p}
}

// Profile returns the profile this validator checks against.
func (v *Validator) Profile() Profile {
	return v.profile
}

// Validate runs every check against c and returns the full report. The card
// is only read, so validating the same card twice yields identical reports.
func (v *Validator) Validate(c *card.Card) Report {
	report := Report{
		SizeKB:      v.Size(c),
		SizeLimitKB: v.profile.SizeLimitKB,
		Details:     []Failure{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if len(c.Body) == 0 {
		report.Details = append(report.Details, FailureEmptyCard)
	}

	for range v.versionConflicts(c) {
		report.Details = append(report.Details, FailureInvalidFieldVersion)
	}

	if report.SizeKB > v.profile.SizeLimitKB {
		report.Details = append(report.Details, FailureSizeLimitExceeded)
	}

	report.Valid = len(report.Details) == 0

	for _, failure := range report.Details {
		switch failure {
		case FailureEmptyCard:
			report.Suggestions = append(report.Suggestions,
				"Card body is empty. Add at least one element to the card.")
		case FailureInvalidFieldVersion:
			report.Suggestions = append(report.Suggestions, fmt.Sprintf(
				"Some elements or fields require a newer schema version than '%s'. "+
					"Consider upgrading the card version or removing incompatible elements.",
				c.Version))
		case FailureSizeLimitExceeded:
			report.Suggestions = append(report.Suggestions,
				"Card size exceeds the limit for the target platform.",
				"Consider reducing the number of elements or simplifying complex elements.",
				"Minimize the use of images or use lower resolution images.",
				"Break content into multiple smaller cards if possible.")
		}
	}

	if report.SizeKB > v.profile.SizeLimitKB*0.8 && report.SizeKB <= v.profile.SizeLimitKB {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"Card size (%.2fKB) is approaching the limit (%gKB).",
			report.SizeKB, v.profile.SizeLimitKB))
		report.Suggestions = append(report.Suggestions,
			"Consider optimizing the card to reduce its size.")
	}

	if !anyElementHasID(c.Body) {
		report.Warnings = append(report.Warnings,
			"No elements have IDs, which may limit interactivity and accessibility.")
	}

	return report
}

// Size returns the serialized card size in KB, rounded to two decimals.
func (v *Validator) Size(c *card.Card) float64 {
	data, err := json.Marshal(c)
	if err != nil {
		return 0
	}
	return math.Round(float64(len(data))/1024*100) / 100
}

// versionConflicts walks the full element tree and returns the element
// kinds that need a newer schema version than the card declares, either
// from the schema baseline or from a profile override. Each offending kind
// appears once in first-seen order.
func (v *Validator) versionConflicts(c *card.Card) []string {
	var kinds []string
	seen := map[string]bool{}
	walkElements(c.Body, func(e card.Element) {
		kind := e.ElementType()
		if seen[kind] {
			return
		}
		required := requiredVersion(e)
		if override, ok := v.profile.MinVersion[kind]; ok {
			if versionLess(required, override) {
				required = override
			}
		}
		if versionLess(c.Version, required) {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	})
	return kinds
}

// walkElements visits every element depth-first, descending into containers
// and column sets.
func walkElements(elements []card.Element, fn func(card.Element)) {
	for _, e := range elements {
		fn(e)
		switch el := e.(type) {
		case *card.Container:
			walkElements(el.Items, fn)
		case *card.ColumnSet:
			for _, col := range el.Columns {
				fn(col)
				walkElements(col.Items, fn)
			}
		}
	}
}

// anyElementHasID reports whether any top-level element carries a non-empty
// id. Nested elements are deliberately not inspected.
func anyElementHasID(elements []card.Element) bool {
	for _, e := range elements {
		if elementID(e) != "" {
			return true
		}
	}
	return false
}

func elementID(e card.Element) string {
	switch el := e.(type) {
	case *card.TextBlock:
		return el.ID
	case *card.Image:
		return el.ID
	case *card.FactSet:
		return el.ID
	case *card.Container:
		return el.ID
	case *card.ColumnSet:
		return el.ID
	case *card.TextInput:
		return el.ID
	case *card.DateInput:
		return el.ID
	case *card.ChoiceSet:
		return el.ID
	}
	return ""
}
