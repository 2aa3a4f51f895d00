// Package factory provides constructors for common card elements with
// sensible defaults.
//
// All constructors are pure: they allocate and return a configured element
// and never fail. Content validation is the caller's concern — malformed
// input (an empty URL, a bogus choice value) passes through structurally and
// is caught, if at all, by platform validation downstream.
//
// # Usage
//
//	title := factory.Heading("Release v2.1", 1)
//	note := factory.Text("Rollout completes in 20 minutes.")
//	warn := factory.ImportantText("Database migration pending", card.ColorWarning)
package factory

import "github.com/matzehuels/cardforge/pkg/card"

// headingSizes maps heading levels to font sizes. Levels outside 1..3 fall
// back to medium.
var headingSizes = map[int]card.FontSize{
	1: card.SizeExtraLarge,
	2: card.SizeLarge,
	3: card.SizeMedium,
}

// Heading creates a bold, wrapped text block sized by heading level (1..3,
// where 1 is largest).
func Heading(text string, level int) *card.TextBlock {
	size, ok := headingSizes[level]
	if !ok {
		size = card.SizeMedium
	}
	return &card.TextBlock{
		Text:   text,
		Size:   size,
		Weight: card.WeightBolder,
		Wrap:   true,
	}
}

// Text creates a standard wrapped text block.
func Text(text string) *card.TextBlock {
	return &card.TextBlock{Text: text, Wrap: true}
}

// SubtleText creates a wrapped text block with subtle styling.
func SubtleText(text string) *card.TextBlock {
	return &card.TextBlock{Text: text, Wrap: true, IsSubtle: true}
}

// StyledText creates a wrapped text block with an explicit weight and color.
// Zero values leave the corresponding attribute unset.
func StyledText(text string, weight card.FontWeight, color card.Color) *card.TextBlock {
	return &card.TextBlock{Text: text, Wrap: true, Weight: weight, Color: color}
}

// ImportantText creates a bold, wrapped text block in an attention-drawing
// color. An empty color defaults to attention.
func ImportantText(text string, color card.Color) *card.TextBlock {
	if color == "" {
		color = card.ColorAttention
	}
	return &card.TextBlock{
		Text:   text,
		Wrap:   true,
		Weight: card.WeightBolder,
		Color:  color,
	}
}

// NewImage creates an image element. Alt text, size, and style are optional;
// zero values are omitted from the wire format.
func NewImage(url, altText string, size card.ImageSize, style card.ImageStyle) *card.Image {
	return &card.Image{URL: url, AltText: altText, Size: size, Style: style}
}

// NewTextInput creates a text input element. A maxLength of 0 means
// unlimited.
func NewTextInput(id, placeholder string, required bool, maxLength int) *card.TextInput {
	return &card.TextInput{
		ID:          id,
		Placeholder: placeholder,
		IsRequired:  required,
		MaxLength:   maxLength,
	}
}

// NewDateInput creates a date input element.
func NewDateInput(id, placeholder string, required bool) *card.DateInput {
	return &card.DateInput{ID: id, Placeholder: placeholder, IsRequired: required}
}

// NewChoiceSet creates a choice input from title/value pairs, preserving
// their order.
func NewChoiceSet(id string, choices []card.Choice, placeholder string, required, multiSelect bool) *card.ChoiceSet {
	return &card.ChoiceSet{
		ID:            id,
		Choices:       choices,
		Placeholder:   placeholder,
		IsRequired:    required,
		IsMultiSelect: multiSelect,
	}
}

// Choices coerces raw title/value pairs into choice objects, preserving
// order. Convenient when choices arrive as loose data rather than typed
// values.
func Choices(pairs ...[2]string) []card.Choice {
	choices := make([]card.Choice, 0, len(pairs))
	for _, p := range pairs {
		choices = append(choices, card.Choice{Title: p[0], Value: p[1]})
	}
	return choices
}
