// Package template provides pre-built cards for common scenarios.
//
// Each constructor assembles a complete [card.Card] from a handful of
// arguments, using the same factory and layout primitives available to
// callers building cards by hand. Optional arguments are zero values:
// an empty string skips the corresponding element.
package template

import (
	"strings"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/card/factory"
	"github.com/matzehuels/cardforge/pkg/card/layout"
	"github.com/matzehuels/cardforge/pkg/mapper"
)

// Notification levels.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelSuccess = "success"
	LevelDanger  = "danger"
)

// levelColors maps notification levels to text colors. Unknown levels get
// the default color.
var levelColors = map[string]card.Color{
	LevelInfo:    card.ColorAccent,
	LevelWarning: card.ColorWarning,
	LevelSuccess: card.ColorGood,
	LevelDanger:  card.ColorAttention,
}

// NotificationOptions configures [Notification]. All fields are optional.
type NotificationOptions struct {
	// Level tints the message text: "info", "warning", "success" or
	// "danger". Unknown or empty levels leave the default color.
	Level string

	// IconURL places a small icon next to the title.
	IconURL string

	// ActionURL adds a "View Details" action.
	ActionURL string
}

// Notification builds a simple title-and-message card.
func Notification(title, message string, opts NotificationOptions) *card.Card {
	c := card.New()

	if opts.IconURL != "" {
		c.AddElement(layout.TwoColumn(
			[]card.Element{factory.Heading(title, 1)},
			[]card.Element{factory.NewImage(opts.IconURL, "", card.ImageSmall, "")},
			card.WidthStretch,
			card.WidthAuto,
			"",
		))
	} else {
		c.AddElement(factory.Heading(title, 1))
	}

	c.AddElement(&card.TextBlock{
		Text:  message,
		Wrap:  true,
		Color: levelColors[opts.Level],
	})

	if opts.ActionURL != "" {
		c.AddAction(&card.OpenURLAction{Title: "View Details", URL: opts.ActionURL})
	}

	return c
}

// FieldType selects the input kind for a form field.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldDate   FieldType = "date"
	FieldChoice FieldType = "choice"
)

// Field describes one input on a form card.
type Field struct {
	Type        FieldType
	ID          string
	Label       string
	Placeholder string
	Required    bool

	// MaxLength applies to text fields only; zero means unlimited.
	MaxLength int

	// Choices and MultiSelect apply to choice fields only.
	Choices     []card.Choice
	MultiSelect bool
}

// Form builds a card with labelled input fields and a submit action. The
// submit payload carries a form_id derived from the title. An empty
// subtitle is skipped; unrecognized field types produce a label with no
// input.
func Form(title, subtitle string, fields []Field, submitLabel string) *card.Card {
	c := card.New()
	c.AddElement(factory.Heading(title, 1))

	if subtitle != "" {
		c.AddElement(factory.SubtleText(subtitle))
	}

	for _, f := range fields {
		c.AddElement(&card.TextBlock{
			Text:    f.Label,
			Wrap:    true,
			Spacing: card.SpacingMedium,
		})

		switch f.Type {
		case FieldText, "":
			c.AddElement(factory.NewTextInput(f.ID, f.Placeholder, f.Required, f.MaxLength))
		case FieldDate:
			c.AddElement(factory.NewDateInput(f.ID, f.Placeholder, f.Required))
		case FieldChoice:
			c.AddElement(factory.NewChoiceSet(f.ID, f.Choices, f.Placeholder, f.Required, f.MultiSelect))
		}
	}

	if submitLabel == "" {
		submitLabel = "Submit"
	}
	c.AddAction(&card.SubmitAction{
		Title: submitLabel,
		Data:  map[string]any{"form_id": formID(title)},
	})

	return c
}

func formID(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// ArticleOptions configures [Article]. All fields are optional.
type ArticleOptions struct {
	// ImageURL places a large header image above the title.
	ImageURL string

	// Author and Date render as a subtle byline between title and content.
	Author string
	Date   string

	// ActionURL adds a "Read More" action.
	ActionURL string
}

// Article builds a card presenting an article or news item.
func Article(title, content string, opts ArticleOptions) *card.Card {
	c := card.New()

	if opts.ImageURL != "" {
		c.AddElement(factory.NewImage(opts.ImageURL, title, card.ImageLarge, ""))
	}

	c.AddElement(factory.Heading(title, 1))

	if opts.Author != "" || opts.Date != "" {
		byline := ""
		if opts.Author != "" {
			byline = "By " + opts.Author
		}
		if opts.Date != "" {
			if opts.Author != "" {
				byline += " | " + opts.Date
			} else {
				byline = opts.Date
			}
		}
		c.AddElement(&card.TextBlock{
			Text:     byline,
			IsSubtle: true,
			Spacing:  card.SpacingSmall,
		})
	}

	c.AddElement(&card.TextBlock{
		Text:    content,
		Wrap:    true,
		Spacing: card.SpacingMedium,
	})

	if opts.ActionURL != "" {
		c.AddAction(&card.OpenURLAction{Title: "Read More", URL: opts.ActionURL})
	}

	return c
}

// Dashboard builds a card presenting named metrics under an emphasized
// header. Metrics are ordered; use [mapper.Pair] to control the sequence.
// An optional chart image renders below the metrics, separated.
func Dashboard(title string, metrics []mapper.Pair, description, chartImageURL string) *card.Card {
	c := card.New()

	c.AddElement(layout.NewContainer(
		[]card.Element{factory.Heading(title, 1)},
		layout.ContainerOptions{Style: card.StyleEmphasis, Bleed: true},
	))

	if description != "" {
		c.AddElement(&card.TextBlock{
			Text:    description,
			Wrap:    true,
			Spacing: card.SpacingMedium,
		})
	}

	c.AddElement(mapper.FactSet(metrics))

	if chartImageURL != "" {
		img := factory.NewImage(chartImageURL, "Chart", card.ImageLarge, "")
		img.Separator = true
		c.AddElement(img)
	}

	return c
}

// Confirmation builds a card asking the user to confirm or cancel an
// action. The confirm submit carries {"action":"confirm"} merged with
// extraData; cancel always carries {"action":"cancel"}. Empty button
// labels default to "Confirm" and "Cancel".
func Confirmation(title, message, confirmLabel, cancelLabel string, extraData map[string]any) *card.Card {
	c := card.New()
	c.AddElement(factory.Heading(title, 1))
	c.AddElement(&card.TextBlock{
		Text:    message,
		Wrap:    true,
		Spacing: card.SpacingMedium,
	})

	confirmData := map[string]any{"action": "confirm"}
	for k, v := range extraData {
		confirmData[k] = v
	}

	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}

	c.AddAction(&card.SubmitAction{
		Title: confirmLabel,
		Style: card.ActionStylePositive,
		Data:  confirmData,
	})
	c.AddAction(&card.SubmitAction{
		Title: cancelLabel,
		Data:  map[string]any{"action": "cancel"},
	})

	return c
}
