package validate

import (
	"fmt"

	"github.com/matzehuels/cardforge/pkg/card"
)

// SuggestOptimizations proposes size reductions for a card, independently
// of [Validator.Validate]. Nothing is suggested until the card crosses 70%
// of the profile limit; past that, checks run in a fixed order and every
// matching one contributes a line. Only the top-level body is inspected.
func (v *Validator) SuggestOptimizations(c *card.Card) []string {
	var suggestions []string

	size := v.Size(c)
	limit := v.profile.SizeLimitKB
	if size <= limit*0.7 {
		return suggestions
	}

	suggestions = append(suggestions, fmt.Sprintf(
		"Card size (%.2fKB) is %.1f%% of the limit.", size, size/limit*100))

	if len(c.Body) > 10 {
		suggestions = append(suggestions,
			"Consider reducing the number of elements in the card.")
	}

	imageCount := 0
	containerCount := 0
	for _, e := range c.Body {
		switch e.(type) {
		case *card.Image:
			imageCount++
		case *card.Container:
			containerCount++
		}
	}

	if imageCount > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Card contains %d images. Consider reducing image count or size.", imageCount))
	}
	if containerCount > 3 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Card contains %d containers. Consider simplifying the structure.", containerCount))
	}

	return suggestions
}
