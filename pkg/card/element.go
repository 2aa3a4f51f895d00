package card

import (
	"encoding/json"
	"fmt"
)

// Element is any node that can appear in a card body.
// Concrete types marshal themselves with their wire "type" tag.
type Element interface {
	// ElementType returns the wire type tag (e.g. "TextBlock").
	ElementType() string
}

// =============================================================================
// Width - Column Sizing
// =============================================================================

// Width is a column width: an integer weight for proportional sizing, or one
// of the literal keywords "auto" and "stretch". The zero value marshals as
// "auto".
type Width struct {
	weight  int
	keyword string
}

// Weight returns a proportional width with the given integer weight.
func Weight(w int) Width { return Width{weight: w} }

// Keyword widths.
var (
	WidthAuto    = Width{keyword: "auto"}
	WidthStretch = Width{keyword: "stretch"}
)

// IsZero reports whether the width was never set.
func (w Width) IsZero() bool { return w.weight == 0 && w.keyword == "" }

// String returns the width as it appears on the wire.
func (w Width) String() string {
	if w.keyword != "" {
		return w.keyword
	}
	if w.weight != 0 {
		return fmt.Sprintf("%d", w.weight)
	}
	return "auto"
}

// MarshalJSON emits either a JSON number (weight) or string (keyword).
func (w Width) MarshalJSON() ([]byte, error) {
	if w.keyword == "" && w.weight != 0 {
		return json.Marshal(w.weight)
	}
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts both number and string forms.
func (w *Width) UnmarshalJSON(data []byte) error {
	var weight int
	if err := json.Unmarshal(data, &weight); err == nil {
		*w = Width{weight: weight}
		return nil
	}
	var keyword string
	if err := json.Unmarshal(data, &keyword); err != nil {
		return fmt.Errorf("width must be a number or string: %w", err)
	}
	*w = Width{keyword: keyword}
	return nil
}

// =============================================================================
// Leaf Elements
// =============================================================================

// TextBlock is a block of formatted text.
type TextBlock struct {
	Text     string     `json:"text"`
	Size     FontSize   `json:"size,omitempty"`
	Weight   FontWeight `json:"weight,omitempty"`
	Color    Color      `json:"color,omitempty"`
	Wrap     bool       `json:"wrap,omitempty"`
	IsSubtle bool       `json:"isSubtle,omitempty"`
	Spacing  Spacing    `json:"spacing,omitempty"`
	ID       string     `json:"id,omitempty"`
}

func (t *TextBlock) ElementType() string { return TypeTextBlock }

func (t *TextBlock) MarshalJSON() ([]byte, error) {
	type alias TextBlock
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeTextBlock, (*alias)(t)})
}

// Image displays an image from a URL.
type Image struct {
	URL       string     `json:"url"`
	AltText   string     `json:"altText,omitempty"`
	Size      ImageSize  `json:"size,omitempty"`
	Style     ImageStyle `json:"style,omitempty"`
	Separator bool       `json:"separator,omitempty"`
	Spacing   Spacing    `json:"spacing,omitempty"`
	ID        string     `json:"id,omitempty"`
}

func (i *Image) ElementType() string { return TypeImage }

func (i *Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeImage, (*alias)(i)})
}

// Fact is an immutable title/value pair inside a FactSet.
type Fact struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// FactSet renders an ordered list of title/value pairs compactly.
type FactSet struct {
	Facts   []Fact  `json:"facts"`
	Spacing Spacing `json:"spacing,omitempty"`
	ID      string  `json:"id,omitempty"`
}

func (f *FactSet) ElementType() string { return TypeFactSet }

func (f *FactSet) MarshalJSON() ([]byte, error) {
	type alias FactSet
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeFactSet, (*alias)(f)})
}

// =============================================================================
// Containers
// =============================================================================

// Container groups elements with shared styling.
type Container struct {
	Items     []Element      `json:"items"`
	Style     ContainerStyle `json:"style,omitempty"`
	Separator bool           `json:"separator,omitempty"`
	Spacing   Spacing        `json:"spacing,omitempty"`
	Bleed     bool           `json:"bleed,omitempty"`
	ID        string         `json:"id,omitempty"`
}

func (c *Container) ElementType() string { return TypeContainer }

func (c *Container) MarshalJSON() ([]byte, error) {
	type alias Container
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeContainer, (*alias)(c)})
}

func (c *Container) UnmarshalJSON(data []byte) error {
	type alias Container
	aux := struct {
		Items []json.RawMessage `json:"items"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	items, err := decodeElements(aux.Items)
	if err != nil {
		return err
	}
	c.Items = items
	return nil
}

// Column is one vertical slice of a ColumnSet.
type Column struct {
	Items                    []Element         `json:"items"`
	Width                    Width             `json:"width"`
	Spacing                  Spacing           `json:"spacing,omitempty"`
	VerticalContentAlignment VerticalAlignment `json:"verticalContentAlignment,omitempty"`
	Style                    ContainerStyle    `json:"style,omitempty"`
}

func (c *Column) ElementType() string { return TypeColumn }

func (c *Column) MarshalJSON() ([]byte, error) {
	type alias Column
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeColumn, (*alias)(c)})
}

func (c *Column) UnmarshalJSON(data []byte) error {
	type alias Column
	aux := struct {
		Items []json.RawMessage `json:"items"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	items, err := decodeElements(aux.Items)
	if err != nil {
		return err
	}
	c.Items = items
	return nil
}

// ColumnSet arranges columns side by side.
type ColumnSet struct {
	Columns   []*Column `json:"columns"`
	Spacing   Spacing   `json:"spacing,omitempty"`
	Separator bool      `json:"separator,omitempty"`
	ID        string    `json:"id,omitempty"`
}

func (c *ColumnSet) ElementType() string { return TypeColumnSet }

func (c *ColumnSet) MarshalJSON() ([]byte, error) {
	type alias ColumnSet
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeColumnSet, (*alias)(c)})
}

// =============================================================================
// Inputs
// =============================================================================

// TextInput collects free-form text.
type TextInput struct {
	ID          string `json:"id"`
	Placeholder string `json:"placeholder,omitempty"`
	IsRequired  bool   `json:"isRequired,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

func (t *TextInput) ElementType() string { return TypeTextInput }

func (t *TextInput) MarshalJSON() ([]byte, error) {
	type alias TextInput
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeTextInput, (*alias)(t)})
}

// DateInput collects a date.
type DateInput struct {
	ID          string `json:"id"`
	Placeholder string `json:"placeholder,omitempty"`
	IsRequired  bool   `json:"isRequired,omitempty"`
}

func (d *DateInput) ElementType() string { return TypeDateInput }

func (d *DateInput) MarshalJSON() ([]byte, error) {
	type alias DateInput
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeDateInput, (*alias)(d)})
}

// Choice is one selectable option in a ChoiceSet.
type Choice struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ChoiceSet collects one or more selections from a fixed set.
type ChoiceSet struct {
	ID            string   `json:"id"`
	Choices       []Choice `json:"choices"`
	Placeholder   string   `json:"placeholder,omitempty"`
	IsRequired    bool     `json:"isRequired,omitempty"`
	IsMultiSelect bool     `json:"isMultiSelect,omitempty"`
}

func (c *ChoiceSet) ElementType() string { return TypeChoiceSet }

func (c *ChoiceSet) MarshalJSON() ([]byte, error) {
	type alias ChoiceSet
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeChoiceSet, (*alias)(c)})
}

// =============================================================================
// RawElement - Round-Trip for Unknown Types
// =============================================================================

// RawElement preserves an element of an unrecognized type so that decoding
// and re-encoding a card does not drop content.
type RawElement struct {
	Type string
	Data json.RawMessage
}

func (r *RawElement) ElementType() string { return r.Type }

func (r *RawElement) MarshalJSON() ([]byte, error) { return r.Data, nil }
