package card

import (
	"encoding/json"
	"fmt"
)

// Card is the root entity: a version plus ordered body elements and actions.
// Elements and actions appear on the wire in insertion order, never reordered.
type Card struct {
	Version string
	Body    []Element
	Actions []Action
}

// New creates an empty card with the default schema version.
func New() *Card {
	return &Card{Version: DefaultVersion}
}

// NewWithVersion creates an empty card targeting a specific schema version.
func NewWithVersion(version string) *Card {
	if version == "" {
		version = DefaultVersion
	}
	return &Card{Version: version}
}

// AddElement appends an element to the body and returns the card for chaining.
func (c *Card) AddElement(e Element) *Card {
	c.Body = append(c.Body, e)
	return c
}

// AddElements appends elements in order and returns the card for chaining.
func (c *Card) AddElements(elems ...Element) *Card {
	c.Body = append(c.Body, elems...)
	return c
}

// AddAction appends an action and returns the card for chaining.
func (c *Card) AddAction(a Action) *Card {
	c.Actions = append(c.Actions, a)
	return c
}

// jsonCard is the wire shadow of Card.
type jsonCard struct {
	Type    string    `json:"type"`
	Schema  string    `json:"$schema,omitempty"`
	Version string    `json:"version"`
	Body    []Element `json:"body"`
	Actions []Action  `json:"actions,omitempty"`
}

// MarshalJSON emits the adaptive card wire format. The body array is always
// present, even when empty, so validators can distinguish "empty body" from
// "missing body".
func (c *Card) MarshalJSON() ([]byte, error) {
	body := c.Body
	if body == nil {
		body = []Element{}
	}
	return json.Marshal(jsonCard{
		Type:    TypeAdaptiveCard,
		Schema:  SchemaURL,
		Version: c.Version,
		Body:    body,
		Actions: c.Actions,
	})
}

// JSON returns the indented wire representation of the card.
func (c *Card) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Decode parses a serialized adaptive card back into a Card.
// Elements and actions of unknown types are preserved as raw nodes.
func Decode(data []byte) (*Card, error) {
	var raw struct {
		Type    string            `json:"type"`
		Version string            `json:"version"`
		Body    []json.RawMessage `json:"body"`
		Actions []json.RawMessage `json:"actions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode card: %w", err)
	}
	if raw.Type != "" && raw.Type != TypeAdaptiveCard {
		return nil, fmt.Errorf("decode card: unexpected type %q", raw.Type)
	}

	c := NewWithVersion(raw.Version)
	body, err := decodeElements(raw.Body)
	if err != nil {
		return nil, fmt.Errorf("decode card body: %w", err)
	}
	if len(body) > 0 {
		c.Body = body
	}
	for _, msg := range raw.Actions {
		a, err := decodeAction(msg)
		if err != nil {
			return nil, fmt.Errorf("decode card actions: %w", err)
		}
		c.Actions = append(c.Actions, a)
	}
	return c, nil
}

// decodeElements parses a list of raw body nodes into concrete elements.
func decodeElements(msgs []json.RawMessage) ([]Element, error) {
	if len(msgs) == 0 {
		return nil, nil
	}
	elems := make([]Element, 0, len(msgs))
	for _, msg := range msgs {
		e, err := decodeElement(msg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}

func decodeElement(msg json.RawMessage) (Element, error) {
	kind, err := peekType(msg)
	if err != nil {
		return nil, err
	}

	var e Element
	switch kind {
	case TypeTextBlock:
		e = &TextBlock{}
	case TypeImage:
		e = &Image{}
	case TypeContainer:
		e = &Container{}
	case TypeColumnSet:
		e = &ColumnSet{}
	case TypeColumn:
		e = &Column{}
	case TypeFactSet:
		e = &FactSet{}
	case TypeTextInput:
		e = &TextInput{}
	case TypeDateInput:
		e = &DateInput{}
	case TypeChoiceSet:
		e = &ChoiceSet{}
	default:
		return &RawElement{Type: kind, Data: msg}, nil
	}
	if err := json.Unmarshal(msg, e); err != nil {
		return nil, fmt.Errorf("element %s: %w", kind, err)
	}
	return e, nil
}

func decodeAction(msg json.RawMessage) (Action, error) {
	kind, err := peekType(msg)
	if err != nil {
		return nil, err
	}

	var a Action
	switch kind {
	case TypeOpenURL:
		a = &OpenURLAction{}
	case TypeSubmit:
		a = &SubmitAction{}
	default:
		return &RawAction{Type: kind, Data: msg}, nil
	}
	if err := json.Unmarshal(msg, a); err != nil {
		return nil, fmt.Errorf("action %s: %w", kind, err)
	}
	return a, nil
}

// peekType extracts the "type" discriminator from a raw node.
func peekType(msg json.RawMessage) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(msg, &envelope); err != nil {
		return "", fmt.Errorf("node is not an object: %w", err)
	}
	if envelope.Type == "" {
		return "", fmt.Errorf("node has no type tag")
	}
	return envelope.Type, nil
}
