package card

import "encoding/json"

// Action is a card-level action button.
type Action interface {
	// ActionType returns the wire type tag (e.g. "Action.OpenUrl").
	ActionType() string
}

// OpenURLAction opens a URL when invoked.
type OpenURLAction struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (a *OpenURLAction) ActionType() string { return TypeOpenURL }

func (a *OpenURLAction) MarshalJSON() ([]byte, error) {
	type alias OpenURLAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeOpenURL, (*alias)(a)})
}

// SubmitAction submits the card's input values along with static data.
type SubmitAction struct {
	Title string         `json:"title"`
	Data  map[string]any `json:"data,omitempty"`
	Style ActionStyle    `json:"style,omitempty"`
}

func (a *SubmitAction) ActionType() string { return TypeSubmit }

func (a *SubmitAction) MarshalJSON() ([]byte, error) {
	type alias SubmitAction
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{TypeSubmit, (*alias)(a)})
}

// RawAction preserves an action of an unrecognized type for round-trips.
type RawAction struct {
	Type string
	Data json.RawMessage
}

func (a *RawAction) ActionType() string { return a.Type }

func (a *RawAction) MarshalJSON() ([]byte, error) { return a.Data, nil }
