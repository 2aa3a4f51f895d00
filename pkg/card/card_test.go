package card

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestCardMarshal(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Card
		check func(t *testing.T, raw map[string]any)
	}{
		{
			name:  "Empty",
			build: New,
			check: func(t *testing.T, raw map[string]any) {
				if raw["type"] != TypeAdaptiveCard {
					t.Errorf("type = %v, want %v", raw["type"], TypeAdaptiveCard)
				}
				if raw["version"] != DefaultVersion {
					t.Errorf("version = %v, want %v", raw["version"], DefaultVersion)
				}
				body, ok := raw["body"].([]any)
				if !ok {
					t.Fatalf("body missing or not an array: %v", raw["body"])
				}
				if len(body) != 0 {
					t.Errorf("body length = %d, want 0", len(body))
				}
				if _, ok := raw["actions"]; ok {
					t.Error("actions should be omitted when empty")
				}
			},
		},
		{
			name: "PreservesInsertionOrder",
			build: func() *Card {
				return New().
					AddElement(&TextBlock{Text: "first"}).
					AddElement(&TextBlock{Text: "second"}).
					AddElement(&TextBlock{Text: "third"})
			},
			check: func(t *testing.T, raw map[string]any) {
				body := raw["body"].([]any)
				want := []string{"first", "second", "third"}
				if len(body) != len(want) {
					t.Fatalf("body length = %d, want %d", len(body), len(want))
				}
				for i, w := range want {
					item := body[i].(map[string]any)
					if item["text"] != w {
						t.Errorf("body[%d].text = %v, want %v", i, item["text"], w)
					}
				}
			},
		},
		{
			name: "Actions",
			build: func() *Card {
				return New().
					AddElement(&TextBlock{Text: "hello"}).
					AddAction(&OpenURLAction{Title: "Open", URL: "https://example.com"}).
					AddAction(&SubmitAction{Title: "Send", Data: map[string]any{"k": "v"}})
			},
			check: func(t *testing.T, raw map[string]any) {
				actions := raw["actions"].([]any)
				if len(actions) != 2 {
					t.Fatalf("actions length = %d, want 2", len(actions))
				}
				first := actions[0].(map[string]any)
				if first["type"] != TypeOpenURL {
					t.Errorf("actions[0].type = %v, want %v", first["type"], TypeOpenURL)
				}
				second := actions[1].(map[string]any)
				if second["type"] != TypeSubmit {
					t.Errorf("actions[1].type = %v, want %v", second["type"], TypeSubmit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.build())
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var raw map[string]any
			if err := json.Unmarshal(data, &raw); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			tt.check(t, raw)
		})
	}
}

func TestElementTypeTags(t *testing.T) {
	tests := []struct {
		elem Element
		want string
	}{
		{&TextBlock{Text: "x"}, TypeTextBlock},
		{&Image{URL: "https://example.com/a.png"}, TypeImage},
		{&Container{}, TypeContainer},
		{&ColumnSet{}, TypeColumnSet},
		{&Column{}, TypeColumn},
		{&FactSet{}, TypeFactSet},
		{&TextInput{ID: "a"}, TypeTextInput},
		{&DateInput{ID: "b"}, TypeDateInput},
		{&ChoiceSet{ID: "c"}, TypeChoiceSet},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.elem.ElementType(); got != tt.want {
				t.Errorf("ElementType() = %q, want %q", got, tt.want)
			}
			data, err := json.Marshal(tt.elem)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var raw map[string]any
			if err := json.Unmarshal(data, &raw); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if raw["type"] != tt.want {
				t.Errorf("wire type = %v, want %v", raw["type"], tt.want)
			}
		})
	}
}

func TestWidthJSON(t *testing.T) {
	tests := []struct {
		name  string
		width Width
		want  string
	}{
		{"Weight", Weight(2), "2"},
		{"Auto", WidthAuto, `"auto"`},
		{"Stretch", WidthStretch, `"stretch"`},
		{"Zero", Width{}, `"auto"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.width)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Width
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back.String() != tt.width.String() {
				t.Errorf("round-trip = %s, want %s", back.String(), tt.width.String())
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	original := New().
		AddElement(&TextBlock{Text: "Title", Size: SizeLarge, Weight: WeightBolder, Wrap: true}).
		AddElement(&Container{
			Items: []Element{
				&ColumnSet{Columns: []*Column{
					{Items: []Element{&TextBlock{Text: "left", Wrap: true}}, Width: Weight(1)},
					{Items: []Element{&Image{URL: "https://example.com/i.png"}}, Width: WidthAuto},
				}},
			},
			Style: StyleEmphasis,
		}).
		AddElement(&FactSet{Facts: []Fact{{Title: "Name", Value: "John"}}}).
		AddElement(&ChoiceSet{ID: "pick", Choices: []Choice{{Title: "A", Value: "a"}}}).
		AddAction(&SubmitAction{Title: "Go", Data: map[string]any{"action": "go"}})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	back, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("re-Marshal: %v", err)
	}
	if !bytes.Equal(data, back) {
		t.Errorf("round-trip mismatch:\n got %s\nwant %s", back, data)
	}
}

func TestDecodeUnknownElement(t *testing.T) {
	payload := []byte(`{
		"type": "AdaptiveCard",
		"version": "1.5",
		"body": [
			{"type": "RichTextBlock", "inlines": [{"type": "TextRun", "text": "hi"}]}
		]
	}`)

	c, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(c.Body) != 1 {
		t.Fatalf("body length = %d, want 1", len(c.Body))
	}
	raw, ok := c.Body[0].(*RawElement)
	if !ok {
		t.Fatalf("body[0] = %T, want *RawElement", c.Body[0])
	}
	if raw.Type != "RichTextBlock" {
		t.Errorf("raw type = %q, want RichTextBlock", raw.Type)
	}

	// Unknown content survives re-encoding.
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Contains(out, []byte("RichTextBlock")) {
		t.Errorf("re-encoded card lost unknown element: %s", out)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"NotJSON", "not json at all"},
		{"WrongRootType", `{"type": "message", "version": "1.5"}`},
		{"UntaggedElement", `{"type": "AdaptiveCard", "version": "1.5", "body": [{"text": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Error("Decode succeeded, want error")
			}
		})
	}
}
