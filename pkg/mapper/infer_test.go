package mapper

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardforge/pkg/card"
)

func TestFromJSONObject(t *testing.T) {
	elements := FromJSON(`{"Name": "John", "Age": "30"}`)
	if len(elements) != 1 {
		t.Fatalf("elements = %d, want 1", len(elements))
	}
	fs, ok := elements[0].(*card.FactSet)
	if !ok {
		t.Fatalf("elements[0] = %T, want *card.FactSet", elements[0])
	}
	want := []card.Fact{{Title: "Name", Value: "John"}, {Title: "Age", Value: "30"}}
	if len(fs.Facts) != len(want) {
		t.Fatalf("facts = %d, want %d", len(fs.Facts), len(want))
	}
	for i := range want {
		if fs.Facts[i] != want[i] {
			t.Errorf("facts[%d] = %v, want %v (document order)", i, fs.Facts[i], want[i])
		}
	}
}

func TestFromJSONObjectNestedValues(t *testing.T) {
	elements := FromJSON(`{"name": "svc", "labels": {"team": "infra"}, "ports": [80, 443]}`)
	fs := elements[0].(*card.FactSet)
	if len(fs.Facts) != 3 {
		t.Fatalf("facts = %d, want 3", len(fs.Facts))
	}
	if fs.Facts[0].Value != "svc" {
		t.Errorf("scalar fact = %q, want svc", fs.Facts[0].Value)
	}
	if !strings.Contains(fs.Facts[1].Value, "\"team\": \"infra\"") {
		t.Errorf("nested object fact = %q, want indented JSON", fs.Facts[1].Value)
	}
	if !strings.Contains(fs.Facts[2].Value, "80") || !strings.Contains(fs.Facts[2].Value, "\n") {
		t.Errorf("nested array fact = %q, want indented JSON", fs.Facts[2].Value)
	}
}

func TestFromJSONRecords(t *testing.T) {
	input := `[
		{"name": "alpha", "status": "ok"},
		{"name": "beta", "region": "eu"},
		{"status": "down", "name": "gamma"}
	]`
	elements := FromJSON(input)

	// Header container + 3 data rows.
	if len(elements) != 4 {
		t.Fatalf("elements = %d, want 4", len(elements))
	}

	// Headers form the first-seen union across records: name, status, region.
	head := elements[0].(*card.Container).Items[0].(*card.ColumnSet)
	wantHeaders := []string{"name", "status", "region"}
	if len(head.Columns) != len(wantHeaders) {
		t.Fatalf("header columns = %d, want %d", len(head.Columns), len(wantHeaders))
	}
	for i, w := range wantHeaders {
		got := head.Columns[i].Items[0].(*card.TextBlock).Text
		if got != w {
			t.Errorf("header[%d] = %q, want %q", i, got, w)
		}
	}

	// Missing values render as empty cells.
	row1 := elements[1].(*card.Container).Items[0].(*card.ColumnSet)
	if got := row1.Columns[2].Items[0].(*card.TextBlock).Text; got != "" {
		t.Errorf("alpha region = %q, want empty", got)
	}
	row3 := elements[3].(*card.Container).Items[0].(*card.ColumnSet)
	if got := row3.Columns[0].Items[0].(*card.TextBlock).Text; got != "gamma" {
		t.Errorf("row3 name = %q, want gamma", got)
	}
}

func TestFromJSONList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Strings",
			input: `["a", "b"]`,
			want:  []string{"• a", "• b"},
		},
		{
			name:  "MixedScalars",
			input: `["a", 2, true, null]`,
			want:  []string{"• a", "• 2", "• true", "• "},
		},
		{
			name:  "MixedObjectsDowngradeToList",
			input: `[{"k": "v"}, "plain"]`,
			want:  nil, // length checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := FromJSON(tt.input)
			if tt.want == nil {
				if len(elements) != 2 {
					t.Fatalf("elements = %d, want 2", len(elements))
				}
				return
			}
			if len(elements) != len(tt.want) {
				t.Fatalf("elements = %d, want %d", len(elements), len(tt.want))
			}
			for i, w := range tt.want {
				got := elements[i].(*card.TextBlock).Text
				if got != w {
					t.Errorf("elements[%d] = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestFromJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Garbage", "{not json"},
		{"Empty", ""},
		{"TrailingData", `{"a": 1} extra`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := FromJSON(tt.input)
			if len(elements) != 1 {
				t.Fatalf("elements = %d, want 1", len(elements))
			}
			tb, ok := elements[0].(*card.TextBlock)
			if !ok {
				t.Fatalf("elements[0] = %T, want *card.TextBlock", elements[0])
			}
			if tb.Text != "Invalid JSON data" {
				t.Errorf("text = %q, want Invalid JSON data", tb.Text)
			}
			if tb.Color != card.ColorAttention {
				t.Errorf("color = %v, want attention", tb.Color)
			}
		})
	}
}

func TestFromJSONScalar(t *testing.T) {
	// A bare scalar document has no visual mapping.
	for _, input := range []string{`42`, `"hello"`, `true`, `null`} {
		if got := FromJSON(input); len(got) != 0 {
			t.Errorf("FromJSON(%s) = %d elements, want 0", input, len(got))
		}
	}
}

func TestFromJSONEmptyList(t *testing.T) {
	if got := FromJSON(`[]`); len(got) != 0 {
		t.Errorf("elements = %d, want 0", len(got))
	}
}

func TestFromValue(t *testing.T) {
	t.Run("MapSortsKeys", func(t *testing.T) {
		elements := FromValue(map[string]any{"b": "2", "a": "1"})
		fs := elements[0].(*card.FactSet)
		if fs.Facts[0].Title != "a" || fs.Facts[1].Title != "b" {
			t.Errorf("facts = %v, want sorted keys a, b", fs.Facts)
		}
	})

	t.Run("StringSlice", func(t *testing.T) {
		elements := FromValue([]string{"x", "y"})
		if len(elements) != 2 {
			t.Fatalf("elements = %d, want 2", len(elements))
		}
	})

	t.Run("RecordSlice", func(t *testing.T) {
		elements := FromValue([]any{
			map[string]any{"id": "1"},
			map[string]any{"id": "2"},
		})
		if len(elements) != 3 { // header + 2 rows
			t.Errorf("elements = %d, want 3", len(elements))
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  shape
	}{
		{"Object", `{"a": 1}`, shapeObject},
		{"Records", `[{"a": 1}, {"b": 2}]`, shapeTable},
		{"ScalarList", `[1, 2]`, shapeList},
		{"MixedList", `[{"a": 1}, 2]`, shapeList},
		{"EmptyList", `[]`, shapeList},
		{"Scalar", `1`, shapeScalar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := decodeJSON(tt.input)
			if err != nil {
				t.Fatalf("decodeJSON: %v", err)
			}
			if got := classify(v); got != tt.want {
				t.Errorf("classify = %d, want %d", got, tt.want)
			}
		})
	}
}
