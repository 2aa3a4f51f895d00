package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/card/factory"
	"github.com/matzehuels/cardforge/pkg/card/layout"
)

func TestFlattenElements(t *testing.T) {
	inner := factory.Text("inside")
	container := layout.NewContainer([]card.Element{inner}, layout.ContainerOptions{})
	crd := card.New().
		AddElement(factory.Heading("Report", 1)).
		AddElement(container)

	rows := flattenElements(crd.Body, 0)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Kind != card.TypeTextBlock || rows[0].Depth != 0 {
		t.Errorf("row 0 = %s depth %d", rows[0].Kind, rows[0].Depth)
	}
	if rows[1].Kind != card.TypeContainer {
		t.Errorf("row 1 = %s", rows[1].Kind)
	}
	if rows[2].Kind != card.TypeTextBlock || rows[2].Depth != 1 {
		t.Errorf("row 2 = %s depth %d", rows[2].Kind, rows[2].Depth)
	}
}

func TestFlattenColumnSet(t *testing.T) {
	cs := layout.TwoColumn(
		[]card.Element{factory.Text("left")},
		[]card.Element{factory.Text("right")},
		card.WidthStretch, card.WidthAuto, "",
	)

	rows := flattenElements([]card.Element{cs}, 0)
	// ColumnSet, two columns, one text each.
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[1].Kind != card.TypeColumn || rows[1].Depth != 1 {
		t.Errorf("row 1 = %s depth %d", rows[1].Kind, rows[1].Depth)
	}
	if rows[2].Depth != 2 {
		t.Errorf("column item depth = %d, want 2", rows[2].Depth)
	}
	if !strings.Contains(rows[1].Label, "stretch") {
		t.Errorf("column label = %q, want width", rows[1].Label)
	}
}

func TestElementLabel(t *testing.T) {
	tests := []struct {
		name    string
		element card.Element
		want    string
	}{
		{"text", factory.Text("hello world"), "hello world"},
		{"image", &card.Image{URL: "https://example.com/a.png"}, "https://example.com/a.png"},
		{"factset", &card.FactSet{Facts: []card.Fact{{Title: "a", Value: "1"}}}, "1 facts"},
		{"container", &card.Container{Items: []card.Element{factory.Text("x")}}, "1 items"},
		{"text input", factory.NewTextInput("name", "", false, 0), "id=name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elementLabel(tt.element); got != tt.want {
				t.Errorf("elementLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementLabelTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := elementLabel(factory.Text(long))
	if len(got) > 51 {
		t.Errorf("label too long: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("label %q lacks ellipsis", got)
	}
}

func TestCardTreeModelEmptyCard(t *testing.T) {
	m := NewCardTreeModel(card.New(), 0.05)
	view := m.View()
	if !strings.Contains(view, "empty card body") {
		t.Errorf("view missing empty notice:\n%s", view)
	}
}
