package mapper

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardforge/pkg/card"
)

func TestCSV(t *testing.T) {
	elements := CSV("Name,Age\nJohn,30\nJane,28")

	// One header container + two row containers.
	if len(elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(elements))
	}

	head := elements[0].(*card.Container)
	if head.Style != card.StyleEmphasis {
		t.Errorf("header style = %v, want emphasis", head.Style)
	}

	// Row index 1 (Jane) carries the accent background.
	jane := elements[2].(*card.Container)
	if jane.Style != card.StyleAccent {
		t.Errorf("row 1 style = %v, want accent", jane.Style)
	}
	cell := jane.Items[0].(*card.ColumnSet).Columns[0].Items[0].(*card.TextBlock)
	if cell.Text != "Jane" {
		t.Errorf("row 1 cell = %q, want Jane", cell.Text)
	}

	john := elements[1].(*card.Container)
	if john.Style != "" {
		t.Errorf("row 0 style = %v, want unset", john.Style)
	}
}

func TestCSVQuotedFields(t *testing.T) {
	t.Run("EmbeddedComma", func(t *testing.T) {
		elements := CSV("Name,Title\n\"Doe, Jane\",Engineer")
		row := elements[1].(*card.Container).Items[0].(*card.ColumnSet)
		cell := row.Columns[0].Items[0].(*card.TextBlock)
		if cell.Text != "Doe, Jane" {
			t.Errorf("cell = %q, want Doe, Jane", cell.Text)
		}
	})

	t.Run("MultiLineField", func(t *testing.T) {
		elements := CSV("Name,Notes\nJohn,\"line one\nline two\"")
		row := elements[1].(*card.Container).Items[0].(*card.ColumnSet)
		cell := row.Columns[1].Items[0].(*card.TextBlock)
		if !strings.Contains(cell.Text, "\n") {
			t.Errorf("cell = %q, want embedded newline preserved", cell.Text)
		}
	})
}

func TestCSVRaggedRecords(t *testing.T) {
	elements := CSV("A,B\nx\ny,z,extra")
	if len(elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(elements))
	}

	short := elements[1].(*card.Container).Items[0].(*card.ColumnSet)
	if len(short.Columns) != 2 {
		t.Errorf("short row columns = %d, want 2", len(short.Columns))
	}

	long := elements[2].(*card.Container).Items[0].(*card.ColumnSet)
	if len(long.Columns) != 2 {
		t.Errorf("long row columns = %d, want 2 (extras dropped)", len(long.Columns))
	}
}

func TestCSVEmpty(t *testing.T) {
	for _, input := range []string{"", "\n"} {
		elements := CSV(input)
		if len(elements) != 1 {
			t.Fatalf("CSV(%q) elements = %d, want 1", input, len(elements))
		}
		tb, ok := elements[0].(*card.TextBlock)
		if !ok {
			t.Fatalf("elements[0] = %T, want *card.TextBlock", elements[0])
		}
		if tb.Text != "Empty CSV data" {
			t.Errorf("text = %q, want Empty CSV data", tb.Text)
		}
		if tb.Color != card.ColorAttention {
			t.Errorf("color = %v, want attention", tb.Color)
		}
	}
}

func TestCSVMalformed(t *testing.T) {
	// A bare quote inside an unquoted field is a parse error in this dialect.
	elements := CSV("A,B\nx\",y")
	if len(elements) != 1 {
		t.Fatalf("elements = %d, want 1", len(elements))
	}
	tb := elements[0].(*card.TextBlock)
	if !strings.HasPrefix(tb.Text, "Error parsing CSV:") {
		t.Errorf("text = %q, want Error parsing CSV prefix", tb.Text)
	}
}
