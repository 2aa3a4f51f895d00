package mapper

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardforge/pkg/card"
)

func TestFactSet(t *testing.T) {
	fs := FactSet([]Pair{{"Name", "John"}, {"Age", "30"}})
	want := []card.Fact{{Title: "Name", Value: "John"}, {Title: "Age", Value: "30"}}
	if len(fs.Facts) != len(want) {
		t.Fatalf("facts = %d, want %d", len(fs.Facts), len(want))
	}
	for i := range want {
		if fs.Facts[i] != want[i] {
			t.Errorf("facts[%d] = %v, want %v", i, fs.Facts[i], want[i])
		}
	}
}

func TestFactSetFromMap(t *testing.T) {
	fs := FactSetFromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
	if len(fs.Facts) != 3 {
		t.Fatalf("facts = %d, want 3", len(fs.Facts))
	}
	// Keys are sorted for reproducibility.
	wantOrder := []string{"a", "b", "c"}
	for i, w := range wantOrder {
		if fs.Facts[i].Title != w {
			t.Errorf("facts[%d].Title = %q, want %q", i, fs.Facts[i].Title, w)
		}
	}
}

func TestList(t *testing.T) {
	t.Run("Numbered", func(t *testing.T) {
		items := []string{"a", "b", "c"}
		elements := List(items, true)
		if len(elements) != 3 {
			t.Fatalf("elements = %d, want 3", len(elements))
		}
		want := []string{"1. a", "2. b", "3. c"}
		for i, w := range want {
			tb := elements[i].(*card.TextBlock)
			if tb.Text != w {
				t.Errorf("elements[%d].Text = %q, want %q", i, tb.Text, w)
			}
			if !tb.Wrap {
				t.Errorf("elements[%d].Wrap = false, want true", i)
			}
		}
	})

	t.Run("Bulleted", func(t *testing.T) {
		elements := List([]string{"x", "y"}, false)
		for i, e := range elements {
			tb := e.(*card.TextBlock)
			if !strings.HasPrefix(tb.Text, "• ") {
				t.Errorf("elements[%d].Text = %q, want bullet prefix", i, tb.Text)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := List(nil, true); len(got) != 0 {
			t.Errorf("elements = %d, want 0", len(got))
		}
	})
}

func TestTable(t *testing.T) {
	headers := []string{"Name", "Age"}
	rows := [][]string{{"John", "30"}, {"Jane", "28"}, {"Bob", "45"}}

	t.Run("HeaderRow", func(t *testing.T) {
		elements := Table(headers, rows, TableOptions{})
		if len(elements) != 4 {
			t.Fatalf("elements = %d, want 4 (header + 3 rows)", len(elements))
		}
		head := elements[0].(*card.Container)
		if head.Style != card.StyleEmphasis {
			t.Errorf("header style = %v, want emphasis", head.Style)
		}
		if !head.Separator {
			t.Error("header Separator = false, want true")
		}
		cs := head.Items[0].(*card.ColumnSet)
		if len(cs.Columns) != 2 {
			t.Fatalf("header columns = %d, want 2", len(cs.Columns))
		}
		title := cs.Columns[0].Items[0].(*card.TextBlock)
		if title.Weight != card.WeightBolder {
			t.Errorf("header cell weight = %v, want bolder", title.Weight)
		}
	})

	t.Run("NoHeaderRowNeverEmphasized", func(t *testing.T) {
		elements := Table(headers, rows, TableOptions{NoHeaderRow: true})
		if len(elements) != 3 {
			t.Fatalf("elements = %d, want 3", len(elements))
		}
		first := elements[0].(*card.Container)
		if first.Style == card.StyleEmphasis {
			t.Error("first container is emphasized without a header row")
		}
	})

	t.Run("AlternatingRows", func(t *testing.T) {
		elements := Table(headers, rows, TableOptions{NoHeaderRow: true})
		for i, e := range elements {
			c := e.(*card.Container)
			wantAccent := i%2 == 1
			gotAccent := c.Style == card.StyleAccent
			if gotAccent != wantAccent {
				t.Errorf("row %d accent = %v, want %v", i, gotAccent, wantAccent)
			}
		}
	})

	t.Run("PlainRows", func(t *testing.T) {
		elements := Table(headers, rows, TableOptions{NoHeaderRow: true, PlainRows: true})
		for i, e := range elements {
			if c := e.(*card.Container); c.Style != "" {
				t.Errorf("row %d style = %v, want unset", i, c.Style)
			}
		}
	})

	t.Run("RaggedRows", func(t *testing.T) {
		ragged := [][]string{
			{"only"},                    // short: padded with empty cell
			{"a", "b", "overflow", "x"}, // long: extra cells dropped
		}
		elements := Table(headers, ragged, TableOptions{NoHeaderRow: true})

		short := elements[0].(*card.Container).Items[0].(*card.ColumnSet)
		if len(short.Columns) != 2 {
			t.Fatalf("short row columns = %d, want 2", len(short.Columns))
		}
		if cell := short.Columns[1].Items[0].(*card.TextBlock); cell.Text != "" {
			t.Errorf("padded cell = %q, want empty", cell.Text)
		}

		long := elements[1].(*card.Container).Items[0].(*card.ColumnSet)
		if len(long.Columns) != 2 {
			t.Errorf("long row columns = %d, want 2 (extras dropped)", len(long.Columns))
		}
	})

	t.Run("CustomWidths", func(t *testing.T) {
		elements := Table(headers, rows[:1], TableOptions{
			ColumnWidths: []card.Width{card.WidthStretch},
			NoHeaderRow:  true,
		})
		cs := elements[0].(*card.Container).Items[0].(*card.ColumnSet)
		if got := cs.Columns[0].Width.String(); got != "stretch" {
			t.Errorf("columns[0].Width = %q, want stretch", got)
		}
		// Unspecified trailing widths default to weight 1.
		if got := cs.Columns[1].Width.String(); got != "1" {
			t.Errorf("columns[1].Width = %q, want 1", got)
		}
	})
}

func TestKeyValueColumns(t *testing.T) {
	cs := KeyValueColumns([]KeyValue{
		{"Name", "John"},
		{"Tags", []any{"a", "b"}},
	}, card.Width{}, card.Width{})

	if len(cs.Columns) != 2 {
		t.Fatalf("columns = %d, want 2", len(cs.Columns))
	}
	if got := cs.Columns[0].Width.String(); got != "1" {
		t.Errorf("key width = %q, want 1", got)
	}
	if got := cs.Columns[1].Width.String(); got != "2" {
		t.Errorf("value width = %q, want 2", got)
	}

	key := cs.Columns[0].Items[0].(*card.TextBlock)
	if key.Weight != card.WeightBolder {
		t.Errorf("key weight = %v, want bolder", key.Weight)
	}

	nested := cs.Columns[1].Items[1].(*card.TextBlock)
	if !strings.Contains(nested.Text, "\"a\"") || !strings.Contains(nested.Text, "\n") {
		t.Errorf("nested value = %q, want indented JSON", nested.Text)
	}
}
