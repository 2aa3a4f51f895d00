package mapper

import (
	"fmt"
	"sort"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/card/factory"
	"github.com/matzehuels/cardforge/pkg/card/layout"
)

// Pair is one ordered title/value entry for fact sets and key/value layouts.
type Pair struct {
	Title string
	Value string
}

// FactSet builds a fact set with one fact per pair, preserving order.
func FactSet(pairs []Pair) *card.FactSet {
	facts := make([]card.Fact, 0, len(pairs))
	for _, p := range pairs {
		facts = append(facts, card.Fact{Title: p.Title, Value: p.Value})
	}
	return &card.FactSet{Facts: facts}
}

// FactSetFromMap builds a fact set from a map. Go maps have no stable
// iteration order, so keys are sorted for reproducible output; use [FactSet]
// when the caller controls the order.
func FactSetFromMap(m map[string]string) *card.FactSet {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Title: k, Value: m[k]})
	}
	return FactSet(pairs)
}

// List renders items as one text block per line. Numbered lists get a
// 1-based "N. " prefix, plain lists a bullet.
func List(items []string, numbered bool) []card.Element {
	elements := make([]card.Element, 0, len(items))
	for i, item := range items {
		prefix := "• "
		if numbered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		elements = append(elements, factory.Text(prefix+item))
	}
	return elements
}

// =============================================================================
// Tables
// =============================================================================

// TableOptions configures table synthesis. The zero value applies the
// defaults: an emphasized header row, alternating accent row backgrounds,
// and equal column weights.
type TableOptions struct {
	// ColumnWidths sets per-column widths. When shorter than the header
	// list, missing entries default to integer weight 1.
	ColumnWidths []card.Width

	// NoHeaderRow suppresses the emphasized header container.
	NoHeaderRow bool

	// PlainRows disables the alternating accent background on data rows.
	PlainRows bool
}

// Table renders headers and rows as a sequence of containers, one per row,
// each holding a column set. Row cells beyond the header count are dropped;
// missing trailing cells render as empty text. With alternating styling,
// rows at odd 0-based index get an accent background.
func Table(headers []string, rows [][]string, opts TableOptions) []card.Element {
	widths := make([]card.Width, len(headers))
	for i := range headers {
		if i < len(opts.ColumnWidths) && !opts.ColumnWidths[i].IsZero() {
			widths[i] = opts.ColumnWidths[i]
		} else {
			widths[i] = card.Weight(1)
		}
	}

	elements := make([]card.Element, 0, len(rows)+1)

	if !opts.NoHeaderRow {
		columns := make([]*card.Column, 0, len(headers))
		for i, header := range headers {
			columns = append(columns, &card.Column{
				Items: []card.Element{factory.StyledText(header, card.WeightBolder, "")},
				Width: widths[i],
			})
		}
		elements = append(elements, &card.Container{
			Items:     []card.Element{layout.NewColumnSet(columns, layout.ColumnSetOptions{})},
			Style:     card.StyleEmphasis,
			Separator: true,
		})
	}

	for rowIdx, row := range rows {
		columns := make([]*card.Column, 0, len(headers))
		for colIdx := range headers {
			cell := ""
			if colIdx < len(row) {
				cell = row[colIdx]
			}
			columns = append(columns, &card.Column{
				Items: []card.Element{factory.Text(cell)},
				Width: widths[colIdx],
			})
		}

		var style card.ContainerStyle
		if !opts.PlainRows && rowIdx%2 == 1 {
			style = card.StyleAccent
		}
		elements = append(elements, &card.Container{
			Items: []card.Element{layout.NewColumnSet(columns, layout.ColumnSetOptions{})},
			Style: style,
		})
	}

	return elements
}

// =============================================================================
// Key/Value Columns
// =============================================================================

// KeyValue is one ordered key/value entry for [KeyValueColumns]. Values may
// be nested structures; they render as indented JSON.
type KeyValue struct {
	Key   string
	Value any
}

// KeyValueColumns lays out pairs as a two-column set: bold keys on the left,
// stringified values on the right. Zero widths default to weights 1 and 2.
func KeyValueColumns(pairs []KeyValue, keyWidth, valueWidth card.Width) *card.ColumnSet {
	if keyWidth.IsZero() {
		keyWidth = card.Weight(1)
	}
	if valueWidth.IsZero() {
		valueWidth = card.Weight(2)
	}

	keyItems := make([]card.Element, 0, len(pairs))
	valueItems := make([]card.Element, 0, len(pairs))
	for _, p := range pairs {
		keyItems = append(keyItems, factory.StyledText(p.Key, card.WeightBolder, ""))
		valueItems = append(valueItems, factory.Text(stringify(normalize(p.Value))))
	}

	return &card.ColumnSet{Columns: []*card.Column{
		{Items: keyItems, Width: keyWidth},
		{Items: valueItems, Width: valueWidth},
	}}
}

// errorText renders a recoverable mapping failure as a visible inline
// element rather than an error return.
func errorText(msg string) card.Element {
	return factory.StyledText(msg, "", card.ColorAttention)
}
