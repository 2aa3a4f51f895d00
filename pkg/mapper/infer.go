package mapper

import "github.com/matzehuels/cardforge/pkg/card"

// shape is the tagged result of the single classification step. Dispatch
// happens on this tag alone; no call site inspects types ad hoc.
type shape int

const (
	shapeScalar shape = iota
	shapeObject
	shapeTable
	shapeList
)

// classify determines the visual shape of a decoded value.
// A non-empty list whose every element is an object is a table; any other
// list is a plain list; objects become fact sets; everything else is a
// scalar with no visual mapping.
func classify(v any) shape {
	switch t := v.(type) {
	case object:
		return shapeObject
	case []any:
		if len(t) == 0 {
			return shapeList
		}
		for _, item := range t {
			if _, ok := item.(object); !ok {
				return shapeList
			}
		}
		return shapeTable
	default:
		return shapeScalar
	}
}

// FromJSON parses JSON text and emits elements for its inferred shape.
// Invalid JSON degrades to a single inline error element; a bare scalar
// document yields no elements.
func FromJSON(input string) []card.Element {
	v, err := decodeJSON(input)
	if err != nil {
		return []card.Element{errorText("Invalid JSON data")}
	}
	return mapValue(v)
}

// FromValue emits elements for an already-parsed Go value (maps, slices,
// scalars). Map keys are sorted for reproducibility; use [FromJSON] when the
// original document order matters.
func FromValue(v any) []card.Element {
	return mapValue(normalize(v))
}

func mapValue(v any) []card.Element {
	switch classify(v) {
	case shapeObject:
		return []card.Element{objectFacts(v.(object))}
	case shapeTable:
		headers, rows := tabulate(v.([]any))
		return Table(headers, rows, TableOptions{})
	case shapeList:
		items := v.([]any)
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, stringify(item))
		}
		return List(lines, false)
	default:
		return nil
	}
}

// objectFacts renders an object as a fact set: scalar members stringified
// plainly, nested members as indented JSON.
func objectFacts(obj object) *card.FactSet {
	pairs := make([]Pair, 0, len(obj.members))
	for _, m := range obj.members {
		value := stringify(m.val)
		if !isScalar(m.val) {
			value = indentJSON(m.val)
		}
		pairs = append(pairs, Pair{Title: m.key, Value: value})
	}
	return FactSet(pairs)
}

// tabulate derives table headers and rows from a list of records.
// Headers are the first-seen union of keys across all records, scanning
// records left to right, so heterogeneous inputs produce a deterministic
// column order. Missing values render as empty cells.
func tabulate(records []any) ([]string, [][]string) {
	var headers []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, m := range rec.(object).members {
			if !seen[m.key] {
				seen[m.key] = true
				headers = append(headers, m.key)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		obj := rec.(object)
		row := make([]string, len(headers))
		for i, h := range headers {
			if val, ok := obj.get(h); ok {
				row[i] = stringify(val)
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}
