package mapper

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/matzehuels/cardforge/pkg/card"
)

// CSV parses comma-separated text and renders it as a table. The first
// record becomes the header row; the rest become data rows with the default
// table styling.
//
// The dialect is encoding/csv's: comma-delimited, double-quote enclosing,
// embedded commas and newlines allowed inside quoted fields, and records of
// varying length accepted. Parse failures and empty input degrade to an
// inline error element.
func CSV(text string) []card.Element {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1 // ragged rows are tolerated; Table pads/trims

	records, err := reader.ReadAll()
	if err != nil {
		return []card.Element{errorText(fmt.Sprintf("Error parsing CSV: %v", err))}
	}
	if len(records) == 0 {
		return []card.Element{errorText("Empty CSV data")}
	}

	return Table(records[0], records[1:], TableOptions{})
}
