// Package layout arranges card elements into structural containers.
//
// The composers here are purely structural: they build Container, Column,
// and ColumnSet trees from elements produced elsewhere and never fail. The
// higher-level helpers ([EqualColumns], [TwoColumn], [HeaderBodyFooter])
// encode the layout conventions shared by the mapper and the templates.
package layout

import "github.com/matzehuels/cardforge/pkg/card"

// ContainerOptions configures optional container attributes.
type ContainerOptions struct {
	Style     card.ContainerStyle
	Spacing   card.Spacing
	Separator bool
	Bleed     bool
	ID        string
}

// NewContainer wraps items in a container.
func NewContainer(items []card.Element, opts ContainerOptions) *card.Container {
	return &card.Container{
		Items:     items,
		Style:     opts.Style,
		Spacing:   opts.Spacing,
		Separator: opts.Separator,
		Bleed:     opts.Bleed,
		ID:        opts.ID,
	}
}

// ColumnOptions configures optional column attributes.
type ColumnOptions struct {
	Spacing       card.Spacing
	VerticalAlign card.VerticalAlignment
	Style         card.ContainerStyle
}

// NewColumn creates a column holding items. A zero width defaults to the
// literal "auto".
func NewColumn(items []card.Element, width card.Width, opts ColumnOptions) *card.Column {
	if width.IsZero() {
		width = card.WidthAuto
	}
	return &card.Column{
		Items:                    items,
		Width:                    width,
		Spacing:                  opts.Spacing,
		VerticalContentAlignment: opts.VerticalAlign,
		Style:                    opts.Style,
	}
}

// ColumnSetOptions configures optional column set attributes.
type ColumnSetOptions struct {
	Spacing   card.Spacing
	Separator bool
	ID        string
}

// NewColumnSet arranges columns side by side.
func NewColumnSet(columns []*card.Column, opts ColumnSetOptions) *card.ColumnSet {
	return &card.ColumnSet{
		Columns:   columns,
		Spacing:   opts.Spacing,
		Separator: opts.Separator,
		ID:        opts.ID,
	}
}

// EqualColumns builds a column set where every column gets integer weight 1,
// one column per content list, in the given order.
func EqualColumns(contents [][]card.Element, spacing card.Spacing) *card.ColumnSet {
	columns := make([]*card.Column, 0, len(contents))
	for _, items := range contents {
		columns = append(columns, &card.Column{Items: items, Width: card.Weight(1)})
	}
	return NewColumnSet(columns, ColumnSetOptions{Spacing: spacing})
}

// TwoColumn builds the common two-column layout. Zero widths default to
// equal integer weight 1.
func TwoColumn(left, right []card.Element, leftWidth, rightWidth card.Width, spacing card.Spacing) *card.ColumnSet {
	if leftWidth.IsZero() {
		leftWidth = card.Weight(1)
	}
	if rightWidth.IsZero() {
		rightWidth = card.Weight(1)
	}
	columns := []*card.Column{
		{Items: left, Width: leftWidth},
		{Items: right, Width: rightWidth},
	}
	return NewColumnSet(columns, ColumnSetOptions{Spacing: spacing})
}

// SectionStyles configures the container styles for [HeaderBodyFooter].
// Zero values keep the defaults: emphasis header, unstyled body, accent
// footer.
type SectionStyles struct {
	Header card.ContainerStyle
	Body   card.ContainerStyle
	Footer card.ContainerStyle

	// PlainHeader and PlainFooter suppress the default section styles
	// without substituting another (a zero Header/Footer style means
	// "use the default", so an explicit off switch is needed).
	PlainHeader bool
	PlainFooter bool
}

// HeaderBodyFooter builds the standard multi-section layout: a bleeding
// header container, a body container with medium spacing, and — only when
// footer items are present — a separated footer container.
func HeaderBodyFooter(header, body, footer []card.Element, styles SectionStyles) []card.Element {
	headerStyle := styles.Header
	if headerStyle == "" && !styles.PlainHeader {
		headerStyle = card.StyleEmphasis
	}
	footerStyle := styles.Footer
	if footerStyle == "" && !styles.PlainFooter {
		footerStyle = card.StyleAccent
	}

	sections := []card.Element{
		&card.Container{Items: header, Style: headerStyle, Bleed: true},
		&card.Container{Items: body, Style: styles.Body, Spacing: card.SpacingMedium},
	}
	if len(footer) > 0 {
		sections = append(sections, &card.Container{
			Items:     footer,
			Style:     footerStyle,
			Spacing:   card.SpacingMedium,
			Separator: true,
		})
	}
	return sections
}
