package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardforge/pkg/card"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// CardTreeModel - Interactive card element browser
// =============================================================================

// treeRow is one line of the flattened element tree.
type treeRow struct {
	Depth   int
	Kind    string
	Label   string
	Element card.Element
}

// CardTreeModel is the bubbletea model for browsing a card's element tree.
type CardTreeModel struct {
	Version  string
	SizeKB   float64
	Rows     []treeRow
	Actions  []card.Action
	Cursor   int
	Offset   int
	Height   int
	ShowJSON bool
}

// NewCardTreeModel creates a browser model over a card's flattened body.
func NewCardTreeModel(crd *card.Card, sizeKB float64) CardTreeModel {
	return CardTreeModel{
		Version: crd.Version,
		SizeKB:  sizeKB,
		Rows:    flattenElements(crd.Body, 0),
		Actions: crd.Actions,
		Height:  15,
	}
}

func (m CardTreeModel) Init() tea.Cmd {
	return nil
}

func (m CardTreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Rows) > 0 {
				m.ShowJSON = !m.ShowJSON
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m CardTreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Card Preview"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("v%s · %.2f KB · %d elements · %d actions",
		m.Version, m.SizeKB, len(m.Rows), len(m.Actions))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ toggle json  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty card body)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		indent := strings.Repeat("  ", row.Depth)
		line := fmt.Sprintf("%s%s%-22s %s", cursor, indent, row.Kind, listDimStyle.Render(row.Label))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.ShowJSON {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(elementJSON(m.Rows[m.Cursor].Element)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// flattenElements walks the element tree depth first into display rows.
func flattenElements(elems []card.Element, depth int) []treeRow {
	var rows []treeRow
	for _, e := range elems {
		rows = append(rows, treeRow{
			Depth:   depth,
			Kind:    e.ElementType(),
			Label:   elementLabel(e),
			Element: e,
		})
		switch v := e.(type) {
		case *card.Container:
			rows = append(rows, flattenElements(v.Items, depth+1)...)
		case *card.ColumnSet:
			for _, col := range v.Columns {
				rows = append(rows, treeRow{
					Depth:   depth + 1,
					Kind:    col.ElementType(),
					Label:   fmt.Sprintf("width=%s", col.Width.String()),
					Element: col,
				})
				rows = append(rows, flattenElements(col.Items, depth+2)...)
			}
		}
	}
	return rows
}

// elementLabel produces a short one line summary of an element.
func elementLabel(e card.Element) string {
	switch v := e.(type) {
	case *card.TextBlock:
		return truncate(v.Text, 48)
	case *card.Image:
		return truncate(v.URL, 48)
	case *card.FactSet:
		return fmt.Sprintf("%d facts", len(v.Facts))
	case *card.Container:
		return fmt.Sprintf("%d items", len(v.Items))
	case *card.ColumnSet:
		return fmt.Sprintf("%d columns", len(v.Columns))
	case *card.TextInput:
		return "id=" + v.ID
	case *card.DateInput:
		return "id=" + v.ID
	case *card.ChoiceSet:
		return fmt.Sprintf("id=%s, %d choices", v.ID, len(v.Choices))
	default:
		return ""
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func elementJSON(e card.Element) string {
	data, err := json.MarshalIndent(e, "  ", "  ")
	if err != nil {
		return err.Error()
	}
	return "  " + string(data)
}
