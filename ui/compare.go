package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/modeldeck/types"
)

const minColumnWidth = 18

// modalWidth returns the outer width of the comparison modal
func (m Model) modalWidth() int {
	return max(min(m.width-4, maxModalWidth), minColumnWidth+4)
}

// renderCompare lays out one column per selected record into the viewport
func (m *Model) renderCompare() {
	records := m.selection.Records()
	if len(records) == 0 {
		m.viewport.SetContent("")
		return
	}

	// modal border and padding take 4 cells
	inner := m.modalWidth() - 4
	outer := max(inner/len(records), minColumnWidth)
	// column border takes 2 cells, lipgloss width includes padding
	width := outer - 2

	cols := make([]string, len(records))
	for i, r := range records {
		style := ColumnStyle
		if i == m.compareFocus {
			style = ColumnFocusedStyle
		}
		cols[i] = style.Width(width).Render(compareColumn(r, width-2, i == m.compareFocus))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// header, blank line, help line and modal border
	maxHeight := max(m.height-4-4, 3)
	m.viewport.Width = inner
	m.viewport.Height = min(lipgloss.Height(content), maxHeight)
	m.viewport.SetContent(content)
}

// compareColumn renders the fields of one record, wrapped to width
func compareColumn(r types.ModelRecord, width int, focused bool) string {
	var b strings.Builder

	name := CardNameStyle.Render(r.Category().Icon() + " " + r.Name())
	if focused {
		name = CardNameActiveStyle.Render(r.Category().Icon() + " " + r.Name())
	}
	b.WriteString(name + "\n")
	b.WriteString(CardDeveloperStyle.Render(r.Developer()) + "\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString("\n" + FieldLabelStyle.Render(strings.ToUpper(label)) + "\n")
		b.WriteString(CardBodyStyle.Render(value) + "\n")
	}
	field("Category", r.Category().String())
	field("Price", r.Price())
	field("API Price", r.APIPrice())
	field("Released", r.ReleaseDate())

	if features := r.Features(); len(features) > 0 {
		b.WriteString("\n" + FieldLabelStyle.Render("FEATURES") + "\n")
		for _, f := range features {
			b.WriteString(CardBodyStyle.Render("• "+f) + "\n")
		}
	}
	if tags := r.Tags(); len(tags) > 0 {
		marked := make([]string, len(tags))
		for i, t := range tags {
			marked[i] = "#" + t
		}
		b.WriteString("\n" + FieldLabelStyle.Render("BEST FOR") + "\n")
		b.WriteString(CardDimStyle.Render(strings.Join(marked, " ")) + "\n")
	}

	b.WriteString("\n")
	if r.HasLink() {
		b.WriteString(SortStyle.Render("↗ Visit Website"))
	} else {
		b.WriteString(CardDimStyle.Render("No Link"))
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

// renderModal draws the comparison modal around the viewport
func (m Model) renderModal() string {
	inner := m.modalWidth() - 4
	header := joinEnds(
		TitleStyle.Render("📊 Model Comparison"),
		StatusBarStyle.Render(fmt.Sprintf("%d selected", m.selection.Len())),
		inner,
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		m.help.ShortHelpView(compareKeys.ShortHelp()),
	)
	return ModalStyle.Width(inner + 2).Render(body)
}
