package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/types"
)

const maxCardFeatures = 3

// CardDelegate renders ModelRecord items as five-line cards.
type CardDelegate struct {
	selection *browse.Selection
}

// NewCardDelegate returns a delegate that marks records held by selection.
func NewCardDelegate(selection *browse.Selection) CardDelegate {
	return CardDelegate{selection: selection}
}

// Height returns the height of a card (5 lines)
func (d CardDelegate) Height() int {
	return 5
}

// Spacing returns the spacing between cards
func (d CardDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for cards)
func (d CardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single card
func (d CardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	record, ok := item.(types.ModelRecord)
	if !ok {
		return
	}

	isCursor := index == m.Index()
	isSelected := d.selection != nil && d.selection.Contains(record.ID())
	width := m.Width()

	// Line 1: cursor + checkbox + icon + name + badge, price on the right
	cursor := "  "
	if isCursor {
		cursor = CursorStyle.Render("▌ ")
	}
	check := CardDimStyle.Render("[ ]")
	if isSelected {
		check = SelectedMarkStyle.Render("[✓]")
	}
	nameStyle := CardNameStyle
	if isCursor {
		nameStyle = CardNameActiveStyle
	}
	left := cursor + check + " " + record.Category().Icon() + " " + nameStyle.Render(record.Name())
	if record.Badge() != "" {
		left += " " + BadgeStyle.Render(record.Badge())
	}
	price := CardPriceStyle.Render(record.Price())
	line1 := joinEnds(left, price, width)

	indent := "      "
	bodyWidth := max(width-len(indent), 0)

	// Line 2: developer, release date, category
	meta := CardDeveloperStyle.Render(record.Developer()) +
		CardDimStyle.Render(fmt.Sprintf(" · %s · %s", record.ReleaseDate(), record.Category()))
	line2 := indent + ansi.Truncate(meta, bodyWidth, "…")

	// Line 3: description
	line3 := indent + CardBodyStyle.Render(ansi.Truncate(record.Description(), bodyWidth, "…"))

	// Line 4: first features, API price
	features := record.Features()
	if len(features) > maxCardFeatures {
		features = features[:maxCardFeatures]
	}
	featureStr := strings.Join(features, " • ")
	if record.APIPrice() != "" {
		featureStr = joinEnds(featureStr, CardDimStyle.Render("API "+record.APIPrice()), bodyWidth)
	}
	line4 := indent + ansi.Truncate(featureStr, bodyWidth, "…")

	// Line 5: tags and link state
	tags := make([]string, 0, len(record.Tags()))
	for _, t := range record.Tags() {
		tags = append(tags, "#"+t)
	}
	link := "↗ Visit Website"
	if !record.HasLink() {
		link = "No Link"
	}
	line5 := indent + joinEnds(CardDimStyle.Render(strings.Join(tags, " ")), CardDimStyle.Render(link), bodyWidth)

	fmt.Fprint(w, line1+"\n"+line2+"\n"+line3+"\n"+line4+"\n"+line5)
}

// joinEnds places left and right at opposite ends of a line of the given
// width, truncating left when both do not fit.
func joinEnds(left, right string, width int) string {
	rw := ansi.StringWidth(right)
	if rw+1 >= width {
		return ansi.Truncate(left, width, "…")
	}
	left = ansi.Truncate(left, width-rw-1, "…")
	gap := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", gap) + right
}
