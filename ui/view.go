package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/modeldeck/types"
)

const (
	maxPanelWidth = 96
	maxModalWidth = 128
	// title, subtitle, stats, tabs, controls, rule
	headerHeight = 6
	statusHeight = 1
)

// View renders the current view
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	base := m.backdrop.View()
	if base == "" {
		base = blankFrame(m.width, m.height)
	}

	pw := m.panelWidth()
	frame := overlay(base, m.renderPanel(pw), (m.width-pw)/2, 0)

	if m.state == CompareView {
		modal := m.renderModal()
		x := (m.width - lipgloss.Width(modal)) / 2
		y := (m.height - lipgloss.Height(modal)) / 2
		frame = overlay(frame, modal, max(x, 0), max(y, 0))
	}
	return frame
}

func (m Model) panelWidth() int {
	if m.width < 24 {
		return m.width
	}
	return min(m.width-4, maxPanelWidth)
}

// resizePanes adjusts the dimensions of list, search and viewport based on window size
func (m *Model) resizePanes() {
	pw := m.panelWidth()
	m.help.Width = pw
	m.search.Width = max(pw/2-4, 10)

	available := m.height - headerHeight - statusHeight - lipgloss.Height(m.helpView())
	m.list.SetSize(pw, max(available, 0))

	if m.state == CompareView {
		m.renderCompare()
	}
}

func (m Model) helpView() string {
	var km help.KeyMap = m.keys
	switch m.state {
	case SearchView:
		km = searchKeys
	case CompareView:
		km = compareKeys
	}
	return m.help.View(km)
}

// renderPanel draws the browser column, exactly m.height lines of width pw
func (m Model) renderPanel(pw int) string {
	lines := []string{
		joinEnds(TitleStyle.Render("✦ AI Generation Models"), SubtitleStyle.Render("Updated for 2025"), pw),
		SubtitleStyle.Render("Compare features, pricing and capabilities across Multimodal, Image, Video and Audio."),
		m.renderStats(),
		m.renderTabs(),
		joinEnds(m.search.View(), m.renderControls(), pw),
		CardDimStyle.Render(strings.Repeat("─", pw)),
	}

	listHeight := m.list.Height()
	if len(m.visible) == 0 {
		empty := []string{
			"",
			CardBodyStyle.Render("No models found matching your criteria."),
			CardDimStyle.Render("Press r to clear filters."),
		}
		for i := 0; i < listHeight; i++ {
			if i < len(empty) {
				lines = append(lines, empty[i])
			} else {
				lines = append(lines, "")
			}
		}
	} else {
		body := strings.Split(m.list.View(), "\n")
		for i := 0; i < listHeight; i++ {
			if i < len(body) {
				lines = append(lines, body[i])
			} else {
				lines = append(lines, "")
			}
		}
	}

	lines = append(lines, m.renderStatus(pw))
	lines = append(lines, strings.Split(m.helpView(), "\n")...)

	for len(lines) < m.height {
		lines = append(lines, "")
	}
	lines = lines[:m.height]
	for i, line := range lines {
		lines[i] = padLine(line, pw)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStats() string {
	items := []string{statItem(m.stats.Total, "Total Models", DraculaForeground)}
	for _, c := range types.Categories {
		label := c.String() + " Models"
		if c == types.Multimodal {
			label = c.String()
		}
		items = append(items, statItem(m.stats.Count(c), label, statColor(c.String())))
	}
	return strings.Join(items, CardDimStyle.Render("  │  "))
}

func statItem(count int, label string, color lipgloss.TerminalColor) string {
	return StatValueStyle.Foreground(color).Render(fmt.Sprintf("%d", count)) + " " + StatLabelStyle.Render(label)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(types.FilterCategories))
	for i, c := range types.FilterCategories {
		label := fmt.Sprintf("%d %s", i, c)
		if c != types.All {
			label = fmt.Sprintf("%d %s %s", i, c.Icon(), c)
		}
		if c == m.filter.Category {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderControls() string {
	sort := SortStyle.Render("⇅ " + m.filter.Sort.Label())
	n := m.selection.Len()
	if n == 0 {
		return sort + "  " + CompareIdleStyle.Render("📊 Compare")
	}
	return sort + "  " + CompareActiveStyle.Render(fmt.Sprintf("📊 Compare %d", n))
}

func (m Model) renderStatus(pw int) string {
	left := StatusBarStyle.Render(fmt.Sprintf("Showing %d of %d models", len(m.visible), m.stats.Total))
	if m.notice != "" {
		style := NoticeStyle
		if m.noticeErr {
			style = ErrorStyle
		}
		left += "  " + style.Render(m.notice)
	}
	return joinEnds(left, CardDimStyle.Render("Pricing estimates may vary"), pw)
}
