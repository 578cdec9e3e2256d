package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/compare"
)

const (
	cardAdd       = "[+ compare]"
	cardComparing = "[✓ comparing]"
)

// refreshRows re-reads the visible products from the catalog store. It runs
// on every tick so catalog reloads show up without a restart.
func (m *Model) refreshRows() {
	if m.catalog == nil {
		m.rows = nil
		m.listNames = nil
		return
	}

	lists := m.catalog.Lists()
	names := make([]string, 0, len(lists))
	for _, l := range lists {
		names = append(names, l.Name)
	}
	m.listNames = names
	if m.listIdx >= len(lists) {
		m.listIdx = 0
	}

	switch {
	case m.filter != nil:
		m.rows = m.catalog.Search(*m.filter)
	case len(lists) > 0:
		m.rows = lists[m.listIdx].Products
	default:
		m.rows = nil
	}

	if m.selectedRow >= len(m.rows) {
		m.selectedRow = len(m.rows) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// cycleList moves to the next or previous list tab and drops any search.
func (m *Model) cycleList(delta int) {
	n := len(m.listNames)
	if n == 0 {
		return
	}
	m.listIdx = (m.listIdx + delta + n) % n
	m.filter = nil
	m.filterLabel = ""
	m.selectedRow = 0
	m.refreshRows()
}

func (m *Model) applySearch(msg searchAppliedMsg) {
	criteria := msg.criteria
	if criteria.Keyword == "" && criteria.MinPrice == nil && criteria.MaxPrice == nil {
		m.filter = nil
		m.filterLabel = ""
	} else {
		m.filter = &criteria
		m.filterLabel = msg.label
	}
	m.selectedRow = 0
	m.refreshRows()
}

func (m Model) selectedProduct() (catalog.Product, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.rows) {
		return catalog.Product{}, false
	}
	return m.rows[m.selectedRow], true
}

func (m Model) formatPrice(p catalog.Price) string {
	return catalog.FormatPrice(p, m.currencySymbol)
}

// cardLabel is the per-product compare affordance.
func cardLabel(set compare.Set, id string) string {
	if set.Contains(id) {
		return cardComparing
	}
	return cardAdd
}

// renderListTabs draws the list names with the active one highlighted.
func (m Model) renderListTabs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	if m.filter != nil {
		label := "Search"
		if m.filterLabel != "" {
			label += " " + m.filterLabel
		}
		return bg.FillLine(
			bg.Render(label, styles.AccentText.Bold(true))+bg.Spaces(2)+
				bg.Render(fmt.Sprintf("%d results", len(m.rows)), styles.MutedText)+bg.Spaces(2)+
				bg.Render("esc clears", styles.FaintText),
			m.width)
	}

	tabs := make([]string, 0, len(m.listNames))
	for i, name := range m.listNames {
		if i == m.listIdx {
			tabs = append(tabs, styles.Selected.Padding(0, 1).Render(titleCase(name)))
			continue
		}
		tabs = append(tabs, bg.Render(" "+titleCase(name)+" ", styles.MutedText))
	}
	return bg.FillLine(bg.Join(tabs, " "), m.width)
}

// renderCatalog draws the product rows that fit in height.
func (m Model) renderCatalog(height int) string {
	styles := m.theme.Styles()
	if len(m.rows) == 0 {
		msg := "No products in this list."
		if m.filter != nil {
			msg = "No products match this search."
		}
		return lipgloss.NewStyle().Width(m.width).Height(height).Render(
			styles.MutedText.Render("  " + msg))
	}

	set := m.compare.Snapshot()
	start, end := visibleWindow(len(m.rows), m.selectedRow, height)

	nameWidth := m.width - 48
	if nameWidth < 16 {
		nameWidth = 16
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.rows[i]
		lines = append(lines, m.renderCard(p, set, i == m.selectedRow, nameWidth))
	}
	return lipgloss.NewStyle().Width(m.width).Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) renderCard(p catalog.Product, set compare.Set, selected bool, nameWidth int) string {
	styles := m.theme.Styles()

	label := cardLabel(set, p.ID)
	labelStyle := styles.AccentText
	switch {
	case label == cardComparing:
		labelStyle = styles.SuccessText
	case set.IsFull():
		labelStyle = styles.FaintText
	}

	score := compare.MissingScore
	if p.HasScore() {
		score = fmt.Sprintf("%d", *p.SpecScore)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	line := cursor +
		labelStyle.Render(padRight(label, 14)) + " " +
		styles.Text.Render(padRight(truncate(p.Name, nameWidth), nameWidth)) + " " +
		styles.Text.Render(padLeft(m.formatPrice(p.Price), 12)) + "  " +
		styles.TierStyle(compare.ScoreTier(p.SpecScore)).Render(padLeft(score, 3)) + "  " +
		styles.MutedText.Render(p.Category.Label())

	if selected {
		return styles.Selected.Width(m.width).Render(line)
	}
	return line
}

// visibleWindow returns the [start, end) range of rows to draw so that the
// selected row stays on screen.
func visibleWindow(total, selected, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start := selected - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}
