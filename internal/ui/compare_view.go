package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/devicedeck/internal/compare"
)

// renderComparePage draws the side-by-side comparison.
func (m Model) renderComparePage(height int) string {
	styles := m.theme.Styles()
	t := compare.BuildTable(m.compare.Snapshot(), m.tableOptions())

	if t.Filled() == 0 {
		empty := styles.MutedText.Render("Nothing to compare yet.") + "\n\n" +
			styles.FaintText.Render("Press tab to browse the catalog, then space on a product to add it.")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	title := fmt.Sprintf("Comparing %d of %d", t.Filled(), compare.Capacity)
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	if !t.CompareEnabled {
		b.WriteString("  ")
		b.WriteString(styles.WarningText.Render("add another product for a meaningful comparison"))
	}
	b.WriteString("\n")
	b.WriteString(m.renderCompareTable(t))
	return lipgloss.NewStyle().Width(m.width).Height(height).Render(b.String())
}

// renderCompareTable lays the assembled table out with one column per slot.
func (m Model) renderCompareTable(t compare.Table) string {
	styles := m.theme.Styles()
	border := lipgloss.Color(m.theme.Border)

	colWidth := 22
	if len(t.Slots) > 0 {
		if w := (m.width - 16) / len(t.Slots); w < colWidth {
			colWidth = w
		}
	}
	if colWidth < 10 {
		colWidth = 10
	}

	headers := make([]string, 0, len(t.Slots)+1)
	headers = append(headers, "")
	for i, s := range t.Slots {
		headers = append(headers, slotHeader(i, s, colWidth))
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, r.Label)
		for _, c := range r.Cells {
			row = append(row, truncate(c, colWidth))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(styles.AccentText).Bold(true)
			case col == 0:
				return base.Inherit(styles.MutedText)
			case row == 0 && col-1 < len(t.Slots) && t.Slots[col-1].Filled:
				return base.Inherit(styles.TierStyle(t.Slots[col-1].Tier))
			case col-1 < len(t.Slots) && !t.Slots[col-1].Filled:
				return base.Inherit(styles.FaintText)
			}
			return base.Inherit(styles.Text)
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// slotHeader is the column heading: position, name, price and, when the
// product has one, its image URI.
func slotHeader(i int, s compare.Slot, width int) string {
	if !s.Filled {
		return fmt.Sprintf("%d  (empty)", i+1)
	}
	h := fmt.Sprintf("%d  %s\n%s", i+1, truncate(s.Product.Name, width-3), s.Price)
	if s.Product.Image != "" {
		h += "\n" + truncateMiddle(s.Product.Image, width)
	}
	return h
}
