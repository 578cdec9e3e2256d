package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/devicedeck/internal/compare"
)

const barPlaceholder = "[ + ]"

func (m Model) tableOptions() compare.TableOptions {
	return compare.TableOptions{
		FixedSlots:  m.fixedSlots,
		FormatPrice: m.formatPrice,
	}
}

// barHeight is the number of lines renderBar will use for strip.
func barHeight(strip compare.Strip) int {
	if !strip.Visible() {
		return 0
	}
	return 2 // top border plus content
}

// renderBar draws the floating compare bar. It returns "" for an empty set.
func (m Model) renderBar(strip compare.Strip) string {
	if !strip.Visible() {
		return ""
	}

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render(fmt.Sprintf("Compare %d/%d", len(strip.Chips), compare.Capacity), styles.AccentText.Bold(true)),
	}

	nameLimit := 18
	if compact {
		nameLimit = 10
	}
	for i, chip := range strip.Chips {
		text := fmt.Sprintf("%d %s", i+1, truncate(chip.Name, nameLimit))
		if !compact {
			text += " " + chip.Price
		}
		if chip.Score != compare.MissingScore {
			text += " " + chip.Score + "★"
		}
		parts = append(parts, styles.TierStyle(chip.Tier).Render(text))
	}
	for i := 0; i < strip.Placeholders; i++ {
		parts = append(parts, bg.Render(barPlaceholder, styles.FaintText))
	}

	trigger := bg.Render("c", styles.AccentText) + bg.Sep(":") + bg.Render("Compare", styles.Text.Bold(true))
	if !strip.CompareEnabled {
		trigger = bg.Render("c:Compare", styles.FaintText) + bg.Space() +
			bg.Render(fmt.Sprintf("(add %d more)", compare.MinComparable-len(strip.Chips)), styles.FaintText)
	}
	parts = append(parts, trigger,
		bg.Render("1-4", styles.AccentText)+bg.Sep(":")+bg.Render("Remove", styles.MutedText),
		bg.Render("x", styles.AccentText)+bg.Sep(":")+bg.Render("Clear", styles.MutedText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(m.width).
		Render(strings.Join(parts, bg.Spaces(2)))
}
