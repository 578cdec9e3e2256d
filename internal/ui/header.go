package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/devicedeck/internal/compare"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	body := m.height - headerLines - flashLines
	switch m.currentView {
	case ViewCompare:
		if body < minBodyLines {
			body = minBodyLines
		}
		b.WriteString(m.renderComparePage(body))
	default:
		strip := compare.BuildStrip(m.compare.Snapshot(), m.tableOptions())
		body -= tabLines + barHeight(strip)
		if body < minBodyLines {
			body = minBodyLines
		}
		b.WriteString(m.renderListTabs())
		b.WriteString("\n")
		b.WriteString(m.renderCatalog(body))
		if bar := m.renderBar(strip); bar != "" {
			b.WriteString("\n")
			b.WriteString(bar)
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFlash())
	return b.String()
}

// renderHeader renders the status line: catalog health and compare count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("devicedeck", styles.Logo)}

	snap := m.snapshot
	switch {
	case !snap.Loaded && snap.LastError != nil:
		parts = append(parts, bg.Render("CATALOG ERROR", styles.DangerText))
		parts = append(parts, bg.Render(truncate(snap.LastError.Error(), 60), styles.MutedText))
	case snap.LastError != nil:
		label := fmt.Sprintf("Reload failed (x%d)", snap.ConsecutiveFailures)
		style := styles.WarningText
		if snap.IsStale() {
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(label, style))
	}

	if snap.Loaded {
		parts = append(parts,
			bg.Render("Lists:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.Lists), styles.Text),
			bg.Render("Products:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprintf("%d", snap.Products), styles.Text),
		)
	}

	set := m.compare.Snapshot()
	countStyle := styles.MutedText
	switch set.Stage() {
	case compare.StageComparable:
		countStyle = styles.SuccessText
	case compare.StageFull:
		countStyle = styles.WarningText
	}
	parts = append(parts,
		bg.Render("Compare:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d/%d", set.Len(), compare.Capacity), countStyle))

	if m.width >= LayoutUpdatedWidth && snap.Source != "" {
		parts = append(parts, bg.Render(truncateMiddle(snap.Source, 40), styles.FaintText))
		if !snap.LastUpdated.IsZero() {
			parts = append(parts, bg.Render("updated "+humanize.Time(snap.LastUpdated), styles.FaintText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	slotLabel := "Compact"
	if m.fixedSlots {
		slotLabel = "Fixed"
	}

	switch m.currentView {
	case ViewCompare:
		commands = []cmd{
			{"1-4", "Remove"},
			{"x", "Clear"},
			{"s", slotLabel},
			{"Tab", "Catalog"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"Space", "Toggle"},
			{"a", "Add"},
			{"/", "Search"},
			{"l/L", "Lists"},
			{"c", "Compare"},
			{"Tab", "Page"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFlash renders the transient notice line.
func (m Model) renderFlash() string {
	if m.flash == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Info)).
		Padding(0, 1).
		Render(m.flash)
}
