package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

func helpSections(k keyMap) []helpSection {
	return []helpSection{
		{title: "Navigation", bindings: []key.Binding{k.SwitchView, k.Escape, k.Up, k.Down, k.Top, k.Bottom}},
		{title: "Catalog", bindings: []key.Binding{k.NextList, k.PrevList, k.Search, k.ToggleCompare, k.AddCompare}},
		{title: "Compare", bindings: []key.Binding{k.OpenCompare, k.RemoveSlot, k.ClearSet, k.SlotLayout}},
		{title: "General", bindings: []key.Binding{k.CycleTheme, k.Help, k.Quit}},
	}
}

// renderHelp renders the help overlay content.
func renderHelp(theme Theme, keys keyMap) string {
	styles := theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Warning)).
		Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	sections := helpSections(keys)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
