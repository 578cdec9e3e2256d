package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	SlotLayout  key.Binding
	SwitchView  key.Binding
	Escape      key.Binding
	ClearSet    key.Binding
	OpenCompare key.Binding

	// Catalog
	ToggleCompare key.Binding
	AddCompare    key.Binding
	NextList      key.Binding
	PrevList      key.Binding
	Search        key.Binding

	// Comparison page
	RemoveSlot key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Modal input
	Confirm  key.Binding
	NextItem key.Binding
	PrevItem key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SlotLayout: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Fixed/compact slots"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Catalog/compare"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / back"),
		),
		ClearSet: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Clear compare list"),
		),
		OpenCompare: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Compare (2+ items)"),
		),

		// Catalog
		ToggleCompare: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Toggle compare"),
		),
		AddCompare: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to compare"),
		),
		NextList: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "Next list"),
		),
		PrevList: key.NewBinding(
			key.WithKeys("L", "left"),
			key.WithHelp("L", "Previous list"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		// Compare bar and comparison page
		RemoveSlot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "Remove slot"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// Modal input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchView, k.Escape, k.Up, k.Down, k.Top, k.Bottom},
		{k.NextList, k.PrevList, k.Search},
		{k.ToggleCompare, k.AddCompare, k.OpenCompare, k.ClearSet},
		{k.RemoveSlot, k.SlotLayout},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
