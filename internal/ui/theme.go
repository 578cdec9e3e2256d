package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/devicedeck/internal/compare"
)

// Theme is a named color palette. Colors are hex strings.
type Theme struct {
	Name string

	Background string // terminal background, catalog rows
	Surface    string // header and command bar
	SurfaceAlt string // compare bar

	SelectionBg   string // cursor row, active list tab
	SelectionText string

	Border string
	Text   string
	Muted  string
	Faint  string

	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// TierColors paints spec score badges.
	TierColors map[compare.Tier]string
}

// newTheme fills the tier colors from the palette: unscored products are
// faint, standard scores use the accent, high scores the success color.
func newTheme(t Theme) Theme {
	t.TierColors = map[compare.Tier]string{
		compare.TierNone:     t.Faint,
		compare.TierStandard: t.Accent,
		compare.TierHigh:     t.Success,
	}
	return t
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	tierColors map[compare.Tier]string
	badgeText  string
	fallback   string
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	panel := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(t.Text))
	}

	return Styles{
		Background: lipgloss.NewStyle().Background(lipgloss.Color(t.Background)),
		Surface:    panel(t.Surface),
		SurfaceAlt: panel(t.SurfaceAlt),

		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		Header:   panel(t.Surface).Padding(0, 1),
		Logo:     fg(t.Warning).Bold(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color(t.SelectionBg)).Foreground(lipgloss.Color(t.SelectionText)),

		tierColors: t.TierColors,
		badgeText:  t.Background,
		fallback:   t.Muted,
	}
}

// TierStyle returns the score badge style for tier. High scores are bold.
func (s Styles) TierStyle(tier compare.Tier) lipgloss.Style {
	color := s.tierColors[tier]
	if color == "" {
		color = s.fallback
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.badgeText)).
		Background(lipgloss.Color(color)).
		Bold(tier == compare.TierHigh).
		Padding(0, 1)
}

// WithBackground returns a copy whose text styles paint bgColor explicitly,
// so styled fragments inside a panel do not punch holes in its background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Background, &out.Surface, &out.SurfaceAlt,
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText,
		&out.Header, &out.Logo, &out.Selected,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": newTheme(Theme{
		Name: "Nightfox",
		Background: "#131a24", Surface: "#192330", SurfaceAlt: "#212e3f",
		SelectionBg: "#2b3b51", SelectionText: "#cdcecf",
		Border: "#39506d", Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Accent: "#719cd6", Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d", Info: "#63cdcf",
	}),
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": newTheme(Theme{
		Name: "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28", SurfaceAlt: "#2A2A37",
		SelectionBg: "#2D4F67", SelectionText: "#DCD7BA",
		Border: "#54546D", Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Accent: "#7E9CD8", Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876", Info: "#7FB4CA",
	}),
	// Tailwind slate and sky.
	"Slate": newTheme(Theme{
		Name: "Slate",
		Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b",
		SelectionBg: "#0284c7", SelectionText: "#f8fafc",
		Border: "#334155", Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Accent: "#38bdf8", Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444", Info: "#06b6d4",
	}),
}

// GetTheme returns the named theme, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns the available themes in cycle order.
func ThemeNames() []string {
	return themeOrder
}
