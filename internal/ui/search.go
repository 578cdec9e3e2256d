package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/devicedeck/internal/catalog"
)

const (
	searchKeyword = iota
	searchMin
	searchMax
	searchFieldCount
)

var searchLabels = [searchFieldCount]string{
	"Keyword:   ",
	"Min price: ",
	"Max price: ",
}

// searchAppliedMsg carries the criteria chosen in the search modal.
type searchAppliedMsg struct {
	criteria catalog.Criteria
	label    string
}

var errInvertedRange = errors.New("min price is above max price")

// searchModal collects a keyword and an optional price range.
type searchModal struct {
	inputs   [searchFieldCount]textinput.Model
	focusIdx int
	err      error
}

func newSearchModal(current catalog.Criteria) searchModal {
	placeholders := [searchFieldCount]string{
		"e.g. pixel, oled",
		"e.g. 20000 or ₹20,000",
		"e.g. 80000",
	}
	var s searchModal
	for i := range s.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 40
		in.Width = 28
		s.inputs[i] = in
	}
	s.inputs[searchKeyword].SetValue(current.Keyword)
	if current.MinPrice != nil {
		s.inputs[searchMin].SetValue(fmt.Sprintf("%d", *current.MinPrice))
	}
	if current.MaxPrice != nil {
		s.inputs[searchMax].SetValue(fmt.Sprintf("%d", *current.MaxPrice))
	}
	s.inputs[searchKeyword].Focus()
	return s
}

func (s searchModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}

	switch {
	case key.Matches(keyMsg, keys.Escape):
		return s, nil, true

	case key.Matches(keyMsg, keys.Confirm):
		criteria, err := s.criteria()
		if err != nil {
			s.err = err
			return s, nil, false
		}
		applied := searchAppliedMsg{criteria: criteria, label: describeCriteria(criteria)}
		return s, func() tea.Msg { return applied }, true

	case key.Matches(keyMsg, keys.NextItem):
		s.moveFocus(1)
		return s, nil, false

	case key.Matches(keyMsg, keys.PrevItem):
		s.moveFocus(-1)
		return s, nil, false

	case keyMsg.String() == "ctrl+c":
		// Clear all fields (modal-specific, doesn't quit)
		for i := range s.inputs {
			s.inputs[i].SetValue("")
		}
		s.err = nil
		return s, nil, false
	}

	var cmd tea.Cmd
	s.inputs[s.focusIdx], cmd = s.inputs[s.focusIdx].Update(keyMsg)
	s.err = nil
	return s, cmd, false
}

func (s *searchModal) moveFocus(delta int) {
	s.inputs[s.focusIdx].Blur()
	s.focusIdx = (s.focusIdx + delta + searchFieldCount) % searchFieldCount
	s.inputs[s.focusIdx].Focus()
}

// criteria converts the field values. Blank fields leave that filter off.
func (s searchModal) criteria() (catalog.Criteria, error) {
	minPrice, err := parseBound("min price", s.inputs[searchMin].Value())
	if err != nil {
		return catalog.Criteria{}, err
	}
	maxPrice, err := parseBound("max price", s.inputs[searchMax].Value())
	if err != nil {
		return catalog.Criteria{}, err
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return catalog.Criteria{}, errInvertedRange
	}
	return catalog.Criteria{
		Keyword:  strings.TrimSpace(s.inputs[searchKeyword].Value()),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}

func parseBound(name, raw string) (*catalog.Price, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !catalog.HasDigits(raw) {
		return nil, fmt.Errorf("%s needs digits", name)
	}
	return catalog.Bound(catalog.ParsePrice(raw)), nil
}

// describeCriteria renders an active filter for the header.
func describeCriteria(c catalog.Criteria) string {
	var parts []string
	if c.Keyword != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Keyword))
	}
	switch {
	case c.MinPrice != nil && c.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("%d–%d", *c.MinPrice, *c.MaxPrice))
	case c.MinPrice != nil:
		parts = append(parts, fmt.Sprintf("≥%d", *c.MinPrice))
	case c.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("≤%d", *c.MaxPrice))
	}
	return strings.Join(parts, " ")
}

func (s searchModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Search Catalog"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Searches every list. Bounds are inclusive."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Leave blank to disable a filter."))
	b.WriteString("\n\n")

	for i := range s.inputs {
		label := searchLabels[i]
		if i == s.focusIdx {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label)
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n\n")
	}

	if s.err != nil {
		b.WriteString(styles.DangerText.Render(s.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel  •  Ctrl+C: Clear"))

	return placeModal(theme, width, height, 50, theme.Accent, b.String())
}
