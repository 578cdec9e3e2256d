package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// noticeModal blocks input until any key is pressed.
type noticeModal struct {
	title   string
	message string
	danger  bool
}

func newNotice(title, message string, danger bool) noticeModal {
	return noticeModal{title: title, message: message, danger: danger}
}

func (n noticeModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, nil, true
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	titleStyle := styles.WarningText.Bold(true)
	if n.danger {
		titleStyle = styles.DangerText
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(n.title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(n.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Press any key to continue"))

	border := theme.Warning
	if n.danger {
		border = theme.Danger
	}
	return placeModal(theme, width, height, 44, border, b.String())
}

// placeModal centers a bordered box over the screen.
func placeModal(theme Theme, width, height, modalWidth int, border, content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

// helpModal lists the key bindings; any key closes it.
type helpModal struct{}

func (h helpModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	_, isKey := msg.(tea.KeyMsg)
	return h, nil, isKey
}

func (h helpModal) View(theme Theme, width, height int) string {
	return placeModal(theme, width, height, 46, theme.Accent, renderHelp(theme, DefaultKeyMap()))
}
