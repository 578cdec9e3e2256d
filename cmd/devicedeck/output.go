package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/devicedeck/internal/catalog"
	"github.com/five82/devicedeck/internal/compare"
)

// renderTable draws a plain bordered table. Subcommand output is often
// piped, so no colors are applied.
func renderTable(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cell.Bold(true)
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func scoreText(p catalog.Product) string {
	if !p.HasScore() {
		return compare.MissingScore
	}
	return strconv.Itoa(*p.SpecScore)
}
