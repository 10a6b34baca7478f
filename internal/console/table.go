package console

import (
	"fmt"
	"io"

	"github.com/benaskins/passman/internal/vault"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTable writes entries as a bordered table. Passwords are never shown.
func RenderTable(w io.Writer, entries []vault.Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Account, e.Username, e.Email})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("account", "username", "email").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// RenderEntry writes a single entry as a one-row table.
func RenderEntry(w io.Writer, e vault.Entry) error {
	return RenderTable(w, []vault.Entry{e})
}
