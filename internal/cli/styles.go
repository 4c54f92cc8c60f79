package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorAccent  = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to the writer they render for, so colour is dropped
// automatically when output is not a terminal.
type styles struct {
	renderer *lipgloss.Renderer

	title   lipgloss.Style
	bold    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(colorAccent),
		bold:     r.NewStyle().Bold(true),
		success:  r.NewStyle().Foreground(colorSuccess),
		warning:  r.NewStyle().Foreground(colorWarning),
		err:      r.NewStyle().Bold(true).Foreground(colorError),
		muted:    r.NewStyle().Foreground(colorMuted),
	}
}

// table renders rows under headers. Columns listed in numeric are right
// aligned.
func (s styles) table(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		right[col] = true
	}

	cell := s.renderer.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cell
			if row == table.HeaderRow {
				style = header
			}
			if right[col] {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	return t.String()
}
