// Package render draws the matrix as a 2x2 grid for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/eisen/pkg/core"
)

// Options controls the layout of the grid.
type Options struct {
	// CellWidth is the inner width of one quadrant. Zero means 34.
	CellWidth int
	// ShowIDs prints a shortened id under each title.
	ShowIDs bool
}

const (
	defaultCellWidth = 34
	shortIDLen       = 8
	rowLabelWidth    = 15
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(rowLabelWidth).PaddingRight(1)
	cellStyle   = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	quadrantStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	bodyStyle     = lipgloss.NewStyle().Faint(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Matrix renders m with "Urgent"/"Not urgent" column headers and
// "Important"/"Not important" row labels.
func Matrix(m core.Matrix, opts Options) string {
	width := opts.CellWidth
	if width <= 0 {
		width = defaultCellWidth
	}
	// Outer width of a cell: border and padding on both sides.
	outer := width + 4

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Repeat(" ", rowLabelWidth),
		headerStyle.Width(outer).Render("Urgent"),
		headerStyle.Width(outer).Render("Not urgent"),
	)

	row := func(label string, left, right core.Quadrant) string {
		cells := lipgloss.JoinHorizontal(lipgloss.Top,
			Cell(left, m[left], width, opts.ShowIDs),
			Cell(right, m[right], width, opts.ShowIDs),
		)
		return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(label), cells)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		row("Important", core.Q1, core.Q2),
		row("Not important", core.Q3, core.Q4),
	)
}

// Cell renders one quadrant with its label and cards.
func Cell(q core.Quadrant, notes []core.Note, width int, showIDs bool) string {
	parts := []string{quadrantStyle.Render(q.Label())}
	if len(notes) == 0 {
		parts = append(parts, emptyStyle.Render("no notes"))
	}
	for _, n := range notes {
		parts = append(parts, Card(n, width-2, showIDs))
	}
	return cellStyle.Width(width + 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Card renders a note as a bordered card tinted with its color.
func Card(n core.Note, width int, showIDs bool) string {
	color := n.Color
	if color == "" {
		color = core.DefaultColor
	}
	tint := lipgloss.Color(color)

	lines := []string{lipgloss.NewStyle().Bold(true).Foreground(tint).Render(n.Title)}
	if n.Body != "" {
		lines = append(lines, bodyStyle.Render(n.Body))
	}
	if showIDs {
		lines = append(lines, idStyle.Render(ShortID(n.ID)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tint).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ShortID trims generated ids to a readable prefix.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
