// Package render turns grid snapshots into text for terminals and tests.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wator/internal/wator"
)

// Runes used for each kind of cell.
const (
	RuneEmpty = '.'
	RuneFish  = 'f'
	RuneShark = 'S'
)

// kindStyles maps cell kinds to lipgloss styles: white water, red fish, blue sharks.
var kindStyles = map[wator.Kind]lipgloss.Style{
	wator.KindEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	wator.KindFish:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	wator.KindShark: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
}

// RuneFor returns the display rune for a cell.
func RuneFor(c wator.Cell) rune {
	switch c.Kind {
	case wator.KindFish:
		return RuneFish
	case wator.KindShark:
		return RuneShark
	default:
		return RuneEmpty
	}
}

// ASCII renders the grid as plain text, one line per row.
func ASCII(g *wator.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Size() + g.Rows)

	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < g.Cols; col++ {
			sb.WriteRune(RuneFor(g.Get(wator.P(row, col))))
		}
	}
	return sb.String()
}

// Styled renders the grid with colors.
// Adjacent cells of the same kind are grouped to minimize ANSI escape sequences.
func Styled(g *wator.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Size()*2 + g.Rows)

	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < g.Cols {
			kind := g.Get(wator.P(row, col)).Kind

			var run strings.Builder
			for col < g.Cols {
				cell := g.Get(wator.P(row, col))
				if cell.Kind != kind {
					break
				}
				run.WriteRune(RuneFor(cell))
				col++
			}

			sb.WriteString(kindStyles[kind].Render(run.String()))
		}
	}
	return sb.String()
}

// Legend returns a one-line key for the rendered runes.
func Legend() string {
	return string(RuneEmpty) + " water  " + string(RuneFish) + " fish  " + string(RuneShark) + " shark"
}
