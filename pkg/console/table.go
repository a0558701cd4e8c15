package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table rendering styles
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9"))

	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272A4"))

	tableTotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))
)

// TableConfig represents configuration for table rendering
type TableConfig struct {
	Title    string
	Headers  []string
	Rows     [][]string
	TotalRow []string // rendered bold under a separator when non-empty
}

// RenderTable renders a plain column-aligned table with a styled header
func RenderTable(config TableConfig) string {
	if len(config.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(config.Headers))
	for i, header := range config.Headers {
		widths[i] = len(header)
	}
	for _, row := range append(config.Rows, config.TotalRow) {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	separator := make([]string, len(config.Headers))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}

	var output strings.Builder
	if config.Title != "" {
		output.WriteString(applyStyle(headerStyle, config.Title))
		output.WriteString("\n")
	}
	output.WriteString(renderTableRow(config.Headers, widths, tableHeaderStyle))
	output.WriteString("\n")
	output.WriteString(renderTableRow(separator, widths, tableBorderStyle))
	output.WriteString("\n")
	for _, row := range config.Rows {
		output.WriteString(renderTableRow(row, widths, contextLineStyle))
		output.WriteString("\n")
	}
	if len(config.TotalRow) > 0 {
		output.WriteString(renderTableRow(separator, widths, tableBorderStyle))
		output.WriteString("\n")
		output.WriteString(renderTableRow(config.TotalRow, widths, tableTotalStyle))
		output.WriteString("\n")
	}
	return output.String()
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var row strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		row.WriteString(applyStyle(style, fmt.Sprintf("%-*s", widths[i], cell)))
		if i < len(cells)-1 {
			row.WriteString(applyStyle(tableBorderStyle, " | "))
		}
	}
	return row.String()
}
