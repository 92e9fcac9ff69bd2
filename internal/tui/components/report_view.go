package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuistyles"
)

// ReportView renders a calculation report: the last row-based section as
// metric cards, other row sections as compact lines and grids as tables.
func ReportView(r *output.Report, width int) string {
	if r == nil {
		return ""
	}

	resultIdx := -1
	for i, s := range r.Sections {
		if len(s.Rows) > 0 {
			resultIdx = i
		}
	}

	columns := 3
	if width > 0 && width < 90 {
		columns = 2
	}
	cardWidth := 28
	if width > 0 {
		cardWidth = max(24, width/columns-4)
	}

	var parts []string
	for i, s := range r.Sections {
		parts = append(parts, tuistyles.TitleStyle.Render(s.Title))

		if i == resultIdx {
			cards := make([]*MetricCard, 0, len(s.Rows))
			for _, row := range s.Rows {
				card := NewMetricCard(row.Label, row.Value).WithWidth(cardWidth)
				if strings.HasPrefix(row.Label, "Penalty") {
					card.WithTrend(false, "premature closure")
				}
				cards = append(cards, card)
			}
			parts = append(parts, MetricGrid(cards, columns))
		} else {
			for _, row := range s.Rows {
				parts = append(parts, NewMetricCard(row.Label, row.Value).RenderCompact())
			}
		}

		if len(s.Columns) > 0 {
			parts = append(parts, Table(s.Columns, s.Cells, -1))
		}
		parts = append(parts, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Table renders a simple grid. The row at highlight, if any, is emphasised.
func Table(columns []string, cells [][]string, highlight int) string {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range cells {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	renderRow := func(values []string, style lipgloss.Style) string {
		rendered := make([]string, len(values))
		for i, v := range values {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			rendered[i] = style.Width(w + 2).Render(v)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	lines := []string{renderRow(columns, tuistyles.TableHeaderStyle)}
	for i, row := range cells {
		style := tuistyles.TableCellStyle
		if i == highlight {
			style = tuistyles.TableHighlightStyle
		}
		lines = append(lines, renderRow(row, style))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
