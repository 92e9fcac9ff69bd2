package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui/components"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuistyles"
)

// RatesModel shows the term deposit and monthly income rate cards
type RatesModel struct {
	tables  []domain.RateTable
	builder *output.ReportBuilder
	current int
	width   int
	height  int
}

// NewRatesModel creates the rate card scene
func NewRatesModel(tables *domain.Tables, builder *output.ReportBuilder) *RatesModel {
	return &RatesModel{
		tables:  []domain.RateTable{tables.InterestRates, tables.MonthlyIncome},
		builder: builder,
	}
}

// SetSize updates the model dimensions
func (m *RatesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Current returns the table on display
func (m *RatesModel) Current() domain.RateTable { return m.tables[m.current] }

// Report builds the report for the table on display
func (m *RatesModel) Report() *output.Report {
	table := m.Current()
	return m.builder.Rates(table, calculation.BestRates(table))
}

// Update handles messages for the rates scene
func (m *RatesModel) Update(msg tea.Msg) (*RatesModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, key.NewBinding(key.WithKeys("left", "h"))):
		m.current = (m.current - 1 + len(m.tables)) % len(m.tables)
	case key.Matches(km, key.NewBinding(key.WithKeys("right", "l", "tab"))):
		m.current = (m.current + 1) % len(m.tables)
	case key.Matches(km, key.NewBinding(key.WithKeys("ctrl+s"))):
		return m, exportCmd(m.Report(), "html")
	case key.Matches(km, key.NewBinding(key.WithKeys("ctrl+e"))):
		return m, exportCmd(m.Report(), "csv")
	}
	return m, nil
}

// View renders the rate grid and the best rate per class
func (m *RatesModel) View() string {
	var b strings.Builder

	tabs := make([]string, len(m.tables))
	for i, t := range m.tables {
		if i == m.current {
			tabs[i] = tuistyles.SelectedItemStyle.Render("[" + t.Name + "]")
		} else {
			tabs[i] = tuistyles.UnselectedItemStyle.Render(" " + t.Name + " ")
		}
	}
	b.WriteString(strings.Join(tabs, "  "))
	b.WriteString("\n\n")

	r := m.Report()
	b.WriteString(components.ReportView(r, m.width))
	b.WriteString("\n")
	b.WriteString(tuistyles.HintStyle.Render("←/→ switch card • ctrl+s save html • ctrl+e save csv"))

	return tuistyles.BorderStyle.Render(b.String())
}
