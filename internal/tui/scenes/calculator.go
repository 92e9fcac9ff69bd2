package scenes

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fdcalc/internal/output"
	"github.com/rgehrsitz/fdcalc/internal/tui/components"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuistyles"
)

// ComputeFunc turns the form values into a report
type ComputeFunc func(ctx context.Context, values []string) (*output.Report, error)

// clipboardWrite is swapped in tests; headless machines have no clipboard
var clipboardWrite = clipboard.WriteAll

// CalculatorModel is a form-driven calculator scene. Every calculator in the
// app shares it and differs only in fields and compute function.
type CalculatorModel struct {
	Name  string
	Title string
	Intro string

	form    *components.Form
	compute ComputeFunc
	report  *output.Report
	err     error
	busy    bool
	width   int
	height  int
}

// NewCalculatorModel creates a calculator scene
func NewCalculatorModel(name, title, intro string, compute ComputeFunc, fields ...*components.Field) *CalculatorModel {
	return &CalculatorModel{
		Name:    name,
		Title:   title,
		Intro:   intro,
		form:    components.NewForm(fields...),
		compute: compute,
	}
}

// SetSize updates the model dimensions
func (m *CalculatorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Form exposes the underlying form
func (m *CalculatorModel) Form() *components.Form { return m.form }

// Report returns the last successful report, if any
func (m *CalculatorModel) Report() *output.Report { return m.report }

// Err returns the last calculation error, if any
func (m *CalculatorModel) Err() error { return m.err }

func (m *CalculatorModel) values() []string {
	values := make([]string, len(m.form.Fields))
	for i := range m.form.Fields {
		values[i] = m.form.Value(i)
	}
	return values
}

// Calculate returns a command running the compute function on the current
// form values
func (m *CalculatorModel) Calculate() tea.Cmd {
	m.busy = true
	name := m.Name
	compute := m.compute
	values := m.values()
	return func() tea.Msg {
		r, err := compute(context.Background(), values)
		return tuimsg.CalculationCompleteMsg{Calculator: name, Report: r, Err: err}
	}
}

func exportCmd(r *output.Report, format string) tea.Cmd {
	return func() tea.Msg {
		f := output.GetFormatterByName(format)
		if f == nil {
			return tuimsg.ExportedMsg{Err: fmt.Errorf("unsupported format: %s", format)}
		}
		path, err := output.WriteFormatted(f, r, output.Extension(f))
		return tuimsg.ExportedMsg{Path: path, Err: err}
	}
}

func copyCmd(r *output.Report) tea.Cmd {
	return func() tea.Msg {
		text, err := output.ShareFormatter{}.Format(r)
		if err != nil {
			return tuimsg.CopiedMsg{Err: err}
		}
		return tuimsg.CopiedMsg{Err: clipboardWrite(string(text))}
	}
}

// Update handles messages for the calculator scene
func (m *CalculatorModel) Update(msg tea.Msg) (*CalculatorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tuimsg.CalculationCompleteMsg:
		if msg.Calculator != m.Name {
			return m, nil
		}
		m.busy = false
		m.err = msg.Err
		if msg.Err == nil {
			m.report = msg.Report
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			return m, m.Calculate()

		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+r"))):
			m.form.Reset()
			m.report = nil
			m.err = nil
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+s"))):
			if m.report == nil {
				return m, nil
			}
			return m, exportCmd(m.report, "html")

		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+e"))):
			if m.report == nil {
				return m, nil
			}
			return m, exportCmd(m.report, "csv")

		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+y"))):
			if m.report == nil {
				return m, nil
			}
			return m, copyCmd(m.report)
		}
	}

	return m, m.form.Update(msg)
}

// View renders the form with the latest result beside or below it
func (m *CalculatorModel) View() string {
	var left strings.Builder
	left.WriteString(tuistyles.TitleStyle.Render(m.Title))
	left.WriteString("\n")
	if m.Intro != "" {
		left.WriteString(tuistyles.SubtitleStyle.Render(m.Intro))
		left.WriteString("\n")
	}
	left.WriteString("\n")
	left.WriteString(m.form.View())
	left.WriteString("\n")

	switch {
	case m.busy:
		left.WriteString(tuistyles.InfoStyle.Render("Calculating..."))
	case m.err != nil:
		left.WriteString(tuistyles.ErrorStyle.Render("Error: " + m.err.Error()))
	default:
		left.WriteString(tuistyles.HintStyle.Render("enter calculate • ctrl+r reset"))
	}

	formPanel := tuistyles.BorderStyle.Render(left.String())
	if m.report == nil {
		return formPanel
	}

	resultWidth := m.width - lipgloss.Width(formPanel) - 4
	var right strings.Builder
	right.WriteString(components.ReportView(m.report, resultWidth))
	right.WriteString("\n")
	right.WriteString(tuistyles.HintStyle.Render("ctrl+s save html • ctrl+e save csv • ctrl+y copy share text"))
	resultPanel := tuistyles.BorderStyle.Render(right.String())

	if resultWidth < 40 {
		return lipgloss.JoinVertical(lipgloss.Left, formPanel, resultPanel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formPanel, "  ", resultPanel)
}
