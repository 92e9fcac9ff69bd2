package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneRates:
		content = m.ratesModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		if c := m.calculator(m.currentScene); c != nil {
			content = c.View()
		} else {
			content = "Unknown scene"
		}
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(max(0, contentHeight)).
		Render(content)

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	))
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	bank := m.engine.Tables.Metadata.Bank
	if bank == "" {
		bank = "FD Calculator"
	}
	title := TitleStyle.Render(bank + " - Deposit Calculators")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneHome || m.currentScene == SceneHelp || m.currentScene == SceneRates {
		shortcuts = []string{
			formatShortcut("esc", "home"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	} else {
		shortcuts = []string{
			formatShortcut("tab", "next field"),
			formatShortcut("enter", "calculate"),
			formatShortcut("esc", "home"),
			formatShortcut("ctrl+c", "quit"),
		}
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.status != "" {
		style := InfoStyle
		if m.statusErr {
			style = ErrorStyle
		}
		message := style.Render(m.status)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(message) - 4
		statusText = statusText + strings.Repeat(" ", max(1, width)) + message
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
Deposit & Scheme Calculators

GLOBAL:
  esc          Back to home
  ?            Show this help (home, rates)
  q / Ctrl+C   Quit

HOME:
  ↑/↓, enter   Open a calculator
  1-5          Jump to a calculator

CALCULATORS:
  tab / ↓      Next field
  shift+tab/↑  Previous field
  ←/→          Change a choice
  enter        Calculate
  ctrl+r       Reset the form
  ctrl+s       Save the result as HTML
  ctrl+e       Save the result as CSV
  ctrl+y       Copy share text to the clipboard

PERIODS:
  Term mode counts 365-day years and 30-day months.
  Date mode uses the actual days between start and maturity; an
  early exit date closes the deposit prematurely at 1% below the
  card rate for the period actually run.
`

	return BorderStyle.Render(helpText)
}
