package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fdcalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 4
		m.homeModel.SetSize(m.width, contentHeight)
		m.ratesModel.SetSize(m.width, contentHeight)
		for _, c := range m.calculators() {
			c.SetSize(m.width, contentHeight)
		}
		return m, nil

	case NavigateMsg:
		m.currentScene = msg.Scene
		m.status = ""
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.HomeSelectedMsg:
		if msg.Index < 0 || msg.Index >= len(menuScenes) {
			return m, nil
		}
		return m, navigate(menuScenes[msg.Index])

	case tuimsg.CalculationCompleteMsg:
		// routed by name so a late result lands in its own calculator
		for _, c := range m.calculators() {
			if c.Name == msg.Calculator {
				c.Update(msg)
			}
		}
		return m, nil

	case tuimsg.ExportedMsg:
		if msg.Err != nil {
			m.status, m.statusErr = fmt.Sprintf("Export failed: %v", msg.Err), true
		} else {
			m.status, m.statusErr = "Saved "+msg.Path, false
		}
		return m, nil

	case tuimsg.CopiedMsg:
		if msg.Err != nil {
			m.status, m.statusErr = fmt.Sprintf("Copy failed: %v", msg.Err), true
		} else {
			m.status, m.statusErr = "Share text copied to clipboard", false
		}
		return m, nil

	case tuimsg.ErrorMsg:
		m.status, m.statusErr = msg.Err.Error(), true
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.currentScene != SceneHome {
			return m, navigate(SceneHome)
		}
		return m, nil
	}

	// Single letter shortcuts would swallow typed input, so they only apply
	// outside the calculator forms
	if m.calculator(m.currentScene) == nil {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			return m, navigate(SceneHelp)
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneRates:
		m.ratesModel, cmd = m.ratesModel.Update(msg)
	case SceneHelp:
		return m, nil
	default:
		if c := m.calculator(m.currentScene); c != nil {
			_, cmd = c.Update(msg)
		}
	}
	return m, cmd
}
