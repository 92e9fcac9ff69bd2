package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/fdcalc/internal/tui/tuistyles"
)

// MenuItem is one entry of the home menu
type MenuItem struct {
	Title       string
	Description string
}

// HomeModel represents the home menu scene
type HomeModel struct {
	items    []MenuItem
	selected int
	metadata domain.TableMetadata
	width    int
	height   int
}

// NewHomeModel creates a new home scene model
func NewHomeModel(items []MenuItem, metadata domain.TableMetadata) *HomeModel {
	return &HomeModel{items: items, metadata: metadata}
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted menu index
func (m *HomeModel) Selected() int { return m.selected }

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(km, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selected < len(m.items)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(km, key.NewBinding(key.WithKeys("enter"))):
		return m, selectCmd(m.selected)
	}

	// number shortcuts
	if s := km.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(m.items) {
			m.selected = idx
			return m, selectCmd(idx)
		}
	}
	return m, nil
}

func selectCmd(idx int) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.HomeSelectedMsg{Index: idx}
	}
}

// View renders the home menu
func (m *HomeModel) View() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary).
		MarginBottom(1)
	title := "Deposit & Scheme Calculators"
	if m.metadata.Bank != "" {
		title = m.metadata.Bank + " - " + title
	}
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")
	if m.metadata.EffectiveOn != "" {
		content.WriteString(tuistyles.SubtitleStyle.Render("Rates effective " + m.metadata.EffectiveOn))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item.Title)
		if i == m.selected {
			content.WriteString(tuistyles.SelectedItemStyle.Render("▶ " + line))
			content.WriteString("  " + tuistyles.SubtitleStyle.Render(item.Description))
		} else {
			content.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.HintStyle.Render("↑/↓ select • enter open • 1-9 jump • ? help • q quit"))

	return tuistyles.BorderStyle.Render(content.String())
}
