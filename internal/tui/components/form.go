package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/fdcalc/internal/tui/tuistyles"
)

// FormKeys are the bindings a form reacts to
type FormKeys struct {
	Next     key.Binding
	Previous key.Binding
	Left     key.Binding
	Right    key.Binding
}

// DefaultFormKeys moves with tab/arrows and cycles choices with left/right
var DefaultFormKeys = FormKeys{
	Next:     key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Previous: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "change choice")),
	Right:    key.NewBinding(key.WithKeys("right")),
}

// Field is one form entry: free text, or a fixed set of choices when
// Options is not empty
type Field struct {
	Label    string
	Hint     string
	Options  []string
	selected int
	input    textinput.Model
}

// TextField creates a free text field
func TextField(label, placeholder, hint string) *Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 20
	ti.Width = 20
	ti.Prompt = ""
	return &Field{Label: label, Hint: hint, input: ti}
}

// ChoiceField creates a field cycling through options
func ChoiceField(label string, options ...string) *Field {
	return &Field{Label: label, Options: options}
}

// Value returns the entered text or the selected option
func (f *Field) Value() string {
	if len(f.Options) > 0 {
		return f.Options[f.selected]
	}
	return strings.TrimSpace(f.input.Value())
}

// SetValue replaces the text or selects the matching option
func (f *Field) SetValue(v string) {
	if len(f.Options) == 0 {
		f.input.SetValue(v)
		return
	}
	for i, o := range f.Options {
		if o == v {
			f.selected = i
		}
	}
}

// Form is a vertical list of fields with one focused at a time
type Form struct {
	Fields []*Field
	Keys   FormKeys
	focus  int
}

// NewForm creates a form and focuses its first field
func NewForm(fields ...*Field) *Form {
	f := &Form{Fields: fields, Keys: DefaultFormKeys}
	f.setFocus(0)
	return f
}

// Focused returns the index of the focused field
func (f *Form) Focused() int { return f.focus }

// Value returns the value of field i
func (f *Form) Value(i int) string { return f.Fields[i].Value() }

// Reset clears every text field and selects the first option of every choice
func (f *Form) Reset() {
	for _, field := range f.Fields {
		field.input.SetValue("")
		field.selected = 0
	}
	f.setFocus(0)
}

func (f *Form) setFocus(i int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	f.focus = (i + len(f.Fields)) % len(f.Fields)

	var cmd tea.Cmd
	for idx, field := range f.Fields {
		if len(field.Options) > 0 {
			continue
		}
		if idx == f.focus {
			cmd = field.input.Focus()
		} else {
			field.input.Blur()
		}
	}
	return cmd
}

// Update moves focus, cycles choices and passes other keys to the focused
// text input
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	current := f.Fields[f.focus]

	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.Keys.Next):
			return f.setFocus(f.focus + 1)
		case key.Matches(km, f.Keys.Previous):
			return f.setFocus(f.focus - 1)
		case len(current.Options) > 0 && key.Matches(km, f.Keys.Left):
			current.selected = (current.selected - 1 + len(current.Options)) % len(current.Options)
			return nil
		case len(current.Options) > 0 && key.Matches(km, f.Keys.Right):
			current.selected = (current.selected + 1) % len(current.Options)
			return nil
		}
	}

	if len(current.Options) > 0 {
		return nil
	}
	var cmd tea.Cmd
	current.input, cmd = current.input.Update(msg)
	return cmd
}

// View renders the form one field per line
func (f *Form) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		labelStyle := tuistyles.FieldLabelStyle
		if i == f.focus {
			labelStyle = tuistyles.FocusedFieldLabelStyle
		}
		b.WriteString(labelStyle.Render(field.Label))

		if len(field.Options) > 0 {
			value := "‹ " + field.Options[field.selected] + " ›"
			if i == f.focus {
				b.WriteString(tuistyles.SelectedItemStyle.Render(value))
			} else {
				b.WriteString(tuistyles.UnselectedItemStyle.Render(value))
			}
		} else {
			b.WriteString(field.input.View())
		}

		if field.Hint != "" && i == f.focus {
			b.WriteString("  " + tuistyles.HintStyle.Render(field.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
