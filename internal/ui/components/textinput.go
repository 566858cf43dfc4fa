package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput with an optional digits-only filter for
// fields like age.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

func NewTextInput(placeholder string, numericOnly bool, charLimit int) TextInput {
	model := textinput.New()
	model.Placeholder = placeholder
	model.Focus()
	if charLimit > 0 {
		model.CharLimit = charLimit
	}
	return TextInput{Model: model, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the inner model, swallowing non-digit
// character keys when the input is numeric.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if key, ok := msg.(tea.KeyMsg); ok {
			s := key.String()
			if len(s) == 1 && (s[0] < '0' || s[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}
