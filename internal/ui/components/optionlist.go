package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

// OptionList renders a question's answer options. Correctness is only
// known after the server scores the answer, so the list has three
// visual phases: selecting, locked (submitted, awaiting the verdict)
// and revealed.
type OptionList struct {
	Options  []api.Option
	Cursor   int
	Locked   bool
	Revealed bool

	// ChosenID and CorrectID are option ids, valid once set.
	ChosenID  int64
	CorrectID int64
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []api.Option) OptionList {
	return OptionList{Options: options, ChosenID: -1, CorrectID: -1}
}

// MoveUp moves the cursor up one option.
func (o *OptionList) MoveUp() {
	if !o.Locked && o.Cursor > 0 {
		o.Cursor--
	}
}

// MoveDown moves the cursor down one option.
func (o *OptionList) MoveDown() {
	if !o.Locked && o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// SetCursor places the cursor on index i when in range.
func (o *OptionList) SetCursor(i int) {
	if !o.Locked && i >= 0 && i < len(o.Options) {
		o.Cursor = i
	}
}

// Current returns the option under the cursor, or nil when empty.
func (o *OptionList) Current() *api.Option {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return nil
	}
	return &o.Options[o.Cursor]
}

// Lock freezes the list after a submit, remembering the chosen option.
func (o *OptionList) Lock(chosenID int64) {
	o.Locked = true
	o.ChosenID = chosenID
}

// Reveal shows the verdict once the server has scored the answer.
func (o *OptionList) Reveal(correctID int64) {
	o.Locked = true
	o.Revealed = true
	o.CorrectID = correctID
}

// View renders the option list.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt.Text)

		switch {
		case o.Revealed && opt.ID == o.CorrectID:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Revealed && opt.ID == o.ChosenID:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case o.Locked && opt.ID == o.ChosenID:
			s += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
