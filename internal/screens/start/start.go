package start

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/screens/board"
	"github.com/nmoreno/quizrush/internal/store"
	"github.com/nmoreno/quizrush/internal/ui/components"
	"github.com/nmoreno/quizrush/internal/ui/layout"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

const (
	fieldName = iota
	fieldAge
	fieldRoom
	fieldCount
)

const maxNameLen = 30

type playerCreatedMsg struct {
	Ident store.Identity
	Err   error
}

// StartScreen collects the player's name, age and optional room code,
// registers the player with the backend and stores the identity locally.
type StartScreen struct {
	client  *api.Client
	idents  store.IdentityRepo
	history store.HistoryRepo

	inputs   [fieldCount]components.TextInput
	focus    int
	creating bool
	errMsg   string
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen.
func New(client *api.Client, idents store.IdentityRepo, history store.HistoryRepo) *StartScreen {
	s := &StartScreen{
		client:  client,
		idents:  idents,
		history: history,
	}
	s.inputs[fieldName] = components.NewTextInput("Your name", false, maxNameLen)
	s.inputs[fieldAge] = components.NewTextInput("Age (optional)", true, 3)
	s.inputs[fieldRoom] = components.NewTextInput("Room code (optional)", false, 12)
	s.inputs[fieldAge].Model.Blur()
	s.inputs[fieldRoom].Model.Blur()
	return s
}

func (s *StartScreen) Title() string {
	return "New Player"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StartScreen) Init() tea.Cmd {
	return s.inputs[fieldName].Init()
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playerCreatedMsg:
		s.creating = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not sign you up: %v", msg.Err)
			return s, nil
		}
		game := board.New(s.client, s.history, msg.Ident)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: game}
		}

	case tea.KeyPressMsg:
		if s.creating {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focus < fieldCount-1 {
				return s, s.setFocus(s.focus + 1)
			}
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *StartScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Model.Blur()
	s.focus = i
	return s.inputs[s.focus].Model.Focus()
}

func (s *StartScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.inputs[fieldName].Value())
	if name == "" {
		s.errMsg = "Tell us your name first!"
		return s.setFocus(fieldName)
	}

	age := 0
	if s.inputs[fieldAge].Value() != "" {
		var err error
		age, err = s.inputs[fieldAge].NumericValue()
		if err != nil {
			s.errMsg = "Age has to be a number."
			return s.setFocus(fieldAge)
		}
	}
	room := strings.TrimSpace(s.inputs[fieldRoom].Value())

	s.errMsg = ""
	s.creating = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		player, err := s.client.CreatePlayer(ctx, name, age)
		if err != nil {
			return playerCreatedMsg{Err: err}
		}
		ident := store.Identity{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			RoomCode:   room,
		}
		if s.idents != nil {
			if err := s.idents.Set(ctx, ident); err != nil {
				return playerCreatedMsg{Err: err}
			}
		}
		return playerCreatedMsg{Ident: ident}
	}
}

func (s *StartScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	activeLabel := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	labels := [fieldCount]string{"Name", "Age", "Room"}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Who's playing?"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		if i == s.focus {
			style = activeLabel
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", style.Render(labels[i]), s.inputs[i].View()))
	}

	if s.creating {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Signing you up..."))
	} else if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
