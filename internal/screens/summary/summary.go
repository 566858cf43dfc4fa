package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/ui/components"
	"github.com/nmoreno/quizrush/internal/ui/layout"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

// Result is what the board knows about the finished play-through before
// any server stats arrive.
type Result struct {
	SessionID int64
	Score     int
	Answered  int
	Correct   int
	GameOver  bool
}

// statsMsg delivers the server-side session stats, when available.
type statsMsg struct {
	Stats api.SessionStats
	Err   error
}

// SummaryScreen shows the end-of-game recap.
type SummaryScreen struct {
	client *api.Client
	result Result
	stats  *api.SessionStats
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for the given result.
func New(client *api.Client, result Result) *SummaryScreen {
	return &SummaryScreen{client: client, result: result}
}

// Init kicks off the server stats fetch. The recap renders fine without
// it; the stats line just stays local.
func (s *SummaryScreen) Init() tea.Cmd {
	client := s.client
	sessionID := s.result.SessionID
	if client == nil || sessionID == 0 {
		return nil
	}
	return func() tea.Msg {
		stats, err := client.SessionStats(context.Background(), sessionID)
		return statsMsg{Stats: stats, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Game Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		if msg.Err == nil {
			s.stats = &msg.Stats
		}
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	banner := "Quiz complete!"
	bannerColor := theme.Success
	if s.result.GameOver {
		banner = "Game over!"
		bannerColor = theme.Error
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(bannerColor).
		Bold(true).
		Render("\n" + banner))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("★ %d points", s.result.Score)))
	b.WriteString("\n\n")

	accuracy := 0.0
	if s.result.Answered > 0 {
		accuracy = float64(s.result.Correct) / float64(s.result.Answered)
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d",
		s.result.Answered, s.result.Correct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", accuracy, true, 40)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(bar.View()))
	b.WriteString("\n")

	if s.stats != nil {
		serverLine := fmt.Sprintf("Avg answer time: %.1fs", s.stats.AvgTimeSec)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(serverLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Press Enter to play again from the menu"))

	return b.String()
}
