package leaderboard

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
	"github.com/nmoreno/quizrush/internal/ui/layout"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

type entriesMsg struct {
	Entries []api.LeaderboardEntry
	Err     error
}

// LeaderboardScreen shows the server's top-players table.
type LeaderboardScreen struct {
	client  *api.Client
	entries []api.LeaderboardEntry
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen backed by the given API client.
func New(client *api.Client) *LeaderboardScreen {
	return &LeaderboardScreen{client: client}
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return l.fetch()
}

func (l *LeaderboardScreen) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		entries, err := l.client.Leaderboard(ctx)
		return entriesMsg{Entries: entries, Err: err}
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		l.loaded = true
		if msg.Err != nil {
			l.errMsg = fmt.Sprintf("Could not load the leaderboard: %v", msg.Err)
			return l, nil
		}
		l.errMsg = ""
		l.entries = msg.Entries
		return l, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "r":
			l.loaded = false
			return l, l.fetch()
		case "enter":
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	var content string
	switch {
	case !l.loaded:
		content = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Fetching the champions...")
	case l.errMsg != "":
		content = lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(l.errMsg)
	case len(l.entries) == 0:
		content = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No scores yet. Be the first!")
	default:
		content = l.renderTable()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l *LeaderboardScreen) renderTable() string {
	headStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	topStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%4s  %-20s %10s %7s", "#", "PLAYER", "HIGH", "GAMES")))
	b.WriteString("\n")

	for _, e := range l.entries {
		line := fmt.Sprintf("%4d  %-20s %10d %7d", e.Rank, truncate(e.PlayerName, 20), e.HighScore, e.TotalGames)
		switch e.Rank {
		case 1:
			b.WriteString(topStyle.Render("♛ " + line[2:]))
		case 2, 3:
			b.WriteString(rowStyle.Bold(true).Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter / esc to go back"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
