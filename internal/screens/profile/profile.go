package profile

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
	"github.com/nmoreno/quizrush/internal/store"
	"github.com/nmoreno/quizrush/internal/ui/layout"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

const recentLimit = 5

type statsMsg struct {
	Stats api.PlayerStats
	Err   error
}

// ProfileScreen shows the player's server-side stats alongside the
// play history recorded on this machine.
type ProfileScreen struct {
	client  *api.Client
	history store.HistoryRepo
	ident   *store.Identity

	stats   *api.PlayerStats
	summary store.HistorySummary
	recent  []store.SessionRecord
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen. ident may be nil when the player never
// registered on this machine.
func New(client *api.Client, history store.HistoryRepo, ident *store.Identity) *ProfileScreen {
	p := &ProfileScreen{client: client, history: history, ident: ident}
	if history != nil {
		ctx := context.Background()
		p.summary, _ = history.Summary(ctx)
		p.recent, _ = history.Recent(ctx, recentLimit)
	}
	return p
}

func (p *ProfileScreen) Title() string {
	return "My Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Init() tea.Cmd {
	if p.client == nil || p.ident == nil {
		return nil
	}
	playerID := p.ident.PlayerID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		stats, err := p.client.PlayerStats(ctx, playerID)
		return statsMsg{Stats: stats, Err: err}
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		if msg.Err == nil {
			p.stats = &msg.Stats
		}
		return p, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.ident == nil {
		content := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No player yet. Pick Play to get started!")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var sections []string
	sections = append(sections, p.renderIdentity())
	sections = append(sections, p.renderLocal())
	if p.stats != nil {
		sections = append(sections, p.renderServer())
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *ProfileScreen) renderIdentity() string {
	name := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(p.ident.PlayerName)
	line := name
	if p.ident.RoomCode != "" {
		line += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  room %s", p.ident.RoomCode))
	}
	return line
}

func (p *ProfileScreen) renderLocal() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("On this machine"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Games:"), valueStyle.Render(fmt.Sprintf("%d", p.summary.Sessions)),
		labelStyle.Render("High score:"), valueStyle.Render(fmt.Sprintf("%d", p.summary.HighScore)),
		labelStyle.Render("Accuracy:"), valueStyle.Render(fmt.Sprintf("%.0f%%", p.summary.Accuracy()*100)),
	))

	if len(p.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Recent games:"))
		b.WriteString("\n")
		for _, rec := range p.recent {
			verdict := "completed"
			style := lipgloss.NewStyle().Foreground(theme.Success)
			if rec.Outcome == store.OutcomeGameOver {
				verdict = "game over"
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
			b.WriteString(fmt.Sprintf("  %s  %4d pts  %2d/%2d  %s\n",
				rec.PlayedAt.Format("Jan 02 15:04"),
				rec.Score, rec.Correct, rec.Answered,
				style.Render(verdict)))
		}
	}

	return boxStyle().Render(strings.TrimRight(b.String(), "\n"))
}

func (p *ProfileScreen) renderServer() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Across all devices"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		labelStyle.Render("Games:"), valueStyle.Render(fmt.Sprintf("%d", p.stats.TotalGames)),
		labelStyle.Render("High score:"), valueStyle.Render(fmt.Sprintf("%d", p.stats.HighScore)),
		labelStyle.Render("Avg difficulty:"), valueStyle.Render(fmt.Sprintf("%.1f", p.stats.AvgDifficulty)),
	))

	if len(p.stats.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("By category:"))
		b.WriteString("\n")
		for _, c := range p.stats.Categories {
			b.WriteString(fmt.Sprintf("  %-18s %3.0f%%  %4.1fs avg\n",
				c.CategoryName, c.Accuracy*100, c.AvgTimeSec))
		}
	}

	return boxStyle().Render(strings.TrimRight(b.String(), "\n"))
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)
}
