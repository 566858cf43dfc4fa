package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/screens/board"
	"github.com/nmoreno/quizrush/internal/screens/leaderboard"
	"github.com/nmoreno/quizrush/internal/screens/profile"
	"github.com/nmoreno/quizrush/internal/screens/start"
	"github.com/nmoreno/quizrush/internal/store"
	"github.com/nmoreno/quizrush/internal/ui/components"
)

// UpdateAvailableMsg tells the home screen a newer release exists.
type UpdateAvailableMsg struct {
	Version string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	playerName    string
	games         int
	highScore     int
	accuracy      float64
	mascotVariant MascotVariant
	updateVersion string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(client *api.Client, idents store.IdentityRepo, history store.HistoryRepo) *HomeScreen {
	ctx := context.Background()

	var ident *store.Identity
	if idents != nil {
		ident, _ = idents.Get(ctx)
	}

	var summary store.HistorySummary
	mascotVariant := MascotIdle
	if history != nil {
		summary, _ = history.Summary(ctx)
		// The quizmaster reacts to the most recent game.
		if recent, _ := history.Recent(ctx, 1); len(recent) > 0 {
			if recent[0].Outcome == store.OutcomeCompleted {
				mascotVariant = MascotCelebrating
			} else {
				mascotVariant = MascotAlert
			}
		}
	}

	menuLabels := []string{"PLAY", "LEADERBOARD", "MY PROFILE", "EXIT GAME"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				if ident != nil {
					return router.PushScreenMsg{Screen: board.New(client, history, *ident)}
				}
				return router.PushScreenMsg{Screen: start.New(client, idents, history)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(client)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(client, history, ident)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	var playerName string
	if ident != nil {
		playerName = ident.PlayerName
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		playerName:    playerName,
		games:         summary.Sessions,
		highScore:     summary.HighScore,
		accuracy:      summary.Accuracy(),
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if up, ok := msg.(UpdateAvailableMsg); ok {
		h.updateVersion = up.Version
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Greeting for a returning player
	if h.playerName != "" {
		sections = append(sections, renderGreeting(h.playerName, cw))
	}

	// 3. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 4. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.games, h.highScore, h.accuracy, cw, compact))

	// 5. Menu (same width box)
	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	// 6. Update note
	if h.updateVersion != "" {
		sections = append(sections, renderUpdateNote(h.updateVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
