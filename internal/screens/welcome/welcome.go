package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/ui/theme"
)

// The splash runs at 10fps; phases unlock at fixed frame counts and the
// sparkles keep cycling after the intro finishes.
const (
	frameRate    = 100 * time.Millisecond
	sparkleFrame = 5  // 0.5s in
	bannerFrame  = 15 // 1.5s in
	introFrames  = 45 // 4.5s total
)

const mascotArt = `  ╭───────────╮
  │  ┌─────┐  │
  │  │ ◉ ◉ │  │
  │  │  ▽  │  │
  │  ├─────┤  │
  │  │ ?★? │  │
  │  └─────┘  │
  ╰───────────╯`

type frameMsg time.Time

// WelcomeScreen plays the intro splash, then swaps itself for the home
// screen on the first keypress. A key during the intro skips ahead.
type WelcomeScreen struct {
	homeFactory func() screen.Screen
	frame       int
	replaced    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		w.frame++
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.goHome()
	}
	return w, nil
}

// goHome builds the home screen exactly once; later keypresses are inert
// while the replace message is in flight.
func (w *WelcomeScreen) goHome() tea.Cmd {
	if w.replaced {
		return nil
	}
	w.replaced = true
	home := w.homeFactory()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	mascot := lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt)
	if w.frame >= sparkleFrame {
		mascot = decorate(mascot, w.frame)
	}

	parts := []string{mascot}
	if w.frame >= bannerFrame {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Fastest buzzer wins!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		parts = append(parts, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(parts, "\n"))
}

// decorate flanks a few mascot rows with alternating sparkle glyphs.
func decorate(mascot string, frame int) string {
	glyph := "★"
	if frame%2 == 1 {
		glyph = "✦"
	}
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(glyph)
	b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(glyph)

	lines := strings.Split(mascot, "\n")
	for n, row := range []int{0, 3, 6} {
		if row >= len(lines) {
			break
		}
		left, right := a, b
		if n%2 == 1 {
			left, right = b, a
		}
		lines[row] = left + "  " + lines[row] + "  " + right
	}
	return strings.Join(lines, "\n")
}
