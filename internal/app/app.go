package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/screens/home"
	"github.com/nmoreno/quizrush/internal/screens/welcome"
	"github.com/nmoreno/quizrush/internal/selfupdate"
	"github.com/nmoreno/quizrush/internal/store"
	"github.com/nmoreno/quizrush/internal/ui/layout"
)

// Deps carries everything the TUI needs, wired up by the command layer.
type Deps struct {
	Client  *api.Client
	Idents  store.IdentityRepo
	History store.HistoryRepo

	// Version is the running binary's version, used for the background
	// release check. Empty or "(devel)" skips the check.
	Version string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps       Deps
	router     *router.Router
	playerName string
	width      int
	height     int
}

// newAppModel creates a new AppModel showing the splash screen.
func newAppModel(deps Deps) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(deps.Client, deps.Idents, deps.History)
	})
	m := AppModel{
		deps:   deps,
		router: router.New(splash),
	}
	m.refreshPlayerName()
	return m
}

func (m *AppModel) refreshPlayerName() {
	if m.deps.Idents == nil {
		return
	}
	if ident, _ := m.deps.Idents.Get(context.Background()); ident != nil {
		m.playerName = ident.PlayerName
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.checkForUpdate())
}

// checkForUpdate looks for a newer release in the background. The result
// only surfaces as a dim note on the home screen.
func (m AppModel) checkForUpdate() tea.Cmd {
	version := m.deps.Version
	if version == "" || version == "(devel)" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !res.UpdateAvailable {
			return nil
		}
		return home.UpdateAvailableMsg{Version: res.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation may follow player registration; keep the header fresh.
		cmd := m.router.Update(msg)
		m.refreshPlayerName()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash has no chrome at all.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.playerName, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
