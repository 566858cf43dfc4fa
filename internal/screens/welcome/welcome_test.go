package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	built := 0
	return New(func() screen.Screen {
		built++
		return &stubScreen{}
	}), &built
}

func advance(w *WelcomeScreen, frames int) {
	for i := 0; i < frames; i++ {
		w.Update(frameMsg(time.Now()))
	}
}

func taglineVisible(view string) bool {
	return strings.Contains(view, "buzzer wins")
}

func TestIntroPhases(t *testing.T) {
	w, _ := newTestWelcome()

	if taglineVisible(w.View(80, 24)) {
		t.Error("tagline visible before the banner phase")
	}

	advance(w, bannerFrame-1)
	if taglineVisible(w.View(80, 24)) {
		t.Error("tagline visible one frame early")
	}

	advance(w, 1)
	if !taglineVisible(w.View(80, 24)) {
		t.Error("tagline missing after the banner phase")
	}
}

func TestKeySkipsIntro(t *testing.T) {
	w, built := newTestWelcome()
	advance(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected the skip to produce a command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected a ReplaceScreenMsg")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times", *built)
	}
}

func TestKeyAfterIntro(t *testing.T) {
	w, built := newTestWelcome()
	advance(w, introFrames)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected a ReplaceScreenMsg")
	}
	if msg.Screen == nil {
		t.Error("replacement screen is nil")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times", *built)
	}
}

func TestNoTransitionWithoutKey(t *testing.T) {
	w, built := newTestWelcome()

	// Well past the intro: sparkles keep animating, nothing navigates.
	advance(w, introFrames*2)
	if *built != 0 {
		t.Errorf("home factory ran %d times without a keypress", *built)
	}
}

func TestSecondKeyInert(t *testing.T) {
	w, built := newTestWelcome()
	advance(w, introFrames)

	w.Update(tea.KeyPressMsg{Code: 'a'})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress produced a command")
	}
	if *built != 1 {
		t.Errorf("home factory ran %d times", *built)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("unexpected title %q", w.Title())
	}
}
