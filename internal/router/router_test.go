package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

// stackOf reports the active screen name and depth in one string, so
// assertions read as "summary/2".
func stackOf(r *Router) string {
	return r.Active().Title() + "/" + string(rune('0'+r.Depth()))
}

func TestPushPopNavigation(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	board := &fakeScreen{name: "board"}
	r.Push(board)
	if got := stackOf(r); got != "board/2" {
		t.Fatalf("after push: %s", got)
	}
	if board.inits != 1 {
		t.Errorf("pushed screen Init ran %d times", board.inits)
	}

	r.Pop()
	if got := stackOf(r); got != "home/1" {
		t.Fatalf("after pop: %s", got)
	}

	// The bottom screen never pops.
	r.Pop()
	if got := stackOf(r); got != "home/1" {
		t.Fatalf("after pop at bottom: %s", got)
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "board"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if got := stackOf(r); got != "summary/2" {
		t.Fatalf("after replace: %s", got)
	}
	if summary.inits != 1 {
		t.Errorf("replacement Init ran %d times", summary.inits)
	}

	// Popping from the summary lands back on home, not the board.
	r.Pop()
	if got := stackOf(r); got != "home/1" {
		t.Fatalf("after pop from summary: %s", got)
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	board := &fakeScreen{name: "board"}
	r.Update(PushScreenMsg{Screen: board})
	if got := stackOf(r); got != "board/2" {
		t.Fatalf("after PushScreenMsg: %s", got)
	}

	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})
	if got := stackOf(r); got != "summary/2" {
		t.Fatalf("after ReplaceScreenMsg: %s", got)
	}
	if summary.inits != 1 {
		t.Errorf("replacement Init ran %d times", summary.inits)
	}

	r.Update(PopScreenMsg{})
	if got := stackOf(r); got != "home/1" {
		t.Fatalf("after PopScreenMsg: %s", got)
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "board"})

	if got := r.View(80, 24); got != "board" {
		t.Errorf("View rendered %q", got)
	}
}
