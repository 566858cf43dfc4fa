package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
)

func TestView_Completed(t *testing.T) {
	s := New(nil, Result{Score: 120, Answered: 15, Correct: 12})
	out := s.View(80, 24)

	for _, want := range []string{"Quiz complete!", "120 points", "Questions: 15", "Correct: 12", "Accuracy", "80%"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_GameOver(t *testing.T) {
	s := New(nil, Result{Score: 30, Answered: 5, Correct: 3, GameOver: true})
	out := s.View(80, 24)

	if !strings.Contains(out, "Game over!") {
		t.Error("view missing game over banner")
	}
}

func TestView_ZeroAnswered(t *testing.T) {
	s := New(nil, Result{GameOver: true})
	out := s.View(80, 24)

	if !strings.Contains(out, "0%") {
		t.Error("expected 0% accuracy with no answers")
	}
}

func TestUpdate_StatsArrive(t *testing.T) {
	s := New(nil, Result{Score: 50, Answered: 5, Correct: 5})
	updated, _ := s.Update(statsMsg{Stats: api.SessionStats{AvgTimeSec: 7.5}})

	out := updated.View(80, 24)
	if !strings.Contains(out, "Avg answer time: 7.5s") {
		t.Error("view missing server stats line")
	}
}

func TestUpdate_EnterPops(t *testing.T) {
	s := New(nil, Result{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestInit_NoClientNoCmd(t *testing.T) {
	s := New(nil, Result{SessionID: 1})
	if s.Init() != nil {
		t.Error("expected nil Init cmd without a client")
	}
}
