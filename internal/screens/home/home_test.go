package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screens/board"
	"github.com/nmoreno/quizrush/internal/screens/start"
	"github.com/nmoreno/quizrush/internal/store"
)

type mockIdents struct {
	ident *store.Identity
}

func (m *mockIdents) Get(_ context.Context) (*store.Identity, error) { return m.ident, nil }
func (m *mockIdents) Set(_ context.Context, id store.Identity) error {
	m.ident = &id
	return nil
}
func (m *mockIdents) Clear(_ context.Context) error {
	m.ident = nil
	return nil
}

type mockHistory struct {
	summary store.HistorySummary
	recent  []store.SessionRecord
}

func (m *mockHistory) Append(_ context.Context, _ store.SessionRecordData) error { return nil }
func (m *mockHistory) Recent(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return m.recent, nil
}
func (m *mockHistory) Summary(_ context.Context) (store.HistorySummary, error) {
	return m.summary, nil
}

func selectEnter(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestPlayWithoutIdentityOpensStart(t *testing.T) {
	h := New(api.New(""), &mockIdents{}, &mockHistory{})

	cmd := selectEnter(h)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*start.StartScreen); !ok {
		t.Errorf("expected start screen, got %T", msg.Screen)
	}
}

func TestPlayWithIdentityOpensBoard(t *testing.T) {
	idents := &mockIdents{ident: &store.Identity{PlayerID: 7, PlayerName: "Nia"}}
	h := New(api.New(""), idents, &mockHistory{})

	cmd := selectEnter(h)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*board.BoardScreen); !ok {
		t.Errorf("expected board screen, got %T", msg.Screen)
	}
}

func TestMascotReflectsLastGame(t *testing.T) {
	history := &mockHistory{recent: []store.SessionRecord{{
		SessionRecordData: store.SessionRecordData{Outcome: store.OutcomeCompleted},
		PlayedAt:          time.Now(),
	}}}
	h := New(api.New(""), &mockIdents{}, history)
	if h.mascotVariant != MascotCelebrating {
		t.Errorf("mascot = %v, want celebrating", h.mascotVariant)
	}

	history.recent[0].Outcome = store.OutcomeGameOver
	h = New(api.New(""), &mockIdents{}, history)
	if h.mascotVariant != MascotAlert {
		t.Errorf("mascot = %v, want alert", h.mascotVariant)
	}
}

func TestUpdateNoteShown(t *testing.T) {
	h := New(api.New(""), &mockIdents{}, &mockHistory{})
	h.Update(UpdateAvailableMsg{Version: "v1.2.0"})
	if h.updateVersion != "v1.2.0" {
		t.Errorf("updateVersion = %q", h.updateVersion)
	}
}
