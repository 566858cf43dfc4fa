package start

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/api"
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

func testStart() (*StartScreen, *mockIdents) {
	idents := &mockIdents{}
	return New(api.New("http://127.0.0.1:1"), idents, nil), idents
}

func typeText(s *StartScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterAdvancesFields(t *testing.T) {
	s, _ := testStart()
	if s.focus != fieldName {
		t.Fatalf("initial focus = %d, want name", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.focus != fieldAge {
		t.Errorf("focus = %d, want age", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.focus != fieldRoom {
		t.Errorf("focus = %d, want room", s.focus)
	}
}

func TestTabWrapsAround(t *testing.T) {
	s, _ := testStart()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldName {
		t.Errorf("focus = %d, want wrap back to name", s.focus)
	}
}

func TestSubmitWithoutNameRejected(t *testing.T) {
	s, _ := testStart()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // name -> age
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // age -> room
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
	if s.creating {
		t.Error("must not start creating without a name")
	}
	if s.focus != fieldName {
		t.Errorf("focus = %d, want back on name", s.focus)
	}
	_ = cmd // focus command only
}

func TestSubmitStartsCreation(t *testing.T) {
	s, _ := testStart()
	typeText(s, "Nia")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !s.creating {
		t.Error("expected creation in flight")
	}
	if cmd == nil {
		t.Error("expected a create command")
	}

	// Keys are ignored while the request is in flight.
	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := s.inputs[fieldRoom].Value(); got != "" {
		t.Errorf("room input changed while creating: %q", got)
	}
}

func TestAgeFieldRejectsLetters(t *testing.T) {
	s, _ := testStart()
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, "9a")
	if got := s.inputs[fieldAge].Value(); got != "9" {
		t.Errorf("age value = %q, want %q", got, "9")
	}
}

func TestCreationFailureShowsError(t *testing.T) {
	s, _ := testStart()
	s.creating = true
	s.Update(playerCreatedMsg{Err: &api.APIError{StatusCode: 500, Message: "boom"}})

	if s.creating {
		t.Error("creating flag should clear")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}
