package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-backed stores.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.IdentityRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil identity, got %+v", got)
	}

	want := Identity{PlayerID: 7, PlayerName: "Marta", RoomCode: "SALA42"}
	if err := repo.Set(ctx, want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}

	// Set replaces, never accumulates.
	want2 := Identity{PlayerID: 8, PlayerName: "Luis"}
	if err := repo.Set(ctx, want2); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.PlayerID != 8 {
		t.Errorf("Get after replace = %+v, want player 8", got)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get after clear: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil identity after clear, got %+v", got)
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CredentialRepo()
	ctx := context.Background()

	tok, _, err := repo.Token(ctx)
	if err != nil {
		t.Fatalf("Token on empty store: %v", err)
	}
	if tok != "" {
		t.Fatalf("expected empty token, got %q", tok)
	}

	if err := repo.Save(ctx, "jwt-abc", "admin@example.com"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	tok, email, err := repo.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if tok != "jwt-abc" || email != "admin@example.com" {
		t.Errorf("Token = (%q, %q), want (jwt-abc, admin@example.com)", tok, email)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	tok, _, err = repo.Token(ctx)
	if err != nil {
		t.Fatalf("Token after clear: %v", err)
	}
	if tok != "" {
		t.Errorf("expected empty token after clear, got %q", tok)
	}
}

func TestHistoryAppendAndSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	records := []SessionRecordData{
		{ClientID: uuid.New().String(), SessionID: 1, PlayerID: 7, Score: 30, Answered: 5, Correct: 3, Outcome: "gameover"},
		{ClientID: uuid.New().String(), SessionID: 2, PlayerID: 7, Score: 80, Answered: 10, Correct: 9, Outcome: "completed"},
	}
	for _, rec := range records {
		if err := repo.Append(ctx, rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d records, want 2", len(recent))
	}

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Sessions != 2 || sum.HighScore != 80 {
		t.Errorf("Summary = %+v, want 2 sessions, high score 80", sum)
	}
	if sum.Completed != 1 || sum.GameOvers != 1 {
		t.Errorf("Summary outcomes = %+v, want 1 completed / 1 gameover", sum)
	}
	if got := sum.Accuracy(); got < 0.79 || got > 0.81 {
		t.Errorf("Accuracy = %v, want 0.8", got)
	}
}

func TestLLMEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "question-batch",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}
}
