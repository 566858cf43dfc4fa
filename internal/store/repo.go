package store

import (
	"context"
	"time"
)

// Identity is the locally stored player identity. It mirrors the three
// values the web client kept in browser storage: player id, display name
// and the optional room code.
type Identity struct {
	PlayerID   int64
	PlayerName string
	RoomCode   string
}

// IdentityRepo is a get/set/clear key-value view over the stored identity.
type IdentityRepo interface {
	// Get returns the stored identity, or nil if the player never
	// registered on this machine.
	Get(ctx context.Context) (*Identity, error)

	// Set replaces the stored identity.
	Set(ctx context.Context, id Identity) error

	// Clear removes the stored identity (explicit reset).
	Clear(ctx context.Context) error
}

// CredentialRepo stores the admin JWT between back-office invocations.
type CredentialRepo interface {
	// Token returns the stored token and admin email, or "" if logged out.
	Token(ctx context.Context) (token, email string, err error)

	// Save replaces the stored token.
	Save(ctx context.Context, token, email string) error

	// Clear removes the stored token (logout).
	Clear(ctx context.Context) error
}

// Session outcomes as stored in the history log.
const (
	OutcomeGameOver  = "gameover"
	OutcomeCompleted = "completed"
)

// SessionRecordData is one finished play-through for the local history log.
type SessionRecordData struct {
	ClientID        string
	SessionID       int64
	PlayerID        int64
	Score           int
	Answered        int
	Correct         int
	FinalDifficulty float64
	Outcome         string // "gameover" or "completed"
}

// SessionRecord is a stored play-through with its timestamp.
type SessionRecord struct {
	SessionRecordData
	PlayedAt time.Time
}

// HistoryRepo appends and reads the local play history.
type HistoryRepo interface {
	// Append records a finished session.
	Append(ctx context.Context, data SessionRecordData) error

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// Summary aggregates the whole local history.
	Summary(ctx context.Context) (HistorySummary, error)
}

// HistorySummary aggregates the local play history.
type HistorySummary struct {
	Sessions  int
	HighScore int
	Answered  int
	Correct   int
	Completed int
	GameOvers int
}

// Accuracy returns the all-time local answer accuracy in [0,1].
func (s HistorySummary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// LLMRequestEventData captures one local AI generation call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends audit events for local AI generation.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
