package api

import "time"

// Session is the server-issued game session. The client treats it as
// immutable except for CurrentDifficulty, which is replaced after each
// scored answer.
type Session struct {
	SessionID         int64   `json:"session_id"`
	CurrentDifficulty float64 `json:"current_difficulty"`
	Status            string  `json:"status"`
	Room              *Room   `json:"room,omitempty"`
}

// Room is optional room metadata returned on session start.
type Room struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// Option is one selectable answer. IsCorrect is only populated on admin
// payloads; pre-answer game payloads omit it and the client never trusts
// it — the server alone decides correctness.
type Option struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

// Question is a quiz question as served to the game board.
type Question struct {
	ID            int64    `json:"id"`
	Statement     string   `json:"statement"`
	Difficulty    float64  `json:"difficulty"`
	CategoryID    int64    `json:"category_id,omitempty"`
	Options       []Option `json:"options,omitempty"`
	IsAIGenerated bool     `json:"is_ai_generated,omitempty"`
	AdminVerified bool     `json:"admin_verified,omitempty"`
}

// Progress is the optional pool metadata piggybacked on a question fetch.
type Progress struct {
	Answered     int   `json:"answered"`
	Max          int   `json:"max,omitempty"`
	LockedLevels []int `json:"locked_levels,omitempty"`
}

// AnswerFeedback is the server's verdict on a submitted answer.
type AnswerFeedback struct {
	IsCorrect       bool    `json:"is_correct"`
	Score           int     `json:"score"`
	Lives           int     `json:"lives"`
	Status          string  `json:"status"`
	NextDifficulty  float64 `json:"next_difficulty"`
	Explanation     string  `json:"explanation,omitempty"`
	CorrectOptionID int64   `json:"correct_option_id"`
}

// Player is a registered player identity.
type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// LeaderboardEntry is one row of the top-players table.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	HighScore  int    `json:"high_score"`
	TotalGames int    `json:"total_games,omitempty"`
}

// SessionStats summarizes one finished session.
type SessionStats struct {
	SessionID  int64   `json:"session_id"`
	PlayerID   int64   `json:"player_id"`
	Score      int     `json:"score"`
	Accuracy   float64 `json:"accuracy"`
	AvgTimeSec float64 `json:"avg_time_sec"`
}

// CategoryStats is a per-category slice of a player's global stats.
type CategoryStats struct {
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Accuracy     float64 `json:"accuracy"`
	AvgTimeSec   float64 `json:"avg_time_sec"`
}

// PlayerStats is a player's global statistics.
type PlayerStats struct {
	PlayerID      int64           `json:"player_id"`
	TotalGames    int             `json:"total_games"`
	HighScore     int             `json:"high_score"`
	TotalScore    int             `json:"total_score"`
	AvgDifficulty float64         `json:"avg_difficulty"`
	Categories    []CategoryStats `json:"categories,omitempty"`
}

// Category is a question-bank category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PromptConfig is the admin-configurable AI generation prompt.
type PromptConfig struct {
	PromptText  string  `json:"prompt_text"`
	Temperature float64 `json:"temperature"`
}

// AdminQuestion is a question as listed in the back office, with its
// category resolved.
type AdminQuestion struct {
	Question
	CategoryName string `json:"category_name,omitempty"`
}

// QuestionDraft is the payload for creating a question (manual, CSV import
// or locally generated).
type QuestionDraft struct {
	Statement     string        `json:"statement"`
	Difficulty    float64       `json:"difficulty"`
	CategoryID    int64         `json:"category_id"`
	Options       []OptionDraft `json:"options"`
	Explanation   string        `json:"explanation,omitempty"`
	IsAIGenerated bool          `json:"is_ai_generated,omitempty"`
}

// OptionDraft is one answer option of a QuestionDraft.
type OptionDraft struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// BatchResult reports the outcome of a server-side generation batch.
type BatchResult struct {
	Requested int     `json:"requested"`
	Created   int     `json:"created"`
	Rejected  int     `json:"rejected"`
	IDs       []int64 `json:"ids,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalQuestions    int     `json:"total_questions"`
	VerifiedQuestions int     `json:"verified_questions"`
	AIQuestions       int     `json:"ai_questions"`
	TotalPlayers      int     `json:"total_players"`
	TotalSessions     int     `json:"total_sessions"`
	AvgSessionScore   float64 `json:"avg_session_score"`
	QuestionsPerDay   float64 `json:"questions_per_day,omitempty"`
}
