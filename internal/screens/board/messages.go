package board

import "github.com/nmoreno/quizrush/internal/api"

// sessionStartedMsg is sent when the server has created (or refused) a session.
type sessionStartedMsg struct {
	Session api.Session
	Err     error
}

// questionLoadedMsg is sent when the next question fetch finishes.
type questionLoadedMsg struct {
	Question api.Question
	Progress *api.Progress
	Err      error
}

// answerScoredMsg is sent when the answer submission returns.
type answerScoredMsg struct {
	Feedback api.AnswerFeedback
	Err      error
}

// countdownTickMsg is sent every second while a question is live. Seq ties
// the tick to the countdown it belongs to; ticks from an older countdown
// are discarded.
type countdownTickMsg struct {
	Seq int
}

// feedbackShownMsg is sent when the feedback display period ends. Seq is
// the answer number the feedback belongs to.
type feedbackShownMsg struct {
	Seq int
}
