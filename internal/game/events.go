package game

import "github.com/nmoreno/quizrush/internal/api"

// Event is an input to the Machine reducer. Events come from exactly three
// sources: UI interactions, countdown ticks, and completed API calls.
type Event interface{ isEvent() }

// SessionStarted carries the session created by the backend.
type SessionStarted struct {
	Session api.Session
}

// SessionStartFailed aborts the play-through back to the entry screen.
type SessionStartFailed struct {
	Err error
}

// QuestionLoaded delivers the next question. Progress is optional pool
// metadata; a non-nil Progress with Max > 0 overrides the configured cap.
type QuestionLoaded struct {
	Question api.Question
	Progress *api.Progress
}

// QuestionExhausted signals the server has no further questions
// (a not-found or an explicit completion flag on the fetch).
type QuestionExhausted struct{}

// QuestionLoadFailed is a transient fetch failure. The session keeps its
// state; the player retries by leaving and re-entering the board.
type QuestionLoadFailed struct {
	Err error
}

// OptionSelected records the player's current pick. Re-selection is allowed
// any number of times before submission.
type OptionSelected struct {
	OptionID int64
}

// SubmitRequested is the player's explicit submission.
type SubmitRequested struct{}

// Tick is one second elapsing on the countdown. Seq must match the sequence
// number the timer was armed with; stale ticks are discarded.
type Tick struct {
	Seq int
}

// FeedbackReceived delivers the server's verdict for the in-flight answer.
type FeedbackReceived struct {
	Feedback api.AnswerFeedback
}

// SubmitFailed is a transport failure on answer submission. The answer was
// not scored; the question returns to play with a fresh countdown.
type SubmitFailed struct {
	Err error
}

// FeedbackAcknowledged is the player asking for the next question.
type FeedbackAcknowledged struct{}

// FeedbackElapsed fires after the bounded feedback display delay. When the
// last answer ended the session it forces the terminal transition even if
// the player never acknowledged. Seq must match the answered-count at the
// time the delay was armed.
type FeedbackElapsed struct {
	Seq int
}

func (SessionStarted) isEvent()       {}
func (SessionStartFailed) isEvent()   {}
func (QuestionLoaded) isEvent()       {}
func (QuestionExhausted) isEvent()    {}
func (QuestionLoadFailed) isEvent()   {}
func (OptionSelected) isEvent()       {}
func (SubmitRequested) isEvent()      {}
func (Tick) isEvent()                 {}
func (FeedbackReceived) isEvent()     {}
func (SubmitFailed) isEvent()         {}
func (FeedbackAcknowledged) isEvent() {}
func (FeedbackElapsed) isEvent()      {}

// Action tells the driver what I/O to perform after an event is applied.
// The reducer itself never touches the network.
type Action int

const (
	// ActionNone requires nothing from the driver.
	ActionNone Action = iota

	// ActionFetchQuestion asks the driver to request the next question at
	// the machine's current difficulty.
	ActionFetchQuestion

	// ActionSubmitAnswer asks the driver to submit the pending answer
	// (available from Machine.PendingSubmission).
	ActionSubmitAnswer

	// ActionExit asks the driver to abandon the board (session start
	// failed; there is nothing to play).
	ActionExit
)

// Submission is the answer payload the driver sends when it receives
// ActionSubmitAnswer. OptionID is nil when the countdown expired with no
// option picked; the server scores a null answer as incorrect.
type Submission struct {
	QuestionID int64
	OptionID   *int64
	ElapsedSec int
}
