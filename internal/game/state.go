package game

// State is the phase of a play-through. A session moves loading → playing →
// feedback and from feedback either back to loading (next question) or into
// one of the two terminal states.
type State int

const (
	// StateLoading is active while a network request is in flight
	// (session start, question fetch, answer submit). No input accepted.
	StateLoading State = iota

	// StatePlaying shows the current question with its countdown running.
	StatePlaying

	// StateFeedback shows the server's verdict for the submitted answer.
	StateFeedback

	// StateGameOver is terminal: lives reached zero.
	StateGameOver

	// StateCompleted is terminal: the question pool or the configured
	// question cap was exhausted. Unlike game over, this is the success path.
	StateCompleted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFeedback:
		return "feedback"
	case StateGameOver:
		return "gameover"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Terminal reports whether the state ends the session.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateCompleted
}

const (
	// StartingLives is the number of lives at session start.
	StartingLives = 3

	// StartingDifficulty is the difficulty a fresh session begins at.
	StartingDifficulty = 1.0

	// QuestionSeconds is the per-question countdown, in seconds.
	QuestionSeconds = 30
)

// Config tunes a Machine. The zero value gives an uncapped session.
type Config struct {
	// MaxQuestions ends the session in StateCompleted once this many
	// answers have been scored. Zero means no cap: the session runs until
	// lives or the server's question pool run out.
	MaxQuestions int
}
