package game

import "github.com/nmoreno/quizrush/internal/api"

// Machine is the game session state machine. It owns every progress counter
// of one play-through; nothing else writes to them. All mutation goes
// through Apply, which maps one Event to at most one state transition and
// tells the caller what I/O to run next.
//
// The machine is single-threaded by contract: the driver (the board screen)
// applies events from one goroutine, matching the one-at-a-time message
// delivery of the UI loop.
type Machine struct {
	cfg Config

	state    State
	session  api.Session
	question *api.Question

	selected     *int64
	pending      *Submission
	lastFeedback *api.AnswerFeedback

	score      int
	lives      int
	difficulty float64
	answered   int

	timeLeft    int
	questionSeq int

	inFlight     bool
	terminalNext State // set while feedback for a session-ending answer shows
	needSelect   bool  // explicit submit with nothing picked
	lastErr      error

	observers []func()
}

// NewMachine creates a machine in StateLoading, ready for the session-start
// response. Counters hold their session-start values.
func NewMachine(cfg Config) *Machine {
	return &Machine{
		cfg:        cfg,
		state:      StateLoading,
		lives:      StartingLives,
		difficulty: StartingDifficulty,
	}
}

// Subscribe registers a callback invoked after every applied event.
// Observers read the machine; they must not call Apply re-entrantly.
func (m *Machine) Subscribe(fn func()) {
	m.observers = append(m.observers, fn)
}

// Apply runs one event through the reducer and returns the follow-up action.
// Events that are invalid for the current state are ignored and return
// ActionNone, so stale callbacks can never corrupt a session that has
// moved on.
func (m *Machine) Apply(ev Event) Action {
	action := m.apply(ev)
	for _, fn := range m.observers {
		fn()
	}
	return action
}

func (m *Machine) apply(ev Event) Action {
	switch ev := ev.(type) {
	case SessionStarted:
		return m.applySessionStarted(ev)
	case SessionStartFailed:
		if m.state != StateLoading || m.session.SessionID != 0 {
			return ActionNone
		}
		m.lastErr = ev.Err
		return ActionExit
	case QuestionLoaded:
		return m.applyQuestionLoaded(ev)
	case QuestionExhausted:
		if m.state.Terminal() {
			return ActionNone
		}
		m.state = StateCompleted
		return ActionNone
	case QuestionLoadFailed:
		if m.state != StateLoading {
			return ActionNone
		}
		m.lastErr = ev.Err
		return ActionNone
	case OptionSelected:
		if m.state == StatePlaying && !m.inFlight {
			id := ev.OptionID
			m.selected = &id
			m.needSelect = false
		}
		return ActionNone
	case SubmitRequested:
		return m.applySubmit(false)
	case Tick:
		return m.applyTick(ev)
	case FeedbackReceived:
		return m.applyFeedback(ev)
	case SubmitFailed:
		return m.applySubmitFailed(ev)
	case FeedbackAcknowledged:
		return m.applyAcknowledge()
	case FeedbackElapsed:
		if m.state != StateFeedback || ev.Seq != m.answered {
			return ActionNone
		}
		if m.terminalNext != StateLoading {
			m.state = m.terminalNext
		}
		return ActionNone
	}
	return ActionNone
}

func (m *Machine) applySessionStarted(ev SessionStarted) Action {
	if m.state != StateLoading || m.session.SessionID != 0 {
		return ActionNone
	}
	m.session = ev.Session
	if ev.Session.CurrentDifficulty > 0 {
		m.difficulty = ev.Session.CurrentDifficulty
	}
	return ActionFetchQuestion
}

func (m *Machine) applyQuestionLoaded(ev QuestionLoaded) Action {
	if m.state != StateLoading || m.session.SessionID == 0 {
		return ActionNone
	}
	if ev.Progress != nil && ev.Progress.Max > 0 {
		m.cfg.MaxQuestions = ev.Progress.Max
	}
	q := ev.Question
	m.question = &q
	m.selected = nil
	m.needSelect = false
	m.lastErr = nil
	m.lastFeedback = nil
	m.questionSeq++
	m.timeLeft = QuestionSeconds
	m.state = StatePlaying
	return ActionNone
}

// applySubmit moves a playing question into loading and hands the driver a
// submission. An explicit submit with nothing picked is rejected locally;
// a timeout submit goes through with a null option id, which the server
// scores as incorrect.
func (m *Machine) applySubmit(timedOut bool) Action {
	if m.state != StatePlaying || m.inFlight || m.question == nil {
		return ActionNone
	}
	if m.selected == nil && !timedOut {
		m.needSelect = true
		return ActionNone
	}
	m.pending = &Submission{
		QuestionID: m.question.ID,
		OptionID:   m.selected,
		ElapsedSec: QuestionSeconds - m.timeLeft,
	}
	m.inFlight = true
	m.state = StateLoading
	return ActionSubmitAnswer
}

func (m *Machine) applyTick(ev Tick) Action {
	if m.state != StatePlaying || ev.Seq != m.questionSeq {
		return ActionNone
	}
	if m.timeLeft > 0 {
		m.timeLeft--
	}
	if m.timeLeft > 0 {
		return ActionNone
	}
	return m.applySubmit(true)
}

func (m *Machine) applyFeedback(ev FeedbackReceived) Action {
	if !m.inFlight || m.state != StateLoading {
		return ActionNone
	}
	fb := ev.Feedback
	m.inFlight = false
	m.pending = nil
	m.answered++
	m.score = fb.Score
	if fb.Lives < m.lives {
		m.lives = fb.Lives
	}
	if m.lives < 0 {
		m.lives = 0
	}
	if fb.NextDifficulty > 0 {
		m.difficulty = fb.NextDifficulty
		m.session.CurrentDifficulty = fb.NextDifficulty
	}
	m.lastFeedback = &fb

	m.terminalNext = StateLoading
	switch {
	case m.lives == 0 || fb.Status == "game_over":
		m.lives = 0
		m.terminalNext = StateGameOver
	case m.cfg.MaxQuestions > 0 && m.answered >= m.cfg.MaxQuestions:
		m.terminalNext = StateCompleted
	}
	m.state = StateFeedback
	return ActionNone
}

func (m *Machine) applySubmitFailed(ev SubmitFailed) Action {
	if !m.inFlight || m.state != StateLoading {
		return ActionNone
	}
	// Nothing was scored: the answer is retryable. Fresh countdown, same
	// question, selection preserved.
	m.inFlight = false
	m.pending = nil
	m.lastErr = ev.Err
	m.questionSeq++
	m.timeLeft = QuestionSeconds
	m.state = StatePlaying
	return ActionNone
}

func (m *Machine) applyAcknowledge() Action {
	if m.state != StateFeedback {
		return ActionNone
	}
	if m.terminalNext != StateLoading {
		m.state = m.terminalNext
		return ActionNone
	}
	m.question = nil
	m.selected = nil
	m.state = StateLoading
	return ActionFetchQuestion
}

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Session returns the server-issued session (zero before SessionStarted).
func (m *Machine) Session() api.Session { return m.session }

// Question returns the active question, or nil between questions.
func (m *Machine) Question() *api.Question { return m.question }

// Selected returns the currently picked option id, or nil.
func (m *Machine) Selected() *int64 { return m.selected }

// PendingSubmission returns the answer awaiting transport, or nil.
func (m *Machine) PendingSubmission() *Submission { return m.pending }

// Feedback returns the verdict for the last scored answer, or nil.
func (m *Machine) Feedback() *api.AnswerFeedback { return m.lastFeedback }

// Score returns the server-reported score.
func (m *Machine) Score() int { return m.score }

// Lives returns the remaining lives.
func (m *Machine) Lives() int { return m.lives }

// Difficulty returns the difficulty the next question will be fetched at.
func (m *Machine) Difficulty() float64 { return m.difficulty }

// Answered returns how many answers have been scored.
func (m *Machine) Answered() int { return m.answered }

// TimeLeft returns the countdown in seconds (meaningful while playing).
func (m *Machine) TimeLeft() int { return m.timeLeft }

// QuestionSeq returns the sequence number countdown ticks must carry.
// It changes whenever a fresh countdown starts.
func (m *Machine) QuestionSeq() int { return m.questionSeq }

// NeedSelection reports that an explicit submit was rejected because no
// option was picked. Cleared on the next selection.
func (m *Machine) NeedSelection() bool { return m.needSelect }

// Err returns the last transient error, or nil.
func (m *Machine) Err() error { return m.lastErr }
