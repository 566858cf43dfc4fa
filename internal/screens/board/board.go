package board

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/game"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/screen"
	"github.com/nmoreno/quizrush/internal/screens/summary"
	"github.com/nmoreno/quizrush/internal/store"
	"github.com/nmoreno/quizrush/internal/ui/components"
	"github.com/nmoreno/quizrush/internal/ui/layout"
)

// feedbackDelay bounds how long a session-ending verdict stays on screen
// before the board forces the terminal transition. Non-terminal feedback
// waits for the player.
const feedbackDelay = 2500 * time.Millisecond

// BoardScreen drives one play-through. All game rules live in the
// machine; the screen translates UI messages into machine events and
// machine actions into API calls.
type BoardScreen struct {
	client  *api.Client
	history store.HistoryRepo
	ident   store.Identity

	machine *game.Machine
	options components.OptionList

	correct int
	notice  string
	errMsg  string
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates a board for the given player identity.
func New(client *api.Client, history store.HistoryRepo, ident store.Identity) *BoardScreen {
	return &BoardScreen{
		client:  client,
		history: history,
		ident:   ident,
		machine: game.NewMachine(game.Config{}),
	}
}

func (s *BoardScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *BoardScreen) Title() string {
	return "Game"
}

func (s *BoardScreen) KeyHints() []layout.KeyHint {
	switch s.machine.State() {
	case game.StatePlaying:
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case game.StateFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return nil
}

func (s *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleSessionStarted(msg)
	case questionLoadedMsg:
		return s.handleQuestionLoaded(msg)
	case answerScoredMsg:
		return s.handleAnswerScored(msg)
	case countdownTickMsg:
		return s.handleTick(msg)
	case feedbackShownMsg:
		return s.handleFeedbackShown(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *BoardScreen) handleSessionStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.machine.Apply(game.SessionStartFailed{Err: msg.Err})
		s.errMsg = "Could not start a game: " + msg.Err.Error()
		return s, nil
	}
	if s.machine.Apply(game.SessionStarted{Session: msg.Session}) == game.ActionFetchQuestion {
		return s, s.fetchQuestion()
	}
	return s, nil
}

func (s *BoardScreen) handleQuestionLoaded(msg questionLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, api.ErrNoMoreQuestions) {
			s.machine.Apply(game.QuestionExhausted{})
			return s.finish()
		}
		s.machine.Apply(game.QuestionLoadFailed{Err: msg.Err})
		s.errMsg = "Could not load the next question: " + msg.Err.Error()
		return s, nil
	}

	s.machine.Apply(game.QuestionLoaded{Question: msg.Question, Progress: msg.Progress})
	s.options = components.NewOptionList(msg.Question.Options)
	s.notice = ""
	return s, tickCmd(s.machine.QuestionSeq())
}

func (s *BoardScreen) handleAnswerScored(msg answerScoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if !api.IsRetryable(msg.Err) {
			s.errMsg = "The answer could not be scored: " + msg.Err.Error()
			return s, nil
		}
		// Nothing was scored server-side. Unlock the question for a
		// retry on a fresh countdown, selection intact.
		s.machine.Apply(game.SubmitFailed{Err: msg.Err})
		s.options.Locked = false
		s.notice = "Connection hiccup. Answer again!"
		return s, tickCmd(s.machine.QuestionSeq())
	}

	s.machine.Apply(game.FeedbackReceived{Feedback: msg.Feedback})
	s.options.Reveal(msg.Feedback.CorrectOptionID)
	s.notice = ""
	if msg.Feedback.IsCorrect {
		s.correct++
	}
	return s, feedbackCmd(s.machine.Answered())
}

func (s *BoardScreen) handleTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	action := s.machine.Apply(game.Tick{Seq: msg.Seq})
	if action == game.ActionSubmitAnswer {
		s.options.Lock(chosenID(s.machine))
		return s, s.submitAnswer()
	}
	if s.machine.State() == game.StatePlaying && msg.Seq == s.machine.QuestionSeq() {
		return s, tickCmd(msg.Seq)
	}
	return s, nil
}

func (s *BoardScreen) handleFeedbackShown(msg feedbackShownMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.machine.Answered() {
		return s, nil
	}
	// Only a session-ending verdict moves on by itself; otherwise the
	// verdict stays up until the player presses a key.
	s.machine.Apply(game.FeedbackElapsed{Seq: msg.Seq})
	return s.finishIfTerminal()
}

func (s *BoardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.machine.State() {
	case game.StateFeedback:
		if s.machine.Apply(game.FeedbackAcknowledged{}) == game.ActionFetchQuestion {
			return s, s.fetchQuestion()
		}
		return s.finishIfTerminal()

	case game.StatePlaying:
		switch msg.String() {
		case "up", "k":
			s.options.MoveUp()
			s.selectUnderCursor()
		case "down", "j":
			s.options.MoveDown()
			s.selectUnderCursor()
		case "1", "2", "3", "4":
			s.options.SetCursor(int(msg.String()[0] - '1'))
			s.selectUnderCursor()
		case "enter":
			action := s.machine.Apply(game.SubmitRequested{})
			if action == game.ActionSubmitAnswer {
				s.options.Lock(chosenID(s.machine))
				s.notice = ""
				return s, s.submitAnswer()
			}
			if s.machine.NeedSelection() {
				s.notice = "Pick an answer first!"
			}
		}
	}
	return s, nil
}

func (s *BoardScreen) selectUnderCursor() {
	if opt := s.options.Current(); opt != nil {
		s.machine.Apply(game.OptionSelected{OptionID: opt.ID})
	}
}

// finishIfTerminal commits the play-through when the machine has reached
// game over or completion.
func (s *BoardScreen) finishIfTerminal() (screen.Screen, tea.Cmd) {
	if s.machine.State().Terminal() {
		return s.finish()
	}
	return s, nil
}

func (s *BoardScreen) finish() (screen.Screen, tea.Cmd) {
	outcome := store.OutcomeCompleted
	if s.machine.State() == game.StateGameOver {
		outcome = store.OutcomeGameOver
	}

	record := store.SessionRecordData{
		ClientID:        uuid.New().String(),
		SessionID:       s.machine.Session().SessionID,
		PlayerID:        s.ident.PlayerID,
		Score:           s.machine.Score(),
		Answered:        s.machine.Answered(),
		Correct:         s.correct,
		FinalDifficulty: s.machine.Difficulty(),
		Outcome:         outcome,
	}

	result := summary.Result{
		SessionID: s.machine.Session().SessionID,
		Score:     s.machine.Score(),
		Answered:  s.machine.Answered(),
		Correct:   s.correct,
		GameOver:  outcome == store.OutcomeGameOver,
	}

	history := s.history
	client := s.client
	return s, tea.Batch(
		func() tea.Msg {
			if history != nil {
				_ = history.Append(context.Background(), record)
			}
			return nil
		},
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(client, result)}
		},
	)
}

// startSession asks the server for a new session.
func (s *BoardScreen) startSession() tea.Cmd {
	client := s.client
	in := api.StartSessionInput{
		PlayerID: s.ident.PlayerID,
		RoomCode: s.ident.RoomCode,
	}
	return func() tea.Msg {
		session, err := client.StartSession(context.Background(), in)
		return sessionStartedMsg{Session: session, Err: err}
	}
}

// fetchQuestion loads the next question at the machine's current difficulty.
// A failed fetch is surfaced to the player as-is, never retried.
func (s *BoardScreen) fetchQuestion() tea.Cmd {
	client := s.client
	sessionID := s.machine.Session().SessionID
	difficulty := s.machine.Difficulty()
	return func() tea.Msg {
		q, progress, err := client.NextQuestion(context.Background(), sessionID, difficulty, 0)
		if err != nil && !errors.Is(err, api.ErrNoMoreQuestions) {
			client.ReportError(context.Background(), err.Error(), 0, "/games/next")
		}
		return questionLoadedMsg{Question: q, Progress: progress, Err: err}
	}
}

// submitAnswer sends the pending submission. No retry here: the machine
// decides whether a failed submit is retried.
func (s *BoardScreen) submitAnswer() tea.Cmd {
	client := s.client
	sessionID := s.machine.Session().SessionID
	pending := s.machine.PendingSubmission()
	return func() tea.Msg {
		if pending == nil {
			return answerScoredMsg{Err: errors.New("no pending answer")}
		}
		fb, err := client.SubmitAnswer(context.Background(), sessionID, api.AnswerInput{
			QuestionID: pending.QuestionID,
			OptionID:   pending.OptionID,
			ElapsedSec: pending.ElapsedSec,
		})
		return answerScoredMsg{Feedback: fb, Err: err}
	}
}

func chosenID(m *game.Machine) int64 {
	if sel := m.Selected(); sel != nil {
		return *sel
	}
	return -1
}

// tickCmd returns a 1-second countdown tick bound to seq.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{Seq: seq}
	})
}

// feedbackCmd schedules the end of the feedback display for answer seq.
func feedbackCmd(seq int) tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackShownMsg{Seq: seq}
	})
}
