package game

import (
	"errors"
	"testing"

	"github.com/nmoreno/quizrush/internal/api"
)

func testSession() api.Session {
	return api.Session{SessionID: 42, CurrentDifficulty: 1.0, Status: "active"}
}

func testQuestion(id int64) api.Question {
	return api.Question{
		ID:         id,
		Statement:  "What is the capital of Peru?",
		Difficulty: 1.0,
		Options: []api.Option{
			{ID: 1, Text: "Lima"},
			{ID: 2, Text: "Quito"},
			{ID: 3, Text: "Bogotá"},
			{ID: 4, Text: "Santiago"},
		},
	}
}

// playingMachine returns a machine in StatePlaying on question 1.
func playingMachine(t *testing.T, cfg Config) *Machine {
	t.Helper()
	m := NewMachine(cfg)
	if got := m.Apply(SessionStarted{Session: testSession()}); got != ActionFetchQuestion {
		t.Fatalf("SessionStarted action = %v, want ActionFetchQuestion", got)
	}
	if got := m.Apply(QuestionLoaded{Question: testQuestion(1)}); got != ActionNone {
		t.Fatalf("QuestionLoaded action = %v, want ActionNone", got)
	}
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", m.State())
	}
	return m
}

func submit(t *testing.T, m *Machine, optionID int64) {
	t.Helper()
	m.Apply(OptionSelected{OptionID: optionID})
	if got := m.Apply(SubmitRequested{}); got != ActionSubmitAnswer {
		t.Fatalf("SubmitRequested action = %v, want ActionSubmitAnswer", got)
	}
}

func TestStartFailureAborts(t *testing.T) {
	m := NewMachine(Config{})
	if got := m.Apply(SessionStartFailed{Err: errors.New("boom")}); got != ActionExit {
		t.Errorf("action = %v, want ActionExit", got)
	}
	if m.Err() == nil {
		t.Error("expected error recorded")
	}
}

func TestQuestionLoadedStartsCountdown(t *testing.T) {
	m := playingMachine(t, Config{})
	if m.TimeLeft() != QuestionSeconds {
		t.Errorf("TimeLeft = %d, want %d", m.TimeLeft(), QuestionSeconds)
	}
	if m.Lives() != StartingLives {
		t.Errorf("Lives = %d, want %d", m.Lives(), StartingLives)
	}
	if m.Difficulty() != 1.0 {
		t.Errorf("Difficulty = %v, want 1.0", m.Difficulty())
	}
}

func TestCountdownDecrementsOncePerTick(t *testing.T) {
	m := playingMachine(t, Config{})
	seq := m.QuestionSeq()
	for i := 1; i <= 5; i++ {
		m.Apply(Tick{Seq: seq})
		if got := m.TimeLeft(); got != QuestionSeconds-i {
			t.Fatalf("after %d ticks TimeLeft = %d, want %d", i, got, QuestionSeconds-i)
		}
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := playingMachine(t, Config{})
	m.Apply(Tick{Seq: m.QuestionSeq() - 1})
	if m.TimeLeft() != QuestionSeconds {
		t.Errorf("stale tick mutated countdown: TimeLeft = %d", m.TimeLeft())
	}
}

func TestTickOutsidePlayingIgnored(t *testing.T) {
	m := playingMachine(t, Config{})
	seq := m.QuestionSeq()
	submit(t, m, 1)
	m.Apply(Tick{Seq: seq})
	if m.State() != StateLoading {
		t.Errorf("tick during loading changed state to %v", m.State())
	}
	if m.PendingSubmission() == nil {
		t.Error("pending submission lost")
	}
}

func TestExplicitSubmitWithoutSelectionRejected(t *testing.T) {
	m := playingMachine(t, Config{})
	if got := m.Apply(SubmitRequested{}); got != ActionNone {
		t.Fatalf("action = %v, want ActionNone", got)
	}
	if !m.NeedSelection() {
		t.Error("expected NeedSelection")
	}
	if m.State() != StatePlaying {
		t.Errorf("state = %v, want playing", m.State())
	}
	m.Apply(OptionSelected{OptionID: 2})
	if m.NeedSelection() {
		t.Error("NeedSelection should clear on selection")
	}
}

func TestTimeoutSubmitsNullAnswer(t *testing.T) {
	m := playingMachine(t, Config{})
	seq := m.QuestionSeq()

	var action Action
	for i := 0; i < QuestionSeconds; i++ {
		action = m.Apply(Tick{Seq: seq})
	}
	if action != ActionSubmitAnswer {
		t.Fatalf("final tick action = %v, want ActionSubmitAnswer", action)
	}
	sub := m.PendingSubmission()
	if sub == nil {
		t.Fatal("no pending submission")
	}
	if sub.OptionID != nil {
		t.Errorf("OptionID = %v, want nil on timeout with no pick", *sub.OptionID)
	}
	if sub.ElapsedSec != QuestionSeconds {
		t.Errorf("ElapsedSec = %d, want %d", sub.ElapsedSec, QuestionSeconds)
	}

	// Further ticks must never trigger a second submission.
	if got := m.Apply(Tick{Seq: seq}); got != ActionNone {
		t.Errorf("tick after timeout action = %v, want ActionNone", got)
	}
}

func TestSubmitCarriesElapsedTime(t *testing.T) {
	m := playingMachine(t, Config{})
	seq := m.QuestionSeq()
	for i := 0; i < 12; i++ {
		m.Apply(Tick{Seq: seq})
	}
	submit(t, m, 3)
	sub := m.PendingSubmission()
	if sub == nil {
		t.Fatal("no pending submission")
	}
	if sub.ElapsedSec != 12 {
		t.Errorf("ElapsedSec = %d, want 12", sub.ElapsedSec)
	}
	if sub.OptionID == nil || *sub.OptionID != 3 {
		t.Errorf("OptionID = %v, want 3", sub.OptionID)
	}
}

func TestNoDoubleSubmission(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	if got := m.Apply(SubmitRequested{}); got != ActionNone {
		t.Errorf("second submit action = %v, want ActionNone", got)
	}
}

func TestCorrectAnswerUpdatesProgress(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)

	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{
		IsCorrect:       true,
		Score:           10,
		Lives:           3,
		Status:          "active",
		NextDifficulty:  1.5,
		CorrectOptionID: 1,
	}})

	if m.State() != StateFeedback {
		t.Fatalf("state = %v, want feedback", m.State())
	}
	if m.Score() != 10 {
		t.Errorf("Score = %d, want 10", m.Score())
	}
	if m.Lives() != 3 {
		t.Errorf("Lives = %d, want 3", m.Lives())
	}
	if m.Difficulty() != 1.5 {
		t.Errorf("Difficulty = %v, want 1.5", m.Difficulty())
	}

	// The next fetch must use the updated difficulty.
	if got := m.Apply(FeedbackAcknowledged{}); got != ActionFetchQuestion {
		t.Fatalf("acknowledge action = %v, want ActionFetchQuestion", got)
	}
	if m.Difficulty() != 1.5 {
		t.Errorf("Difficulty after acknowledge = %v, want 1.5", m.Difficulty())
	}
}

func TestLivesNeverIncrease(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 2, Status: "active", NextDifficulty: 1.0}})
	if m.Lives() != 2 {
		t.Fatalf("Lives = %d, want 2", m.Lives())
	}
	m.Apply(FeedbackAcknowledged{})
	m.Apply(QuestionLoaded{Question: testQuestion(2)})
	submit(t, m, 1)

	// A buggy or reordered server response must not resurrect lives.
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 3, Status: "active", NextDifficulty: 1.0}})
	if m.Lives() != 2 {
		t.Errorf("Lives = %d, want 2 (non-increasing)", m.Lives())
	}
}

func TestLivesNeverNegative(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: -1, Status: "game_over"}})
	if m.Lives() != 0 {
		t.Errorf("Lives = %d, want 0", m.Lives())
	}
}

func TestZeroLivesForcesGameOver(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 0, Status: "game_over"}})
	if m.State() != StateFeedback {
		t.Fatalf("state = %v, want feedback (verdict shown first)", m.State())
	}

	// The bounded delay fires without the player acknowledging.
	m.Apply(FeedbackElapsed{Seq: m.Answered()})
	if m.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", m.State())
	}
}

func TestZeroLivesGameOverViaAcknowledge(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 0, Status: "game_over"}})

	if got := m.Apply(FeedbackAcknowledged{}); got != ActionNone {
		t.Errorf("acknowledge action = %v, want ActionNone", got)
	}
	if m.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", m.State())
	}

	// The delayed fallback arriving afterwards is a no-op, not a second
	// transition.
	m.Apply(FeedbackElapsed{Seq: m.Answered()})
	if m.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", m.State())
	}
}

func TestStaleFeedbackElapsedIgnored(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 3, Status: "active", NextDifficulty: 1.0}})
	m.Apply(FeedbackAcknowledged{})
	m.Apply(QuestionLoaded{Question: testQuestion(2)})

	// Delay armed for answer 1 firing while question 2 plays.
	m.Apply(FeedbackElapsed{Seq: 1})
	if m.State() != StatePlaying {
		t.Errorf("state = %v, want playing", m.State())
	}
}

func TestQuestionExhaustedCompletes(t *testing.T) {
	m := NewMachine(Config{})
	m.Apply(SessionStarted{Session: testSession()})
	m.Apply(QuestionExhausted{})
	if m.State() != StateCompleted {
		t.Errorf("state = %v, want completed", m.State())
	}
}

func TestMaxQuestionsCompletes(t *testing.T) {
	m := playingMachine(t, Config{MaxQuestions: 1})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{IsCorrect: true, Score: 10, Lives: 3, Status: "active", NextDifficulty: 1.5}})
	m.Apply(FeedbackAcknowledged{})
	if m.State() != StateCompleted {
		t.Errorf("state = %v, want completed", m.State())
	}
}

func TestSubmitFailureRestoresPlaying(t *testing.T) {
	m := playingMachine(t, Config{})
	seq := m.QuestionSeq()
	for i := 0; i < 7; i++ {
		m.Apply(Tick{Seq: seq})
	}
	submit(t, m, 2)

	m.Apply(SubmitFailed{Err: errors.New("connection reset")})
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", m.State())
	}
	if m.TimeLeft() != QuestionSeconds {
		t.Errorf("TimeLeft = %d, want %d (fresh countdown)", m.TimeLeft(), QuestionSeconds)
	}
	if m.Selected() == nil || *m.Selected() != 2 {
		t.Errorf("Selected = %v, want preserved option 2", m.Selected())
	}
	if m.QuestionSeq() == seq {
		t.Error("QuestionSeq unchanged: old timer could tick the new countdown")
	}

	// The old countdown's ticks are dead.
	m.Apply(Tick{Seq: seq})
	if m.TimeLeft() != QuestionSeconds {
		t.Errorf("stale tick decremented fresh countdown: TimeLeft = %d", m.TimeLeft())
	}

	// The answer is retryable.
	if got := m.Apply(SubmitRequested{}); got != ActionSubmitAnswer {
		t.Errorf("retry submit action = %v, want ActionSubmitAnswer", got)
	}
}

func TestTransientFetchFailureKeepsState(t *testing.T) {
	m := NewMachine(Config{})
	m.Apply(SessionStarted{Session: testSession()})
	m.Apply(QuestionLoadFailed{Err: errors.New("502")})
	if m.State() != StateLoading {
		t.Errorf("state = %v, want loading (no transition on transient fetch failure)", m.State())
	}
	if m.Err() == nil {
		t.Error("expected error surfaced")
	}
}

func TestReselectionBeforeSubmit(t *testing.T) {
	m := playingMachine(t, Config{})
	m.Apply(OptionSelected{OptionID: 1})
	m.Apply(OptionSelected{OptionID: 4})
	if m.Selected() == nil || *m.Selected() != 4 {
		t.Errorf("Selected = %v, want 4", m.Selected())
	}
}

func TestSelectionIgnoredOutsidePlaying(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(OptionSelected{OptionID: 3})
	sub := m.PendingSubmission()
	if sub == nil || sub.OptionID == nil || *sub.OptionID != 1 {
		t.Errorf("submission mutated after send: %+v", sub)
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	m := playingMachine(t, Config{})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{Lives: 0, Status: "game_over"}})
	m.Apply(FeedbackAcknowledged{})

	for _, ev := range []Event{
		Tick{Seq: m.QuestionSeq()},
		SubmitRequested{},
		FeedbackAcknowledged{},
		QuestionLoaded{Question: testQuestion(9)},
		QuestionExhausted{},
	} {
		if got := m.Apply(ev); got != ActionNone {
			t.Errorf("%T in gameover returned %v, want ActionNone", ev, got)
		}
	}
	if m.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", m.State())
	}
}

func TestPoolProgressOverridesCap(t *testing.T) {
	m := NewMachine(Config{})
	m.Apply(SessionStarted{Session: testSession()})
	m.Apply(QuestionLoaded{Question: testQuestion(1), Progress: &api.Progress{Answered: 0, Max: 1}})
	submit(t, m, 1)
	m.Apply(FeedbackReceived{Feedback: api.AnswerFeedback{IsCorrect: true, Score: 10, Lives: 3, Status: "active", NextDifficulty: 1.2}})
	m.Apply(FeedbackElapsed{Seq: m.Answered()})
	if m.State() != StateCompleted {
		t.Errorf("state = %v, want completed", m.State())
	}
}

func TestObserverNotified(t *testing.T) {
	m := NewMachine(Config{})
	var calls int
	m.Subscribe(func() { calls++ })
	m.Apply(SessionStarted{Session: testSession()})
	m.Apply(QuestionLoaded{Question: testQuestion(1)})
	if calls != 2 {
		t.Errorf("observer calls = %d, want 2", calls)
	}
}
