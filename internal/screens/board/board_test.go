package board

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nmoreno/quizrush/internal/api"
	"github.com/nmoreno/quizrush/internal/game"
	"github.com/nmoreno/quizrush/internal/router"
	"github.com/nmoreno/quizrush/internal/store"
)

// mockHistory implements store.HistoryRepo for testing.
type mockHistory struct {
	records []store.SessionRecordData
}

func (m *mockHistory) Append(_ context.Context, data store.SessionRecordData) error {
	m.records = append(m.records, data)
	return nil
}
func (m *mockHistory) Recent(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockHistory) Summary(_ context.Context) (store.HistorySummary, error) {
	return store.HistorySummary{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion() api.Question {
	return api.Question{
		ID:        11,
		Statement: "Which planet is known as the Red Planet?",
		Options: []api.Option{
			{ID: 101, Text: "Venus"},
			{ID: 102, Text: "Mars"},
			{ID: 103, Text: "Jupiter"},
			{ID: 104, Text: "Mercury"},
		},
	}
}

func testBoard() (*BoardScreen, *mockHistory) {
	h := &mockHistory{}
	s := New(api.New("http://127.0.0.1:1"), h, store.Identity{PlayerID: 7, PlayerName: "Nia"})
	return s, h
}

// startPlaying walks the board to an active question.
func startPlaying(t *testing.T, s *BoardScreen) {
	t.Helper()
	s.Update(sessionStartedMsg{Session: api.Session{SessionID: 42, CurrentDifficulty: 1.0}})
	s.Update(questionLoadedMsg{Question: testQuestion()})
	if s.machine.State() != game.StatePlaying {
		t.Fatalf("expected playing state, got %v", s.machine.State())
	}
}

// runBatch executes a returned command tree and collects the messages.
func runBatch(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var msgs []tea.Msg
	switch m := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range m {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	default:
		msgs = append(msgs, m)
	}
	return msgs
}

func TestSessionStartFailure(t *testing.T) {
	s, _ := testBoard()
	s.Update(sessionStartedMsg{Err: &api.APIError{StatusCode: 500, Message: "boom"}})

	if s.errMsg == "" {
		t.Fatal("expected error message")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after error acknowledge")
	}
}

func TestQuestionLoadedStartsCountdown(t *testing.T) {
	s, _ := testBoard()
	s.Update(sessionStartedMsg{Session: api.Session{SessionID: 42}})
	_, cmd := s.Update(questionLoadedMsg{Question: testQuestion()})

	if s.machine.State() != game.StatePlaying {
		t.Fatalf("expected playing, got %v", s.machine.State())
	}
	if cmd == nil {
		t.Error("expected a tick command")
	}
	if s.machine.TimeLeft() != game.QuestionSeconds {
		t.Errorf("expected %d seconds, got %d", game.QuestionSeconds, s.machine.TimeLeft())
	}
}

func TestNumberKeySelectsAndEnterSubmits(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)

	s.Update(keyPress('2'))
	if sel := s.machine.Selected(); sel == nil || *sel != 102 {
		t.Fatalf("expected option 102 selected, got %v", sel)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	if s.machine.State() != game.StateLoading {
		t.Errorf("expected loading during submit, got %v", s.machine.State())
	}
	pending := s.machine.PendingSubmission()
	if pending == nil || pending.OptionID == nil || *pending.OptionID != 102 {
		t.Errorf("unexpected pending submission: %+v", pending)
	}
}

func TestEnterWithoutSelectionRejected(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command")
	}
	if s.machine.State() != game.StatePlaying {
		t.Errorf("expected still playing, got %v", s.machine.State())
	}
	if s.notice == "" {
		t.Error("expected a pick-an-answer notice")
	}
}

func TestTimeoutSubmitsWithoutOption(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	seq := s.machine.QuestionSeq()

	var cmd tea.Cmd
	for i := 0; i < game.QuestionSeconds; i++ {
		_, cmd = s.Update(countdownTickMsg{Seq: seq})
	}

	if s.machine.State() != game.StateLoading {
		t.Fatalf("expected loading after timeout, got %v", s.machine.State())
	}
	pending := s.machine.PendingSubmission()
	if pending == nil {
		t.Fatal("expected a pending submission")
	}
	if pending.OptionID != nil {
		t.Errorf("expected null option id, got %v", *pending.OptionID)
	}
	if cmd == nil {
		t.Error("expected submit command")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)

	before := s.machine.TimeLeft()
	s.Update(countdownTickMsg{Seq: s.machine.QuestionSeq() - 1})
	if s.machine.TimeLeft() != before {
		t.Error("stale tick should not advance the countdown")
	}
}

func TestFeedbackThenNextQuestion(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{
		IsCorrect:       true,
		Score:           10,
		Lives:           3,
		NextDifficulty:  1.5,
		CorrectOptionID: 102,
	}})
	if s.machine.State() != game.StateFeedback {
		t.Fatalf("expected feedback state, got %v", s.machine.State())
	}
	if cmd == nil {
		t.Error("expected feedback timer command")
	}
	if s.correct != 1 {
		t.Errorf("expected 1 correct, got %d", s.correct)
	}
	if !s.options.Revealed || s.options.CorrectID != 102 {
		t.Error("expected options revealed with correct id 102")
	}

	// Any key advances to the next question.
	_, cmd = s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	if s.machine.State() != game.StateLoading {
		t.Errorf("expected loading, got %v", s.machine.State())
	}
	if s.machine.Difficulty() != 1.5 {
		t.Errorf("expected difficulty 1.5, got %v", s.machine.Difficulty())
	}
}

func TestFeedbackTimerWaitsForPlayer(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{
		IsCorrect:       true,
		Score:           10,
		Lives:           3,
		NextDifficulty:  1.5,
		CorrectOptionID: 102,
	}})

	// The timer fires on a non-terminal verdict: the verdict stays on
	// screen and nothing is fetched until the player presses a key.
	_, cmd := s.Update(feedbackShownMsg{Seq: s.machine.Answered()})
	if s.machine.State() != game.StateFeedback {
		t.Fatalf("expected verdict still on screen, got %v", s.machine.State())
	}
	if cmd != nil {
		t.Error("expected no command from the feedback timer")
	}

	_, cmd = s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected fetch command after keypress")
	}
	if s.machine.State() != game.StateLoading {
		t.Errorf("expected loading after keypress, got %v", s.machine.State())
	}
}

func TestQuestionFetchFailureSurfaced(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{IsCorrect: true, Score: 10, Lives: 3, CorrectOptionID: 102}})
	s.Update(keyPress('x')) // acknowledge, board fetches next

	_, cmd := s.Update(questionLoadedMsg{Err: &api.APIError{StatusCode: 503, Message: "unavailable"}})
	if s.errMsg == "" {
		t.Fatal("expected fetch failure surfaced to the player")
	}
	if cmd != nil {
		t.Error("expected no retry command")
	}

	_, cmd = s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after error acknowledge")
	}
}

func TestSubmitFailureRestoresQuestion(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('3'))
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(answerScoredMsg{Err: &api.APIError{StatusCode: 502, Message: "bad gateway"}})

	if s.machine.State() != game.StatePlaying {
		t.Fatalf("expected playing after retryable failure, got %v", s.machine.State())
	}
	if sel := s.machine.Selected(); sel == nil || *sel != 103 {
		t.Error("expected selection preserved")
	}
	if s.machine.TimeLeft() != game.QuestionSeconds {
		t.Error("expected a fresh countdown")
	}
	if s.options.Locked {
		t.Error("expected options unlocked for retry")
	}
	if s.notice == "" {
		t.Error("expected a retry notice")
	}
	if cmd == nil {
		t.Error("expected a new tick command")
	}
}

func TestGameOverRecordsHistory(t *testing.T) {
	s, h := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{
		IsCorrect:       false,
		Score:           0,
		Lives:           0,
		CorrectOptionID: 102,
	}})

	_, cmd := s.Update(feedbackShownMsg{Seq: s.machine.Answered()})
	if s.machine.State() != game.StateGameOver {
		t.Fatalf("expected game over, got %v", s.machine.State())
	}

	replaced := false
	for _, msg := range runBatch(cmd) {
		if _, ok := msg.(router.ReplaceScreenMsg); ok {
			replaced = true
		}
	}
	if !replaced {
		t.Error("expected ReplaceScreenMsg to the summary")
	}

	if len(h.records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(h.records))
	}
	rec := h.records[0]
	if rec.Outcome != store.OutcomeGameOver {
		t.Errorf("expected gameover outcome, got %q", rec.Outcome)
	}
	if rec.SessionID != 42 || rec.PlayerID != 7 {
		t.Errorf("unexpected record identity: %+v", rec)
	}
}

func TestStaleFeedbackTimerIgnored(t *testing.T) {
	s, _ := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{IsCorrect: true, Score: 10, Lives: 3, CorrectOptionID: 102}})

	// Player advances by key before the timer fires.
	s.Update(keyPress('x'))
	if s.machine.State() != game.StateLoading {
		t.Fatalf("expected loading, got %v", s.machine.State())
	}

	// The old feedback timer fires afterwards and must be ignored.
	_, cmd := s.Update(feedbackShownMsg{Seq: 1})
	if s.machine.State() != game.StateLoading {
		t.Error("stale feedback timer changed state")
	}
	_ = cmd
}

func TestPoolExhaustedCompletes(t *testing.T) {
	s, h := testBoard()
	startPlaying(t, s)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))
	s.Update(answerScoredMsg{Feedback: api.AnswerFeedback{IsCorrect: true, Score: 10, Lives: 3, CorrectOptionID: 102}})
	s.Update(keyPress('x')) // acknowledge, board fetches next

	_, cmd := s.Update(questionLoadedMsg{Err: api.ErrNoMoreQuestions})
	if s.machine.State() != game.StateCompleted {
		t.Fatalf("expected completed, got %v", s.machine.State())
	}
	runBatch(cmd)

	if len(h.records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(h.records))
	}
	if h.records[0].Outcome != store.OutcomeCompleted {
		t.Errorf("expected completed outcome, got %q", h.records[0].Outcome)
	}
	if h.records[0].Correct != 1 || h.records[0].Answered != 1 {
		t.Errorf("unexpected counters: %+v", h.records[0])
	}
}
