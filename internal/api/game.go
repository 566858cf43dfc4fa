package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// StartSessionInput starts a play-through for a registered player.
// RoomCode, when set, joins the session to a room.
type StartSessionInput struct {
	PlayerID        int64   `json:"player_id"`
	StartDifficulty float64 `json:"start_difficulty,omitempty"`
	RoomCode        string  `json:"room_code,omitempty"`
}

type sessionResponse struct {
	envelope
	Session
}

// StartSession creates a game session. The server owns the session; the
// client only ever replaces CurrentDifficulty from answer feedback.
func (c *Client) StartSession(ctx context.Context, in StartSessionInput) (Session, error) {
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/games/start", in, &resp); err != nil {
		return Session{}, err
	}
	if resp.SessionID == 0 {
		return Session{}, &APIError{StatusCode: http.StatusOK, Message: "session start returned no session id"}
	}
	return resp.Session, nil
}

type questionResponse struct {
	envelope
	Question  *Question `json:"question,omitempty"`
	Progress  *Progress `json:"progress,omitempty"`
	Completed bool      `json:"completed,omitempty"`
}

// NextQuestion fetches the next question for the session at the given
// difficulty. When the pool is exhausted it returns ErrNoMoreQuestions;
// callers must treat that as completion, not failure.
func (c *Client) NextQuestion(ctx context.Context, sessionID int64, difficulty float64, categoryID int64) (Question, *Progress, error) {
	q := url.Values{}
	q.Set("session_id", fmt.Sprint(sessionID))
	q.Set("difficulty", fmt.Sprint(difficulty))
	if categoryID > 0 {
		q.Set("category_id", fmt.Sprint(categoryID))
	}

	var resp questionResponse
	err := c.do(ctx, http.MethodGet, "/games/next?"+q.Encode(), nil, &resp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Question{}, nil, ErrNoMoreQuestions
		}
		return Question{}, nil, err
	}
	if resp.Completed || resp.Question == nil {
		return Question{}, nil, ErrNoMoreQuestions
	}
	return *resp.Question, resp.Progress, nil
}

// AnswerInput is a submitted answer. OptionID is nil when the countdown
// expired with nothing selected; the server scores a null answer as
// incorrect. ElapsedSec is the time spent on the question.
type AnswerInput struct {
	QuestionID int64  `json:"question_id"`
	OptionID   *int64 `json:"option_id"`
	ElapsedSec int    `json:"elapsed_sec"`
}

type answerResponse struct {
	envelope
	AnswerFeedback
}

// SubmitAnswer sends an answer and returns the server's verdict. The server
// is the sole authority on correctness, score, lives and next difficulty.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID int64, in AnswerInput) (AnswerFeedback, error) {
	var resp answerResponse
	path := fmt.Sprintf("/games/%d/answer", sessionID)
	if err := c.do(ctx, http.MethodPost, path, in, &resp); err != nil {
		return AnswerFeedback{}, err
	}
	return resp.AnswerFeedback, nil
}
