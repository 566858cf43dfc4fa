package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/games/start", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, 7, body["player_id"])
			assert.EqualValues(t, 1.0, body["start_difficulty"])

			_, _ = w.Write([]byte(`{"ok":true,"session_id":42,"current_difficulty":1.0,"status":"active"}`))
		}))
		defer server.Close()

		c := New(server.URL)
		sess, err := c.StartSession(context.Background(), StartSessionInput{PlayerID: 7, StartDifficulty: 1.0})
		require.NoError(t, err)
		assert.EqualValues(t, 42, sess.SessionID)
		assert.Equal(t, 1.0, sess.CurrentDifficulty)
		assert.Equal(t, "active", sess.Status)
	})

	t.Run("missing session id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		_, err := New(server.URL).StartSession(context.Background(), StartSessionInput{PlayerID: 7})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Message, "no session id")
	})

	t.Run("envelope error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":false,"error":"player not registered"}`))
		}))
		defer server.Close()

		_, err := New(server.URL).StartSession(context.Background(), StartSessionInput{PlayerID: 7})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "player not registered", apiErr.Message)
	})
}

func TestNextQuestion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/games/next", r.URL.Path)
			assert.Equal(t, "42", r.URL.Query().Get("session_id"))
			assert.Equal(t, "1.5", r.URL.Query().Get("difficulty"))

			_, _ = w.Write([]byte(`{"ok":true,"question":{
				"id":9,"statement":"¿Capital de Perú?","difficulty":1.5,
				"options":[{"id":1,"text":"Lima"},{"id":2,"text":"Quito"}]
			},"progress":{"answered":3,"max":10}}`))
		}))
		defer server.Close()

		q, prog, err := New(server.URL).NextQuestion(context.Background(), 42, 1.5, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 9, q.ID)
		assert.Len(t, q.Options, 2)
		require.NotNil(t, prog)
		assert.Equal(t, 10, prog.Max)
	})

	t.Run("not found means pool exhausted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, _, err := New(server.URL).NextQuestion(context.Background(), 42, 1.0, 0)
		assert.ErrorIs(t, err, ErrNoMoreQuestions)
	})

	t.Run("explicit completion flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true,"completed":true}`))
		}))
		defer server.Close()

		_, _, err := New(server.URL).NextQuestion(context.Background(), 42, 1.0, 0)
		assert.ErrorIs(t, err, ErrNoMoreQuestions)
	})

	t.Run("server error is not completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, _, err := New(server.URL).NextQuestion(context.Background(), 42, 1.0, 0)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoMoreQuestions)
		assert.True(t, IsRetryable(err))
	})
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("scored", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/games/42/answer", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, 9, body["question_id"])
			assert.EqualValues(t, 2, body["option_id"])
			assert.EqualValues(t, 12, body["elapsed_sec"])

			_, _ = w.Write([]byte(`{"ok":true,"is_correct":true,"score":10,"lives":3,
				"status":"active","next_difficulty":1.5,"explanation":"Lima it is",
				"correct_option_id":2}`))
		}))
		defer server.Close()

		opt := int64(2)
		fb, err := New(server.URL).SubmitAnswer(context.Background(), 42, AnswerInput{
			QuestionID: 9, OptionID: &opt, ElapsedSec: 12,
		})
		require.NoError(t, err)
		assert.True(t, fb.IsCorrect)
		assert.Equal(t, 10, fb.Score)
		assert.Equal(t, 1.5, fb.NextDifficulty)
		assert.EqualValues(t, 2, fb.CorrectOptionID)
	})

	t.Run("null option on timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			v, present := body["option_id"]
			assert.True(t, present, "option_id must be serialized even when null")
			assert.Nil(t, v)

			_, _ = w.Write([]byte(`{"ok":true,"is_correct":false,"score":0,"lives":2,"status":"active","next_difficulty":1.0,"correct_option_id":1}`))
		}))
		defer server.Close()

		fb, err := New(server.URL).SubmitAnswer(context.Background(), 42, AnswerInput{QuestionID: 9, ElapsedSec: 30})
		require.NoError(t, err)
		assert.False(t, fb.IsCorrect)
		assert.Equal(t, 2, fb.Lives)
	})
}

func TestAuthToken(t *testing.T) {
	t.Run("bearer header attached", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"ok":true,"stats":{"total_questions":5}}`))
		}))
		defer server.Close()

		c := New(server.URL, WithToken(func() string { return "tok-123" }))
		_, err := c.Dashboard(context.Background())
		require.NoError(t, err)
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := New(server.URL).Dashboard(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.False(t, IsRetryable(err))
	})
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"token":"jwt-abc"}`))
	}))
	defer server.Close()

	c := New(server.URL)

	tok, err := c.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)

	_, err = c.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := New(server.URL).Leaderboard(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "malformed")
}

func TestReportErrorNeverFails(t *testing.T) {
	// Sink unreachable: the call must still return.
	c := New("http://127.0.0.1:1")
	c.ReportError(context.Background(), "boom", 500, "/games/next")
}

func TestAdminQuestionFlow(t *testing.T) {
	var verified bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/questions":
			_, _ = w.Write([]byte(`{"ok":true,"questions":[{"id":1,"statement":"Q1","difficulty":2,"category_name":"Geography"}]}`))
		case r.Method == http.MethodPatch && r.URL.Path == "/admin/questions/1/verify":
			var body map[string]bool
			_ = json.NewDecoder(r.Body).Decode(&body)
			verified = body["verified"]
			_, _ = w.Write([]byte(`{"ok":true,"question":{"id":1,"statement":"Q1","admin_verified":true}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/admin/questions/1":
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	qs, err := c.AdminQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Geography", qs[0].CategoryName)

	q, err := c.VerifyQuestion(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, q.AdminVerified)
	assert.True(t, verified)

	require.NoError(t, c.DeleteQuestion(ctx, 1))
}

func TestListPlayers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/players", r.URL.Path)
		_, _ = w.Write([]byte(`{"ok":true,"players":[
			{"id":7,"name":"Nia","age":9,"created_at":"2026-08-01T10:00:00Z"},
			{"id":8,"name":"Tom","age":11}
		]}`))
	}))
	defer server.Close()

	players, err := New(server.URL).ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Nia", players[0].Name)
	assert.Equal(t, 9, players[0].Age)
	assert.False(t, players[0].CreatedAt.IsZero())
	assert.EqualValues(t, 8, players[1].ID)
}

func TestGetQuestion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/questions/9", r.URL.Path)
			_, _ = w.Write([]byte(`{"ok":true,"question":{
				"id":9,"statement":"¿Capital de Perú?","difficulty":1.5,
				"options":[{"id":1,"text":"Lima","is_correct":true},{"id":2,"text":"Quito","is_correct":false}]
			}}`))
		}))
		defer server.Close()

		q, err := New(server.URL).GetQuestion(context.Background(), 9)
		require.NoError(t, err)
		assert.EqualValues(t, 9, q.ID)
		require.Len(t, q.Options, 2)
		require.NotNil(t, q.Options[0].IsCorrect)
		assert.True(t, *q.Options[0].IsCorrect)
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := New(server.URL).GetQuestion(context.Background(), 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrUnauthorized, false},
		{ErrNoMoreQuestions, false},
		{ErrNotFound, false},
		{&APIError{StatusCode: 400, Message: "bad input"}, false},
		{&APIError{StatusCode: 503}, true},
		{errors.New("dial tcp: connection refused"), true},
		{fmt.Errorf("GET /games/next: %w", ErrNotFound), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRetryable(tc.err), "err=%v", tc.err)
	}
}
