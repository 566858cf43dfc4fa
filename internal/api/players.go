package api

import (
	"context"
	"fmt"
	"net/http"
)

type playerResponse struct {
	envelope
	Player Player `json:"player"`
}

// CreatePlayer registers a new player. No authentication required.
func (c *Client) CreatePlayer(ctx context.Context, name string, age int) (Player, error) {
	body := map[string]any{"name": name, "age": age}
	var resp playerResponse
	if err := c.do(ctx, http.MethodPost, "/players", body, &resp); err != nil {
		return Player{}, err
	}
	return resp.Player, nil
}

type playersResponse struct {
	envelope
	Players []Player `json:"players"`
}

// ListPlayers returns all registered players.
func (c *Client) ListPlayers(ctx context.Context) ([]Player, error) {
	var resp playersResponse
	if err := c.do(ctx, http.MethodGet, "/players", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Players, nil
}

type questionByIDResponse struct {
	envelope
	Question Question `json:"question"`
}

// GetQuestion fetches a single question by id.
func (c *Client) GetQuestion(ctx context.Context, id int64) (Question, error) {
	var resp questionByIDResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/questions/%d", id), nil, &resp); err != nil {
		return Question{}, err
	}
	return resp.Question, nil
}
