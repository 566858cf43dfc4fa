package api

import (
	"context"
	"fmt"
	"net/http"
)

type sessionStatsResponse struct {
	envelope
	Stats SessionStats `json:"stats"`
}

// SessionStats returns the aggregate stats for one finished session.
func (c *Client) SessionStats(ctx context.Context, sessionID int64) (SessionStats, error) {
	var resp sessionStatsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stats/session/%d", sessionID), nil, &resp); err != nil {
		return SessionStats{}, err
	}
	return resp.Stats, nil
}

type playerStatsResponse struct {
	envelope
	Stats PlayerStats `json:"stats"`
}

// PlayerStats returns a player's global statistics, including per-category
// accuracy and average answer time.
func (c *Client) PlayerStats(ctx context.Context, playerID int64) (PlayerStats, error) {
	var resp playerStatsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stats/player/%d", playerID), nil, &resp); err != nil {
		return PlayerStats{}, err
	}
	return resp.Stats, nil
}

type leaderboardResponse struct {
	envelope
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// Leaderboard returns the top-10 players.
func (c *Client) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var resp leaderboardResponse
	if err := c.do(ctx, http.MethodGet, "/stats/leaderboard", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Leaderboard, nil
}
