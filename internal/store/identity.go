package store

import (
	"context"
	"fmt"

	"github.com/nmoreno/quizrush/ent"
)

// identityRepo implements IdentityRepo over the single-row Identity entity.
type identityRepo struct {
	client *ent.Client
}

func (r *identityRepo) Get(ctx context.Context) (*Identity, error) {
	row, err := r.client.Identity.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query identity: %w", err)
	}
	return &Identity{
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		RoomCode:   row.RoomCode,
	}, nil
}

func (r *identityRepo) Set(ctx context.Context, id Identity) error {
	// Replace-not-update keeps the single-row invariant trivially.
	if _, err := r.client.Identity.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	_, err := r.client.Identity.Create().
		SetPlayerID(id.PlayerID).
		SetPlayerName(id.PlayerName).
		SetRoomCode(id.RoomCode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (r *identityRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Identity.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	return nil
}
