package store

import (
	"context"
	"fmt"

	"github.com/nmoreno/quizrush/ent"
)

// credentialRepo implements CredentialRepo over the single-row Credential
// entity.
type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Token(ctx context.Context) (string, string, error) {
	row, err := r.client.Credential.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", nil
		}
		return "", "", fmt.Errorf("query credential: %w", err)
	}
	return row.Token, row.Email, nil
}

func (r *credentialRepo) Save(ctx context.Context, token, email string) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	_, err := r.client.Credential.Create().
		SetToken(token).
		SetEmail(email).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *credentialRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
