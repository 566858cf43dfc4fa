package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the local play-history log: one row per finished
// play-through. The backend keeps the authoritative stats; this log only
// powers the offline `quizrush stats` summary.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("client_id").
			NotEmpty().
			Unique().
			Comment("Client-generated UUID correlating log lines for one run"),
		field.Int64("session_id").
			Comment("Server-issued session id"),
		field.Int64("player_id"),
		field.Int("score").
			Default(0),
		field.Int("answered").
			Default(0).
			Comment("Questions scored in the session"),
		field.Int("correct").
			Default(0),
		field.Float("final_difficulty").
			Default(0),
		field.String("outcome").
			Comment("gameover or completed"),
		field.Time("played_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("player_id"),
		index.Fields("played_at"),
	}
}
