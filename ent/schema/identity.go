package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Identity is the locally persisted player identity: the terminal
// equivalent of the web client's browser storage. At most one row exists;
// it is replaced on registration and deleted on reset.
type Identity struct {
	ent.Schema
}

func (Identity) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("player_id").
			Positive().
			Comment("Server-issued player id"),
		field.String("player_name").
			NotEmpty().
			Comment("Display name shown on the board"),
		field.String("room_code").
			Optional().
			Comment("Optional room the player joined"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
