package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential holds the admin JWT between back-office invocations.
// Single row, replaced on login, deleted on logout.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			NotEmpty().
			Sensitive().
			Comment("Admin bearer token as issued by POST /auth/login"),
		field.String("email").
			Optional().
			Comment("Admin email decoded from the token, for display"),
		field.Time("saved_at").
			Default(time.Now),
	}
}
