package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Answer is an append-only record of one submitted answer. Resubmitting a
// question inserts a new row; the row with the greatest id is the effective
// answer (UUIDv7 ids are time-ordered). Nothing is ever updated or deleted.
type Answer struct {
	ent.Schema
}

func (Answer) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_instrument_id", uuid.UUID{}).
			Comment("FK → session_instruments.id"),

		field.String("question_key").
			MaxLen(100).
			NotEmpty(),

		field.Enum("format").
			Values("single_select", "multi_select", "free_text"),

		field.JSON("option_keys", []string{}).
			Optional().
			Comment("Selected option keys for select formats"),

		field.Text("free_text").
			Optional().
			Nillable(),

		field.UUID("recorded_by", uuid.UUID{}).
			Comment("Account that submitted the answer"),
	}
}

func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session_instrument", SessionInstrument.Type).
			Ref("answers").
			Unique().
			Required().
			Field("session_instrument_id"),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_instrument_id", "question_key"),
	}
}
