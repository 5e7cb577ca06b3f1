package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/screening"
)

// ScreeningSession is one assessment attempt: a subject working through a
// bound flow version. Mutated only through the session service; immutable
// once completed or skipped.
type ScreeningSession struct {
	ent.Schema
}

func (ScreeningSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ScreeningSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("subject_id", uuid.UUID{}).
			Comment("Account being screened (identity service id)"),

		field.UUID("initiator_id", uuid.UUID{}).
			Comment("Account that started the session (may equal subject_id)"),

		field.UUID("flow_version_id", uuid.UUID{}).
			Comment("FK → flow_versions.id (pinned at creation)"),

		field.Enum("context_kind").
			Values("patient_order", "group_session", "course_unit", "standalone").
			Default("standalone"),

		field.UUID("patient_order_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("group_session_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("course_unit_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Enum("status").
			Values("in_progress", "completed", "skipped").
			Default("in_progress"),

		field.String("skip_reason").
			Optional().
			Nillable().
			MaxLen(255),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.JSON("evidence", &screening.EvidenceScores{}).
			Optional().
			Comment("Aggregated evidence, persisted at completion"),

		field.JSON("destination", &screening.Destination{}).
			Optional().
			Comment("Routed destination, persisted at completion"),

		field.Bool("crisis").
			Default(false),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ScreeningSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instruments", SessionInstrument.Type),
	}
}

func (ScreeningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("patient_order_id"),
		index.Fields("status", "updated_at"),
	}
}

// SessionInstrument is one flow step materialised for a session: the
// subject's progress through a single instrument version.
type SessionInstrument struct {
	ent.Schema
}

func (SessionInstrument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SessionInstrument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("session_id", uuid.UUID{}).
			Comment("FK → screening_sessions.id"),

		field.UUID("instrument_version_id", uuid.UUID{}).
			Comment("FK → instrument_versions.id"),

		field.Int("position").
			NonNegative().
			Comment("Zero-based step index within the flow"),

		field.Bool("completed").
			Default(false),

		field.Bool("skipped").
			Default(false).
			Comment("Step skipped by its flow predicate"),

		field.Bool("below_scoring_threshold").
			Default(false),

		field.Bool("crisis").
			Default(false),

		field.JSON("score", &screening.Score{}).
			Optional().
			Comment("Computed score, set when the instrument completes"),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (SessionInstrument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ScreeningSession.Type).
			Ref("instruments").
			Unique().
			Required().
			Field("session_id"),
		edge.To("answers", Answer.Type),
	}
}

func (SessionInstrument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position").Unique(),
	}
}
