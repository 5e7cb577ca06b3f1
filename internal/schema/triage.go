package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TriageGroup is one triage event for a patient order. Groups are
// append-only; the row with the greatest id is the order's current triage.
type TriageGroup struct {
	ent.Schema
}

func (TriageGroup) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TriageGroup) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_order_id", uuid.UUID{}),

		field.UUID("session_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → screening_sessions.id (system-computed groups only)"),

		field.Enum("source").
			Values("SYSTEM_COMPUTED", "CLINICIAN_OVERRIDE"),

		field.Enum("care_category").
			Values("SUBCLINICAL", "COACHING", "PSYCHOTHERAPY", "PSYCHIATRY", "CRISIS_CARE"),

		field.Enum("safety_planning_status").
			Values("NOT_INDICATED", "INDICATED").
			Default("NOT_INDICATED"),

		field.Text("override_reason").
			Optional().
			Nillable().
			Comment("Required for clinician overrides"),

		field.UUID("created_by", uuid.UUID{}).
			Comment("Account that produced the group (system actor or clinician)"),
	}
}

func (TriageGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("triages", Triage.Type),
	}
}

func (TriageGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_order_id"),
		index.Fields("session_id"),
	}
}

// Triage is a per-focus-area entry within a TriageGroup.
type Triage struct {
	ent.Schema
}

func (Triage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Triage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("triage_group_id", uuid.UUID{}),

		field.String("focus_area").
			MaxLen(100).
			NotEmpty(),

		field.Enum("care_category").
			Values("SUBCLINICAL", "COACHING", "PSYCHOTHERAPY", "PSYCHIATRY", "CRISIS_CARE"),

		field.Text("reason").
			Optional().
			Nillable(),
	}
}

func (Triage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", TriageGroup.Type).
			Ref("triages").
			Unique().
			Required().
			Field("triage_group_id"),
	}
}

func (Triage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("triage_group_id"),
	}
}
