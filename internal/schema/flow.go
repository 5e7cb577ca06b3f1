package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/screening"
)

// Flow is an ordered multi-instrument screening programme
// (e.g. the standard intake triage flow).
type Flow struct {
	ent.Schema
}

func (Flow) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Flow) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("Stable machine name, e.g. 'standard-triage'"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.UUID("current_version_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → flow_versions.id (latest published version)"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Flow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", FlowVersion.Type),
	}
}

// FlowVersion is one published revision of a flow: the step list plus the
// mandatory flag. Sessions bind to a version id; rows are immutable once
// published.
type FlowVersion struct {
	ent.Schema
}

func (FlowVersion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (FlowVersion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("flow_id", uuid.UUID{}).
			Comment("FK → flows.id"),

		field.Int("version").
			Positive(),

		field.Bool("mandatory").
			Default(false).
			Comment("Mandatory flows refuse SkipSession without forceSkip"),

		field.JSON("steps", []screening.FlowStep{}).
			Comment("Ordered instrument steps with optional skip predicates"),

		field.Time("published_at").
			Immutable(),
	}
}

func (FlowVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flow", Flow.Type).
			Ref("versions").
			Unique().
			Required().
			Field("flow_id"),
	}
}

func (FlowVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_id", "version").Unique(),
	}
}
