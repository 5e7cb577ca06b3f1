package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/marlowhealth/compass_backend/internal/screening"
)

// Instrument is a platform-wide screening instrument catalog entry
// (e.g. PHQ-9, GAD-7). The actual questions live on InstrumentVersion;
// the instrument row only carries identity and the current-version pointer.
type Instrument struct {
	ent.Schema
}

func (Instrument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Instrument) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			MaxLen(100).
			NotEmpty().
			Unique().
			Comment("Stable machine name, e.g. 'phq-9'"),

		field.String("name").
			MaxLen(255).
			NotEmpty(),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("focus_area").
			MaxLen(100).
			NotEmpty().
			Comment("e.g. 'depression', 'anxiety', 'burnout'"),

		field.UUID("current_version_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → instrument_versions.id (latest published version)"),

		field.Bool("is_active").
			Default(true),
	}
}

func (Instrument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", InstrumentVersion.Type),
	}
}

func (Instrument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("focus_area"),
		index.Fields("is_active"),
	}
}

// InstrumentVersion is one published revision of an instrument. Sessions
// bind to a version id so in-flight work never sees content changes.
// Rows are immutable once published.
type InstrumentVersion struct {
	ent.Schema
}

func (InstrumentVersion) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InstrumentVersion) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("instrument_id", uuid.UUID{}).
			Comment("FK → instruments.id"),

		field.Int("version").
			Positive(),

		field.JSON("content", screening.InstrumentContent{}).
			Comment("Questions, options, scoring rule and threshold table"),

		field.Time("published_at").
			Immutable(),
	}
}

func (InstrumentVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("instrument", Instrument.Type).
			Ref("versions").
			Unique().
			Required().
			Field("instrument_id"),
	}
}

func (InstrumentVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instrument_id", "version").Unique(),
	}
}
