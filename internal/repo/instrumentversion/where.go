// Code generated by ent, DO NOT EDIT.

package instrumentversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// InstrumentID applies equality check predicate on the "instrument_id" field. It's identical to InstrumentIDEQ.
func InstrumentID(v uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldInstrumentID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldVersion, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldPublishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// InstrumentIDEQ applies the EQ predicate on the "instrument_id" field.
func InstrumentIDEQ(v uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldInstrumentID, v))
}

// InstrumentIDNEQ applies the NEQ predicate on the "instrument_id" field.
func InstrumentIDNEQ(v uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNEQ(FieldInstrumentID, v))
}

// InstrumentIDIn applies the In predicate on the "instrument_id" field.
func InstrumentIDIn(vs ...uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldIn(FieldInstrumentID, vs...))
}

// InstrumentIDNotIn applies the NotIn predicate on the "instrument_id" field.
func InstrumentIDNotIn(vs ...uuid.UUID) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNotIn(FieldInstrumentID, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLTE(FieldVersion, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.FieldLTE(FieldPublishedAt, v))
}

// HasInstrument applies the HasEdge predicate on the "instrument" edge.
func HasInstrument() predicate.InstrumentVersion {
	return predicate.InstrumentVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InstrumentTable, InstrumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstrumentWith applies the HasEdge predicate on the "instrument" edge with a given conditions (other predicates).
func HasInstrumentWith(preds ...predicate.Instrument) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(func(s *sql.Selector) {
		step := newInstrumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InstrumentVersion) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InstrumentVersion) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InstrumentVersion) predicate.InstrumentVersion {
	return predicate.InstrumentVersion(sql.NotPredicates(p))
}
