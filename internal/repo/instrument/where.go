// Code generated by ent, DO NOT EDIT.

package instrument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/marlowhealth/compass_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldUpdatedAt, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldDescription, v))
}

// FocusArea applies equality check predicate on the "focus_area" field. It's identical to FocusAreaEQ.
func FocusArea(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldFocusArea, v))
}

// CurrentVersionID applies equality check predicate on the "current_version_id" field. It's identical to CurrentVersionIDEQ.
func CurrentVersionID(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldCurrentVersionID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Instrument {
	return predicate.Instrument(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Instrument {
	return predicate.Instrument(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContainsFold(FieldDescription, v))
}

// FocusAreaEQ applies the EQ predicate on the "focus_area" field.
func FocusAreaEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldFocusArea, v))
}

// FocusAreaNEQ applies the NEQ predicate on the "focus_area" field.
func FocusAreaNEQ(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldFocusArea, v))
}

// FocusAreaIn applies the In predicate on the "focus_area" field.
func FocusAreaIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldFocusArea, vs...))
}

// FocusAreaNotIn applies the NotIn predicate on the "focus_area" field.
func FocusAreaNotIn(vs ...string) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldFocusArea, vs...))
}

// FocusAreaGT applies the GT predicate on the "focus_area" field.
func FocusAreaGT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldFocusArea, v))
}

// FocusAreaGTE applies the GTE predicate on the "focus_area" field.
func FocusAreaGTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldFocusArea, v))
}

// FocusAreaLT applies the LT predicate on the "focus_area" field.
func FocusAreaLT(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldFocusArea, v))
}

// FocusAreaLTE applies the LTE predicate on the "focus_area" field.
func FocusAreaLTE(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldFocusArea, v))
}

// FocusAreaContains applies the Contains predicate on the "focus_area" field.
func FocusAreaContains(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContains(FieldFocusArea, v))
}

// FocusAreaHasPrefix applies the HasPrefix predicate on the "focus_area" field.
func FocusAreaHasPrefix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasPrefix(FieldFocusArea, v))
}

// FocusAreaHasSuffix applies the HasSuffix predicate on the "focus_area" field.
func FocusAreaHasSuffix(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldHasSuffix(FieldFocusArea, v))
}

// FocusAreaEqualFold applies the EqualFold predicate on the "focus_area" field.
func FocusAreaEqualFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldEqualFold(FieldFocusArea, v))
}

// FocusAreaContainsFold applies the ContainsFold predicate on the "focus_area" field.
func FocusAreaContainsFold(v string) predicate.Instrument {
	return predicate.Instrument(sql.FieldContainsFold(FieldFocusArea, v))
}

// CurrentVersionIDEQ applies the EQ predicate on the "current_version_id" field.
func CurrentVersionIDEQ(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDNEQ applies the NEQ predicate on the "current_version_id" field.
func CurrentVersionIDNEQ(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDIn applies the In predicate on the "current_version_id" field.
func CurrentVersionIDIn(vs ...uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDNotIn applies the NotIn predicate on the "current_version_id" field.
func CurrentVersionIDNotIn(vs ...uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldNotIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDGT applies the GT predicate on the "current_version_id" field.
func CurrentVersionIDGT(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldGT(FieldCurrentVersionID, v))
}

// CurrentVersionIDGTE applies the GTE predicate on the "current_version_id" field.
func CurrentVersionIDGTE(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldGTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDLT applies the LT predicate on the "current_version_id" field.
func CurrentVersionIDLT(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldLT(FieldCurrentVersionID, v))
}

// CurrentVersionIDLTE applies the LTE predicate on the "current_version_id" field.
func CurrentVersionIDLTE(v uuid.UUID) predicate.Instrument {
	return predicate.Instrument(sql.FieldLTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDIsNil applies the IsNil predicate on the "current_version_id" field.
func CurrentVersionIDIsNil() predicate.Instrument {
	return predicate.Instrument(sql.FieldIsNull(FieldCurrentVersionID))
}

// CurrentVersionIDNotNil applies the NotNil predicate on the "current_version_id" field.
func CurrentVersionIDNotNil() predicate.Instrument {
	return predicate.Instrument(sql.FieldNotNull(FieldCurrentVersionID))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Instrument {
	return predicate.Instrument(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Instrument {
	return predicate.Instrument(sql.FieldNEQ(FieldIsActive, v))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Instrument {
	return predicate.Instrument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.InstrumentVersion) predicate.Instrument {
	return predicate.Instrument(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Instrument) predicate.Instrument {
	return predicate.Instrument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Instrument) predicate.Instrument {
	return predicate.Instrument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Instrument) predicate.Instrument {
	return predicate.Instrument(sql.NotPredicates(p))
}
