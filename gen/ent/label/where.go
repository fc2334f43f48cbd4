// Code generated by ent, DO NOT EDIT.

package label

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/labelcheck/labelcheck/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatus, v))
}

// CorrectionDeadline applies equality check predicate on the "correction_deadline" field. It's identical to CorrectionDeadlineEQ.
func CorrectionDeadline(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCorrectionDeadline, v))
}

// BeverageType applies equality check predicate on the "beverage_type" field. It's identical to BeverageTypeEQ.
func BeverageType(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBeverageType, v))
}

// ContainerMl applies equality check predicate on the "container_ml" field. It's identical to ContainerMlEQ.
func ContainerMl(v int) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldContainerMl, v))
}

// StatusReasoning applies equality check predicate on the "status_reasoning" field. It's identical to StatusReasoningEQ.
func StatusReasoning(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatusReasoning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldStatus, v))
}

// CorrectionDeadlineEQ applies the EQ predicate on the "correction_deadline" field.
func CorrectionDeadlineEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineNEQ applies the NEQ predicate on the "correction_deadline" field.
func CorrectionDeadlineNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineIn applies the In predicate on the "correction_deadline" field.
func CorrectionDeadlineIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldCorrectionDeadline, vs...))
}

// CorrectionDeadlineNotIn applies the NotIn predicate on the "correction_deadline" field.
func CorrectionDeadlineNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldCorrectionDeadline, vs...))
}

// CorrectionDeadlineGT applies the GT predicate on the "correction_deadline" field.
func CorrectionDeadlineGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineGTE applies the GTE predicate on the "correction_deadline" field.
func CorrectionDeadlineGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineLT applies the LT predicate on the "correction_deadline" field.
func CorrectionDeadlineLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineLTE applies the LTE predicate on the "correction_deadline" field.
func CorrectionDeadlineLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldCorrectionDeadline, v))
}

// CorrectionDeadlineIsNil applies the IsNil predicate on the "correction_deadline" field.
func CorrectionDeadlineIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldCorrectionDeadline))
}

// CorrectionDeadlineNotNil applies the NotNil predicate on the "correction_deadline" field.
func CorrectionDeadlineNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldCorrectionDeadline))
}

// BeverageTypeEQ applies the EQ predicate on the "beverage_type" field.
func BeverageTypeEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldBeverageType, v))
}

// BeverageTypeNEQ applies the NEQ predicate on the "beverage_type" field.
func BeverageTypeNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldBeverageType, v))
}

// BeverageTypeIn applies the In predicate on the "beverage_type" field.
func BeverageTypeIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldBeverageType, vs...))
}

// BeverageTypeNotIn applies the NotIn predicate on the "beverage_type" field.
func BeverageTypeNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldBeverageType, vs...))
}

// BeverageTypeGT applies the GT predicate on the "beverage_type" field.
func BeverageTypeGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldBeverageType, v))
}

// BeverageTypeGTE applies the GTE predicate on the "beverage_type" field.
func BeverageTypeGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldBeverageType, v))
}

// BeverageTypeLT applies the LT predicate on the "beverage_type" field.
func BeverageTypeLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldBeverageType, v))
}

// BeverageTypeLTE applies the LTE predicate on the "beverage_type" field.
func BeverageTypeLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldBeverageType, v))
}

// BeverageTypeContains applies the Contains predicate on the "beverage_type" field.
func BeverageTypeContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldBeverageType, v))
}

// BeverageTypeHasPrefix applies the HasPrefix predicate on the "beverage_type" field.
func BeverageTypeHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldBeverageType, v))
}

// BeverageTypeHasSuffix applies the HasSuffix predicate on the "beverage_type" field.
func BeverageTypeHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldBeverageType, v))
}

// BeverageTypeEqualFold applies the EqualFold predicate on the "beverage_type" field.
func BeverageTypeEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldBeverageType, v))
}

// BeverageTypeContainsFold applies the ContainsFold predicate on the "beverage_type" field.
func BeverageTypeContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldBeverageType, v))
}

// ContainerMlEQ applies the EQ predicate on the "container_ml" field.
func ContainerMlEQ(v int) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldContainerMl, v))
}

// ContainerMlNEQ applies the NEQ predicate on the "container_ml" field.
func ContainerMlNEQ(v int) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldContainerMl, v))
}

// ContainerMlIn applies the In predicate on the "container_ml" field.
func ContainerMlIn(vs ...int) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldContainerMl, vs...))
}

// ContainerMlNotIn applies the NotIn predicate on the "container_ml" field.
func ContainerMlNotIn(vs ...int) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldContainerMl, vs...))
}

// ContainerMlGT applies the GT predicate on the "container_ml" field.
func ContainerMlGT(v int) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldContainerMl, v))
}

// ContainerMlGTE applies the GTE predicate on the "container_ml" field.
func ContainerMlGTE(v int) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldContainerMl, v))
}

// ContainerMlLT applies the LT predicate on the "container_ml" field.
func ContainerMlLT(v int) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldContainerMl, v))
}

// ContainerMlLTE applies the LTE predicate on the "container_ml" field.
func ContainerMlLTE(v int) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldContainerMl, v))
}

// ApplicationValuesIsNil applies the IsNil predicate on the "application_values" field.
func ApplicationValuesIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldApplicationValues))
}

// ApplicationValuesNotNil applies the NotNil predicate on the "application_values" field.
func ApplicationValuesNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldApplicationValues))
}

// StatusReasoningEQ applies the EQ predicate on the "status_reasoning" field.
func StatusReasoningEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldStatusReasoning, v))
}

// StatusReasoningNEQ applies the NEQ predicate on the "status_reasoning" field.
func StatusReasoningNEQ(v string) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldStatusReasoning, v))
}

// StatusReasoningIn applies the In predicate on the "status_reasoning" field.
func StatusReasoningIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldStatusReasoning, vs...))
}

// StatusReasoningNotIn applies the NotIn predicate on the "status_reasoning" field.
func StatusReasoningNotIn(vs ...string) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldStatusReasoning, vs...))
}

// StatusReasoningGT applies the GT predicate on the "status_reasoning" field.
func StatusReasoningGT(v string) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldStatusReasoning, v))
}

// StatusReasoningGTE applies the GTE predicate on the "status_reasoning" field.
func StatusReasoningGTE(v string) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldStatusReasoning, v))
}

// StatusReasoningLT applies the LT predicate on the "status_reasoning" field.
func StatusReasoningLT(v string) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldStatusReasoning, v))
}

// StatusReasoningLTE applies the LTE predicate on the "status_reasoning" field.
func StatusReasoningLTE(v string) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldStatusReasoning, v))
}

// StatusReasoningContains applies the Contains predicate on the "status_reasoning" field.
func StatusReasoningContains(v string) predicate.Label {
	return predicate.Label(sql.FieldContains(FieldStatusReasoning, v))
}

// StatusReasoningHasPrefix applies the HasPrefix predicate on the "status_reasoning" field.
func StatusReasoningHasPrefix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasPrefix(FieldStatusReasoning, v))
}

// StatusReasoningHasSuffix applies the HasSuffix predicate on the "status_reasoning" field.
func StatusReasoningHasSuffix(v string) predicate.Label {
	return predicate.Label(sql.FieldHasSuffix(FieldStatusReasoning, v))
}

// StatusReasoningIsNil applies the IsNil predicate on the "status_reasoning" field.
func StatusReasoningIsNil() predicate.Label {
	return predicate.Label(sql.FieldIsNull(FieldStatusReasoning))
}

// StatusReasoningNotNil applies the NotNil predicate on the "status_reasoning" field.
func StatusReasoningNotNil() predicate.Label {
	return predicate.Label(sql.FieldNotNull(FieldStatusReasoning))
}

// StatusReasoningEqualFold applies the EqualFold predicate on the "status_reasoning" field.
func StatusReasoningEqualFold(v string) predicate.Label {
	return predicate.Label(sql.FieldEqualFold(FieldStatusReasoning, v))
}

// StatusReasoningContainsFold applies the ContainsFold predicate on the "status_reasoning" field.
func StatusReasoningContainsFold(v string) predicate.Label {
	return predicate.Label(sql.FieldContainsFold(FieldStatusReasoning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Label {
	return predicate.Label(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Label {
	return predicate.Label(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasImages applies the HasEdge predicate on the "images" edge.
func HasImages() predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImagesTable, ImagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImagesWith applies the HasEdge predicate on the "images" edge with a given conditions (other predicates).
func HasImagesWith(preds ...predicate.LabelImage) predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := newImagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.VerificationJob) predicate.Label {
	return predicate.Label(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Label) predicate.Label {
	return predicate.Label(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Label) predicate.Label {
	return predicate.Label(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Label) predicate.Label {
	return predicate.Label(sql.NotPredicates(p))
}
