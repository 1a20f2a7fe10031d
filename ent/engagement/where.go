// Code generated by ent, DO NOT EDIT.

package engagement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldID, id))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveType applies equality check predicate on the "objective_type" field. It's identical to ObjectiveTypeEQ.
func ObjectiveType(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldObjectiveType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldErrorMessage, v))
}

// FinalReport applies equality check predicate on the "final_report" field. It's identical to FinalReportEQ.
func FinalReport(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldFinalReport, v))
}

// ExecutiveSummary applies equality check predicate on the "executive_summary" field. It's identical to ExecutiveSummaryEQ.
func ExecutiveSummary(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldExecutiveSummary, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDeletedAt, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldObjective, v))
}

// ObjectiveTypeEQ applies the EQ predicate on the "objective_type" field.
func ObjectiveTypeEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldObjectiveType, v))
}

// ObjectiveTypeNEQ applies the NEQ predicate on the "objective_type" field.
func ObjectiveTypeNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldObjectiveType, v))
}

// ObjectiveTypeIn applies the In predicate on the "objective_type" field.
func ObjectiveTypeIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldObjectiveType, vs...))
}

// ObjectiveTypeNotIn applies the NotIn predicate on the "objective_type" field.
func ObjectiveTypeNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldObjectiveType, vs...))
}

// ObjectiveTypeGT applies the GT predicate on the "objective_type" field.
func ObjectiveTypeGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldObjectiveType, v))
}

// ObjectiveTypeGTE applies the GTE predicate on the "objective_type" field.
func ObjectiveTypeGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldObjectiveType, v))
}

// ObjectiveTypeLT applies the LT predicate on the "objective_type" field.
func ObjectiveTypeLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldObjectiveType, v))
}

// ObjectiveTypeLTE applies the LTE predicate on the "objective_type" field.
func ObjectiveTypeLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldObjectiveType, v))
}

// ObjectiveTypeContains applies the Contains predicate on the "objective_type" field.
func ObjectiveTypeContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldObjectiveType, v))
}

// ObjectiveTypeHasPrefix applies the HasPrefix predicate on the "objective_type" field.
func ObjectiveTypeHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldObjectiveType, v))
}

// ObjectiveTypeHasSuffix applies the HasSuffix predicate on the "objective_type" field.
func ObjectiveTypeHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldObjectiveType, v))
}

// ObjectiveTypeIsNil applies the IsNil predicate on the "objective_type" field.
func ObjectiveTypeIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldObjectiveType))
}

// ObjectiveTypeNotNil applies the NotNil predicate on the "objective_type" field.
func ObjectiveTypeNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldObjectiveType))
}

// ObjectiveTypeEqualFold applies the EqualFold predicate on the "objective_type" field.
func ObjectiveTypeEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldObjectiveType, v))
}

// ObjectiveTypeContainsFold applies the ContainsFold predicate on the "objective_type" field.
func ObjectiveTypeContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldObjectiveType, v))
}

// ScopeIsNil applies the IsNil predicate on the "scope" field.
func ScopeIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldScope))
}

// ScopeNotNil applies the NotNil predicate on the "scope" field.
func ScopeNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldScope))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FinalReportEQ applies the EQ predicate on the "final_report" field.
func FinalReportEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldFinalReport, v))
}

// FinalReportNEQ applies the NEQ predicate on the "final_report" field.
func FinalReportNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldFinalReport, v))
}

// FinalReportIn applies the In predicate on the "final_report" field.
func FinalReportIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldFinalReport, vs...))
}

// FinalReportNotIn applies the NotIn predicate on the "final_report" field.
func FinalReportNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldFinalReport, vs...))
}

// FinalReportGT applies the GT predicate on the "final_report" field.
func FinalReportGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldFinalReport, v))
}

// FinalReportGTE applies the GTE predicate on the "final_report" field.
func FinalReportGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldFinalReport, v))
}

// FinalReportLT applies the LT predicate on the "final_report" field.
func FinalReportLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldFinalReport, v))
}

// FinalReportLTE applies the LTE predicate on the "final_report" field.
func FinalReportLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldFinalReport, v))
}

// FinalReportContains applies the Contains predicate on the "final_report" field.
func FinalReportContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldFinalReport, v))
}

// FinalReportHasPrefix applies the HasPrefix predicate on the "final_report" field.
func FinalReportHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldFinalReport, v))
}

// FinalReportHasSuffix applies the HasSuffix predicate on the "final_report" field.
func FinalReportHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldFinalReport, v))
}

// FinalReportIsNil applies the IsNil predicate on the "final_report" field.
func FinalReportIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldFinalReport))
}

// FinalReportNotNil applies the NotNil predicate on the "final_report" field.
func FinalReportNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldFinalReport))
}

// FinalReportEqualFold applies the EqualFold predicate on the "final_report" field.
func FinalReportEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldFinalReport, v))
}

// FinalReportContainsFold applies the ContainsFold predicate on the "final_report" field.
func FinalReportContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldFinalReport, v))
}

// ExecutiveSummaryEQ applies the EQ predicate on the "executive_summary" field.
func ExecutiveSummaryEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryNEQ applies the NEQ predicate on the "executive_summary" field.
func ExecutiveSummaryNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIn applies the In predicate on the "executive_summary" field.
func ExecutiveSummaryIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryNotIn applies the NotIn predicate on the "executive_summary" field.
func ExecutiveSummaryNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldExecutiveSummary, vs...))
}

// ExecutiveSummaryGT applies the GT predicate on the "executive_summary" field.
func ExecutiveSummaryGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryGTE applies the GTE predicate on the "executive_summary" field.
func ExecutiveSummaryGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLT applies the LT predicate on the "executive_summary" field.
func ExecutiveSummaryLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldExecutiveSummary, v))
}

// ExecutiveSummaryLTE applies the LTE predicate on the "executive_summary" field.
func ExecutiveSummaryLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContains applies the Contains predicate on the "executive_summary" field.
func ExecutiveSummaryContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasPrefix applies the HasPrefix predicate on the "executive_summary" field.
func ExecutiveSummaryHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryHasSuffix applies the HasSuffix predicate on the "executive_summary" field.
func ExecutiveSummaryHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldExecutiveSummary, v))
}

// ExecutiveSummaryIsNil applies the IsNil predicate on the "executive_summary" field.
func ExecutiveSummaryIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldExecutiveSummary))
}

// ExecutiveSummaryNotNil applies the NotNil predicate on the "executive_summary" field.
func ExecutiveSummaryNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldExecutiveSummary))
}

// ExecutiveSummaryEqualFold applies the EqualFold predicate on the "executive_summary" field.
func ExecutiveSummaryEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldExecutiveSummary, v))
}

// ExecutiveSummaryContainsFold applies the ContainsFold predicate on the "executive_summary" field.
func ExecutiveSummaryContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldExecutiveSummary, v))
}

// StatsIsNil applies the IsNil predicate on the "stats" field.
func StatsIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldStats))
}

// StatsNotNil applies the NotNil predicate on the "stats" field.
func StatsNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldStats))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Engagement {
	return predicate.Engagement(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Engagement {
	return predicate.Engagement(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Engagement {
	return predicate.Engagement(sql.FieldNotNull(FieldDeletedAt))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentMessages applies the HasEdge predicate on the "agent_messages" edge.
func HasAgentMessages() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentMessagesTable, AgentMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentMessagesWith applies the HasEdge predicate on the "agent_messages" edge with a given conditions (other predicates).
func HasAgentMessagesWith(preds ...predicate.AgentMessage) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newAgentMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLocks applies the HasEdge predicate on the "locks" edge.
func HasLocks() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LocksTable, LocksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLocksWith applies the HasEdge predicate on the "locks" edge with a given conditions (other predicates).
func HasLocksWith(preds ...predicate.ResourceLock) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newLocksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFindings applies the HasEdge predicate on the "findings" edge.
func HasFindings() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FindingsTable, FindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFindingsWith applies the HasEdge predicate on the "findings" edge with a given conditions (other predicates).
func HasFindingsWith(preds ...predicate.Finding) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasToolInteractions applies the HasEdge predicate on the "tool_interactions" edge.
func HasToolInteractions() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolInteractionsTable, ToolInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolInteractionsWith applies the HasEdge predicate on the "tool_interactions" edge with a given conditions (other predicates).
func HasToolInteractionsWith(preds ...predicate.ToolInteraction) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newToolInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Engagement {
	return predicate.Engagement(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Engagement) predicate.Engagement {
	return predicate.Engagement(sql.NotPredicates(p))
}
