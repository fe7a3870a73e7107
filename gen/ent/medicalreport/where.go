// Code generated by ent, DO NOT EDIT.

package medicalreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldID, id))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldMemberID, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldFilePath, v))
}

// HospitalName applies equality check predicate on the "hospital_name" field. It's identical to HospitalNameEQ.
func HospitalName(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldHospitalName, v))
}

// ReportDate applies equality check predicate on the "report_date" field. It's identical to ReportDateEQ.
func ReportDate(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldReportDate, v))
}

// ReportType applies equality check predicate on the "report_type" field. It's identical to ReportTypeEQ.
func ReportType(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldReportType, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldCreatedAt, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldMemberID, vs...))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldFilePath, v))
}

// HospitalNameEQ applies the EQ predicate on the "hospital_name" field.
func HospitalNameEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldHospitalName, v))
}

// HospitalNameNEQ applies the NEQ predicate on the "hospital_name" field.
func HospitalNameNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldHospitalName, v))
}

// HospitalNameIn applies the In predicate on the "hospital_name" field.
func HospitalNameIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldHospitalName, vs...))
}

// HospitalNameNotIn applies the NotIn predicate on the "hospital_name" field.
func HospitalNameNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldHospitalName, vs...))
}

// HospitalNameGT applies the GT predicate on the "hospital_name" field.
func HospitalNameGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldHospitalName, v))
}

// HospitalNameGTE applies the GTE predicate on the "hospital_name" field.
func HospitalNameGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldHospitalName, v))
}

// HospitalNameLT applies the LT predicate on the "hospital_name" field.
func HospitalNameLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldHospitalName, v))
}

// HospitalNameLTE applies the LTE predicate on the "hospital_name" field.
func HospitalNameLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldHospitalName, v))
}

// HospitalNameContains applies the Contains predicate on the "hospital_name" field.
func HospitalNameContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldHospitalName, v))
}

// HospitalNameHasPrefix applies the HasPrefix predicate on the "hospital_name" field.
func HospitalNameHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldHospitalName, v))
}

// HospitalNameHasSuffix applies the HasSuffix predicate on the "hospital_name" field.
func HospitalNameHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldHospitalName, v))
}

// HospitalNameIsNil applies the IsNil predicate on the "hospital_name" field.
func HospitalNameIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldHospitalName))
}

// HospitalNameNotNil applies the NotNil predicate on the "hospital_name" field.
func HospitalNameNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldHospitalName))
}

// HospitalNameEqualFold applies the EqualFold predicate on the "hospital_name" field.
func HospitalNameEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldHospitalName, v))
}

// HospitalNameContainsFold applies the ContainsFold predicate on the "hospital_name" field.
func HospitalNameContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldHospitalName, v))
}

// ReportDateEQ applies the EQ predicate on the "report_date" field.
func ReportDateEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldReportDate, v))
}

// ReportDateNEQ applies the NEQ predicate on the "report_date" field.
func ReportDateNEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldReportDate, v))
}

// ReportDateIn applies the In predicate on the "report_date" field.
func ReportDateIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldReportDate, vs...))
}

// ReportDateNotIn applies the NotIn predicate on the "report_date" field.
func ReportDateNotIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldReportDate, vs...))
}

// ReportDateGT applies the GT predicate on the "report_date" field.
func ReportDateGT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldReportDate, v))
}

// ReportDateGTE applies the GTE predicate on the "report_date" field.
func ReportDateGTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldReportDate, v))
}

// ReportDateLT applies the LT predicate on the "report_date" field.
func ReportDateLT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldReportDate, v))
}

// ReportDateLTE applies the LTE predicate on the "report_date" field.
func ReportDateLTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldReportDate, v))
}

// ReportDateIsNil applies the IsNil predicate on the "report_date" field.
func ReportDateIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldReportDate))
}

// ReportDateNotNil applies the NotNil predicate on the "report_date" field.
func ReportDateNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldReportDate))
}

// ReportTypeEQ applies the EQ predicate on the "report_type" field.
func ReportTypeEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldReportType, v))
}

// ReportTypeNEQ applies the NEQ predicate on the "report_type" field.
func ReportTypeNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldReportType, v))
}

// ReportTypeIn applies the In predicate on the "report_type" field.
func ReportTypeIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldReportType, vs...))
}

// ReportTypeNotIn applies the NotIn predicate on the "report_type" field.
func ReportTypeNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldReportType, vs...))
}

// ReportTypeGT applies the GT predicate on the "report_type" field.
func ReportTypeGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldReportType, v))
}

// ReportTypeGTE applies the GTE predicate on the "report_type" field.
func ReportTypeGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldReportType, v))
}

// ReportTypeLT applies the LT predicate on the "report_type" field.
func ReportTypeLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldReportType, v))
}

// ReportTypeLTE applies the LTE predicate on the "report_type" field.
func ReportTypeLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldReportType, v))
}

// ReportTypeContains applies the Contains predicate on the "report_type" field.
func ReportTypeContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldReportType, v))
}

// ReportTypeHasPrefix applies the HasPrefix predicate on the "report_type" field.
func ReportTypeHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldReportType, v))
}

// ReportTypeHasSuffix applies the HasSuffix predicate on the "report_type" field.
func ReportTypeHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldReportType, v))
}

// ReportTypeIsNil applies the IsNil predicate on the "report_type" field.
func ReportTypeIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldReportType))
}

// ReportTypeNotNil applies the NotNil predicate on the "report_type" field.
func ReportTypeNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldReportType))
}

// ReportTypeEqualFold applies the EqualFold predicate on the "report_type" field.
func ReportTypeEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldReportType, v))
}

// ReportTypeContainsFold applies the ContainsFold predicate on the "report_type" field.
func ReportTypeContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldReportType, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMember applies the HasEdge predicate on the "member" edge.
func HasMember() predicate.MedicalReport {
	return predicate.MedicalReport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemberWith applies the HasEdge predicate on the "member" edge with a given conditions (other predicates).
func HasMemberWith(preds ...predicate.FamilyMember) predicate.MedicalReport {
	return predicate.MedicalReport(func(s *sql.Selector) {
		step := newMemberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.NotPredicates(p))
}
