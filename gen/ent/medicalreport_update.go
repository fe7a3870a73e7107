// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
	"github.com/wenjun-lei/family-health-archive/gen/ent/predicate"
)

// MedicalReportUpdate is the builder for updating MedicalReport entities.
type MedicalReportUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalReportMutation
}

// Where appends a list predicates to the MedicalReportUpdate builder.
func (_u *MedicalReportUpdate) Where(ps ...predicate.MedicalReport) *MedicalReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *MedicalReportUpdate) SetMemberID(v uuid.UUID) *MedicalReportUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableMemberID(v *uuid.UUID) *MedicalReportUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *MedicalReportUpdate) SetFilePath(v string) *MedicalReportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableFilePath(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetHospitalName sets the "hospital_name" field.
func (_u *MedicalReportUpdate) SetHospitalName(v string) *MedicalReportUpdate {
	_u.mutation.SetHospitalName(v)
	return _u
}

// SetNillableHospitalName sets the "hospital_name" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableHospitalName(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetHospitalName(*v)
	}
	return _u
}

// ClearHospitalName clears the value of the "hospital_name" field.
func (_u *MedicalReportUpdate) ClearHospitalName() *MedicalReportUpdate {
	_u.mutation.ClearHospitalName()
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *MedicalReportUpdate) SetReportDate(v time.Time) *MedicalReportUpdate {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableReportDate(v *time.Time) *MedicalReportUpdate {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// ClearReportDate clears the value of the "report_date" field.
func (_u *MedicalReportUpdate) ClearReportDate() *MedicalReportUpdate {
	_u.mutation.ClearReportDate()
	return _u
}

// SetReportType sets the "report_type" field.
func (_u *MedicalReportUpdate) SetReportType(v string) *MedicalReportUpdate {
	_u.mutation.SetReportType(v)
	return _u
}

// SetNillableReportType sets the "report_type" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableReportType(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetReportType(*v)
	}
	return _u
}

// ClearReportType clears the value of the "report_type" field.
func (_u *MedicalReportUpdate) ClearReportType() *MedicalReportUpdate {
	_u.mutation.ClearReportType()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MedicalReportUpdate) SetSummary(v string) *MedicalReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableSummary(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetMember sets the "member" edge to the FamilyMember entity.
func (_u *MedicalReportUpdate) SetMember(v *FamilyMember) *MedicalReportUpdate {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_u *MedicalReportUpdate) Mutation() *MedicalReportMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the FamilyMember entity.
func (_u *MedicalReportUpdate) ClearMember() *MedicalReportUpdate {
	_u.mutation.ClearMember()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalReportUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := medicalreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := medicalreport.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.summary": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MedicalReport.member"`)
	}
	return nil
}

func (_u *MedicalReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalreport.Table, medicalreport.Columns, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(medicalreport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.HospitalName(); ok {
		_spec.SetField(medicalreport.FieldHospitalName, field.TypeString, value)
	}
	if _u.mutation.HospitalNameCleared() {
		_spec.ClearField(medicalreport.FieldHospitalName, field.TypeString)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(medicalreport.FieldReportDate, field.TypeTime, value)
	}
	if _u.mutation.ReportDateCleared() {
		_spec.ClearField(medicalreport.FieldReportDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportType(); ok {
		_spec.SetField(medicalreport.FieldReportType, field.TypeString, value)
	}
	if _u.mutation.ReportTypeCleared() {
		_spec.ClearField(medicalreport.FieldReportType, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(medicalreport.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.MemberCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalreport.MemberTable,
			Columns: []string{medicalreport.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalreport.MemberTable,
			Columns: []string{medicalreport.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalReportUpdateOne is the builder for updating a single MedicalReport entity.
type MedicalReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalReportMutation
}

// SetMemberID sets the "member_id" field.
func (_u *MedicalReportUpdateOne) SetMemberID(v uuid.UUID) *MedicalReportUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableMemberID(v *uuid.UUID) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *MedicalReportUpdateOne) SetFilePath(v string) *MedicalReportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableFilePath(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetHospitalName sets the "hospital_name" field.
func (_u *MedicalReportUpdateOne) SetHospitalName(v string) *MedicalReportUpdateOne {
	_u.mutation.SetHospitalName(v)
	return _u
}

// SetNillableHospitalName sets the "hospital_name" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableHospitalName(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetHospitalName(*v)
	}
	return _u
}

// ClearHospitalName clears the value of the "hospital_name" field.
func (_u *MedicalReportUpdateOne) ClearHospitalName() *MedicalReportUpdateOne {
	_u.mutation.ClearHospitalName()
	return _u
}

// SetReportDate sets the "report_date" field.
func (_u *MedicalReportUpdateOne) SetReportDate(v time.Time) *MedicalReportUpdateOne {
	_u.mutation.SetReportDate(v)
	return _u
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableReportDate(v *time.Time) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetReportDate(*v)
	}
	return _u
}

// ClearReportDate clears the value of the "report_date" field.
func (_u *MedicalReportUpdateOne) ClearReportDate() *MedicalReportUpdateOne {
	_u.mutation.ClearReportDate()
	return _u
}

// SetReportType sets the "report_type" field.
func (_u *MedicalReportUpdateOne) SetReportType(v string) *MedicalReportUpdateOne {
	_u.mutation.SetReportType(v)
	return _u
}

// SetNillableReportType sets the "report_type" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableReportType(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetReportType(*v)
	}
	return _u
}

// ClearReportType clears the value of the "report_type" field.
func (_u *MedicalReportUpdateOne) ClearReportType() *MedicalReportUpdateOne {
	_u.mutation.ClearReportType()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MedicalReportUpdateOne) SetSummary(v string) *MedicalReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableSummary(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetMember sets the "member" edge to the FamilyMember entity.
func (_u *MedicalReportUpdateOne) SetMember(v *FamilyMember) *MedicalReportUpdateOne {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_u *MedicalReportUpdateOne) Mutation() *MedicalReportMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the FamilyMember entity.
func (_u *MedicalReportUpdateOne) ClearMember() *MedicalReportUpdateOne {
	_u.mutation.ClearMember()
	return _u
}

// Where appends a list predicates to the MedicalReportUpdate builder.
func (_u *MedicalReportUpdateOne) Where(ps ...predicate.MedicalReport) *MedicalReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalReportUpdateOne) Select(field string, fields ...string) *MedicalReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalReport entity.
func (_u *MedicalReportUpdateOne) Save(ctx context.Context) (*MedicalReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalReportUpdateOne) SaveX(ctx context.Context) *MedicalReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicalReportUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := medicalreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := medicalreport.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.summary": %w`, err)}
		}
	}
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MedicalReport.member"`)
	}
	return nil
}

func (_u *MedicalReportUpdateOne) sqlSave(ctx context.Context) (_node *MedicalReport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medicalreport.Table, medicalreport.Columns, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MedicalReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalreport.FieldID)
		for _, f := range fields {
			if !medicalreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != medicalreport.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(medicalreport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.HospitalName(); ok {
		_spec.SetField(medicalreport.FieldHospitalName, field.TypeString, value)
	}
	if _u.mutation.HospitalNameCleared() {
		_spec.ClearField(medicalreport.FieldHospitalName, field.TypeString)
	}
	if value, ok := _u.mutation.ReportDate(); ok {
		_spec.SetField(medicalreport.FieldReportDate, field.TypeTime, value)
	}
	if _u.mutation.ReportDateCleared() {
		_spec.ClearField(medicalreport.FieldReportDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportType(); ok {
		_spec.SetField(medicalreport.FieldReportType, field.TypeString, value)
	}
	if _u.mutation.ReportTypeCleared() {
		_spec.ClearField(medicalreport.FieldReportType, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(medicalreport.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.MemberCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalreport.MemberTable,
			Columns: []string{medicalreport.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   medicalreport.MemberTable,
			Columns: []string{medicalreport.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MedicalReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
