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

// FamilyMemberUpdate is the builder for updating FamilyMember entities.
type FamilyMemberUpdate struct {
	config
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdate) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FamilyMemberUpdate) SetName(v string) *FamilyMemberUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableName(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *FamilyMemberUpdate) SetRelation(v string) *FamilyMemberUpdate {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableRelation(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// ClearRelation clears the value of the "relation" field.
func (_u *FamilyMemberUpdate) ClearRelation() *FamilyMemberUpdate {
	_u.mutation.ClearRelation()
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyMemberUpdate) SetGender(v string) *FamilyMemberUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableGender(v *string) *FamilyMemberUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *FamilyMemberUpdate) ClearGender() *FamilyMemberUpdate {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *FamilyMemberUpdate) SetBirthDate(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableBirthDate(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *FamilyMemberUpdate) ClearBirthDate() *FamilyMemberUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FamilyMemberUpdate) SetCreatedAt(v time.Time) *FamilyMemberUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FamilyMemberUpdate) SetNillableCreatedAt(v *time.Time) *FamilyMemberUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddReportIDs adds the "reports" edge to the MedicalReport entity by IDs.
func (_u *FamilyMemberUpdate) AddReportIDs(ids ...uuid.UUID) *FamilyMemberUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the MedicalReport entity.
func (_u *FamilyMemberUpdate) AddReports(v ...*MedicalReport) *FamilyMemberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdate) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// ClearReports clears all "reports" edges to the MedicalReport entity.
func (_u *FamilyMemberUpdate) ClearReports() *FamilyMemberUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to MedicalReport entities by IDs.
func (_u *FamilyMemberUpdate) RemoveReportIDs(ids ...uuid.UUID) *FamilyMemberUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to MedicalReport entities.
func (_u *FamilyMemberUpdate) RemoveReports(v ...*MedicalReport) *FamilyMemberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FamilyMemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FamilyMemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeString, value)
	}
	if _u.mutation.RelationCleared() {
		_spec.ClearField(familymember.FieldRelation, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(familymember.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(familymember.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(familymember.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(familymember.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FamilyMemberUpdateOne is the builder for updating a single FamilyMember entity.
type FamilyMemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// SetName sets the "name" field.
func (_u *FamilyMemberUpdateOne) SetName(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableName(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRelation sets the "relation" field.
func (_u *FamilyMemberUpdateOne) SetRelation(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetRelation(v)
	return _u
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableRelation(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetRelation(*v)
	}
	return _u
}

// ClearRelation clears the value of the "relation" field.
func (_u *FamilyMemberUpdateOne) ClearRelation() *FamilyMemberUpdateOne {
	_u.mutation.ClearRelation()
	return _u
}

// SetGender sets the "gender" field.
func (_u *FamilyMemberUpdateOne) SetGender(v string) *FamilyMemberUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableGender(v *string) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// ClearGender clears the value of the "gender" field.
func (_u *FamilyMemberUpdateOne) ClearGender() *FamilyMemberUpdateOne {
	_u.mutation.ClearGender()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *FamilyMemberUpdateOne) SetBirthDate(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableBirthDate(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *FamilyMemberUpdateOne) ClearBirthDate() *FamilyMemberUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FamilyMemberUpdateOne) SetCreatedAt(v time.Time) *FamilyMemberUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FamilyMemberUpdateOne) SetNillableCreatedAt(v *time.Time) *FamilyMemberUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddReportIDs adds the "reports" edge to the MedicalReport entity by IDs.
func (_u *FamilyMemberUpdateOne) AddReportIDs(ids ...uuid.UUID) *FamilyMemberUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the MedicalReport entity.
func (_u *FamilyMemberUpdateOne) AddReports(v ...*MedicalReport) *FamilyMemberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_u *FamilyMemberUpdateOne) Mutation() *FamilyMemberMutation {
	return _u.mutation
}

// ClearReports clears all "reports" edges to the MedicalReport entity.
func (_u *FamilyMemberUpdateOne) ClearReports() *FamilyMemberUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to MedicalReport entities by IDs.
func (_u *FamilyMemberUpdateOne) RemoveReportIDs(ids ...uuid.UUID) *FamilyMemberUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to MedicalReport entities.
func (_u *FamilyMemberUpdateOne) RemoveReports(v ...*MedicalReport) *FamilyMemberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the FamilyMemberUpdate builder.
func (_u *FamilyMemberUpdateOne) Where(ps ...predicate.FamilyMember) *FamilyMemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FamilyMemberUpdateOne) Select(field string, fields ...string) *FamilyMemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FamilyMember entity.
func (_u *FamilyMemberUpdateOne) Save(ctx context.Context) (*FamilyMember, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) SaveX(ctx context.Context) *FamilyMember {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FamilyMemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FamilyMemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FamilyMemberUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FamilyMemberUpdateOne) sqlSave(ctx context.Context) (_node *FamilyMember, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(familymember.Table, familymember.Columns, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FamilyMember.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, familymember.FieldID)
		for _, f := range fields {
			if !familymember.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != familymember.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeString, value)
	}
	if _u.mutation.RelationCleared() {
		_spec.ClearField(familymember.FieldRelation, field.TypeString)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeString, value)
	}
	if _u.mutation.GenderCleared() {
		_spec.ClearField(familymember.FieldGender, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(familymember.FieldBirthDate, field.TypeTime, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(familymember.FieldBirthDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(familymember.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   familymember.ReportsTable,
			Columns: []string{familymember.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FamilyMember{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{familymember.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
