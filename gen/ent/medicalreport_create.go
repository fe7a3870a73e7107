// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
)

// MedicalReportCreate is the builder for creating a MedicalReport entity.
type MedicalReportCreate struct {
	config
	mutation *MedicalReportMutation
	hooks    []Hook
}

// SetMemberID sets the "member_id" field.
func (_c *MedicalReportCreate) SetMemberID(v uuid.UUID) *MedicalReportCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *MedicalReportCreate) SetFilePath(v string) *MedicalReportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetHospitalName sets the "hospital_name" field.
func (_c *MedicalReportCreate) SetHospitalName(v string) *MedicalReportCreate {
	_c.mutation.SetHospitalName(v)
	return _c
}

// SetNillableHospitalName sets the "hospital_name" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableHospitalName(v *string) *MedicalReportCreate {
	if v != nil {
		_c.SetHospitalName(*v)
	}
	return _c
}

// SetReportDate sets the "report_date" field.
func (_c *MedicalReportCreate) SetReportDate(v time.Time) *MedicalReportCreate {
	_c.mutation.SetReportDate(v)
	return _c
}

// SetNillableReportDate sets the "report_date" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableReportDate(v *time.Time) *MedicalReportCreate {
	if v != nil {
		_c.SetReportDate(*v)
	}
	return _c
}

// SetReportType sets the "report_type" field.
func (_c *MedicalReportCreate) SetReportType(v string) *MedicalReportCreate {
	_c.mutation.SetReportType(v)
	return _c
}

// SetNillableReportType sets the "report_type" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableReportType(v *string) *MedicalReportCreate {
	if v != nil {
		_c.SetReportType(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *MedicalReportCreate) SetSummary(v string) *MedicalReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalReportCreate) SetCreatedAt(v time.Time) *MedicalReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableCreatedAt(v *time.Time) *MedicalReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalReportCreate) SetID(v uuid.UUID) *MedicalReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableID(v *uuid.UUID) *MedicalReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMember sets the "member" edge to the FamilyMember entity.
func (_c *MedicalReportCreate) SetMember(v *FamilyMember) *MedicalReportCreate {
	return _c.SetMemberID(v.ID)
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_c *MedicalReportCreate) Mutation() *MedicalReportMutation {
	return _c.mutation
}

// Save creates the MedicalReport in the database.
func (_c *MedicalReportCreate) Save(ctx context.Context) (*MedicalReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalReportCreate) SaveX(ctx context.Context) *MedicalReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalReportCreate) check() error {
	if _, ok := _c.mutation.MemberID(); !ok {
		return &ValidationError{Name: "member_id", err: errors.New(`ent: missing required field "MedicalReport.member_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "MedicalReport.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := medicalreport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "MedicalReport.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := medicalreport.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "MedicalReport.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MedicalReport.created_at"`)}
	}
	if len(_c.mutation.MemberIDs()) == 0 {
		return &ValidationError{Name: "member", err: errors.New(`ent: missing required edge "MedicalReport.member"`)}
	}
	return nil
}

func (_c *MedicalReportCreate) sqlSave(ctx context.Context) (*MedicalReport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MedicalReportCreate) createSpec() (*MedicalReport, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalreport.Table, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(medicalreport.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.HospitalName(); ok {
		_spec.SetField(medicalreport.FieldHospitalName, field.TypeString, value)
		_node.HospitalName = &value
	}
	if value, ok := _c.mutation.ReportDate(); ok {
		_spec.SetField(medicalreport.FieldReportDate, field.TypeTime, value)
		_node.ReportDate = &value
	}
	if value, ok := _c.mutation.ReportType(); ok {
		_spec.SetField(medicalreport.FieldReportType, field.TypeString, value)
		_node.ReportType = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(medicalreport.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MemberIDs(); len(nodes) > 0 {
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
		_node.MemberID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MedicalReportCreateBulk is the builder for creating many MedicalReport entities in bulk.
type MedicalReportCreateBulk struct {
	config
	err      error
	builders []*MedicalReportCreate
}

// Save creates the MedicalReport entities in the database.
func (_c *MedicalReportCreateBulk) Save(ctx context.Context) ([]*MedicalReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalReportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MedicalReportCreateBulk) SaveX(ctx context.Context) []*MedicalReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
