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

// FamilyMemberCreate is the builder for creating a FamilyMember entity.
type FamilyMemberCreate struct {
	config
	mutation *FamilyMemberMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FamilyMemberCreate) SetName(v string) *FamilyMemberCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRelation sets the "relation" field.
func (_c *FamilyMemberCreate) SetRelation(v string) *FamilyMemberCreate {
	_c.mutation.SetRelation(v)
	return _c
}

// SetNillableRelation sets the "relation" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableRelation(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetRelation(*v)
	}
	return _c
}

// SetGender sets the "gender" field.
func (_c *FamilyMemberCreate) SetGender(v string) *FamilyMemberCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableGender(v *string) *FamilyMemberCreate {
	if v != nil {
		_c.SetGender(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *FamilyMemberCreate) SetBirthDate(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableBirthDate(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FamilyMemberCreate) SetCreatedAt(v time.Time) *FamilyMemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableCreatedAt(v *time.Time) *FamilyMemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FamilyMemberCreate) SetID(v uuid.UUID) *FamilyMemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FamilyMemberCreate) SetNillableID(v *uuid.UUID) *FamilyMemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddReportIDs adds the "reports" edge to the MedicalReport entity by IDs.
func (_c *FamilyMemberCreate) AddReportIDs(ids ...uuid.UUID) *FamilyMemberCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the MedicalReport entity.
func (_c *FamilyMemberCreate) AddReports(v ...*MedicalReport) *FamilyMemberCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// Mutation returns the FamilyMemberMutation object of the builder.
func (_c *FamilyMemberCreate) Mutation() *FamilyMemberMutation {
	return _c.mutation
}

// Save creates the FamilyMember in the database.
func (_c *FamilyMemberCreate) Save(ctx context.Context) (*FamilyMember, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FamilyMemberCreate) SaveX(ctx context.Context) *FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FamilyMemberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := familymember.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := familymember.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FamilyMemberCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "FamilyMember.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := familymember.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "FamilyMember.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FamilyMember.created_at"`)}
	}
	return nil
}

func (_c *FamilyMemberCreate) sqlSave(ctx context.Context) (*FamilyMember, error) {
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

func (_c *FamilyMemberCreate) createSpec() (*FamilyMember, *sqlgraph.CreateSpec) {
	var (
		_node = &FamilyMember{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(familymember.Table, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(familymember.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Relation(); ok {
		_spec.SetField(familymember.FieldRelation, field.TypeString, value)
		_node.Relation = &value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(familymember.FieldGender, field.TypeString, value)
		_node.Gender = &value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(familymember.FieldBirthDate, field.TypeTime, value)
		_node.BirthDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(familymember.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FamilyMemberCreateBulk is the builder for creating many FamilyMember entities in bulk.
type FamilyMemberCreateBulk struct {
	config
	err      error
	builders []*FamilyMemberCreate
}

// Save creates the FamilyMember entities in the database.
func (_c *FamilyMemberCreateBulk) Save(ctx context.Context) ([]*FamilyMember, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FamilyMember, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FamilyMemberMutation)
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
func (_c *FamilyMemberCreateBulk) SaveX(ctx context.Context) []*FamilyMember {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FamilyMemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FamilyMemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
