// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/predicate"
)

// FamilyMemberDelete is the builder for deleting a FamilyMember entity.
type FamilyMemberDelete struct {
	config
	hooks    []Hook
	mutation *FamilyMemberMutation
}

// Where appends a list predicates to the FamilyMemberDelete builder.
func (_d *FamilyMemberDelete) Where(ps ...predicate.FamilyMember) *FamilyMemberDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FamilyMemberDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FamilyMemberDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FamilyMemberDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(familymember.Table, sqlgraph.NewFieldSpec(familymember.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FamilyMemberDeleteOne is the builder for deleting a single FamilyMember entity.
type FamilyMemberDeleteOne struct {
	_d *FamilyMemberDelete
}

// Where appends a list predicates to the FamilyMemberDelete builder.
func (_d *FamilyMemberDeleteOne) Where(ps ...predicate.FamilyMember) *FamilyMemberDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FamilyMemberDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{familymember.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FamilyMemberDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
