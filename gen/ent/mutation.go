// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
	"github.com/wenjun-lei/family-health-archive/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFamilyMember  = "FamilyMember"
	TypeMedicalReport = "MedicalReport"
)

// FamilyMemberMutation represents an operation that mutates the FamilyMember nodes in the graph.
type FamilyMemberMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	relation       *string
	gender         *string
	birth_date     *time.Time
	created_at     *time.Time
	clearedFields  map[string]struct{}
	reports        map[uuid.UUID]struct{}
	removedreports map[uuid.UUID]struct{}
	clearedreports bool
	done           bool
	oldValue       func(context.Context) (*FamilyMember, error)
	predicates     []predicate.FamilyMember
}

var _ ent.Mutation = (*FamilyMemberMutation)(nil)

// familymemberOption allows management of the mutation configuration using functional options.
type familymemberOption func(*FamilyMemberMutation)

// newFamilyMemberMutation creates new mutation for the FamilyMember entity.
func newFamilyMemberMutation(c config, op Op, opts ...familymemberOption) *FamilyMemberMutation {
	m := &FamilyMemberMutation{
		config:        c,
		op:            op,
		typ:           TypeFamilyMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFamilyMemberID sets the ID field of the mutation.
func withFamilyMemberID(id uuid.UUID) familymemberOption {
	return func(m *FamilyMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *FamilyMember
		)
		m.oldValue = func(ctx context.Context) (*FamilyMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FamilyMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFamilyMember sets the old FamilyMember of the mutation.
func withFamilyMember(node *FamilyMember) familymemberOption {
	return func(m *FamilyMemberMutation) {
		m.oldValue = func(context.Context) (*FamilyMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FamilyMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FamilyMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FamilyMember entities.
func (m *FamilyMemberMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FamilyMemberMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FamilyMemberMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FamilyMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FamilyMemberMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FamilyMemberMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FamilyMemberMutation) ResetName() {
	m.name = nil
}

// SetRelation sets the "relation" field.
func (m *FamilyMemberMutation) SetRelation(s string) {
	m.relation = &s
}

// Relation returns the value of the "relation" field in the mutation.
func (m *FamilyMemberMutation) Relation() (r string, exists bool) {
	v := m.relation
	if v == nil {
		return
	}
	return *v, true
}

// OldRelation returns the old "relation" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldRelation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelation: %w", err)
	}
	return oldValue.Relation, nil
}

// ClearRelation clears the value of the "relation" field.
func (m *FamilyMemberMutation) ClearRelation() {
	m.relation = nil
	m.clearedFields[familymember.FieldRelation] = struct{}{}
}

// RelationCleared returns if the "relation" field was cleared in this mutation.
func (m *FamilyMemberMutation) RelationCleared() bool {
	_, ok := m.clearedFields[familymember.FieldRelation]
	return ok
}

// ResetRelation resets all changes to the "relation" field.
func (m *FamilyMemberMutation) ResetRelation() {
	m.relation = nil
	delete(m.clearedFields, familymember.FieldRelation)
}

// SetGender sets the "gender" field.
func (m *FamilyMemberMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *FamilyMemberMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldGender(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ClearGender clears the value of the "gender" field.
func (m *FamilyMemberMutation) ClearGender() {
	m.gender = nil
	m.clearedFields[familymember.FieldGender] = struct{}{}
}

// GenderCleared returns if the "gender" field was cleared in this mutation.
func (m *FamilyMemberMutation) GenderCleared() bool {
	_, ok := m.clearedFields[familymember.FieldGender]
	return ok
}

// ResetGender resets all changes to the "gender" field.
func (m *FamilyMemberMutation) ResetGender() {
	m.gender = nil
	delete(m.clearedFields, familymember.FieldGender)
}

// SetBirthDate sets the "birth_date" field.
func (m *FamilyMemberMutation) SetBirthDate(t time.Time) {
	m.birth_date = &t
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *FamilyMemberMutation) BirthDate() (r time.Time, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldBirthDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *FamilyMemberMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[familymember.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *FamilyMemberMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[familymember.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *FamilyMemberMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, familymember.FieldBirthDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *FamilyMemberMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FamilyMemberMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FamilyMember entity.
// If the FamilyMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FamilyMemberMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FamilyMemberMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddReportIDs adds the "reports" edge to the MedicalReport entity by ids.
func (m *FamilyMemberMutation) AddReportIDs(ids ...uuid.UUID) {
	if m.reports == nil {
		m.reports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the MedicalReport entity.
func (m *FamilyMemberMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the MedicalReport entity was cleared.
func (m *FamilyMemberMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the MedicalReport entity by IDs.
func (m *FamilyMemberMutation) RemoveReportIDs(ids ...uuid.UUID) {
	if m.removedreports == nil {
		m.removedreports = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the MedicalReport entity.
func (m *FamilyMemberMutation) RemovedReportsIDs() (ids []uuid.UUID) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *FamilyMemberMutation) ReportsIDs() (ids []uuid.UUID) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *FamilyMemberMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the FamilyMemberMutation builder.
func (m *FamilyMemberMutation) Where(ps ...predicate.FamilyMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FamilyMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FamilyMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FamilyMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FamilyMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FamilyMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FamilyMember).
func (m *FamilyMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FamilyMemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, familymember.FieldName)
	}
	if m.relation != nil {
		fields = append(fields, familymember.FieldRelation)
	}
	if m.gender != nil {
		fields = append(fields, familymember.FieldGender)
	}
	if m.birth_date != nil {
		fields = append(fields, familymember.FieldBirthDate)
	}
	if m.created_at != nil {
		fields = append(fields, familymember.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FamilyMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case familymember.FieldName:
		return m.Name()
	case familymember.FieldRelation:
		return m.Relation()
	case familymember.FieldGender:
		return m.Gender()
	case familymember.FieldBirthDate:
		return m.BirthDate()
	case familymember.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FamilyMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case familymember.FieldName:
		return m.OldName(ctx)
	case familymember.FieldRelation:
		return m.OldRelation(ctx)
	case familymember.FieldGender:
		return m.OldGender(ctx)
	case familymember.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case familymember.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FamilyMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case familymember.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case familymember.FieldRelation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelation(v)
		return nil
	case familymember.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case familymember.FieldBirthDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case familymember.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FamilyMemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FamilyMemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FamilyMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FamilyMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FamilyMemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(familymember.FieldRelation) {
		fields = append(fields, familymember.FieldRelation)
	}
	if m.FieldCleared(familymember.FieldGender) {
		fields = append(fields, familymember.FieldGender)
	}
	if m.FieldCleared(familymember.FieldBirthDate) {
		fields = append(fields, familymember.FieldBirthDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FamilyMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ClearField(name string) error {
	switch name {
	case familymember.FieldRelation:
		m.ClearRelation()
		return nil
	case familymember.FieldGender:
		m.ClearGender()
		return nil
	case familymember.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FamilyMemberMutation) ResetField(name string) error {
	switch name {
	case familymember.FieldName:
		m.ResetName()
		return nil
	case familymember.FieldRelation:
		m.ResetRelation()
		return nil
	case familymember.FieldGender:
		m.ResetGender()
		return nil
	case familymember.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case familymember.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FamilyMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.reports != nil {
		edges = append(edges, familymember.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FamilyMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case familymember.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FamilyMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreports != nil {
		edges = append(edges, familymember.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FamilyMemberMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case familymember.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FamilyMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreports {
		edges = append(edges, familymember.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FamilyMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case familymember.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FamilyMemberMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FamilyMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FamilyMemberMutation) ResetEdge(name string) error {
	switch name {
	case familymember.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown FamilyMember edge %s", name)
}

// MedicalReportMutation represents an operation that mutates the MedicalReport nodes in the graph.
type MedicalReportMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	file_path     *string
	hospital_name *string
	report_date   *time.Time
	report_type   *string
	summary       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	member        *uuid.UUID
	clearedmember bool
	done          bool
	oldValue      func(context.Context) (*MedicalReport, error)
	predicates    []predicate.MedicalReport
}

var _ ent.Mutation = (*MedicalReportMutation)(nil)

// medicalreportOption allows management of the mutation configuration using functional options.
type medicalreportOption func(*MedicalReportMutation)

// newMedicalReportMutation creates new mutation for the MedicalReport entity.
func newMedicalReportMutation(c config, op Op, opts ...medicalreportOption) *MedicalReportMutation {
	m := &MedicalReportMutation{
		config:        c,
		op:            op,
		typ:           TypeMedicalReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMedicalReportID sets the ID field of the mutation.
func withMedicalReportID(id uuid.UUID) medicalreportOption {
	return func(m *MedicalReportMutation) {
		var (
			err   error
			once  sync.Once
			value *MedicalReport
		)
		m.oldValue = func(ctx context.Context) (*MedicalReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MedicalReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMedicalReport sets the old MedicalReport of the mutation.
func withMedicalReport(node *MedicalReport) medicalreportOption {
	return func(m *MedicalReportMutation) {
		m.oldValue = func(context.Context) (*MedicalReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MedicalReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MedicalReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MedicalReport entities.
func (m *MedicalReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MedicalReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MedicalReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MedicalReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemberID sets the "member_id" field.
func (m *MedicalReportMutation) SetMemberID(u uuid.UUID) {
	m.member = &u
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *MedicalReportMutation) MemberID() (r uuid.UUID, exists bool) {
	v := m.member
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldMemberID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *MedicalReportMutation) ResetMemberID() {
	m.member = nil
}

// SetFilePath sets the "file_path" field.
func (m *MedicalReportMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *MedicalReportMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *MedicalReportMutation) ResetFilePath() {
	m.file_path = nil
}

// SetHospitalName sets the "hospital_name" field.
func (m *MedicalReportMutation) SetHospitalName(s string) {
	m.hospital_name = &s
}

// HospitalName returns the value of the "hospital_name" field in the mutation.
func (m *MedicalReportMutation) HospitalName() (r string, exists bool) {
	v := m.hospital_name
	if v == nil {
		return
	}
	return *v, true
}

// OldHospitalName returns the old "hospital_name" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldHospitalName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHospitalName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHospitalName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHospitalName: %w", err)
	}
	return oldValue.HospitalName, nil
}

// ClearHospitalName clears the value of the "hospital_name" field.
func (m *MedicalReportMutation) ClearHospitalName() {
	m.hospital_name = nil
	m.clearedFields[medicalreport.FieldHospitalName] = struct{}{}
}

// HospitalNameCleared returns if the "hospital_name" field was cleared in this mutation.
func (m *MedicalReportMutation) HospitalNameCleared() bool {
	_, ok := m.clearedFields[medicalreport.FieldHospitalName]
	return ok
}

// ResetHospitalName resets all changes to the "hospital_name" field.
func (m *MedicalReportMutation) ResetHospitalName() {
	m.hospital_name = nil
	delete(m.clearedFields, medicalreport.FieldHospitalName)
}

// SetReportDate sets the "report_date" field.
func (m *MedicalReportMutation) SetReportDate(t time.Time) {
	m.report_date = &t
}

// ReportDate returns the value of the "report_date" field in the mutation.
func (m *MedicalReportMutation) ReportDate() (r time.Time, exists bool) {
	v := m.report_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReportDate returns the old "report_date" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldReportDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportDate: %w", err)
	}
	return oldValue.ReportDate, nil
}

// ClearReportDate clears the value of the "report_date" field.
func (m *MedicalReportMutation) ClearReportDate() {
	m.report_date = nil
	m.clearedFields[medicalreport.FieldReportDate] = struct{}{}
}

// ReportDateCleared returns if the "report_date" field was cleared in this mutation.
func (m *MedicalReportMutation) ReportDateCleared() bool {
	_, ok := m.clearedFields[medicalreport.FieldReportDate]
	return ok
}

// ResetReportDate resets all changes to the "report_date" field.
func (m *MedicalReportMutation) ResetReportDate() {
	m.report_date = nil
	delete(m.clearedFields, medicalreport.FieldReportDate)
}

// SetReportType sets the "report_type" field.
func (m *MedicalReportMutation) SetReportType(s string) {
	m.report_type = &s
}

// ReportType returns the value of the "report_type" field in the mutation.
func (m *MedicalReportMutation) ReportType() (r string, exists bool) {
	v := m.report_type
	if v == nil {
		return
	}
	return *v, true
}

// OldReportType returns the old "report_type" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldReportType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportType: %w", err)
	}
	return oldValue.ReportType, nil
}

// ClearReportType clears the value of the "report_type" field.
func (m *MedicalReportMutation) ClearReportType() {
	m.report_type = nil
	m.clearedFields[medicalreport.FieldReportType] = struct{}{}
}

// ReportTypeCleared returns if the "report_type" field was cleared in this mutation.
func (m *MedicalReportMutation) ReportTypeCleared() bool {
	_, ok := m.clearedFields[medicalreport.FieldReportType]
	return ok
}

// ResetReportType resets all changes to the "report_type" field.
func (m *MedicalReportMutation) ResetReportType() {
	m.report_type = nil
	delete(m.clearedFields, medicalreport.FieldReportType)
}

// SetSummary sets the "summary" field.
func (m *MedicalReportMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *MedicalReportMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *MedicalReportMutation) ResetSummary() {
	m.summary = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MedicalReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MedicalReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MedicalReport entity.
// If the MedicalReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MedicalReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MedicalReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearMember clears the "member" edge to the FamilyMember entity.
func (m *MedicalReportMutation) ClearMember() {
	m.clearedmember = true
	m.clearedFields[medicalreport.FieldMemberID] = struct{}{}
}

// MemberCleared reports if the "member" edge to the FamilyMember entity was cleared.
func (m *MedicalReportMutation) MemberCleared() bool {
	return m.clearedmember
}

// MemberIDs returns the "member" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MemberID instead. It exists only for internal usage by the builders.
func (m *MedicalReportMutation) MemberIDs() (ids []uuid.UUID) {
	if id := m.member; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMember resets all changes to the "member" edge.
func (m *MedicalReportMutation) ResetMember() {
	m.member = nil
	m.clearedmember = false
}

// Where appends a list predicates to the MedicalReportMutation builder.
func (m *MedicalReportMutation) Where(ps ...predicate.MedicalReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MedicalReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MedicalReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MedicalReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MedicalReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MedicalReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MedicalReport).
func (m *MedicalReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MedicalReportMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.member != nil {
		fields = append(fields, medicalreport.FieldMemberID)
	}
	if m.file_path != nil {
		fields = append(fields, medicalreport.FieldFilePath)
	}
	if m.hospital_name != nil {
		fields = append(fields, medicalreport.FieldHospitalName)
	}
	if m.report_date != nil {
		fields = append(fields, medicalreport.FieldReportDate)
	}
	if m.report_type != nil {
		fields = append(fields, medicalreport.FieldReportType)
	}
	if m.summary != nil {
		fields = append(fields, medicalreport.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, medicalreport.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MedicalReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case medicalreport.FieldMemberID:
		return m.MemberID()
	case medicalreport.FieldFilePath:
		return m.FilePath()
	case medicalreport.FieldHospitalName:
		return m.HospitalName()
	case medicalreport.FieldReportDate:
		return m.ReportDate()
	case medicalreport.FieldReportType:
		return m.ReportType()
	case medicalreport.FieldSummary:
		return m.Summary()
	case medicalreport.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MedicalReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case medicalreport.FieldMemberID:
		return m.OldMemberID(ctx)
	case medicalreport.FieldFilePath:
		return m.OldFilePath(ctx)
	case medicalreport.FieldHospitalName:
		return m.OldHospitalName(ctx)
	case medicalreport.FieldReportDate:
		return m.OldReportDate(ctx)
	case medicalreport.FieldReportType:
		return m.OldReportType(ctx)
	case medicalreport.FieldSummary:
		return m.OldSummary(ctx)
	case medicalreport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MedicalReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case medicalreport.FieldMemberID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case medicalreport.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case medicalreport.FieldHospitalName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHospitalName(v)
		return nil
	case medicalreport.FieldReportDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportDate(v)
		return nil
	case medicalreport.FieldReportType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportType(v)
		return nil
	case medicalreport.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case medicalreport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MedicalReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MedicalReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MedicalReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MedicalReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MedicalReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MedicalReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(medicalreport.FieldHospitalName) {
		fields = append(fields, medicalreport.FieldHospitalName)
	}
	if m.FieldCleared(medicalreport.FieldReportDate) {
		fields = append(fields, medicalreport.FieldReportDate)
	}
	if m.FieldCleared(medicalreport.FieldReportType) {
		fields = append(fields, medicalreport.FieldReportType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MedicalReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MedicalReportMutation) ClearField(name string) error {
	switch name {
	case medicalreport.FieldHospitalName:
		m.ClearHospitalName()
		return nil
	case medicalreport.FieldReportDate:
		m.ClearReportDate()
		return nil
	case medicalreport.FieldReportType:
		m.ClearReportType()
		return nil
	}
	return fmt.Errorf("unknown MedicalReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MedicalReportMutation) ResetField(name string) error {
	switch name {
	case medicalreport.FieldMemberID:
		m.ResetMemberID()
		return nil
	case medicalreport.FieldFilePath:
		m.ResetFilePath()
		return nil
	case medicalreport.FieldHospitalName:
		m.ResetHospitalName()
		return nil
	case medicalreport.FieldReportDate:
		m.ResetReportDate()
		return nil
	case medicalreport.FieldReportType:
		m.ResetReportType()
		return nil
	case medicalreport.FieldSummary:
		m.ResetSummary()
		return nil
	case medicalreport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MedicalReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MedicalReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.member != nil {
		edges = append(edges, medicalreport.EdgeMember)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MedicalReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case medicalreport.EdgeMember:
		if id := m.member; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MedicalReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MedicalReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MedicalReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmember {
		edges = append(edges, medicalreport.EdgeMember)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MedicalReportMutation) EdgeCleared(name string) bool {
	switch name {
	case medicalreport.EdgeMember:
		return m.clearedmember
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MedicalReportMutation) ClearEdge(name string) error {
	switch name {
	case medicalreport.EdgeMember:
		m.ClearMember()
		return nil
	}
	return fmt.Errorf("unknown MedicalReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MedicalReportMutation) ResetEdge(name string) error {
	switch name {
	case medicalreport.EdgeMember:
		m.ResetMember()
		return nil
	}
	return fmt.Errorf("unknown MedicalReport edge %s", name)
}
