// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
)

// FamilyMember is the model entity for the FamilyMember schema.
type FamilyMember struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Relation holds the value of the "relation" field.
	Relation *string `json:"relation,omitempty"`
	// Gender holds the value of the "gender" field.
	Gender *string `json:"gender,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate *time.Time `json:"birth_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FamilyMemberQuery when eager-loading is set.
	Edges        FamilyMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FamilyMemberEdges holds the relations/edges for other nodes in the graph.
type FamilyMemberEdges struct {
	// Reports holds the value of the reports edge.
	Reports []*MedicalReport `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e FamilyMemberEdges) ReportsOrErr() ([]*MedicalReport, error) {
	if e.loadedTypes[0] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FamilyMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case familymember.FieldName, familymember.FieldRelation, familymember.FieldGender:
			values[i] = new(sql.NullString)
		case familymember.FieldBirthDate, familymember.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case familymember.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FamilyMember fields.
func (_m *FamilyMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case familymember.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case familymember.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case familymember.FieldRelation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation", values[i])
			} else if value.Valid {
				_m.Relation = new(string)
				*_m.Relation = value.String
			}
		case familymember.FieldGender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gender", values[i])
			} else if value.Valid {
				_m.Gender = new(string)
				*_m.Gender = value.String
			}
		case familymember.FieldBirthDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = new(time.Time)
				*_m.BirthDate = value.Time
			}
		case familymember.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FamilyMember.
// This includes values selected through modifiers, order, etc.
func (_m *FamilyMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReports queries the "reports" edge of the FamilyMember entity.
func (_m *FamilyMember) QueryReports() *MedicalReportQuery {
	return NewFamilyMemberClient(_m.config).QueryReports(_m)
}

// Update returns a builder for updating this FamilyMember.
// Note that you need to call FamilyMember.Unwrap() before calling this method if this FamilyMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FamilyMember) Update() *FamilyMemberUpdateOne {
	return NewFamilyMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FamilyMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FamilyMember) Unwrap() *FamilyMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FamilyMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FamilyMember) String() string {
	var builder strings.Builder
	builder.WriteString("FamilyMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Relation; v != nil {
		builder.WriteString("relation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Gender; v != nil {
		builder.WriteString("gender=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BirthDate; v != nil {
		builder.WriteString("birth_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FamilyMembers is a parsable slice of FamilyMember.
type FamilyMembers []*FamilyMember
