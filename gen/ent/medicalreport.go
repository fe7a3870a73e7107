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
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
)

// MedicalReport is the model entity for the MedicalReport schema.
type MedicalReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MemberID holds the value of the "member_id" field.
	MemberID uuid.UUID `json:"member_id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// HospitalName holds the value of the "hospital_name" field.
	HospitalName *string `json:"hospital_name,omitempty"`
	// ReportDate holds the value of the "report_date" field.
	ReportDate *time.Time `json:"report_date,omitempty"`
	// ReportType holds the value of the "report_type" field.
	ReportType *string `json:"report_type,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MedicalReportQuery when eager-loading is set.
	Edges        MedicalReportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MedicalReportEdges holds the relations/edges for other nodes in the graph.
type MedicalReportEdges struct {
	// Member holds the value of the member edge.
	Member *FamilyMember `json:"member,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemberOrErr returns the Member value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MedicalReportEdges) MemberOrErr() (*FamilyMember, error) {
	if e.Member != nil {
		return e.Member, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: familymember.Label}
	}
	return nil, &NotLoadedError{edge: "member"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalreport.FieldFilePath, medicalreport.FieldHospitalName, medicalreport.FieldReportType, medicalreport.FieldSummary:
			values[i] = new(sql.NullString)
		case medicalreport.FieldReportDate, medicalreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case medicalreport.FieldID, medicalreport.FieldMemberID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalReport fields.
func (_m *MedicalReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalreport.FieldMemberID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value != nil {
				_m.MemberID = *value
			}
		case medicalreport.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case medicalreport.FieldHospitalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hospital_name", values[i])
			} else if value.Valid {
				_m.HospitalName = new(string)
				*_m.HospitalName = value.String
			}
		case medicalreport.FieldReportDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field report_date", values[i])
			} else if value.Valid {
				_m.ReportDate = new(time.Time)
				*_m.ReportDate = value.Time
			}
		case medicalreport.FieldReportType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_type", values[i])
			} else if value.Valid {
				_m.ReportType = new(string)
				*_m.ReportType = value.String
			}
		case medicalreport.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case medicalreport.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalReport.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMember queries the "member" edge of the MedicalReport entity.
func (_m *MedicalReport) QueryMember() *FamilyMemberQuery {
	return NewMedicalReportClient(_m.config).QueryMember(_m)
}

// Update returns a builder for updating this MedicalReport.
// Note that you need to call MedicalReport.Unwrap() before calling this method if this MedicalReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalReport) Update() *MedicalReportUpdateOne {
	return NewMedicalReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalReport) Unwrap() *MedicalReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MedicalReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalReport) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("member_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberID))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	if v := _m.HospitalName; v != nil {
		builder.WriteString("hospital_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReportDate; v != nil {
		builder.WriteString("report_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReportType; v != nil {
		builder.WriteString("report_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MedicalReports is a parsable slice of MedicalReport.
type MedicalReports []*MedicalReport
