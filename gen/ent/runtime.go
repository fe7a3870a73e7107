// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/wenjun-lei/family-health-archive/db/ent/schema"
	"github.com/wenjun-lei/family-health-archive/gen/ent/familymember"
	"github.com/wenjun-lei/family-health-archive/gen/ent/medicalreport"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	familymemberFields := schema.FamilyMember{}.Fields()
	_ = familymemberFields
	// familymemberDescName is the schema descriptor for name field.
	familymemberDescName := familymemberFields[1].Descriptor()
	// familymember.NameValidator is a validator for the "name" field. It is called by the builders before save.
	familymember.NameValidator = familymemberDescName.Validators[0].(func(string) error)
	// familymemberDescCreatedAt is the schema descriptor for created_at field.
	familymemberDescCreatedAt := familymemberFields[5].Descriptor()
	// familymember.DefaultCreatedAt holds the default value on creation for the created_at field.
	familymember.DefaultCreatedAt = familymemberDescCreatedAt.Default.(func() time.Time)
	// familymemberDescID is the schema descriptor for id field.
	familymemberDescID := familymemberFields[0].Descriptor()
	// familymember.DefaultID holds the default value on creation for the id field.
	familymember.DefaultID = familymemberDescID.Default.(func() uuid.UUID)
	medicalreportFields := schema.MedicalReport{}.Fields()
	_ = medicalreportFields
	// medicalreportDescFilePath is the schema descriptor for file_path field.
	medicalreportDescFilePath := medicalreportFields[2].Descriptor()
	// medicalreport.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	medicalreport.FilePathValidator = medicalreportDescFilePath.Validators[0].(func(string) error)
	// medicalreportDescSummary is the schema descriptor for summary field.
	medicalreportDescSummary := medicalreportFields[6].Descriptor()
	// medicalreport.SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	medicalreport.SummaryValidator = medicalreportDescSummary.Validators[0].(func(string) error)
	// medicalreportDescCreatedAt is the schema descriptor for created_at field.
	medicalreportDescCreatedAt := medicalreportFields[7].Descriptor()
	// medicalreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalreport.DefaultCreatedAt = medicalreportDescCreatedAt.Default.(func() time.Time)
	// medicalreportDescID is the schema descriptor for id field.
	medicalreportDescID := medicalreportFields[0].Descriptor()
	// medicalreport.DefaultID holds the default value on creation for the id field.
	medicalreport.DefaultID = medicalreportDescID.Default.(func() uuid.UUID)
}
