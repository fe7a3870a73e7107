// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FamilyMember is the predicate function for familymember builders.
type FamilyMember func(*sql.Selector)

// MedicalReport is the predicate function for medicalreport builders.
type MedicalReport func(*sql.Selector)
