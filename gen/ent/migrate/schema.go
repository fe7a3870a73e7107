// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FamilyMembersColumns holds the columns for the "family_members" table.
	FamilyMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "relation", Type: field.TypeString, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FamilyMembersTable holds the schema information for the "family_members" table.
	FamilyMembersTable = &schema.Table{
		Name:       "family_members",
		Columns:    FamilyMembersColumns,
		PrimaryKey: []*schema.Column{FamilyMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "familymember_name",
				Unique:  true,
				Columns: []*schema.Column{FamilyMembersColumns[1]},
			},
		},
	}
	// MedicalReportsColumns holds the columns for the "medical_reports" table.
	MedicalReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "hospital_name", Type: field.TypeString, Nullable: true},
		{Name: "report_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "report_type", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "member_id", Type: field.TypeUUID},
	}
	// MedicalReportsTable holds the schema information for the "medical_reports" table.
	MedicalReportsTable = &schema.Table{
		Name:       "medical_reports",
		Columns:    MedicalReportsColumns,
		PrimaryKey: []*schema.Column{MedicalReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "medical_reports_family_members_reports",
				Columns:    []*schema.Column{MedicalReportsColumns[7]},
				RefColumns: []*schema.Column{FamilyMembersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "medicalreport_member_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicalReportsColumns[7], MedicalReportsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FamilyMembersTable,
		MedicalReportsTable,
	}
)

func init() {
	FamilyMembersTable.Annotation = &entsql.Annotation{
		Table: "family_members",
	}
	MedicalReportsTable.ForeignKeys[0].RefTable = FamilyMembersTable
	MedicalReportsTable.Annotation = &entsql.Annotation{
		Table: "medical_reports",
	}
}
