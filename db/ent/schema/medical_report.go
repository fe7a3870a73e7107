package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type MedicalReport struct{ ent.Schema }

func (MedicalReport) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "medical_reports"},
	}
}

func (MedicalReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("member_id", uuid.UUID{}),
		field.String("file_path").NotEmpty(),
		field.String("hospital_name").Optional().Nillable(),
		field.Time("report_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("report_type").Optional().Nillable(), // e.g. "血常规", "CT"
		field.Text("summary").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (MedicalReport) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY reports -> ONE member (FK: medical_reports.member_id)
		edge.From("member", FamilyMember.Type).
			Ref("reports").
			Field("member_id").
			Required().
			Unique(),
	}
}

func (MedicalReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "created_at"),
	}
}
