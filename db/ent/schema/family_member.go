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

type FamilyMember struct{ ent.Schema }

func (FamilyMember) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "family_members"},
	}
}

func (FamilyMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("relation").Optional().Nillable(), // e.g. "parent", "spouse", "self"
		field.String("gender").Optional().Nillable(),
		field.Time("birth_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (FamilyMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reports", MedicalReport.Type),
	}
}

func (FamilyMember) Indexes() []ent.Index {
	return []ent.Index{
		// Display name is the resolution key; the unique index is what
		// makes concurrent create-or-get race-free.
		index.Fields("name").Unique(),
	}
}
