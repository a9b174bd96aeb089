package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InvoiceAudit records every reconciliation change so review decisions can be
// traced back to who or what made them.
type InvoiceAudit struct{ ent.Schema }

func (InvoiceAudit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_audits"},
	}
}

func (InvoiceAudit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}).Immutable(),
		field.String("actor").NotEmpty(), // "engine" or a reviewer identity
		field.String("field_name").NotEmpty(),
		field.String("old_value").Optional(),
		field.String("new_value").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (InvoiceAudit) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY audit entries -> ONE invoice
		edge.From("invoice", Invoice.Type).
			Ref("audits").
			Field("invoice_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (InvoiceAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "created_at"),
	}
}
