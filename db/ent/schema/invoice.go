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

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/db/ent/schema/utils"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// one row per source email; the unique constraint is the idempotency guard
		field.String("source_email_id").NotEmpty().Unique().Immutable(),
		field.String("raw_email_uri").Optional(),
		field.JSON("attachments", []entity.Attachment{}).Optional(),
		field.Text("raw_text").Optional(),
		field.JSON("extracted", extract.FieldMap{}).Optional(),
		field.JSON("normalized", entity.Normalized{}).Optional(),
		field.Int("vendor_id").Optional().Nillable(),
		field.Int("project_id").Optional().Nillable(),
		field.Strings("tags").Optional(),
		field.String("extractor_version").Default("v1"),
		field.String("reconciliation_status").
			Default(string(constants.StatusNeedsReview)).
			Validate(utils.EnumValidator(constants.ReconciliationStatuses...)),
		field.JSON("extra", entity.Extra{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE vendor (set on auto or manual match)
		edge.From("vendor", Vendor.Type).
			Ref("invoices").
			Field("vendor_id").
			Unique(),
		// OPTIONAL: MANY invoices -> ONE project
		edge.From("project", Project.Type).
			Ref("invoices").
			Field("project_id").
			Unique(),
		// ONE invoice -> MANY audit entries
		edge.To("audits", InvoiceAudit.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("reconciliation_status", "created_at"),
	}
}
