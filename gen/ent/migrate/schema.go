// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_email_id", Type: field.TypeString, Unique: true},
		{Name: "raw_email_uri", Type: field.TypeString, Nullable: true},
		{Name: "attachments", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted", Type: field.TypeJSON, Nullable: true},
		{Name: "normalized", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "extractor_version", Type: field.TypeString, Default: "v1"},
		{Name: "reconciliation_status", Type: field.TypeString, Default: "needs_review"},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt, Nullable: true},
		{Name: "vendor_id", Type: field.TypeInt, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_projects_invoices",
				Columns:    []*schema.Column{InvoicesColumns[13]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "invoices_vendors_invoices",
				Columns:    []*schema.Column{InvoicesColumns[14]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_reconciliation_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[9], InvoicesColumns[11]},
			},
		},
	}
	// InvoiceAuditsColumns holds the columns for the "invoice_audits" table.
	InvoiceAuditsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor", Type: field.TypeString},
		{Name: "field_name", Type: field.TypeString},
		{Name: "old_value", Type: field.TypeString, Nullable: true},
		{Name: "new_value", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceAuditsTable holds the schema information for the "invoice_audits" table.
	InvoiceAuditsTable = &schema.Table{
		Name:       "invoice_audits",
		Columns:    InvoiceAuditsColumns,
		PrimaryKey: []*schema.Column{InvoiceAuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_audits_invoices_audits",
				Columns:    []*schema.Column{InvoiceAuditsColumns[6]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceaudit_invoice_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceAuditsColumns[6], InvoiceAuditsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "codes", Type: field.TypeJSON, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "canonical_name", Type: field.TypeString, Unique: true},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InvoicesTable,
		InvoiceAuditsTable,
		ProjectsTable,
		VendorsTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = ProjectsTable
	InvoicesTable.ForeignKeys[1].RefTable = VendorsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceAuditsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceAuditsTable.Annotation = &entsql.Annotation{
		Table: "invoice_audits",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
}
