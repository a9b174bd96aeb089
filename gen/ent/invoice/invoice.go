// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the invoice type in the database.
	Label = "invoice"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceEmailID holds the string denoting the source_email_id field in the database.
	FieldSourceEmailID = "source_email_id"
	// FieldRawEmailURI holds the string denoting the raw_email_uri field in the database.
	FieldRawEmailURI = "raw_email_uri"
	// FieldAttachments holds the string denoting the attachments field in the database.
	FieldAttachments = "attachments"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldExtracted holds the string denoting the extracted field in the database.
	FieldExtracted = "extracted"
	// FieldNormalized holds the string denoting the normalized field in the database.
	FieldNormalized = "normalized"
	// FieldVendorID holds the string denoting the vendor_id field in the database.
	FieldVendorID = "vendor_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldExtractorVersion holds the string denoting the extractor_version field in the database.
	FieldExtractorVersion = "extractor_version"
	// FieldReconciliationStatus holds the string denoting the reconciliation_status field in the database.
	FieldReconciliationStatus = "reconciliation_status"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVendor holds the string denoting the vendor edge name in mutations.
	EdgeVendor = "vendor"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeAudits holds the string denoting the audits edge name in mutations.
	EdgeAudits = "audits"
	// Table holds the table name of the invoice in the database.
	Table = "invoices"
	// VendorTable is the table that holds the vendor relation/edge.
	VendorTable = "invoices"
	// VendorInverseTable is the table name for the Vendor entity.
	// It exists in this package in order to avoid circular dependency with the "vendor" package.
	VendorInverseTable = "vendors"
	// VendorColumn is the table column denoting the vendor relation/edge.
	VendorColumn = "vendor_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "invoices"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// AuditsTable is the table that holds the audits relation/edge.
	AuditsTable = "invoice_audits"
	// AuditsInverseTable is the table name for the InvoiceAudit entity.
	// It exists in this package in order to avoid circular dependency with the "invoiceaudit" package.
	AuditsInverseTable = "invoice_audits"
	// AuditsColumn is the table column denoting the audits relation/edge.
	AuditsColumn = "invoice_id"
)

// Columns holds all SQL columns for invoice fields.
var Columns = []string{
	FieldID,
	FieldSourceEmailID,
	FieldRawEmailURI,
	FieldAttachments,
	FieldRawText,
	FieldExtracted,
	FieldNormalized,
	FieldVendorID,
	FieldProjectID,
	FieldTags,
	FieldExtractorVersion,
	FieldReconciliationStatus,
	FieldExtra,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceEmailIDValidator is a validator for the "source_email_id" field. It is called by the builders before save.
	SourceEmailIDValidator func(string) error
	// DefaultExtractorVersion holds the default value on creation for the "extractor_version" field.
	DefaultExtractorVersion string
	// DefaultReconciliationStatus holds the default value on creation for the "reconciliation_status" field.
	DefaultReconciliationStatus string
	// ReconciliationStatusValidator is a validator for the "reconciliation_status" field. It is called by the builders before save.
	ReconciliationStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Invoice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceEmailID orders the results by the source_email_id field.
func BySourceEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEmailID, opts...).ToFunc()
}

// ByRawEmailURI orders the results by the raw_email_uri field.
func ByRawEmailURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawEmailURI, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByVendorID orders the results by the vendor_id field.
func ByVendorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByExtractorVersion orders the results by the extractor_version field.
func ByExtractorVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractorVersion, opts...).ToFunc()
}

// ByReconciliationStatus orders the results by the reconciliation_status field.
func ByReconciliationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReconciliationStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVendorField orders the results by vendor field.
func ByVendorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVendorStep(), sql.OrderByField(field, opts...))
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuditsCount orders the results by audits count.
func ByAuditsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditsStep(), opts...)
	}
}

// ByAudits orders the results by audits terms.
func ByAudits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVendorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VendorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newAuditsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
	)
}
