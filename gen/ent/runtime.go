// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danielolaitan/invoice-agent/db/ent/schema"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoiceaudit"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescSourceEmailID is the schema descriptor for source_email_id field.
	invoiceDescSourceEmailID := invoiceFields[1].Descriptor()
	// invoice.SourceEmailIDValidator is a validator for the "source_email_id" field. It is called by the builders before save.
	invoice.SourceEmailIDValidator = invoiceDescSourceEmailID.Validators[0].(func(string) error)
	// invoiceDescExtractorVersion is the schema descriptor for extractor_version field.
	invoiceDescExtractorVersion := invoiceFields[10].Descriptor()
	// invoice.DefaultExtractorVersion holds the default value on creation for the extractor_version field.
	invoice.DefaultExtractorVersion = invoiceDescExtractorVersion.Default.(string)
	// invoiceDescReconciliationStatus is the schema descriptor for reconciliation_status field.
	invoiceDescReconciliationStatus := invoiceFields[11].Descriptor()
	// invoice.DefaultReconciliationStatus holds the default value on creation for the reconciliation_status field.
	invoice.DefaultReconciliationStatus = invoiceDescReconciliationStatus.Default.(string)
	// invoice.ReconciliationStatusValidator is a validator for the "reconciliation_status" field. It is called by the builders before save.
	invoice.ReconciliationStatusValidator = invoiceDescReconciliationStatus.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[14].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoiceauditFields := schema.InvoiceAudit{}.Fields()
	_ = invoiceauditFields
	// invoiceauditDescActor is the schema descriptor for actor field.
	invoiceauditDescActor := invoiceauditFields[2].Descriptor()
	// invoiceaudit.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	invoiceaudit.ActorValidator = invoiceauditDescActor.Validators[0].(func(string) error)
	// invoiceauditDescFieldName is the schema descriptor for field_name field.
	invoiceauditDescFieldName := invoiceauditFields[3].Descriptor()
	// invoiceaudit.FieldNameValidator is a validator for the "field_name" field. It is called by the builders before save.
	invoiceaudit.FieldNameValidator = invoiceauditDescFieldName.Validators[0].(func(string) error)
	// invoiceauditDescCreatedAt is the schema descriptor for created_at field.
	invoiceauditDescCreatedAt := invoiceauditFields[6].Descriptor()
	// invoiceaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceaudit.DefaultCreatedAt = invoiceauditDescCreatedAt.Default.(func() time.Time)
	// invoiceauditDescID is the schema descriptor for id field.
	invoiceauditDescID := invoiceauditFields[0].Descriptor()
	// invoiceaudit.DefaultID holds the default value on creation for the id field.
	invoiceaudit.DefaultID = invoiceauditDescID.Default.(func() uuid.UUID)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[0].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[3].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescCanonicalName is the schema descriptor for canonical_name field.
	vendorDescCanonicalName := vendorFields[0].Descriptor()
	// vendor.CanonicalNameValidator is a validator for the "canonical_name" field. It is called by the builders before save.
	vendor.CanonicalNameValidator = vendorDescCanonicalName.Validators[0].(func(string) error)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[3].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
}
