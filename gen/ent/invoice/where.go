// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danielolaitan/invoice-agent/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// SourceEmailID applies equality check predicate on the "source_email_id" field. It's identical to SourceEmailIDEQ.
func SourceEmailID(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceEmailID, v))
}

// RawEmailURI applies equality check predicate on the "raw_email_uri" field. It's identical to RawEmailURIEQ.
func RawEmailURI(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawEmailURI, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// VendorID applies equality check predicate on the "vendor_id" field. It's identical to VendorIDEQ.
func VendorID(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldVendorID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldProjectID, v))
}

// ExtractorVersion applies equality check predicate on the "extractor_version" field. It's identical to ExtractorVersionEQ.
func ExtractorVersion(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldExtractorVersion, v))
}

// ReconciliationStatus applies equality check predicate on the "reconciliation_status" field. It's identical to ReconciliationStatusEQ.
func ReconciliationStatus(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldReconciliationStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceEmailIDEQ applies the EQ predicate on the "source_email_id" field.
func SourceEmailIDEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceEmailID, v))
}

// SourceEmailIDNEQ applies the NEQ predicate on the "source_email_id" field.
func SourceEmailIDNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSourceEmailID, v))
}

// SourceEmailIDIn applies the In predicate on the "source_email_id" field.
func SourceEmailIDIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSourceEmailID, vs...))
}

// SourceEmailIDNotIn applies the NotIn predicate on the "source_email_id" field.
func SourceEmailIDNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSourceEmailID, vs...))
}

// SourceEmailIDGT applies the GT predicate on the "source_email_id" field.
func SourceEmailIDGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSourceEmailID, v))
}

// SourceEmailIDGTE applies the GTE predicate on the "source_email_id" field.
func SourceEmailIDGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSourceEmailID, v))
}

// SourceEmailIDLT applies the LT predicate on the "source_email_id" field.
func SourceEmailIDLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSourceEmailID, v))
}

// SourceEmailIDLTE applies the LTE predicate on the "source_email_id" field.
func SourceEmailIDLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSourceEmailID, v))
}

// SourceEmailIDContains applies the Contains predicate on the "source_email_id" field.
func SourceEmailIDContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSourceEmailID, v))
}

// SourceEmailIDHasPrefix applies the HasPrefix predicate on the "source_email_id" field.
func SourceEmailIDHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSourceEmailID, v))
}

// SourceEmailIDHasSuffix applies the HasSuffix predicate on the "source_email_id" field.
func SourceEmailIDHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSourceEmailID, v))
}

// SourceEmailIDEqualFold applies the EqualFold predicate on the "source_email_id" field.
func SourceEmailIDEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSourceEmailID, v))
}

// SourceEmailIDContainsFold applies the ContainsFold predicate on the "source_email_id" field.
func SourceEmailIDContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSourceEmailID, v))
}

// RawEmailURIEQ applies the EQ predicate on the "raw_email_uri" field.
func RawEmailURIEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawEmailURI, v))
}

// RawEmailURINEQ applies the NEQ predicate on the "raw_email_uri" field.
func RawEmailURINEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldRawEmailURI, v))
}

// RawEmailURIIn applies the In predicate on the "raw_email_uri" field.
func RawEmailURIIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldRawEmailURI, vs...))
}

// RawEmailURINotIn applies the NotIn predicate on the "raw_email_uri" field.
func RawEmailURINotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldRawEmailURI, vs...))
}

// RawEmailURIGT applies the GT predicate on the "raw_email_uri" field.
func RawEmailURIGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldRawEmailURI, v))
}

// RawEmailURIGTE applies the GTE predicate on the "raw_email_uri" field.
func RawEmailURIGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldRawEmailURI, v))
}

// RawEmailURILT applies the LT predicate on the "raw_email_uri" field.
func RawEmailURILT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldRawEmailURI, v))
}

// RawEmailURILTE applies the LTE predicate on the "raw_email_uri" field.
func RawEmailURILTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldRawEmailURI, v))
}

// RawEmailURIContains applies the Contains predicate on the "raw_email_uri" field.
func RawEmailURIContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldRawEmailURI, v))
}

// RawEmailURIHasPrefix applies the HasPrefix predicate on the "raw_email_uri" field.
func RawEmailURIHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldRawEmailURI, v))
}

// RawEmailURIHasSuffix applies the HasSuffix predicate on the "raw_email_uri" field.
func RawEmailURIHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldRawEmailURI, v))
}

// RawEmailURIIsNil applies the IsNil predicate on the "raw_email_uri" field.
func RawEmailURIIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldRawEmailURI))
}

// RawEmailURINotNil applies the NotNil predicate on the "raw_email_uri" field.
func RawEmailURINotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldRawEmailURI))
}

// RawEmailURIEqualFold applies the EqualFold predicate on the "raw_email_uri" field.
func RawEmailURIEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldRawEmailURI, v))
}

// RawEmailURIContainsFold applies the ContainsFold predicate on the "raw_email_uri" field.
func RawEmailURIContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldRawEmailURI, v))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldAttachments))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldRawText, v))
}

// ExtractedIsNil applies the IsNil predicate on the "extracted" field.
func ExtractedIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldExtracted))
}

// ExtractedNotNil applies the NotNil predicate on the "extracted" field.
func ExtractedNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldExtracted))
}

// NormalizedIsNil applies the IsNil predicate on the "normalized" field.
func NormalizedIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldNormalized))
}

// NormalizedNotNil applies the NotNil predicate on the "normalized" field.
func NormalizedNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldNormalized))
}

// VendorIDEQ applies the EQ predicate on the "vendor_id" field.
func VendorIDEQ(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldVendorID, v))
}

// VendorIDNEQ applies the NEQ predicate on the "vendor_id" field.
func VendorIDNEQ(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldVendorID, v))
}

// VendorIDIn applies the In predicate on the "vendor_id" field.
func VendorIDIn(vs ...int) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldVendorID, vs...))
}

// VendorIDNotIn applies the NotIn predicate on the "vendor_id" field.
func VendorIDNotIn(vs ...int) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldVendorID, vs...))
}

// VendorIDIsNil applies the IsNil predicate on the "vendor_id" field.
func VendorIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldVendorID))
}

// VendorIDNotNil applies the NotNil predicate on the "vendor_id" field.
func VendorIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldVendorID))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDIsNil applies the IsNil predicate on the "project_id" field.
func ProjectIDIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldProjectID))
}

// ProjectIDNotNil applies the NotNil predicate on the "project_id" field.
func ProjectIDNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldProjectID))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTags))
}

// ExtractorVersionEQ applies the EQ predicate on the "extractor_version" field.
func ExtractorVersionEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldExtractorVersion, v))
}

// ExtractorVersionNEQ applies the NEQ predicate on the "extractor_version" field.
func ExtractorVersionNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldExtractorVersion, v))
}

// ExtractorVersionIn applies the In predicate on the "extractor_version" field.
func ExtractorVersionIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldExtractorVersion, vs...))
}

// ExtractorVersionNotIn applies the NotIn predicate on the "extractor_version" field.
func ExtractorVersionNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldExtractorVersion, vs...))
}

// ExtractorVersionGT applies the GT predicate on the "extractor_version" field.
func ExtractorVersionGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldExtractorVersion, v))
}

// ExtractorVersionGTE applies the GTE predicate on the "extractor_version" field.
func ExtractorVersionGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldExtractorVersion, v))
}

// ExtractorVersionLT applies the LT predicate on the "extractor_version" field.
func ExtractorVersionLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldExtractorVersion, v))
}

// ExtractorVersionLTE applies the LTE predicate on the "extractor_version" field.
func ExtractorVersionLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldExtractorVersion, v))
}

// ExtractorVersionContains applies the Contains predicate on the "extractor_version" field.
func ExtractorVersionContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldExtractorVersion, v))
}

// ExtractorVersionHasPrefix applies the HasPrefix predicate on the "extractor_version" field.
func ExtractorVersionHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldExtractorVersion, v))
}

// ExtractorVersionHasSuffix applies the HasSuffix predicate on the "extractor_version" field.
func ExtractorVersionHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldExtractorVersion, v))
}

// ExtractorVersionEqualFold applies the EqualFold predicate on the "extractor_version" field.
func ExtractorVersionEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldExtractorVersion, v))
}

// ExtractorVersionContainsFold applies the ContainsFold predicate on the "extractor_version" field.
func ExtractorVersionContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldExtractorVersion, v))
}

// ReconciliationStatusEQ applies the EQ predicate on the "reconciliation_status" field.
func ReconciliationStatusEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldReconciliationStatus, v))
}

// ReconciliationStatusNEQ applies the NEQ predicate on the "reconciliation_status" field.
func ReconciliationStatusNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldReconciliationStatus, v))
}

// ReconciliationStatusIn applies the In predicate on the "reconciliation_status" field.
func ReconciliationStatusIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldReconciliationStatus, vs...))
}

// ReconciliationStatusNotIn applies the NotIn predicate on the "reconciliation_status" field.
func ReconciliationStatusNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldReconciliationStatus, vs...))
}

// ReconciliationStatusGT applies the GT predicate on the "reconciliation_status" field.
func ReconciliationStatusGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldReconciliationStatus, v))
}

// ReconciliationStatusGTE applies the GTE predicate on the "reconciliation_status" field.
func ReconciliationStatusGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldReconciliationStatus, v))
}

// ReconciliationStatusLT applies the LT predicate on the "reconciliation_status" field.
func ReconciliationStatusLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldReconciliationStatus, v))
}

// ReconciliationStatusLTE applies the LTE predicate on the "reconciliation_status" field.
func ReconciliationStatusLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldReconciliationStatus, v))
}

// ReconciliationStatusContains applies the Contains predicate on the "reconciliation_status" field.
func ReconciliationStatusContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldReconciliationStatus, v))
}

// ReconciliationStatusHasPrefix applies the HasPrefix predicate on the "reconciliation_status" field.
func ReconciliationStatusHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldReconciliationStatus, v))
}

// ReconciliationStatusHasSuffix applies the HasSuffix predicate on the "reconciliation_status" field.
func ReconciliationStatusHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldReconciliationStatus, v))
}

// ReconciliationStatusEqualFold applies the EqualFold predicate on the "reconciliation_status" field.
func ReconciliationStatusEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldReconciliationStatus, v))
}

// ReconciliationStatusContainsFold applies the ContainsFold predicate on the "reconciliation_status" field.
func ReconciliationStatusContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldReconciliationStatus, v))
}

// ExtraIsNil applies the IsNil predicate on the "extra" field.
func ExtraIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldExtra))
}

// ExtraNotNil applies the NotNil predicate on the "extra" field.
func ExtraNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldExtra))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVendor applies the HasEdge predicate on the "vendor" edge.
func HasVendor() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VendorTable, VendorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVendorWith applies the HasEdge predicate on the "vendor" edge with a given conditions (other predicates).
func HasVendorWith(preds ...predicate.Vendor) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newVendorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudits applies the HasEdge predicate on the "audits" edge.
func HasAudits() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditsTable, AuditsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditsWith applies the HasEdge predicate on the "audits" edge with a given conditions (other predicates).
func HasAuditsWith(preds ...predicate.InvoiceAudit) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newAuditsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
