// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danielolaitan/invoice-agent/gen/ent/invoice"
	"github.com/danielolaitan/invoice-agent/gen/ent/project"
	"github.com/danielolaitan/invoice-agent/gen/ent/vendor"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
	"github.com/google/uuid"
)

// Invoice is the model entity for the Invoice schema.
type Invoice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourceEmailID holds the value of the "source_email_id" field.
	SourceEmailID string `json:"source_email_id,omitempty"`
	// RawEmailURI holds the value of the "raw_email_uri" field.
	RawEmailURI string `json:"raw_email_uri,omitempty"`
	// Attachments holds the value of the "attachments" field.
	Attachments []entity.Attachment `json:"attachments,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// Extracted holds the value of the "extracted" field.
	Extracted extract.FieldMap `json:"extracted,omitempty"`
	// Normalized holds the value of the "normalized" field.
	Normalized entity.Normalized `json:"normalized,omitempty"`
	// VendorID holds the value of the "vendor_id" field.
	VendorID *int `json:"vendor_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID *int `json:"project_id,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// ExtractorVersion holds the value of the "extractor_version" field.
	ExtractorVersion string `json:"extractor_version,omitempty"`
	// ReconciliationStatus holds the value of the "reconciliation_status" field.
	ReconciliationStatus string `json:"reconciliation_status,omitempty"`
	// Extra holds the value of the "extra" field.
	Extra entity.Extra `json:"extra,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceQuery when eager-loading is set.
	Edges        InvoiceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceEdges holds the relations/edges for other nodes in the graph.
type InvoiceEdges struct {
	// Vendor holds the value of the vendor edge.
	Vendor *Vendor `json:"vendor,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Audits holds the value of the audits edge.
	Audits []*InvoiceAudit `json:"audits,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// VendorOrErr returns the Vendor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) VendorOrErr() (*Vendor, error) {
	if e.Vendor != nil {
		return e.Vendor, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vendor.Label}
	}
	return nil, &NotLoadedError{edge: "vendor"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// AuditsOrErr returns the Audits value or an error if the edge
// was not loaded in eager-loading.
func (e InvoiceEdges) AuditsOrErr() ([]*InvoiceAudit, error) {
	if e.loadedTypes[2] {
		return e.Audits, nil
	}
	return nil, &NotLoadedError{edge: "audits"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Invoice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoice.FieldAttachments, invoice.FieldExtracted, invoice.FieldNormalized, invoice.FieldTags, invoice.FieldExtra:
			values[i] = new([]byte)
		case invoice.FieldVendorID, invoice.FieldProjectID:
			values[i] = new(sql.NullInt64)
		case invoice.FieldSourceEmailID, invoice.FieldRawEmailURI, invoice.FieldRawText, invoice.FieldExtractorVersion, invoice.FieldReconciliationStatus:
			values[i] = new(sql.NullString)
		case invoice.FieldCreatedAt, invoice.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Invoice fields.
func (_m *Invoice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoice.FieldSourceEmailID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_email_id", values[i])
			} else if value.Valid {
				_m.SourceEmailID = value.String
			}
		case invoice.FieldRawEmailURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_email_uri", values[i])
			} else if value.Valid {
				_m.RawEmailURI = value.String
			}
		case invoice.FieldAttachments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attachments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attachments); err != nil {
					return fmt.Errorf("unmarshal field attachments: %w", err)
				}
			}
		case invoice.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case invoice.FieldExtracted:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extracted); err != nil {
					return fmt.Errorf("unmarshal field extracted: %w", err)
				}
			}
		case invoice.FieldNormalized:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field normalized", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Normalized); err != nil {
					return fmt.Errorf("unmarshal field normalized: %w", err)
				}
			}
		case invoice.FieldVendorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_id", values[i])
			} else if value.Valid {
				_m.VendorID = new(int)
				*_m.VendorID = int(value.Int64)
			}
		case invoice.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(int)
				*_m.ProjectID = int(value.Int64)
			}
		case invoice.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case invoice.FieldExtractorVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extractor_version", values[i])
			} else if value.Valid {
				_m.ExtractorVersion = value.String
			}
		case invoice.FieldReconciliationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reconciliation_status", values[i])
			} else if value.Valid {
				_m.ReconciliationStatus = value.String
			}
		case invoice.FieldExtra:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extra); err != nil {
					return fmt.Errorf("unmarshal field extra: %w", err)
				}
			}
		case invoice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Invoice.
// This includes values selected through modifiers, order, etc.
func (_m *Invoice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVendor queries the "vendor" edge of the Invoice entity.
func (_m *Invoice) QueryVendor() *VendorQuery {
	return NewInvoiceClient(_m.config).QueryVendor(_m)
}

// QueryProject queries the "project" edge of the Invoice entity.
func (_m *Invoice) QueryProject() *ProjectQuery {
	return NewInvoiceClient(_m.config).QueryProject(_m)
}

// QueryAudits queries the "audits" edge of the Invoice entity.
func (_m *Invoice) QueryAudits() *InvoiceAuditQuery {
	return NewInvoiceClient(_m.config).QueryAudits(_m)
}

// Update returns a builder for updating this Invoice.
// Note that you need to call Invoice.Unwrap() before calling this method if this Invoice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Invoice) Update() *InvoiceUpdateOne {
	return NewInvoiceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Invoice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Invoice) Unwrap() *Invoice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Invoice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Invoice) String() string {
	var builder strings.Builder
	builder.WriteString("Invoice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_email_id=")
	builder.WriteString(_m.SourceEmailID)
	builder.WriteString(", ")
	builder.WriteString("raw_email_uri=")
	builder.WriteString(_m.RawEmailURI)
	builder.WriteString(", ")
	builder.WriteString("attachments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attachments))
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("extracted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extracted))
	builder.WriteString(", ")
	builder.WriteString("normalized=")
	builder.WriteString(fmt.Sprintf("%v", _m.Normalized))
	builder.WriteString(", ")
	if v := _m.VendorID; v != nil {
		builder.WriteString("vendor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("extractor_version=")
	builder.WriteString(_m.ExtractorVersion)
	builder.WriteString(", ")
	builder.WriteString("reconciliation_status=")
	builder.WriteString(_m.ReconciliationStatus)
	builder.WriteString(", ")
	builder.WriteString("extra=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extra))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Invoices is a parsable slice of Invoice.
type Invoices []*Invoice
