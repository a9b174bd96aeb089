package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

// Invoice represents one ingested source document for data transfer between
// layers. At most one Invoice exists per SourceEmailID.
type Invoice struct {
	ID                   uuid.UUID                      `json:"id"`
	SourceEmailID        string                         `json:"source_email_id"`
	RawEmailURI          string                         `json:"raw_email_uri,omitempty"`
	Attachments          []Attachment                   `json:"attachments,omitempty"`
	RawText              string                         `json:"raw_text,omitempty"`
	Extracted            extract.FieldMap               `json:"extracted"`
	Normalized           Normalized                     `json:"normalized"`
	Tags                 []string                       `json:"tags,omitempty"`
	ExtractorVersion     string                         `json:"extractor_version,omitempty"`
	ReconciliationStatus constants.ReconciliationStatus `json:"reconciliation_status"`
	Extra                Extra                          `json:"extra"`
	CreatedAt            time.Time                      `json:"created_at"`
}

// Attachment records one stored source attachment.
type Attachment struct {
	Filename string `json:"filename"`
	URI      string `json:"url"`
	Format   string `json:"type,omitempty"`
}

// Normalized holds the reconciled view of an invoice. Only the reconciliation
// engine writes it.
type Normalized struct {
	VendorID    *int     `json:"vendor_id,omitempty"`
	VendorName  string   `json:"vendor_name,omitempty"`
	ProjectID   *int     `json:"project_id,omitempty"`
	ProjectName string   `json:"project_name,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Date        string   `json:"date,omitempty"`
}

// Suggestion is one near-miss registry match kept for human triage.
type Suggestion struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Suggestions groups near-miss matches by registry.
type Suggestions struct {
	Vendors  []Suggestion `json:"vendors,omitempty"`
	Projects []Suggestion `json:"projects,omitempty"`
}

// Extra is the auxiliary data bag on an invoice record.
type Extra struct {
	AvgConfidence float64      `json:"avg_confidence,omitempty"`
	Suggestions   *Suggestions `json:"suggestions,omitempty"`
}
