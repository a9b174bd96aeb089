package utils

import (
	"time"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/gen/ent"
	"github.com/danielolaitan/invoice-agent/internal/entity"
)

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:                   e.ID,
		SourceEmailID:        e.SourceEmailID,
		RawEmailURI:          e.RawEmailURI,
		Attachments:          e.Attachments,
		RawText:              e.RawText,
		Extracted:            e.Extracted,
		Normalized:           e.Normalized,
		Tags:                 e.Tags,
		ExtractorVersion:     e.ExtractorVersion,
		ReconciliationStatus: constants.ReconciliationStatus(e.ReconciliationStatus),
		Extra:                e.Extra,
		CreatedAt:            e.CreatedAt,
	}
}

func ToVendor(e *ent.Vendor) entity.Vendor {
	return entity.Vendor{
		ID:            e.ID,
		CanonicalName: e.CanonicalName,
		Aliases:       e.Aliases,
		Meta:          e.Meta,
	}
}

func ToProject(e *ent.Project) entity.Project {
	return entity.Project{
		ID:    e.ID,
		Name:  e.Name,
		Codes: e.Codes,
		Meta:  e.Meta,
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
