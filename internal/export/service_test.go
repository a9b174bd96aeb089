package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

type fakeLister struct{ invoices []*entity.Invoice }

func (f *fakeLister) List(context.Context, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	return f.invoices, nil
}

func sampleInvoice() *entity.Invoice {
	total := 326.18
	return &entity.Invoice{
		ID:            uuid.New(),
		SourceEmailID: "m1",
		RawEmailURI:   "gs://inbox/raw/m1.json",
		Extracted: extract.FieldMap{
			extract.FieldVendorName: {Value: "HOME DEPOT", Confidence: 0.9},
			extract.FieldLineItems: {
				Value: []entity.LineItem{
					{Description: "12-2 NM-B wire", Quantity: 2, UnitPrice: 44.99, Subtotal: 89.98,
						Category: constants.Electrical, BOMNumber: "ELE-001"},
					{Description: "galvanized bolts", Quantity: 1, Subtotal: 12.50,
						Category: constants.Hardware, BOMNumber: "HAR-001"},
				},
				Confidence: 0.85,
			},
		},
		Normalized: entity.Normalized{
			VendorName:  "The Home Depot",
			TotalAmount: &total,
			Currency:    "USD",
			Date:        "01/15/2024",
		},
		ReconciliationStatus: constants.StatusAutoMatched,
		Extra:                entity.Extra{AvgConfidence: 0.9},
	}
}

func TestExportWritesInvoiceAndBOMSheets(t *testing.T) {
	svc := NewService(&fakeLister{invoices: []*entity.Invoice{sampleInvoice()}}, nil)

	data, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "01/15/2024", rows[1][0])
	assert.Equal(t, "The Home Depot", rows[1][1])
	assert.Equal(t, "auto_matched", rows[1][5])

	bom, err := wb.GetRows("BOM")
	require.NoError(t, err)
	require.Len(t, bom, 3)
	assert.Equal(t, "ELE-001", bom[1][0])
	assert.Equal(t, "Electrical", bom[1][1])
	assert.Equal(t, "HAR-001", bom[2][0])
}

func TestExportEmptyWindowStillProducesWorkbook(t *testing.T) {
	svc := NewService(&fakeLister{}, nil)

	data, err := svc.ExportInvoicesXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestVendorLabelFallsBackToExtractedName(t *testing.T) {
	inv := sampleInvoice()
	inv.Normalized.VendorName = ""
	assert.Equal(t, "HOME DEPOT", vendorLabel(inv))
}

func TestLineItemsDecodeFromJSONValue(t *testing.T) {
	inv := sampleInvoice()
	// simulate a database roundtrip: items become []any of maps
	inv.Extracted[extract.FieldLineItems] = extract.Field{
		Value: []any{
			map[string]any{"description": "pvc pipe", "quantity": 3.0, "subtotal": 21.0,
				"category": "Plumbing", "bom_number": "PLU-001"},
		},
	}

	items := lineItems(inv)
	require.Len(t, items, 1)
	assert.Equal(t, "pvc pipe", items[0].Description)
	assert.Equal(t, "PLU-001", items[0].BOMNumber)
}
