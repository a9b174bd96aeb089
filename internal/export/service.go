package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

// InvoiceLister is the read side the exporter needs.
type InvoiceLister interface {
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
}

// Service produces XLSX workbooks from reconciled invoices: one sheet of
// invoices, one sheet of BOM line items.
type Service struct {
	invoices InvoiceLister
	logger   *slog.Logger
}

func NewService(invoices InvoiceLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns a workbook for the given date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		now := time.Now().UTC()
		t := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	invoices, err := s.invoices.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	if err := s.writeInvoiceSheet(f, invoices); err != nil {
		return nil, err
	}
	if err := s.writeBOMSheet(f, invoices); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeInvoiceSheet(f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "Invoices"
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	headers := []string{
		"Date",
		"Vendor",
		"Project",
		"Total",
		"Currency",
		"Status",
		"Avg Confidence",
		"Source Email",
		"Raw Email URI",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.Normalized.Date)
		write(2, vendorLabel(inv))
		write(3, inv.Normalized.ProjectName)
		if inv.Normalized.TotalAmount != nil {
			write(4, *inv.Normalized.TotalAmount)
		}
		write(5, inv.Normalized.Currency)
		write(6, string(inv.ReconciliationStatus))
		write(7, inv.Extra.AvgConfidence)
		write(8, inv.SourceEmailID)
		write(9, inv.RawEmailURI)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "C", 28)
	_ = f.SetColWidth(sheet, "D", "E", 12)
	_ = f.SetColWidth(sheet, "F", "G", 16)
	_ = f.SetColWidth(sheet, "H", "I", 40)

	index, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	return nil
}

func (s *Service) writeBOMSheet(f *excelize.File, invoices []*entity.Invoice) error {
	const sheet = "BOM"
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	headers := []string{
		"BOM Number",
		"Category",
		"Description",
		"Quantity",
		"Unit Price",
		"Subtotal",
		"Vendor",
		"Invoice Date",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		for _, item := range lineItems(inv) {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, item.BOMNumber)
			write(2, string(item.Category))
			write(3, item.Description)
			write(4, item.Quantity)
			if item.UnitPrice != 0 {
				write(5, item.UnitPrice)
			}
			if item.Subtotal != 0 {
				write(6, item.Subtotal)
			}
			write(7, vendorLabel(inv))
			write(8, inv.Normalized.Date)
			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "D", "F", 12)
	_ = f.SetColWidth(sheet, "G", "H", 24)
	return nil
}

func ensureSheet(f *excelize.File, name string) error {
	if index, _ := f.GetSheetIndex(name); index == -1 {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}
	return nil
}

func vendorLabel(inv *entity.Invoice) string {
	if inv.Normalized.VendorName != "" {
		return inv.Normalized.VendorName
	}
	if name, ok := inv.Extracted.String(extract.FieldVendorName); ok {
		return name
	}
	return ""
}

// lineItems reads line items back out of the extracted field map. Rows loaded
// from the database carry them as decoded JSON, fresh rows as typed structs.
func lineItems(inv *entity.Invoice) []entity.LineItem {
	field, ok := inv.Extracted[extract.FieldLineItems]
	if !ok {
		return nil
	}
	if items, ok := field.Value.([]entity.LineItem); ok {
		return items
	}

	raw, err := json.Marshal(field.Value)
	if err != nil {
		return nil
	}
	var items []entity.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
