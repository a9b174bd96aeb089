package document

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
)

// minDigitalTextLen is the threshold below which a digital text layer is
// considered useless (a scanned PDF wrapped in a text shell) and the pages
// are re-rendered for OCR instead.
const minDigitalTextLen = 100

// Extractor turns raw attachment bytes into plain text plus candidate line
// items. Unreadable attachments produce empty output, never an error: the
// pipeline must tolerate them.
type Extractor struct {
	pdf    Backend
	xlsx   Backend
	ocr    *OCR
	logger *slog.Logger
}

func NewExtractor(ocr *OCR, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		pdf:    PDFBackend{},
		xlsx:   XLSXBackend{},
		ocr:    ocr,
		logger: logger,
	}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (string, []entity.LineItem) {
	format := constants.FormatForFilename(filename)
	e.logger.Debug("starting document extraction", "filename", filename, "format", format, "bytes", len(data))

	switch format {
	case constants.PDF:
		return e.extractPDF(ctx, data, filename)
	case constants.XLSX:
		return e.extractPages(e.xlsx, data, filename)
	case constants.IMAGE:
		text, err := e.ocr.Image(ctx, data, constants.NormalizeExt(filepath.Ext(filename)))
		if err != nil {
			e.logger.Warn("image ocr failed", "filename", filename, "error", err)
			return "", nil
		}
		return text, nil
	default:
		e.logger.Warn("unsupported attachment format", "filename", filename)
		return "", nil
	}
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte, filename string) (string, []entity.LineItem) {
	pages, err := e.pdf.Pages(data)
	if err != nil {
		e.logger.Warn("digital pdf extraction failed, falling back to ocr", "filename", filename, "error", err)
		return e.ocrText(ctx, data, filename), nil
	}

	text, items := assemble(pages)
	if len(strings.TrimSpace(text)) < minDigitalTextLen {
		e.logger.Info("digital text layer too small, falling back to ocr",
			"filename", filename, "text_len", len(strings.TrimSpace(text)))
		ocrText := e.ocrText(ctx, data, filename)
		if ocrText == "" {
			return "", nil
		}
		return ocrText, items
	}
	return text, items
}

func (e *Extractor) extractPages(b Backend, data []byte, filename string) (string, []entity.LineItem) {
	pages, err := b.Pages(data)
	if err != nil {
		e.logger.Warn("document parse failed", "filename", filename, "error", err)
		return "", nil
	}
	return assemble(pages)
}

func (e *Extractor) ocrText(ctx context.Context, data []byte, filename string) string {
	texts, err := e.ocr.RenderPDF(ctx, data)
	if err != nil {
		e.logger.Warn("ocr fallback failed", "filename", filename, "error", err)
		return ""
	}
	return strings.Join(texts, "\n")
}

// assemble joins page texts with page-boundary markers and collects line
// items from every detected table, preserving document order.
func assemble(pages []Page) (string, []entity.LineItem) {
	var parts []string
	var items []entity.LineItem
	for i, page := range pages {
		if strings.TrimSpace(page.Text) != "" {
			parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", i+1, page.Text))
		}
		for _, table := range page.Tables {
			items = append(items, ParseLineItems(table)...)
		}
	}
	return strings.Join(parts, "\n"), items
}
