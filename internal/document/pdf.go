package document

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFBackend reads the embedded text layer of a PDF. Scanned documents have
// no text layer; those come back (near-)empty and trip the OCR fallback.
type PDFBackend struct{}

func (PDFBackend) Pages(data []byte) ([]Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	pages := make([]Page, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// a single unreadable page should not sink the document
			pages = append(pages, Page{})
			continue
		}
		pages = append(pages, Page{Text: text, Tables: DetectTables(text)})
	}
	return pages, nil
}
