package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXBackend treats each sheet as one page whose rows form a single table.
type XLSXBackend struct{}

func (XLSXBackend) Pages(data []byte) ([]Page, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening XLSX: %w", err)
	}
	defer f.Close()

	var pages []Page
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		var text strings.Builder
		table := make(Table, 0, len(rows))
		for _, row := range rows {
			text.WriteString(strings.Join(row, "  "))
			text.WriteString("\n")
			table = append(table, row)
		}
		pages = append(pages, Page{Text: text.String(), Tables: []Table{table}})
	}
	return pages, nil
}
