package document

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/danielolaitan/invoice-agent/internal/entity"
)

// headerKeywords mark a row as a plausible table header.
var headerKeywords = []string{"qty", "quantity", "price", "amount", "description", "item", "unit", "rate", "total"}

var (
	columnSplit = regexp.MustCompile(`\s{2,}|\t`)
	nonNumeric  = regexp.MustCompile(`[^\d.]`)
)

// DetectTables finds column-aligned regions in layout text. Consecutive lines
// that split into two or more cells on runs of whitespace form a candidate
// table; anything under two rows is discarded.
func DetectTables(text string) []Table {
	var tables []Table
	var current Table

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, current)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		cells := splitColumns(line)
		if len(cells) >= 2 {
			current = append(current, cells)
			continue
		}
		flush()
	}
	flush()
	return tables
}

func splitColumns(line string) []string {
	var cells []string
	for _, c := range columnSplit.Split(strings.TrimSpace(line), -1) {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

// ParseLineItems turns a detected table into line items. The first 3 rows are
// scanned for a header whose cells overlap the keyword set; header cells are
// then normalized into canonical column names by substring match.
func ParseLineItems(t Table) []entity.LineItem {
	if len(t) < 2 {
		return nil
	}

	headerIdx := 0
	for idx := 0; idx < len(t) && idx < 3; idx++ {
		rowText := strings.ToLower(strings.Join(t[idx], " "))
		if containsAny(rowText, headerKeywords) {
			headerIdx = idx
			break
		}
	}

	columns := make([]string, len(t[headerIdx]))
	for i, h := range t[headerIdx] {
		columns[i] = normalizeHeader(h)
	}

	var items []entity.LineItem
	for _, row := range t[headerIdx+1:] {
		if item, ok := parseRow(columns, row); ok {
			items = append(items, item)
		}
	}
	return items
}

// normalizeHeader maps one header cell onto a canonical column name, or
// returns the lowercased original when nothing matches.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	switch {
	case strings.Contains(h, "description"), strings.Contains(h, "item"),
		strings.Contains(h, "product"), strings.Contains(h, "service"):
		return "description"
	case strings.Contains(h, "qty"), strings.Contains(h, "quantity"):
		return "quantity"
	case strings.Contains(h, "unit") && strings.Contains(h, "price"):
		return "unit_price"
	case strings.Contains(h, "price"):
		return "unit_price"
	case strings.Contains(h, "rate"):
		return "unit_price"
	case strings.Contains(h, "subtotal"),
		strings.Contains(h, "total") && !strings.Contains(h, "amount"):
		return "subtotal"
	case strings.Contains(h, "amount"):
		return "subtotal"
	case strings.Contains(h, "sku"), strings.Contains(h, "model"):
		return "sku"
	default:
		return h
	}
}

func parseRow(columns []string, row []string) (entity.LineItem, bool) {
	var item entity.LineItem
	var hasDescription, hasQuantity bool

	for i, cell := range row {
		if i >= len(columns) {
			break
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		switch columns[i] {
		case "description":
			item.Description = cell
			hasDescription = true
		case "sku":
			item.SKU = cell
		case "quantity":
			if v, ok := parseNumeric(cell); ok {
				item.Quantity = v
				hasQuantity = true
			} else {
				item.Raw = rawSet(item.Raw, "quantity", cell)
			}
		case "unit_price":
			if v, ok := parseNumeric(cell); ok {
				item.UnitPrice = v
			} else {
				item.Raw = rawSet(item.Raw, "unit_price", cell)
			}
		case "subtotal":
			if v, ok := parseNumeric(cell); ok {
				item.Subtotal = v
			} else {
				item.Raw = rawSet(item.Raw, "subtotal", cell)
			}
		default:
			item.Raw = rawSet(item.Raw, columns[i], cell)
		}
	}

	if !hasDescription && !hasQuantity && !item.HasAmount() {
		return entity.LineItem{}, false
	}
	// rows priced without an explicit count mean one unit
	if !hasQuantity && item.HasAmount() {
		item.Quantity = 1
	}
	return item, true
}

// parseNumeric strips currency symbols and separators before parsing.
func parseNumeric(s string) (float64, bool) {
	clean := nonNumeric.ReplaceAllString(s, "")
	if clean == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func rawSet(m map[string]string, k, v string) map[string]string {
	if m == nil {
		m = make(map[string]string)
	}
	m[k] = v
	return m
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
