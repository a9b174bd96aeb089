package extract

import "regexp"

// Ordered recognition rules per field. For single-result fields the first
// matching rule wins; total_amount collects matches from every rule and
// resolves them through the priority table below.
var fieldPatterns = map[string][]*regexp.Regexp{
	FieldInvoiceNumber: {
		regexp.MustCompile(`(?im)invoice\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)inv\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)bill\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)invoice\s+([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)order\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)order\s*#?\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)receipt\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`),
	},
	FieldDate: {
		regexp.MustCompile(`(?im)date\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?im)invoice\s+date\s*:?\s*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?im)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	},
	FieldTotalAmount: {
		// most specific first: the final order total
		regexp.MustCompile(`(?im)order\s+total\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)order\s+total\s+\$?\s*([\d,]+\.?\d*)`),
		// final totals
		regexp.MustCompile(`(?im)grand\s+total\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)amount\s+due\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)balance\s+due\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)charged\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)paid\s*\$?\s*([\d,]+\.?\d*)`),
		// generic totals; these can match the subtotal line, hence the priority table
		regexp.MustCompile(`(?im)total\s*(?:amount|due)?\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)invoice\s+total\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)total\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)\$\s*([\d,]+\.?\d*)\s*(?:total|paid|due)`),
	},
	FieldSubtotal: {
		regexp.MustCompile(`(?im)subtotal\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)sub\s+total\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
	},
	FieldTax: {
		regexp.MustCompile(`(?im)sales\s+tax\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)tax\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?im)tax\s+amount\s*:?\s*\$?\s*([\d,]+\.?\d*)`),
	},
}

// numericFields are cleaned of thousands separators and parsed as float64.
var numericFields = map[string]bool{
	FieldTotalAmount: true,
	FieldSubtotal:    true,
	FieldTax:         true,
}

// totalAmountPriority is the explicit priority table for resolving competing
// total_amount matches. The label phrase closest to the final charged amount
// wins; an explicit subtotal is demoted below the generic default.
var totalAmountPriority = []struct {
	phrase   string
	priority int
}{
	{"order total", 100},
	{"grand total", 90},
	{"amount due", 85},
	{"balance due", 85},
	{"charged", 80},
	{"subtotal", 30},
}

const defaultTotalPriority = 50

// priorityFor maps the full matched label text to a priority tier.
func priorityFor(matchText string) int {
	for _, p := range totalAmountPriority {
		if containsFold(matchText, p.phrase) {
			return p.priority
		}
	}
	return defaultTotalPriority
}

// currencyCode matches a 3-letter code directly before an amount.
var currencyCode = regexp.MustCompile(`([A-Z]{3})\s*\d+\.?\d*`)

// currencySymbols maps currency symbols to ISO 4217 codes.
var currencySymbols = map[rune]string{
	'$': "USD",
	'€': "EUR",
	'£': "GBP",
	'₹': "INR",
}
