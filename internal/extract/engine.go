package extract

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

// tailWindow is the size of the document tail re-scanned for total_amount;
// summary/footer sections with the final total usually live there.
const tailWindow = 2000

// Engine applies the named-field recognition rules over document text.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// ExtractAll extracts every field from the attachment text, falling back to
// the message body only where safe. Vendor names are never taken from the
// body: greeting lines ("Hi John") are too easy to mistake for one.
func (e *Engine) ExtractAll(docText, bodyText string) FieldMap {
	fields := FieldMap{}

	for _, name := range []string{FieldInvoiceNumber, FieldDate, FieldTotalAmount, FieldCurrency, FieldSubtotal, FieldTax} {
		search := docText
		if strings.TrimSpace(search) == "" {
			search = bodyText
		}
		f, ok := e.extractField(name, search)
		if !ok && search != bodyText {
			f, ok = e.extractField(name, bodyText)
		}
		if ok {
			fields[name] = f
		}
	}

	// The final total is often at the bottom of the document; if the first
	// pass missed it or found a low-confidence candidate, re-scan the tail
	// and adopt the result when it ranks higher.
	if f, ok := fields[FieldTotalAmount]; !ok || f.Confidence < 0.9 {
		tail := docText
		if utf8.RuneCountInString(tail) > tailWindow {
			runes := []rune(tail)
			tail = string(runes[len(runes)-tailWindow:])
		}
		if tf, tok := e.extractField(FieldTotalAmount, tail); tok {
			if !ok || tf.Provenance.Priority > f.Provenance.Priority {
				fields[FieldTotalAmount] = tf
			}
		}
	}

	if v, ok := e.extractVendor(docText); ok {
		fields[FieldVendorName] = v
	} else if strings.TrimSpace(docText) == "" {
		if v, ok := e.extractVendor(bodyText); ok && !looksLikeGreeting(v.Value.(string)) {
			fields[FieldVendorName] = v
		}
	}

	e.logger.Debug("field extraction complete",
		"fields", len(fields),
		"avg_confidence", fields.AverageConfidence(),
	)
	return fields
}

// extractField runs the ordered rule list for one field. total_amount is
// special-cased: every rule contributes candidates and the priority table
// picks the winner.
func (e *Engine) extractField(name, text string) (Field, bool) {
	if name == FieldTotalAmount {
		return e.extractTotalAmount(text)
	}
	if name == FieldCurrency {
		return e.extractCurrency(text)
	}

	for _, re := range fieldPatterns[name] {
		locs := re.FindAllStringSubmatchIndex(text, -1)
		for _, loc := range locs {
			value := submatch(text, loc)
			var val any = value
			if numericFields[name] {
				f, err := cleanNumber(value)
				if err != nil {
					continue
				}
				val = f
			}
			return Field{
				Value:      val,
				Confidence: 0.85,
				Provenance: Provenance{
					Method:  "regex",
					Pattern: re.String(),
					Snippet: snippet(text, loc[0], loc[1]),
				},
			}, true
		}
	}
	return Field{}, false
}

func (e *Engine) extractTotalAmount(text string) (Field, bool) {
	type candidate struct {
		value    float64
		priority int
		pattern  string
		start    int
		end      int
	}
	var best *candidate

	for _, re := range fieldPatterns[FieldTotalAmount] {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			value, err := cleanNumber(submatch(text, loc))
			if err != nil {
				continue
			}
			c := candidate{
				value:    value,
				priority: priorityFor(labelContext(text, loc[0], loc[1])),
				pattern:  re.String(),
				start:    loc[0],
				end:      loc[1],
			}
			if best == nil || c.priority > best.priority {
				best = &c
			}
		}
	}
	if best == nil {
		return Field{}, false
	}

	confidence := 0.85
	if best.priority >= 80 {
		confidence = 0.95
	}
	return Field{
		Value:      best.value,
		Confidence: confidence,
		Provenance: Provenance{
			Method:   "regex",
			Pattern:  best.pattern,
			Snippet:  snippet(text, best.start, best.end),
			Priority: best.priority,
		},
	}, true
}

func (e *Engine) extractCurrency(text string) (Field, bool) {
	if m := currencyCode.FindStringSubmatchIndex(text); m != nil {
		return Field{
			Value:      text[m[2]:m[3]],
			Confidence: 0.85,
			Provenance: Provenance{
				Method:  "regex",
				Pattern: currencyCode.String(),
				Snippet: snippet(text, m[0], m[1]),
			},
		}, true
	}
	for i, r := range text {
		if code, ok := currencySymbols[r]; ok {
			return Field{
				Value:      code,
				Confidence: 0.85,
				Provenance: Provenance{
					Method:  "regex",
					Pattern: "currency_symbol",
					Snippet: snippet(text, i, i+utf8.RuneLen(r)),
				},
			}, true
		}
	}
	return Field{}, false
}

// labelContext widens a match to the start of its line (capped at 20 chars of
// lookback) so the priority table sees the full label: a generic "total"
// pattern matching inside "Subtotal: ..." must rank as a subtotal.
func labelContext(text string, start, end int) string {
	s := start
	for s > 0 && start-s < 20 && text[s-1] != '\n' {
		s--
	}
	return text[s:end]
}

// submatch returns group 1 when the pattern has one, else the whole match.
func submatch(text string, loc []int) string {
	if len(loc) >= 4 && loc[2] >= 0 {
		return text[loc[2]:loc[3]]
	}
	return text[loc[0]:loc[1]]
}

// cleanNumber strips thousands separators and parses the value.
func cleanNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
}

// snippet returns the match with ~50 characters of surrounding context.
func snippet(text string, start, end int) string {
	s := start - 50
	if s < 0 {
		s = 0
	}
	e := end + 50
	if e > len(text) {
		e = len(text)
	}
	return strings.TrimSpace(text[s:e])
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
