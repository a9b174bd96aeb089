package extract

// Provenance describes how and where a field value was derived.
type Provenance struct {
	Method   string `json:"method"`
	Pattern  string `json:"pattern,omitempty"`
	Snippet  string `json:"snippet,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// Field is one extracted value with its confidence and provenance.
// Value is a float64 for numeric fields and a string otherwise.
type Field struct {
	Value      any        `json:"value"`
	Confidence float64    `json:"confidence"`
	Provenance Provenance `json:"provenance"`
}

// FieldMap holds extracted fields keyed by field name. Fields absent from the
// document are omitted, never populated with null placeholders.
type FieldMap map[string]Field

// Canonical field names produced by the engine.
const (
	FieldInvoiceNumber = "invoice_number"
	FieldDate          = "date"
	FieldTotalAmount   = "total_amount"
	FieldSubtotal      = "subtotal"
	FieldTax           = "tax"
	FieldCurrency      = "currency"
	FieldVendorName    = "vendor_name"
	FieldLineItems     = "line_items"
)

// AverageConfidence returns the mean confidence across all fields,
// or 0.5 when the map is empty.
func (m FieldMap) AverageConfidence() float64 {
	if len(m) == 0 {
		return 0.5
	}
	var sum float64
	for _, f := range m {
		sum += f.Confidence
	}
	return sum / float64(len(m))
}

// Float returns the field's numeric value, if present and numeric.
func (m FieldMap) Float(name string) (float64, bool) {
	f, ok := m[name]
	if !ok {
		return 0, false
	}
	v, ok := f.Value.(float64)
	return v, ok
}

// String returns the field's string value, if present.
func (m FieldMap) String(name string) (string, bool) {
	f, ok := m[name]
	if !ok {
		return "", false
	}
	v, ok := f.Value.(string)
	return v, ok
}
