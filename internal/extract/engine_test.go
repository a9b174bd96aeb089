package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalAmountPrefersOrderTotal(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"subtotal first", "Subtotal: $100.00\nOrder Total: $120.00"},
		{"order total first", "Order Total: $120.00\nSubtotal: $100.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := NewEngine(nil).ExtractAll(tc.text, "")
			f, ok := fields[FieldTotalAmount]
			require.True(t, ok)
			assert.Equal(t, 120.00, f.Value)
			assert.GreaterOrEqual(t, f.Confidence, 0.9)
			assert.Equal(t, 100, f.Provenance.Priority)
		})
	}
}

func TestTotalAmountPriorityTiers(t *testing.T) {
	cases := []struct {
		text       string
		value      float64
		priority   int
		confidence float64
	}{
		{"Grand Total: $55.10", 55.10, 90, 0.95},
		{"Amount Due: $12.00", 12.00, 85, 0.95},
		{"Balance Due: $9.99", 9.99, 85, 0.95},
		{"Charged: $326.18", 326.18, 80, 0.95},
		{"Total: $42.00", 42.00, 50, 0.85},
	}
	for _, tc := range cases {
		fields := NewEngine(nil).ExtractAll(tc.text, "")
		f, ok := fields[FieldTotalAmount]
		require.True(t, ok, tc.text)
		assert.Equal(t, tc.value, f.Value, tc.text)
		assert.Equal(t, tc.priority, f.Provenance.Priority, tc.text)
		assert.InDelta(t, tc.confidence, f.Confidence, 0.001, tc.text)
	}
}

func TestSubtotalAloneStillExtractsAsTotalCandidate(t *testing.T) {
	// With only a subtotal on the page, it is the best candidate, but at the
	// demoted priority and base confidence.
	fields := NewEngine(nil).ExtractAll("Subtotal: $100.00", "")
	f, ok := fields[FieldTotalAmount]
	require.True(t, ok)
	assert.Equal(t, 100.00, f.Value)
	assert.Equal(t, 30, f.Provenance.Priority)
	assert.InDelta(t, 0.85, f.Confidence, 0.001)
}

func TestTailPassPicksUpFooterTotal(t *testing.T) {
	// Bury the order total beyond the head of a long document; the tail
	// re-scan should still find and prefer it.
	filler := strings.Repeat("line item detail goes here\n", 200)
	text := "Subtotal: $100.00\n" + filler + "Order Total: $120.00\n"

	fields := NewEngine(nil).ExtractAll(text, "")
	f, ok := fields[FieldTotalAmount]
	require.True(t, ok)
	assert.Equal(t, 120.00, f.Value)
	assert.Equal(t, 100, f.Provenance.Priority)
}

func TestExtractAllEndToEndReceipt(t *testing.T) {
	text := "THE HOME DEPOT\nOrder Total: $326.18\nSubtotal: $307.72\nSales Tax: $18.46"
	fields := NewEngine(nil).ExtractAll(text, "")

	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "HOME DEPOT", vendor)

	total, ok := fields.Float(FieldTotalAmount)
	require.True(t, ok)
	assert.Equal(t, 326.18, total)
	assert.Equal(t, 100, fields[FieldTotalAmount].Provenance.Priority)

	subtotal, ok := fields.Float(FieldSubtotal)
	require.True(t, ok)
	assert.Equal(t, 307.72, subtotal)

	tax, ok := fields.Float(FieldTax)
	require.True(t, ok)
	assert.Equal(t, 18.46, tax)

	currency, ok := fields.String(FieldCurrency)
	require.True(t, ok)
	assert.Equal(t, "USD", currency)
}

func TestThousandsSeparatorsStripped(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("Grand Total: $1,234.56", "")
	total, ok := fields.Float(FieldTotalAmount)
	require.True(t, ok)
	assert.Equal(t, 1234.56, total)
}

func TestCurrencySymbolMapsToISOCode(t *testing.T) {
	cases := map[string]string{
		"Total: €50.00": "EUR",
		"Total: £50.00": "GBP",
		"Total: ₹50.00": "INR",
	}
	for text, want := range cases {
		fields := NewEngine(nil).ExtractAll(text, "")
		code, ok := fields.String(FieldCurrency)
		require.True(t, ok, text)
		assert.Equal(t, want, code, text)
	}
}

func TestDateFallsBackToMessageBody(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("ACME SUPPLIES LLC\nInvoice INV-1", "Date: 12/03/2025")
	date, ok := fields.String(FieldDate)
	require.True(t, ok)
	assert.Equal(t, "12/03/2025", date)
}

func TestAbsentFieldsOmitted(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("nothing of interest here", "")
	_, ok := fields[FieldTotalAmount]
	assert.False(t, ok)
	_, ok = fields[FieldVendorName]
	assert.False(t, ok)
}

func TestAverageConfidence(t *testing.T) {
	assert.Equal(t, 0.5, FieldMap{}.AverageConfidence())

	m := FieldMap{
		"a": {Confidence: 0.9},
		"b": {Confidence: 0.7},
	}
	assert.InDelta(t, 0.8, m.AverageConfidence(), 0.001)
}
