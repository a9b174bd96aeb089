package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendorSkipsGreetingLines(t *testing.T) {
	text := "Hi John,\n\nGood afternoon,\n\nACME SUPPLIES LLC\nInvoice INV-100"
	fields := NewEngine(nil).ExtractAll(text, "")

	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "ACME SUPPLIES", vendor)
	assert.NotContains(t, vendor, "Hi John")
	assert.NotContains(t, vendor, "Good afternoon")
	assert.InDelta(t, 0.90, fields[FieldVendorName].Confidence, 0.001)
	assert.Equal(t, "header_pattern", fields[FieldVendorName].Provenance.Method)
}

func TestVendorAllCapsSuffixWords(t *testing.T) {
	cases := map[string]string{
		"THE HOME DEPOT\nreceipt body":    "HOME DEPOT",
		"NOVA RECON SERVICES\nline":       "NOVA RECON SERVICES",
		"GOTHAM CONSTRUCTION\nInvoice #1": "GOTHAM CONSTRUCTION",
	}
	for text, want := range cases {
		fields := NewEngine(nil).ExtractAll(text, "")
		vendor, ok := fields.String(FieldVendorName)
		require.True(t, ok, text)
		assert.Equal(t, want, vendor, text)
	}
}

func TestVendorMixedCaseLegalSuffix(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("Baldwin Builders Ltd\nInvoice", "")
	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "Baldwin Builders", vendor)
}

func TestVendorBeforeMarkerWord(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("Brightline Electrical Customer Receipt\nDate: 01/02/2025", "")
	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "Brightline Electrical", vendor)
}

func TestVendorStandaloneUppercaseLine(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("BRAVO STEEL WORKS\n123 Yard Road", "")
	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "BRAVO STEEL WORKS", vendor)
}

func TestVendorStripsLeadingArticle(t *testing.T) {
	fields := NewEngine(nil).ExtractAll("THE HOME DEPOT\n", "")
	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "HOME DEPOT", vendor)
}

func TestVendorNeverTakenFromMessageBody(t *testing.T) {
	// Attachment text present but with no recognizable vendor: the engine
	// must not fall through to the body, which contains only a greeting.
	fields := NewEngine(nil).ExtractAll("itemized charges follow", "GOOD MORNING CREW LLC\nsee attached")
	_, ok := fields.String(FieldVendorName)
	assert.False(t, ok)
}

func TestVendorSkipsMetadataLines(t *testing.T) {
	text := "From: billing@acme.test\nSubject: your invoice\nDate: 12/01/2025\nACME SUPPLIES LLC\n"
	fields := NewEngine(nil).ExtractAll(text, "")
	vendor, ok := fields.String(FieldVendorName)
	require.True(t, ok)
	assert.Equal(t, "ACME SUPPLIES", vendor)
}
