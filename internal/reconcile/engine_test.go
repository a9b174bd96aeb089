package reconcile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/extract"
)

func testVendors() []entity.Vendor {
	return []entity.Vendor{
		{ID: 1, CanonicalName: "The Home Depot", Aliases: []string{"Home Depot"}},
		{ID: 2, CanonicalName: "ACME Supplies Pvt Ltd", Aliases: []string{"ACME"}},
		{ID: 3, CanonicalName: "Baldwin Builders"},
	}
}

func invoiceWith(fields extract.FieldMap) *entity.Invoice {
	return &entity.Invoice{
		ID:                   uuid.New(),
		SourceEmailID:        "msg-1",
		Extracted:            fields,
		ReconciliationStatus: constants.StatusNeedsReview,
	}
}

func TestAliasMatchAutoMatchesCaseInsensitively(t *testing.T) {
	e := NewEngine(testVendors(), nil, nil)

	inv := invoiceWith(extract.FieldMap{
		extract.FieldVendorName: {Value: "HOME DEPOT", Confidence: 0.9},
	})

	require.True(t, e.ReconcileInvoice(inv))
	require.NotNil(t, inv.Normalized.VendorID)
	assert.Equal(t, 1, *inv.Normalized.VendorID)
	assert.Equal(t, "The Home Depot", inv.Normalized.VendorName)
	assert.Equal(t, constants.StatusAutoMatched, inv.ReconciliationStatus)
	assert.Nil(t, inv.Extra.Suggestions)
}

func TestNearMissBecomesSuggestionNotMatch(t *testing.T) {
	e := NewEngine(testVendors(), nil, nil)

	// "ACME Supplies" vs "ACME Supplies Pvt Ltd" scores in the suggestion band
	inv := invoiceWith(extract.FieldMap{
		extract.FieldVendorName: {Value: "ACME Supplies", Confidence: 0.9},
	})

	require.True(t, e.ReconcileInvoice(inv))
	assert.Nil(t, inv.Normalized.VendorID)
	assert.Equal(t, constants.StatusNeedsReview, inv.ReconciliationStatus)

	require.NotNil(t, inv.Extra.Suggestions)
	require.NotEmpty(t, inv.Extra.Suggestions.Vendors)
	top := inv.Extra.Suggestions.Vendors[0]
	assert.Equal(t, 2, top.ID)
	assert.Equal(t, "ACME Supplies Pvt Ltd", top.Name)
	assert.GreaterOrEqual(t, top.Score, 60.0)
	assert.Less(t, top.Score, 90.0)
}

func TestNoCandidateAboveFloorLeavesInvoiceAlone(t *testing.T) {
	e := NewEngine(testVendors(), nil, nil)

	inv := invoiceWith(extract.FieldMap{
		extract.FieldVendorName: {Value: "Zzyzx Quarry", Confidence: 0.9},
	})

	assert.False(t, e.ReconcileInvoice(inv))
	assert.Nil(t, inv.Normalized.VendorID)
	assert.Nil(t, inv.Extra.Suggestions)
	assert.Equal(t, constants.StatusNeedsReview, inv.ReconciliationStatus)
}

func TestSuggestionsSortedAndCapped(t *testing.T) {
	vendors := []entity.Vendor{
		{ID: 1, CanonicalName: "Brightline Electric"},
		{ID: 2, CanonicalName: "Brightline Electrical"},
		{ID: 3, CanonicalName: "Brightline Electrics Inc"},
		{ID: 4, CanonicalName: "Brightline Electrical Suppl"},
	}
	e := NewEngine(vendors, nil, nil)

	_, _, suggestions := e.MatchVendor("Brightline Electricals")
	require.LessOrEqual(t, len(suggestions), 3)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	e := NewEngine(testVendors(), nil, nil)

	total := 326.18
	inv := invoiceWith(extract.FieldMap{
		extract.FieldVendorName:  {Value: "Home Depot", Confidence: 0.9},
		extract.FieldTotalAmount: {Value: total, Confidence: 0.95},
		extract.FieldDate:        {Value: "01/15/2024", Confidence: 0.85},
	})

	require.True(t, e.ReconcileInvoice(inv))
	first := *inv

	require.True(t, e.ReconcileInvoice(inv))
	assert.Equal(t, first.Normalized, inv.Normalized)
	assert.Equal(t, constants.StatusAutoMatched, inv.ReconciliationStatus)
}

func TestManualStatusIsNeverOverwritten(t *testing.T) {
	e := NewEngine(testVendors(), nil, nil)

	inv := invoiceWith(extract.FieldMap{
		extract.FieldVendorName: {Value: "Home Depot", Confidence: 0.9},
	})
	inv.ReconciliationStatus = constants.StatusManual

	e.ReconcileInvoice(inv)
	assert.Equal(t, constants.StatusManual, inv.ReconciliationStatus)
}

func TestAmountAndDateCopiedVerbatim(t *testing.T) {
	e := NewEngine(nil, nil, nil)

	inv := invoiceWith(extract.FieldMap{
		extract.FieldTotalAmount: {Value: 1234.56, Confidence: 0.95},
		extract.FieldCurrency:    {Value: "USD", Confidence: 0.85},
		extract.FieldDate:        {Value: "2024-03-07", Confidence: 0.85},
	})

	require.True(t, e.ReconcileInvoice(inv))
	require.NotNil(t, inv.Normalized.TotalAmount)
	assert.Equal(t, 1234.56, *inv.Normalized.TotalAmount)
	assert.Equal(t, "USD", inv.Normalized.Currency)
	assert.Equal(t, "2024-03-07", inv.Normalized.Date)
}

func TestProjectMatchFillsNormalizedProject(t *testing.T) {
	projects := []entity.Project{
		{ID: 7, Name: "Maple Street Renovation", Codes: []string{"MSR-2024"}},
	}
	e := NewEngine(nil, projects, nil)

	inv := invoiceWith(extract.FieldMap{
		"project_code": {Value: "msr-2024", Confidence: 0.8},
	})

	require.True(t, e.ReconcileInvoice(inv))
	require.NotNil(t, inv.Normalized.ProjectID)
	assert.Equal(t, 7, *inv.Normalized.ProjectID)
	assert.Equal(t, "Maple Street Renovation", inv.Normalized.ProjectName)
}

type fakeRegistry struct {
	vendors  []entity.Vendor
	projects []entity.Project
}

func (f *fakeRegistry) ListVendors(context.Context) ([]entity.Vendor, error)   { return f.vendors, nil }
func (f *fakeRegistry) ListProjects(context.Context) ([]entity.Project, error) { return f.projects, nil }

type fakeStore struct {
	pending []*entity.Invoice
	saved   []*entity.Invoice
}

func (f *fakeStore) ListNeedsReconciliation(_ context.Context, limit int) ([]*entity.Invoice, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeStore) SaveReconciliation(_ context.Context, inv *entity.Invoice) error {
	f.saved = append(f.saved, inv)
	return nil
}

func TestWorkerSavesOnlyUpdatedInvoices(t *testing.T) {
	matched := invoiceWith(extract.FieldMap{
		extract.FieldVendorName: {Value: "Baldwin Builders", Confidence: 0.9},
	})
	untouched := invoiceWith(extract.FieldMap{})

	store := &fakeStore{pending: []*entity.Invoice{matched, untouched}}
	w := NewWorker(&fakeRegistry{vendors: testVendors()}, store, 0, 0, nil)

	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, store.saved, 1)
	assert.Equal(t, matched.ID, store.saved[0].ID)
	assert.Equal(t, constants.StatusAutoMatched, store.saved[0].ReconciliationStatus)
}

func TestWorkerRespectsBatchLimit(t *testing.T) {
	var pending []*entity.Invoice
	for i := 0; i < 60; i++ {
		pending = append(pending, invoiceWith(extract.FieldMap{
			extract.FieldVendorName: {Value: "Home Depot", Confidence: 0.9},
		}))
	}
	store := &fakeStore{pending: pending}
	w := NewWorker(&fakeRegistry{vendors: testVendors()}, store, 0, 0, nil)

	n, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
