package categorize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/llm"
)

type fakeClassifier struct {
	results []llm.ItemCategory
	err     error
	calls   int
}

func (f *fakeClassifier) Classify(_ context.Context, _ []string) ([]llm.ItemCategory, error) {
	f.calls++
	return f.results, f.err
}

func items(descriptions ...string) []entity.LineItem {
	out := make([]entity.LineItem, len(descriptions))
	for i, d := range descriptions {
		out[i] = entity.LineItem{Description: d, Quantity: 1}
	}
	return out
}

func TestBOMNumbersPerCategoryInItemOrder(t *testing.T) {
	classifier := &fakeClassifier{results: []llm.ItemCategory{
		{ItemIndex: 1, Category: "Electrical"},
		{ItemIndex: 2, Category: "Electrical"},
		{ItemIndex: 3, Category: "Hardware"},
		{ItemIndex: 4, Category: "Electrical"},
		{ItemIndex: 5, Category: "Other"},
	}}
	c := NewCategorizer(classifier, nil)

	out := c.Categorize(context.Background(), items("a", "b", "c", "d", "e"))
	require.Len(t, out, 5)

	boms := make([]string, len(out))
	for i, item := range out {
		boms[i] = item.BOMNumber
	}
	assert.Equal(t, []string{"ELE-001", "ELE-002", "HAR-001", "ELE-003", "OTH-001"}, boms)
}

func TestClassifierErrorFallsBackToKeywords(t *testing.T) {
	classifier := &fakeClassifier{err: errors.New("connection refused")}
	c := NewCategorizer(classifier, nil)

	out := c.Categorize(context.Background(), items("12-2 NM-B wire", "galvanized bolt"))
	require.Len(t, out, 2)
	assert.Equal(t, constants.Electrical, out[0].Category)
	assert.Equal(t, constants.Hardware, out[1].Category)
	assert.Equal(t, "ELE-001", out[0].BOMNumber)
	assert.Equal(t, "HAR-001", out[1].BOMNumber)
}

func TestNilClassifierUsesKeywords(t *testing.T) {
	c := NewCategorizer(nil, nil)

	out := c.Categorize(context.Background(), items("pvc pipe elbow", "mystery widget"))
	require.Len(t, out, 2)
	assert.Equal(t, constants.Plumbing, out[0].Category)
	assert.Equal(t, constants.Other, out[1].Category)
}

func TestOffEnumAndUnreturnedItemsDefaultToOther(t *testing.T) {
	classifier := &fakeClassifier{results: []llm.ItemCategory{
		{ItemIndex: 1, Category: "Gardening"}, // not in the fixed set
		// item 2 not returned at all
	}}
	c := NewCategorizer(classifier, nil)

	out := c.Categorize(context.Background(), items("a", "b"))
	require.Len(t, out, 2)
	assert.Equal(t, constants.Other, out[0].Category)
	assert.Equal(t, constants.Other, out[1].Category)
	assert.Equal(t, "OTH-001", out[0].BOMNumber)
	assert.Equal(t, "OTH-002", out[1].BOMNumber)
}

func TestEmptyInputSkipsClassifier(t *testing.T) {
	classifier := &fakeClassifier{}
	c := NewCategorizer(classifier, nil)

	assert.Nil(t, c.Categorize(context.Background(), nil))
	assert.Zero(t, classifier.calls)
}

func TestKeywordCategoryFirstMatchWins(t *testing.T) {
	cases := map[string]constants.Category{
		"octagon box 4in":        constants.Electrical,
		"box of framing nails":   constants.Electrical, // "box" hits Electrical before Hardware sees "nail"
		"claw hammer 16oz":       constants.Tools,
		"r13 insulation batt":    constants.Materials,
		"nitrile gloves":         constants.Safety,
		"portland cement 94lb":   constants.Concrete,
		"unclassifiable gadget":  constants.Other,
		"2x4 stud premium grade": constants.Lumber,
	}
	for desc, want := range cases {
		assert.Equal(t, want, KeywordCategory(desc), desc)
	}
}
