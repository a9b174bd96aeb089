package categorize

import (
	"context"
	"log/slog"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/entity"
	"github.com/danielolaitan/invoice-agent/internal/llm"
)

// Categorizer assigns a category and a per-category sequential BOM number to
// each line item. The classifier is optional: when it is nil, errors, or
// returns unusable output, keyword matching takes over. Classifier problems
// never propagate to the caller.
type Categorizer struct {
	classifier llm.ItemClassifier
	logger     *slog.Logger
}

func NewCategorizer(classifier llm.ItemClassifier, logger *slog.Logger) *Categorizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Categorizer{classifier: classifier, logger: logger}
}

// Categorize returns the items with Category and BOMNumber populated,
// preserving item order.
func (c *Categorizer) Categorize(ctx context.Context, items []entity.LineItem) []entity.LineItem {
	if len(items) == 0 {
		return nil
	}

	categories := c.classify(ctx, items)

	out := make([]entity.LineItem, len(items))
	counters := map[constants.Category]int{}
	for i, item := range items {
		cat := categories[i]
		counters[cat]++
		item.Category = cat
		item.BOMNumber = constants.BOMNumber(cat, counters[cat])
		out[i] = item
	}
	return out
}

func (c *Categorizer) classify(ctx context.Context, items []entity.LineItem) []constants.Category {
	if c.classifier == nil {
		return c.keywordAll(items)
	}

	descriptions := make([]string, len(items))
	for i, item := range items {
		descriptions[i] = item.Description
	}

	results, err := c.classifier.Classify(ctx, descriptions)
	if err != nil {
		c.logger.Warn("classifier unavailable, using keyword fallback", "error", err)
		return c.keywordAll(items)
	}

	byIndex := make(map[int]string, len(results))
	for _, r := range results {
		byIndex[r.ItemIndex] = r.Category
	}

	categories := make([]constants.Category, len(items))
	for i := range items {
		// items are 1-indexed on the wire; unreturned or off-enum -> Other
		cat, _ := constants.Canonicalize(byIndex[i+1])
		categories[i] = cat
	}
	return categories
}

func (c *Categorizer) keywordAll(items []entity.LineItem) []constants.Category {
	categories := make([]constants.Category, len(items))
	for i, item := range items {
		categories[i] = KeywordCategory(item.Description)
	}
	return categories
}
