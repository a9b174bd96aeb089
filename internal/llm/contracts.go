package llm

import "context"

// ItemCategory is one classified line item, 1-indexed in submission order.
type ItemCategory struct {
	ItemIndex int    `json:"item_index"`
	Category  string `json:"category"`
}

// ItemClassifier is the interface the categorizer depends on. Implementations
// may be unavailable or return garbage; callers must fall back to keyword
// classification and never propagate classifier errors.
type ItemClassifier interface {
	Classify(ctx context.Context, descriptions []string) ([]ItemCategory, error)
}
