package entity

import "github.com/danielolaitan/invoice-agent/constants"

// LineItem is one parsed table row from a document. Order is preserved from
// the document. Category and BOMNumber are assigned in a second pass by the
// categorizer. Cells whose numeric parse failed keep their original string
// under Raw.
type LineItem struct {
	Description string             `json:"description,omitempty"`
	Quantity    float64            `json:"quantity,omitempty"`
	UnitPrice   float64            `json:"unit_price,omitempty"`
	Subtotal    float64            `json:"subtotal,omitempty"`
	SKU         string             `json:"sku,omitempty"`
	Category    constants.Category `json:"category,omitempty"`
	BOMNumber   string             `json:"bom_number,omitempty"`
	Raw         map[string]string  `json:"raw,omitempty"`
}

// HasAmount reports whether the row carries any monetary value.
func (li LineItem) HasAmount() bool {
	return li.Subtotal != 0 || li.UnitPrice != 0
}
