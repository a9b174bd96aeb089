package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineItemsQuantityDefaultsToOne(t *testing.T) {
	table := Table{
		{"Description", "Amount"},
		{"Octagon box", "$50.00"},
	}
	items := ParseLineItems(table)
	require.Len(t, items, 1)
	assert.Equal(t, "Octagon box", items[0].Description)
	assert.Equal(t, 50.00, items[0].Subtotal)
	assert.Equal(t, 1.0, items[0].Quantity)
}

func TestParseLineItemsCanonicalColumns(t *testing.T) {
	table := Table{
		{"Item", "Qty", "Unit Price", "Total", "SKU"},
		{"12-2 NM-B wire 250ft", "2", "$85.00", "$170.00", "WR-122"},
		{"Wall plate", "10", "$0.89", "$8.90", "WP-001"},
	}
	items := ParseLineItems(table)
	require.Len(t, items, 2)

	assert.Equal(t, "12-2 NM-B wire 250ft", items[0].Description)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 85.00, items[0].UnitPrice)
	assert.Equal(t, 170.00, items[0].Subtotal)
	assert.Equal(t, "WR-122", items[0].SKU)

	assert.Equal(t, 10.0, items[1].Quantity)
}

func TestParseLineItemsHeaderNotFirstRow(t *testing.T) {
	table := Table{
		{"ACME SUPPLIES", "Invoice 42"},
		{"Description", "Qty", "Amount"},
		{"Conduit 10ft", "4", "$31.00"},
	}
	items := ParseLineItems(table)
	require.Len(t, items, 1)
	assert.Equal(t, "Conduit 10ft", items[0].Description)
	assert.Equal(t, 4.0, items[0].Quantity)
	assert.Equal(t, 31.00, items[0].Subtotal)
}

func TestParseLineItemsUnparsableNumericKeepsOriginal(t *testing.T) {
	table := Table{
		{"Description", "Qty", "Amount"},
		{"Misc freight", "N/A", "$12.00"},
	}
	items := ParseLineItems(table)
	require.Len(t, items, 1)
	assert.Equal(t, "N/A", items[0].Raw["quantity"])
	// no parsed quantity, but an amount: defaults to one unit
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, 12.00, items[0].Subtotal)
}

func TestParseLineItemsSkipsEmptyRows(t *testing.T) {
	table := Table{
		{"Description", "Qty", "Amount"},
		{"", "", ""},
		{"Valid item", "1", "$5.00"},
	}
	items := ParseLineItems(table)
	require.Len(t, items, 1)
	assert.Equal(t, "Valid item", items[0].Description)
}

func TestParseLineItemsRejectsSingleRowTable(t *testing.T) {
	assert.Nil(t, ParseLineItems(Table{{"Description", "Qty"}}))
}

func TestDetectTablesRequiresTwoRows(t *testing.T) {
	text := "Description    Qty    Amount\nWire spool     2      $85.00\nplain paragraph text\nlone   columns"
	tables := DetectTables(text)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0], 2)
	assert.Equal(t, []string{"Description", "Qty", "Amount"}, tables[0][0])
	assert.Equal(t, []string{"Wire spool", "2", "$85.00"}, tables[0][1])
}

func TestDetectTablesSplitsOnColumnRuns(t *testing.T) {
	text := "Item  Rate  Amount\nConsulting work  $485.00  $485.00"
	tables := DetectTables(text)
	require.Len(t, tables, 1)
	items := ParseLineItems(tables[0])
	require.Len(t, items, 1)
	assert.Equal(t, "Consulting work", items[0].Description)
	assert.Equal(t, 485.00, items[0].UnitPrice)
	assert.Equal(t, 1.0, items[0].Quantity)
}
