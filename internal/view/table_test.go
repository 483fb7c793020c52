package view

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minimart/internal/model"
)

func TestLayoutColumns_CatalogWidths(t *testing.T) {
	// No. / Item / Qty / Price against the default frame.
	layout := LayoutColumns([]int{3, 20, 4, 6}, 62)

	assert.Equal(t, 5, layout.AverageGap)
	assert.Equal(t, 8, layout.LastGap)
}

func TestLayoutColumns_CartWidths(t *testing.T) {
	// The cart adds an Amount column, so the remainder shifts.
	layout := LayoutColumns([]int{3, 20, 4, 6, 6}, 62)

	assert.Equal(t, 3, layout.AverageGap)
	assert.Equal(t, 7, layout.LastGap)
}

func TestLayoutColumns_RemainderGoesToLastGap(t *testing.T) {
	layout := LayoutColumns([]int{4, 4}, 20)

	// totalSpace = 20-8-2 = 10 over 3 gaps: avg 3, remainder 1.
	assert.Equal(t, 3, layout.AverageGap)
	assert.Equal(t, 5, layout.LastGap)
}

func testColumns() []Column[model.Product] {
	return []Column[model.Product]{
		{Label: "No.", Width: 3, Align: AlignLeft, Value: func(p model.Product) string { return "1" }},
		{Label: "Item", Width: 20, Align: AlignLeft, Value: func(p model.Product) string { return p.Name }},
		{Label: "Qty", Width: 4, Align: AlignLeft, Value: func(p model.Product) string { return "10" }},
		{Label: "Price", Width: 6, Align: AlignRight, Value: func(p model.Product) string { return p.Price.StringFixed(2) }},
	}
}

func TestHeader_FillsFrameExactly(t *testing.T) {
	line := Header(testColumns(), 62)

	assert.Len(t, line, 63)
	assert.True(t, strings.HasPrefix(line, "|"))
	assert.True(t, strings.HasSuffix(line, "|"))
	assert.Contains(t, line, "No.")
	assert.Contains(t, line, "Price")
}

func TestRows_OneLinePerItemSameWidthAsHeader(t *testing.T) {
	items := []model.Product{
		{ID: 1, Name: "Baked Beans", Quantity: 10, Price: decimal.RequireFromString("2.50")},
		{ID: 2, Name: "Tomato Soup", Quantity: 8, Price: decimal.RequireFromString("3.20")},
	}

	header := Header(testColumns(), 62)
	lines := Rows(testColumns(), items, 62)

	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Len(t, line, len(header))
	}
	assert.Contains(t, lines[0], "Baked Beans")
	assert.Contains(t, lines[0], "2.50")
	assert.Contains(t, lines[1], "Tomato Soup")
}

func TestRows_RightAlignedCellsPadInFront(t *testing.T) {
	cols := []Column[model.Product]{
		{Label: "Price", Width: 6, Align: AlignRight, Value: func(p model.Product) string { return p.Price.StringFixed(2) }},
	}
	lines := Rows(cols, []model.Product{{Price: decimal.RequireFromString("2.5")}}, 20)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "  2.50")
}

func TestRows_TruncatesOverlongCell(t *testing.T) {
	cols := []Column[model.Product]{
		{Label: "Item", Width: 5, Align: AlignLeft, Value: func(p model.Product) string { return p.Name }},
	}
	lines := Rows(cols, []model.Product{{Name: "Watermelon"}}, 20)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Water")
	assert.NotContains(t, lines[0], "Watermelon")
}

func TestRunningTotal(t *testing.T) {
	items := []model.CartItem{
		{Amount: decimal.RequireFromString("5.00")},
		{Amount: decimal.RequireFromString("6.40")},
		{Amount: decimal.RequireFromString("2.10")},
	}

	assert.Equal(t, "13.50", RunningTotal(items).StringFixed(2))
}

func TestRunningTotal_Empty(t *testing.T) {
	assert.True(t, RunningTotal(nil).IsZero())
}

func TestFrameHelpers_MatchRowWidth(t *testing.T) {
	header := Header(testColumns(), 62)

	assert.Len(t, Divider(62, '='), len(header))
	assert.Len(t, BoxLine("hello", 62), len(header))
	assert.Len(t, Center("WELCOME", 62), len(header))
}

func TestCenter_LongTextIsClipped(t *testing.T) {
	long := strings.Repeat("x", 40)

	assert.Len(t, Center(long, 20), 21)
}
