// Package view is the pricing/table engine: pure layout and formatting
// helpers shared by every tabular screen (catalog listing, cart listing,
// receipt). It computes column padding from the frame width, formats rows
// through typed column descriptors and sums running totals. No I/O happens
// here; callers print the returned lines.
package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"minimart/internal/model"
)

// Layout is the computed spacing between table columns.
type Layout struct {
	// AverageGap is the blank run printed before each column.
	AverageGap int
	// LastGap is the blank run after the final column; it absorbs the
	// division remainder so the row always fills the frame exactly.
	LastGap int
}

// LayoutColumns balances the free space of a frame across the gaps around
// the given column widths. There is one gap before each column plus a
// closing gap, and two characters are reserved for the frame borders.
func LayoutColumns(widths []int, totalWidth int) Layout {
	used := 0
	for _, w := range widths {
		used += w
	}

	gaps := len(widths) + 1
	totalSpace := totalWidth - used - 2
	avg := totalSpace / gaps
	left := totalSpace - avg*gaps

	return Layout{AverageGap: avg, LastGap: avg + left + 1}
}

// Align selects cell padding direction.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column: a display label, a fixed cell width,
// an alignment and a formatter extracting the cell text from a row.
type Column[T any] struct {
	Label string
	Width int
	Align Align
	Value func(T) string
}

// Header renders the column label line of a table.
func Header[T any](cols []Column[T], totalWidth int) string {
	cells := make([]string, len(cols))
	widths := make([]int, len(cols))
	for i, c := range cols {
		cells[i] = c.Label
		widths[i] = c.Width
	}
	return row(cols, cells, LayoutColumns(widths, totalWidth))
}

// Rows renders one framed line per element of items.
func Rows[T any](cols []Column[T], items []T, totalWidth int) []string {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = c.Width
	}
	layout := LayoutColumns(widths, totalWidth)

	lines := make([]string, len(items))
	for i, item := range items {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.Value(item)
		}
		lines[i] = row(cols, cells, layout)
	}
	return lines
}

func row[T any](cols []Column[T], cells []string, layout Layout) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, c := range cols {
		b.WriteString(spaces(layout.AverageGap))
		b.WriteString(pad(cells[i], c.Width, c.Align))
	}
	b.WriteString(spaces(layout.LastGap))
	b.WriteByte('|')
	return b.String()
}

// RunningTotal sums the amount field across all cart lines.
func RunningTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// Frame helpers.
//
// Every framed line is totalWidth+1 characters: the gap arithmetic above
// reserves two border characters but the closing gap carries a +1, so the
// dividers and box lines match the table rows.

// Divider is a full-width separator line.
func Divider(totalWidth int, symbol byte) string {
	return strings.Repeat(string(symbol), totalWidth+1)
}

// BoxLine frames text between the left and right borders.
func BoxLine(text string, totalWidth int) string {
	return "|" + pad(text, totalWidth-1, AlignLeft) + "|"
}

// Center centers text within the frame width.
func Center(text string, totalWidth int) string {
	width := totalWidth + 1
	if len(text) >= width {
		return text[:width]
	}
	front := (width - len(text)) / 2
	return spaces(front) + text + spaces(width-front-len(text))
}

func pad(text string, width int, align Align) string {
	if len(text) > width {
		return text[:width]
	}
	fill := spaces(width - len(text))
	if align == AlignRight {
		return fill + text
	}
	return text + fill
}

func spaces(n int) string {
	if n < 1 {
		return ""
	}
	return strings.Repeat(" ", n)
}
