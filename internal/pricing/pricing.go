// Package pricing computes order totals from line-item snapshots. It is pure
// and storage-free so totals can be verified independently of persistence.
package pricing

import (
	"github.com/shopspring/decimal"

	"pdv_backend/internal/models"
)

// ComputeTotal sums the order: each line contributes
// unit price x quantity, plus its add-ons at add-on price x add-on quantity.
// Add-ons are selected per line, not per unit. Decimal arithmetic keeps
// accumulation exact; rounding to two places happens only at presentation.
func ComputeTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		for _, sel := range item.AddOns {
			line = line.Add(sel.Price.Mul(decimal.NewFromInt(int64(sel.Quantity))))
		}
		total = total.Add(line)
	}
	return total
}
