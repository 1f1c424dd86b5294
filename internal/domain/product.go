package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RestockSoonThreshold is the fixed quantity at or below which a product
// shows up in the "buy soon" list.
const RestockSoonThreshold = 10

type Product struct {
	ID        int
	Name      string
	Qty       int
	Category  *string
	Price     *decimal.Decimal
	MinQty    *int
	CreatedAt time.Time
}

// IsLowStock reports whether the product has a minimum configured and is at or
// below it. Products without MinQty are never low stock.
func (p Product) IsLowStock() bool {
	if p.MinQty == nil {
		return false
	}
	return p.Qty <= *p.MinQty
}

func (p Product) NeedsRestockSoon() bool {
	return p.Qty <= RestockSoonThreshold
}

// StockValue is price times quantity, with a missing price counted as zero.
func (p Product) StockValue() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(p.Qty)))
}

// WithQty returns a copy of the product holding qty, floored at zero.
func (p Product) WithQty(qty int) Product {
	p.Qty = max(0, qty)
	return p
}

// AdjustedBy returns a copy with delta applied to the quantity. The sum
// saturates at the int range before the zero floor, so a large stock never
// wraps around.
func (p Product) AdjustedBy(delta int) Product {
	switch {
	case delta > 0 && p.Qty > math.MaxInt-delta:
		return p.WithQty(math.MaxInt)
	case delta < 0 && p.Qty < math.MinInt-delta:
		return p.WithQty(0)
	}
	return p.WithQty(p.Qty + delta)
}
