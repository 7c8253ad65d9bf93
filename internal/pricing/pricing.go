// Package pricing derives sale information from a product's list price (MRP)
// and selling price. Every function is total: degenerate inputs produce the
// zero value instead of an error.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Sale bundles the derived sale fields of one (mrp, price) pair.
type Sale struct {
	OnSale     bool
	Percentage int
	Savings    float64
}

// IsOnSale reports price < mrp with a positive mrp. A non-positive price still
// counts as on sale here even though SalePercentage returns 0 for it.
func IsOnSale(mrp, price float64) bool {
	if !finite(mrp) || !finite(price) {
		return false
	}
	return price < mrp && mrp > 0
}

// SalePercentage is the discount off mrp rounded half away from zero, or 0
// when either amount is non-positive or price >= mrp.
func SalePercentage(mrp, price float64) int {
	if !finite(mrp) || !finite(price) || mrp <= 0 || price <= 0 || price >= mrp {
		return 0
	}
	m := decimal.NewFromFloat(mrp)
	p := decimal.NewFromFloat(price)
	return int(m.Sub(p).Div(m).Mul(hundred).Round(0).IntPart())
}

// Savings is max(0, mrp-price).
func Savings(mrp, price float64) float64 {
	if !finite(mrp) || !finite(price) {
		return 0
	}
	diff := decimal.NewFromFloat(mrp).Sub(decimal.NewFromFloat(price))
	if !diff.IsPositive() {
		return 0
	}
	return diff.InexactFloat64()
}

func Derive(mrp, price float64) Sale {
	return Sale{
		OnSale:     IsOnSale(mrp, price),
		Percentage: SalePercentage(mrp, price),
		Savings:    Savings(mrp, price),
	}
}

// LineTotal is price * quantity without float drift. NaN or infinite prices
// total 0.
func LineTotal(price float64, quantity int) float64 {
	if !finite(price) {
		return 0
	}
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// finite reports x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
