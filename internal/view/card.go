// Package view turns query results and products into render-ready values.
// Everything here is a pure function of its inputs; the client only draws.
package view

import (
	"fmt"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

const currency = "₹"

type Card struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	MRP         string `json:"mrp,omitempty"`
	OnSale      bool   `json:"onSale"`
	SaleBadge   string `json:"saleBadge,omitempty"`
	Savings     string `json:"savings,omitempty"`
	InStock     bool   `json:"inStock"`
	BuyLabel    string `json:"buyLabel"`
}

// NewCard builds the grid card. The struck-through MRP and the savings line
// only appear while the product is on sale; the badge additionally needs a
// non-zero rounded percentage.
func NewCard(p model.Product, f *pricing.Formatter) Card {
	sale := pricing.Derive(p.MRP, p.Price)

	c := Card{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Price:       currency + f.Amount(p.Price),
		OnSale:      sale.OnSale,
		InStock:     p.InStock,
		BuyLabel:    "Buy Now",
	}
	if !p.InStock {
		c.BuyLabel = "Out of Stock"
	}
	if sale.OnSale {
		c.MRP = currency + f.Amount(p.MRP)
		c.Savings = "Save " + currency + f.Amount(sale.Savings)
		if sale.Percentage > 0 {
			c.SaleBadge = fmt.Sprintf("-%d%%", sale.Percentage)
		}
	}
	return c
}
