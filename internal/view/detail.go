package view

import (
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

type Detail struct {
	Card
	Quantity      int      `json:"quantity"`
	CanDecrease   bool     `json:"canDecrease"`
	Images        []string `json:"images"`
	SelectedImage int      `json:"selectedImage"`
	MainImage     string   `json:"mainImage"`
	ShowGallery   bool     `json:"showGallery"`
	DiscountLabel string   `json:"discountLabel,omitempty"`
	Total         string   `json:"total"`
}

// NewDetail builds the product modal. quantity is raised to 1 and
// selectedImage is clamped into the gallery.
func NewDetail(p model.Product, quantity, selectedImage int, f *pricing.Formatter) Detail {
	if quantity < 1 {
		quantity = 1
	}

	images := p.Gallery()
	if images == nil {
		images = []string{}
	}
	switch {
	case selectedImage < 0 || len(images) == 0:
		selectedImage = 0
	case selectedImage >= len(images):
		selectedImage = len(images) - 1
	}

	d := Detail{
		Card:          NewCard(p, f),
		Quantity:      quantity,
		CanDecrease:   quantity > 1,
		Images:        images,
		SelectedImage: selectedImage,
		ShowGallery:   len(images) > 1,
		Total:         currency + f.Amount(pricing.LineTotal(p.Price, quantity)),
	}
	if len(images) > 0 {
		d.MainImage = images[selectedImage]
	}
	if d.SaleBadge != "" {
		d.DiscountLabel = d.SaleBadge + " OFF"
	}
	return d
}
