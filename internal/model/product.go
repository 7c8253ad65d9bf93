package model

// Product is one catalog entry. Sale fields (on-sale flag, percentage,
// savings) are never stored here; derive them with the pricing package.
type Product struct {
	ID          int64    `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Description string   `db:"description" json:"description"`
	Category    string   `db:"category" json:"category"`
	Price       float64  `db:"price" json:"price"`
	MRP         float64  `db:"mrp" json:"mrp"`
	Image       string   `db:"image" json:"image"`
	Images      []string `db:"-" json:"images"`
	InStock     bool     `db:"in_stock" json:"inStock"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// Gallery returns the images for the detail view, falling back to the card
// image when no gallery was provided.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}
