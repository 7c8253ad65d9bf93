package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

// DefaultBaseURL is the chat service the hand-off link points at.
const DefaultBaseURL = "https://wa.me"

// Compose fills the message template for one product line. The original
// price and discount lines are always present; they are empty unless the
// product is on sale.
func Compose(p model.Product, quantity int, tmpl model.MessageTemplate, f *pricing.Formatter) string {
	d := tmpl.ProductDetails
	sale := pricing.Derive(p.MRP, p.Price)

	var originalPrice, discount string
	if sale.OnSale {
		originalPrice = strings.ReplaceAll(d.OriginalPrice, "{originalPrice}", f.Amount(p.MRP))
		discount = strings.ReplaceAll(d.Discount, "{discountPercentage}", strconv.Itoa(sale.Percentage))
	}

	lines := []string{
		tmpl.Greeting,
		"",
		"*Product Details:*",
		strings.ReplaceAll(d.Name, "{productName}", p.Name),
		strings.ReplaceAll(d.Price, "{price}", f.Amount(p.Price)),
		strings.ReplaceAll(d.Category, "{category}", p.Category),
		strings.ReplaceAll(d.Quantity, "{quantity}", strconv.Itoa(quantity)),
		strings.ReplaceAll(d.Total, "{total}", f.Amount(pricing.LineTotal(p.Price, quantity))),
		"",
		originalPrice,
		discount,
		"",
		tmpl.Closing,
	}
	return strings.Join(lines, "\n")
}

// Encode percent-encodes message for a query value, spaces as %20.
func Encode(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// HandoffURL builds <baseURL>/<recipient>?text=<encoded message>.
func HandoffURL(baseURL, recipient, message string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(recipient) + "?text=" + Encode(message)
}
