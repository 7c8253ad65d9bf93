package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront-service/internal/fixtures"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
)

var fmtr = pricing.NewFormatter(pricing.DefaultLocale)

func template(t *testing.T) model.MessageTemplate {
	t.Helper()
	cfg, err := fixtures.Messaging()
	require.NoError(t, err)
	return cfg.MessageTemplate
}

func TestComposeOnSale(t *testing.T) {
	p := model.Product{Name: "Royal Oud Intense", Category: "Oud", Price: 3499, MRP: 4999}

	got := Compose(p, 2, template(t), fmtr)

	want := strings.Join([]string{
		"Hello! I'd like to order from Aroma Perfumes.",
		"",
		"*Product Details:*",
		"Product: Royal Oud Intense",
		"Price: ₹3,499",
		"Category: Oud",
		"Quantity: 2",
		"Total: ₹6,998",
		"",
		"Original Price: ₹4,999",
		"Discount: 30% OFF",
		"",
		"Please confirm availability and delivery details. Thank you!",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestComposeNotOnSaleKeepsEmptyLines(t *testing.T) {
	p := model.Product{Name: "Velvet Spice", Category: "Oriental", Price: 1800, MRP: 1800}

	lines := strings.Split(Compose(p, 1, template(t), fmtr), "\n")

	require.Len(t, lines, 13)
	assert.Equal(t, "Total: ₹1,800", lines[7])
	assert.Equal(t, "", lines[9])
	assert.Equal(t, "", lines[10])
}

func TestComposeDecimalPrice(t *testing.T) {
	p := model.Product{Name: "Sample", Category: "Fresh", Price: 0.1, MRP: 0.1}

	lines := strings.Split(Compose(p, 3, template(t), fmtr), "\n")
	assert.Equal(t, "Total: ₹0.3", lines[7])
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "a%20b%2Bc%26d", Encode("a b+c&d"))
	assert.Equal(t, "line1%0Aline2", Encode("line1\nline2"))
	assert.Equal(t, "%E2%82%B9100", Encode("₹100"))
}

func TestEncodeRoundTrips(t *testing.T) {
	msg := Compose(model.Product{Name: "Rose & Oud", Category: "Oud", Price: 10, MRP: 20}, 1, template(t), fmtr)

	decoded, err := url.QueryUnescape(Encode(msg))
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
}

func TestHandoffURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/919876543210?text=hi%20there", HandoffURL("", "919876543210", "hi there"))
	assert.Equal(t, "https://chat.example/123?text=x", HandoffURL("https://chat.example/", "123", "x"))
}
