package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// Repository is a read-only catalog source. It is read once at startup.
type Repository interface {
	FindAllProducts(ctx context.Context) ([]model.Product, error)
	FindAllBanners(ctx context.Context) ([]model.Banner, error)
}
