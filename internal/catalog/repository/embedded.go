package repository

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/fixtures"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

// EmbeddedRepository serves the catalog compiled into the binary.
type EmbeddedRepository struct{}

func NewEmbeddedRepository() *EmbeddedRepository {
	return &EmbeddedRepository{}
}

func (r *EmbeddedRepository) FindAllProducts(ctx context.Context) ([]model.Product, error) {
	return fixtures.Products()
}

func (r *EmbeddedRepository) FindAllBanners(ctx context.Context) ([]model.Banner, error) {
	return fixtures.Banners()
}
