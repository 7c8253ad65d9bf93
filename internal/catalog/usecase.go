package catalog

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) (*query.Result, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	Browse(ctx context.Context, input *dto.BrowseInput) (*dto.BrowseOutput, error)

	Categories() []string
	ActiveBanners() []model.Banner
	StoreInfo() dto.StoreInfo
	PageSize() int
}
