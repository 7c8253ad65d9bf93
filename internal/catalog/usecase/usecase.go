package usecase

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/banner"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const otherCategoryLabel = "other"

// catalogUseCase answers every query from a snapshot taken at construction.
// The snapshot is never written after that, so concurrent reads need no lock.
type catalogUseCase struct {
	products []model.Product
	byID     map[int64]int
	banners  []model.Banner
	store    dto.StoreInfo
	pageSize int
	known    map[string]bool
	metrics  *metrics.Metrics
	logger   logger.ZapLogger
}

func NewCatalogUseCase(ctx context.Context, repo catalog.Repository, store dto.StoreInfo, pageSize int, m *metrics.Metrics, log logger.ZapLogger) (catalog.UseCase, error) {
	products, err := repo.FindAllProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	banners, err := repo.FindAllBanners(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load banners")
	}
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}

	byID := make(map[int64]int, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			log.Warn("duplicate product id, keeping first", zap.Int64("id", p.ID))
			continue
		}
		byID[p.ID] = i
	}

	known := make(map[string]bool)
	for _, c := range catalog.Categories() {
		known[c] = true
	}

	log.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("banners", len(banners)),
		zap.Int("page_size", pageSize),
	)

	return &catalogUseCase{
		products: products,
		byID:     byID,
		banners:  banner.Active(banners),
		store:    store,
		pageSize: pageSize,
		known:    known,
		metrics:  m,
		logger:   log,
	}, nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context, f *dto.ProductFilters) (*query.Result, error) {
	category := f.Category
	if category == "" {
		category = query.AllCategories
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = uc.pageSize
	}

	uc.metrics.IncCatalogQuery(uc.categoryLabel(category))
	res := query.Run(uc.products, f.SearchQuery, category, f.Page, pageSize)
	res.PageItems = cloneAll(res.PageItems)
	return &res, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	i, ok := uc.byID[id]
	if !ok {
		return nil, nil
	}
	p := uc.products[i].Clone()
	return &p, nil
}

func (uc *catalogUseCase) Browse(ctx context.Context, in *dto.BrowseInput) (*dto.BrowseOutput, error) {
	state := in.State.Normalized()

	switch {
	case in.ClearFilters:
		state = state.Cleared()
	default:
		if in.SetSearch != nil {
			state = state.WithSearch(*in.SetSearch)
		}
		if in.SetCategory != nil {
			state = state.WithCategory(*in.SetCategory)
		}
		if in.GoToPage != nil {
			total := query.TotalPages(len(query.Filter(uc.products, state.SearchQuery, state.SelectedCategory)), uc.pageSize)
			state = state.WithPage(*in.GoToPage, total)
		}
	}

	uc.metrics.IncCatalogQuery(uc.categoryLabel(state.SelectedCategory))
	res := state.Run(uc.products, uc.pageSize)
	res.PageItems = cloneAll(res.PageItems)

	uc.logger.Debug("browse",
		zap.String("search", state.SearchQuery),
		zap.String("category", state.SelectedCategory),
		zap.Int("page", state.CurrentPage),
		zap.Int("matches", res.TotalCount),
	)
	return &dto.BrowseOutput{State: state, Result: res}, nil
}

func (uc *catalogUseCase) Categories() []string {
	return catalog.Categories()
}

func (uc *catalogUseCase) ActiveBanners() []model.Banner {
	return append([]model.Banner(nil), uc.banners...)
}

func (uc *catalogUseCase) StoreInfo() dto.StoreInfo {
	return uc.store
}

func (uc *catalogUseCase) PageSize() int {
	return uc.pageSize
}

// categoryLabel folds categories outside the showcase list into one series.
func (uc *catalogUseCase) categoryLabel(category string) string {
	if uc.known[category] {
		return category
	}
	return otherCategoryLabel
}

func cloneAll(items []model.Product) []model.Product {
	out := make([]model.Product, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}
