package handler

import (
	"context"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/banner"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/internal/view"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type CatalogHandler struct {
	storefrontv1.UnimplementedCatalogServiceServer

	uc     catalog.UseCase
	format *pricing.Formatter
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, format *pricing.Formatter, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		format: format,
		logger: log,
	}
}

func (h *CatalogHandler) ListProducts(ctx context.Context, req *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsResponse, error) {
	// proto3 zero means unset; negative pages are passed through and come back empty
	page := int(req.Page)
	if page == 0 {
		page = 1
	}
	filters := &dto.ProductFilters{
		SearchQuery: req.SearchQuery,
		Category:    req.Category,
		Page:        page,
		PageSize:    int(req.PageSize),
	}

	res, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = h.uc.PageSize()
	}

	protos := make([]*storefrontv1.Product, len(res.PageItems))
	for i := range res.PageItems {
		protos[i] = mapProductToProto(&res.PageItems[i])
	}

	return &storefrontv1.ListProductsResponse{
		Products:   protos,
		Total:      int32(res.TotalCount),
		TotalPages: int32(res.TotalPages),
		Page:       int32(page),
		PageSize:   int32(pageSize),
	}, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if p == nil {
		return nil, status.Error(codes.NotFound, "product not found")
	}

	return &storefrontv1.ProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *CatalogHandler) Browse(ctx context.Context, req *storefrontv1.BrowseRequest) (*storefrontv1.BrowseResponse, error) {
	input := &dto.BrowseInput{
		SetSearch:    req.SetSearch,
		SetCategory:  req.SetCategory,
		ClearFilters: req.ClearFilters,
	}
	if req.State != nil {
		input.State = mapStateFromProto(req.State)
	}
	if req.GoToPage != nil {
		p := int(*req.GoToPage)
		input.GoToPage = &p
	}

	out, err := h.uc.Browse(ctx, input)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	grid := view.NewGrid(out.Result, out.State, h.uc.Categories(), h.uc.PageSize(), h.format)
	return &storefrontv1.BrowseResponse{
		State: mapStateToProto(out.State),
		Grid:  mapGridToProto(&grid),
	}, nil
}

func (h *CatalogHandler) GetProductDetail(ctx context.Context, req *storefrontv1.GetProductDetailRequest) (*storefrontv1.ProductDetailResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if p == nil {
		return nil, status.Error(codes.NotFound, "product not found")
	}

	detail := view.NewDetail(*p, int(req.Quantity), int(req.SelectedImage), h.format)
	return &storefrontv1.ProductDetailResponse{Detail: mapDetailToProto(&detail)}, nil
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*storefrontv1.ListCategoriesResponse, error) {
	return &storefrontv1.ListCategoriesResponse{Categories: h.uc.Categories()}, nil
}

func (h *CatalogHandler) ListBanners(ctx context.Context, _ *emptypb.Empty) (*storefrontv1.ListBannersResponse, error) {
	banners := h.uc.ActiveBanners()
	protos := make([]*storefrontv1.Banner, len(banners))
	for i := range banners {
		protos[i] = mapBannerToProto(&banners[i])
	}
	return &storefrontv1.ListBannersResponse{Banners: protos}, nil
}

func (h *CatalogHandler) GetStoreInfo(ctx context.Context, _ *emptypb.Empty) (*storefrontv1.StoreInfoResponse, error) {
	info := h.uc.StoreInfo()
	return &storefrontv1.StoreInfoResponse{
		BusinessName: info.BusinessName,
		Contact: &storefrontv1.ContactInfo{
			Email:     info.Contact.Email,
			Phone:     info.Contact.Phone,
			Address:   info.Contact.Address,
			Instagram: info.Contact.SocialMedia.Instagram,
		},
	}, nil
}

// mapProductToProto attaches the derived sale fields; they are never stored.
func mapProductToProto(m *model.Product) *storefrontv1.Product {
	if m == nil {
		return nil
	}
	sale := pricing.Derive(m.MRP, m.Price)

	return &storefrontv1.Product{
		Id:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Category:       m.Category,
		Price:          m.Price,
		Mrp:            m.MRP,
		Image:          m.Image,
		Images:         m.Gallery(),
		InStock:        m.InStock,
		IsOnSale:       sale.OnSale,
		SalePercentage: int32(sale.Percentage),
		Savings:        sale.Savings,
	}
}

func mapBannerToProto(m *model.Banner) *storefrontv1.Banner {
	return &storefrontv1.Banner{
		Id:          m.ID,
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Description: m.Description,
		Image:       m.Image,
		ButtonText:  m.ButtonText,
		ButtonLink:  m.ButtonLink,
		LinkKind:    string(banner.ClassifyLink(m.ButtonLink)),
	}
}

func mapStateFromProto(s *storefrontv1.BrowseState) query.State {
	return query.State{
		SearchQuery:      s.SearchQuery,
		SelectedCategory: s.SelectedCategory,
		CurrentPage:      int(s.CurrentPage),
	}
}

func mapStateToProto(s query.State) *storefrontv1.BrowseState {
	return &storefrontv1.BrowseState{
		SearchQuery:      s.SearchQuery,
		SelectedCategory: s.SelectedCategory,
		CurrentPage:      int32(s.CurrentPage),
	}
}

func mapCardToProto(c *view.Card) *storefrontv1.ProductCard {
	return &storefrontv1.ProductCard{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Image:       c.Image,
		Price:       c.Price,
		Mrp:         c.MRP,
		OnSale:      c.OnSale,
		SaleBadge:   c.SaleBadge,
		Savings:     c.Savings,
		InStock:     c.InStock,
		BuyLabel:    c.BuyLabel,
	}
}

func mapGridToProto(g *view.Grid) *storefrontv1.ProductGrid {
	cards := make([]*storefrontv1.ProductCard, len(g.Cards))
	for i := range g.Cards {
		cards[i] = mapCardToProto(&g.Cards[i])
	}
	chips := make([]*storefrontv1.FilterChip, len(g.Chips))
	for i, c := range g.Chips {
		chips[i] = &storefrontv1.FilterChip{Kind: c.Kind, Label: c.Label}
	}
	categories := make([]*storefrontv1.CategoryOption, len(g.Categories))
	for i, c := range g.Categories {
		categories[i] = &storefrontv1.CategoryOption{Name: c.Name, Selected: c.Selected}
	}
	items := make([]*storefrontv1.PageItem, len(g.Pagination.Items))
	for i, it := range g.Pagination.Items {
		items[i] = &storefrontv1.PageItem{Page: int32(it.Page), Current: it.Current, Ellipsis: it.Ellipsis}
	}

	return &storefrontv1.ProductGrid{
		Cards:            cards,
		ResultsLabel:     g.ResultsLabel,
		Chips:            chips,
		ShowClearFilters: g.ShowClearFilters,
		Categories:       categories,
		Pagination: &storefrontv1.Pagination{
			Visible:     g.Pagination.Visible,
			CurrentPage: int32(g.Pagination.CurrentPage),
			TotalPages:  int32(g.Pagination.TotalPages),
			HasPrev:     g.Pagination.HasPrev,
			HasNext:     g.Pagination.HasNext,
			Items:       items,
		},
		Empty: g.Empty,
	}
}

func mapDetailToProto(d *view.Detail) *storefrontv1.ProductDetail {
	return &storefrontv1.ProductDetail{
		Card:          mapCardToProto(&d.Card),
		Quantity:      int32(d.Quantity),
		CanDecrease:   d.CanDecrease,
		Images:        d.Images,
		SelectedImage: int32(d.SelectedImage),
		MainImage:     d.MainImage,
		ShowGallery:   d.ShowGallery,
		DiscountLabel: d.DiscountLabel,
		Total:         d.Total,
	}
}

var _ storefrontv1.CatalogServiceServer = (*CatalogHandler)(nil)
