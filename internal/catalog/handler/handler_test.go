package handler

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/query"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/repository"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/fixtures"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/pkg/codec"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"
)

func newClient(t *testing.T) storefrontv1.CatalogServiceClient {
	t.Helper()

	contact, err := fixtures.Contact()
	require.NoError(t, err)
	uc, err := usecase.NewCatalogUseCase(context.Background(), repository.NewEmbeddedRepository(),
		dto.StoreInfo{BusinessName: "Aroma Perfumes", Contact: contact}, 8, nil, logger.NewNop())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(middleware.ContextInterceptor(logger.NewNop(), nil)))
	storefrontv1.RegisterCatalogServiceServer(srv, NewCatalogHandler(uc, pricing.NewFormatter(pricing.DefaultLocale), logger.NewNop()))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codec.Name)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return storefrontv1.NewCatalogServiceClient(conn)
}

func TestListProducts(t *testing.T) {
	client := newClient(t)

	resp, err := client.ListProducts(context.Background(), &storefrontv1.ListProductsRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Products, 8)
	assert.EqualValues(t, 20, resp.Total)
	assert.EqualValues(t, 3, resp.TotalPages)
	assert.EqualValues(t, 1, resp.Page)
	assert.EqualValues(t, 8, resp.PageSize)

	first := resp.Products[0]
	assert.Equal(t, "Royal Oud Intense", first.Name)
	assert.True(t, first.IsOnSale)
	assert.EqualValues(t, 30, first.SalePercentage)
	assert.Equal(t, 1500.0, first.Savings)
}

func TestListProductsOutOfRangePage(t *testing.T) {
	client := newClient(t)

	resp, err := client.ListProducts(context.Background(), &storefrontv1.ListProductsRequest{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, resp.Products)
	assert.EqualValues(t, 20, resp.Total)
}

func TestGetProductNotFound(t *testing.T) {
	client := newClient(t)

	_, err := client.GetProduct(context.Background(), &storefrontv1.GetProductRequest{Id: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBrowse(t *testing.T) {
	client := newClient(t)
	category := "Oud"

	resp, err := client.Browse(context.Background(), &storefrontv1.BrowseRequest{SetCategory: &category})
	require.NoError(t, err)

	assert.Equal(t, "Oud", resp.State.SelectedCategory)
	assert.EqualValues(t, 1, resp.State.CurrentPage)
	assert.Len(t, resp.Grid.Cards, 4)
	assert.Equal(t, "Showing 1-4 of 4 products", resp.Grid.ResultsLabel)
	assert.True(t, resp.Grid.ShowClearFilters)
	assert.False(t, resp.Grid.Pagination.Visible)

	resp, err = client.Browse(context.Background(), &storefrontv1.BrowseRequest{State: resp.State, ClearFilters: true})
	require.NoError(t, err)
	assert.Equal(t, &storefrontv1.BrowseState{SelectedCategory: query.AllCategories, CurrentPage: 1}, resp.State)
	assert.True(t, resp.Grid.Pagination.Visible)
	require.Len(t, resp.Grid.Pagination.Items, 3)
	assert.True(t, resp.Grid.Pagination.Items[0].Current)
}

func TestGetProductDetail(t *testing.T) {
	client := newClient(t)

	resp, err := client.GetProductDetail(context.Background(), &storefrontv1.GetProductDetailRequest{Id: 1, Quantity: 2, SelectedImage: 10})
	require.NoError(t, err)

	d := resp.Detail
	require.NotNil(t, d.Card)
	assert.EqualValues(t, 2, d.Quantity)
	assert.EqualValues(t, len(d.Images)-1, d.SelectedImage)
	assert.Equal(t, "₹6,998", d.Total)
	assert.Equal(t, "-30%", d.Card.SaleBadge)
	assert.Equal(t, "Royal Oud Intense", d.Card.Name)
}

func TestListBannersAndCategories(t *testing.T) {
	client := newClient(t)

	banners, err := client.ListBanners(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, banners.Banners, 3)
	assert.Equal(t, "anchor", banners.Banners[0].LinkKind)
	assert.Equal(t, "external", banners.Banners[2].LinkKind)

	cats, err := client.ListCategories(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "All", cats.Categories[0])
	assert.Len(t, cats.Categories, 7)
}

func TestGetStoreInfo(t *testing.T) {
	client := newClient(t)

	info, err := client.GetStoreInfo(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "Aroma Perfumes", info.BusinessName)
	assert.Equal(t, "hello@aromaperfumes.in", info.Contact.Email)
}
