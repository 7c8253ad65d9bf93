package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var productCols = []string{"id", "name", "description", "category", "price", "mrp", "image", "images", "in_stock"}

func TestFindAllProducts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM storefront_products")).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(int64(1), "Royal Oud", "Smoky", "Oud", 3499.0, 4999.0, "a.jpg", `["a.jpg","b.jpg"]`, true).
			AddRow(int64(2), "Rose Oud", "Petals", "Floral", 2799.0, 3499.0, "c.jpg", nil, false))

	products, err := repo.FindAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Royal Oud", products[0].Name)
	assert.Equal(t, 4999.0, products[0].MRP)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, products[0].Images)
	assert.True(t, products[0].InStock)

	assert.Nil(t, products[1].Images)
	assert.Equal(t, []string{"c.jpg"}, products[1].Gallery())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllProductsBadImages(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM storefront_products")).
		WillReturnRows(sqlmock.NewRows(productCols).
			AddRow(int64(7), "Broken", "", "Oud", 1.0, 2.0, "", `not json`, true))

	_, err := repo.FindAllProducts(context.Background())
	assert.ErrorContains(t, err, "decode images of product 7")
}

func TestFindAllProductsQueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM storefront_products")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindAllProducts(context.Background())
	assert.ErrorContains(t, err, "select products: connection refused")
}

func TestFindAllBanners(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{"id", "title", "subtitle", "description", "image", "button_text", "button_link", "is_active", "is_internal_link"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM storefront_banners")).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(1), "Oud Week", "Up to 30% off", "", "b.jpg", "Shop Now", "#products", true, true))

	banners, err := repo.FindAllBanners(context.Background())
	require.NoError(t, err)
	require.Len(t, banners, 1)
	assert.Equal(t, "#products", banners[0].ButtonLink)
	assert.True(t, banners[0].IsInternalLink)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedRepository(t *testing.T) {
	repo := NewEmbeddedRepository()

	products, err := repo.FindAllProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 20)

	banners, err := repo.FindAllBanners(context.Background())
	require.NoError(t, err)
	assert.Len(t, banners, 4)
}
