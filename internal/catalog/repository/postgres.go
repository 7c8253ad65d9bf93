package repository

import (
	"context"
	"database/sql"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// productRow carries the gallery as a JSON array column.
type productRow struct {
	model.Product
	ImagesJSON sql.NullString `db:"images"`
}

func (r *PGRepository) FindAllProducts(ctx context.Context) ([]model.Product, error) {
	var rows []productRow
	query := `
		SELECT id, name, description, category, price, mrp, image, images, in_stock
		FROM storefront_products
		ORDER BY position, id
	`
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, errors.Wrap(err, "select products")
	}

	products := make([]model.Product, 0, len(rows))
	for _, row := range rows {
		p := row.Product
		if row.ImagesJSON.Valid && row.ImagesJSON.String != "" {
			if err := json.Unmarshal([]byte(row.ImagesJSON.String), &p.Images); err != nil {
				return nil, errors.Wrapf(err, "decode images of product %d", p.ID)
			}
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *PGRepository) FindAllBanners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	query := `
		SELECT id, title, subtitle, description, image, button_text, button_link, is_active, is_internal_link
		FROM storefront_banners
		ORDER BY position, id
	`
	if err := r.DB.SelectContext(ctx, &banners, query); err != nil {
		return nil, errors.Wrap(err, "select banners")
	}
	return banners, nil
}
