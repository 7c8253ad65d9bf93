package checkout

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type UseCase interface {
	BuyNow(ctx context.Context, input *dto.BuyNowInput) (*dto.BuyNowOutput, error)
}

// ProductFinder looks products up by id; nil, nil means unknown.
type ProductFinder interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
}

// Publisher announces hand-offs to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event *dto.HandoffEvent) error
}
