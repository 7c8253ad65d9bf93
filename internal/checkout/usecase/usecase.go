package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/checkout"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkoutUseCase struct {
	products  checkout.ProductFinder
	publisher checkout.Publisher
	messaging model.MessagingConfig
	baseURL   string
	format    *pricing.Formatter
	metrics   *metrics.Metrics
	logger    logger.ZapLogger
}

func NewCheckoutUseCase(
	products checkout.ProductFinder,
	publisher checkout.Publisher,
	messaging model.MessagingConfig,
	baseURL string,
	format *pricing.Formatter,
	m *metrics.Metrics,
	log logger.ZapLogger,
) checkout.UseCase {
	return &checkoutUseCase{
		products:  products,
		publisher: publisher,
		messaging: messaging,
		baseURL:   baseURL,
		format:    format,
		metrics:   m,
		logger:    log,
	}
}

func (uc *checkoutUseCase) BuyNow(ctx context.Context, in *dto.BuyNowInput) (*dto.BuyNowOutput, error) {
	p, err := uc.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		uc.metrics.IncHandoff("not_found")
		return nil, checkout.ErrProductNotFound
	}
	if !p.InStock {
		uc.metrics.IncHandoff("out_of_stock")
		return nil, checkout.ErrOutOfStock
	}

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	msg := checkout.Compose(*p, quantity, uc.messaging.MessageTemplate, uc.format)
	out := &dto.BuyNowOutput{
		URL:     checkout.HandoffURL(uc.baseURL, uc.messaging.PhoneNumber, msg),
		Message: msg,
	}
	uc.metrics.IncHandoff("ok")

	event := &dto.HandoffEvent{
		EventID:   uuid.New().String(),
		EventType: dto.EventTypeHandoff,
		Payload: dto.HandoffPayload{
			ProductID:   p.ID,
			ProductName: p.Name,
			Category:    p.Category,
			Quantity:    quantity,
			UnitPrice:   p.Price,
			Total:       pricing.LineTotal(p.Price, quantity),
			OnSale:      pricing.IsOnSale(p.MRP, p.Price),
			ClientID:    in.ClientID,
		},
		Timestamp: time.Now().UTC(),
	}
	// best effort, off the request path
	go uc.publish(context.Background(), event)

	return out, nil
}

func (uc *checkoutUseCase) publish(ctx context.Context, event *dto.HandoffEvent) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("failed to publish hand-off event",
			zap.String("event_id", event.EventID),
			zap.Int64("product_id", event.Payload.ProductID),
			zap.Error(err),
		)
	}
}
