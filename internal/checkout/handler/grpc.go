package handler

import (
	"context"
	"errors"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CheckoutHandler struct {
	storefrontv1.UnimplementedCheckoutServiceServer

	uc     checkout.UseCase
	logger logger.ZapLogger
}

func NewCheckoutHandler(uc checkout.UseCase, log logger.ZapLogger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CheckoutHandler) BuyNow(ctx context.Context, req *storefrontv1.BuyNowRequest) (*storefrontv1.BuyNowResponse, error) {
	out, err := h.uc.BuyNow(ctx, &dto.BuyNowInput{
		ProductID: req.ProductId,
		Quantity:  int(req.Quantity),
		ClientID:  session.ClientID(ctx),
	})
	if err != nil {
		return nil, toStatus(err, h.logger)
	}

	return &storefrontv1.BuyNowResponse{Url: out.URL, Message: out.Message}, nil
}

func toStatus(err error, log logger.ZapLogger) error {
	switch {
	case errors.Is(err, checkout.ErrProductNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, checkout.ErrOutOfStock):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		log.Error("buy now failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}
