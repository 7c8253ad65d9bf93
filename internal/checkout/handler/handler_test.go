package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"
)

type stubUseCase struct {
	last *dto.BuyNowInput
}

func (s *stubUseCase) BuyNow(ctx context.Context, in *dto.BuyNowInput) (*dto.BuyNowOutput, error) {
	s.last = in
	switch in.ProductID {
	case 1:
		return &dto.BuyNowOutput{URL: "https://wa.me/1?text=hi", Message: "hi"}, nil
	case 4:
		return nil, checkout.ErrOutOfStock
	case 500:
		return nil, errors.New("boom")
	}
	return nil, checkout.ErrProductNotFound
}

func TestBuyNowGRPC(t *testing.T) {
	uc := &stubUseCase{}
	h := NewCheckoutHandler(uc, logger.NewNop())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(middleware.ClientIDHeader, "c9"))

	resp, err := h.BuyNow(ctx, &storefrontv1.BuyNowRequest{ProductId: 1, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/1?text=hi", resp.Url)
	assert.Equal(t, 3, uc.last.Quantity)
	assert.Equal(t, "c9", uc.last.ClientID)
}

func TestBuyNowGRPCErrors(t *testing.T) {
	h := NewCheckoutHandler(&stubUseCase{}, logger.NewNop())

	tests := []struct {
		id   int64
		want codes.Code
	}{
		{2, codes.NotFound},
		{4, codes.FailedPrecondition},
		{500, codes.Internal},
	}
	for _, tt := range tests {
		_, err := h.BuyNow(context.Background(), &storefrontv1.BuyNowRequest{ProductId: tt.id})
		assert.Equal(t, tt.want, status.Code(err), "product %d", tt.id)
	}
}

func serve(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterBuyNow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &stubUseCase{}
	r := NewRouter(uc, nil, logger.NewNop())

	w := serve(t, r, "/buy/1?qty=2")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://wa.me/1?text=hi", w.Header().Get("Location"))
	assert.Equal(t, 2, uc.last.Quantity)

	w = serve(t, r, "/buy/1")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, 1, uc.last.Quantity)
}

func TestRouterBuyNowErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&stubUseCase{}, nil, logger.NewNop())

	tests := []struct {
		target string
		want   int
	}{
		{"/buy/abc", http.StatusBadRequest},
		{"/buy/1?qty=many", http.StatusBadRequest},
		{"/buy/2", http.StatusNotFound},
		{"/buy/4", http.StatusConflict},
		{"/buy/500", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(t, r, tt.target).Code)
		})
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	m.IncHandoff("ok")
	r := NewRouter(&stubUseCase{}, m.Registry, logger.NewNop())

	w := serve(t, r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = serve(t, r, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `storefront_handoffs_total{outcome="ok"} 1`)
}

func TestRouterWithoutRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&stubUseCase{}, nil, logger.NewNop())

	assert.Equal(t, http.StatusNotFound, serve(t, r, "/metrics").Code)
}
