package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-storefront-service/internal/checkout"
	"github.com/fekuna/omnipos-storefront-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter serves the browser-facing edge: the buy-now redirect plus health
// and metrics. A nil registry leaves /metrics unmounted.
func NewRouter(uc checkout.UseCase, registry *prometheus.Registry, log logger.ZapLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := &redirectHandler{uc: uc, logger: log}
	r.GET("/buy/:id", h.buyNow)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
	return r
}

type redirectHandler struct {
	uc     checkout.UseCase
	logger logger.ZapLogger
}

// buyNow answers GET /buy/:id?qty=N with a redirect to the chat hand-off.
func (h *redirectHandler) buyNow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	qty := 1
	if raw := c.Query("qty"); raw != "" {
		qty, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
			return
		}
	}

	out, err := h.uc.BuyNow(c.Request.Context(), &dto.BuyNowInput{
		ProductID: id,
		Quantity:  qty,
		ClientID:  c.GetHeader(middleware.ClientIDHeader),
	})
	switch {
	case errors.Is(err, checkout.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("buy now redirect failed", zap.Int64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Redirect(http.StatusFound, out.URL)
}
