package handler

import (
	"context"

	storefrontv1 "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/internal/theme"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ThemeHandler struct {
	storefrontv1.UnimplementedThemeServiceServer

	uc     theme.UseCase
	logger logger.ZapLogger
}

func NewThemeHandler(uc theme.UseCase, log logger.ZapLogger) *ThemeHandler {
	return &ThemeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ThemeHandler) GetTheme(ctx context.Context, req *storefrontv1.ThemeRequest) (*storefrontv1.ThemeResponse, error) {
	t, err := h.uc.GetTheme(ctx, session.ClientID(ctx), req.SystemPrefersDark)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &storefrontv1.ThemeResponse{Theme: string(t)}, nil
}

func (h *ThemeHandler) ToggleTheme(ctx context.Context, req *storefrontv1.ThemeRequest) (*storefrontv1.ThemeResponse, error) {
	t, err := h.uc.ToggleTheme(ctx, session.ClientID(ctx), req.SystemPrefersDark)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "theme preference could not be saved")
	}
	return &storefrontv1.ThemeResponse{Theme: string(t)}, nil
}
