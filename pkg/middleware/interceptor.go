package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ClientIDHeader identifies the browsing client; it scopes per-client
// preferences such as the theme.
const ClientIDHeader = "x-client-id"

type clientIDKey struct{}

func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey{}).(string)
	return id, ok
}

// ContextInterceptor copies x-client-id from incoming metadata into the
// context, then logs and times the call.
func ContextInterceptor(log logger.ZapLogger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(ClientIDHeader); len(vals) > 0 && vals[0] != "" {
				ctx = WithClientID(ctx, vals[0])
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		m.ObserveRPC(info.FullMethod, code.String(), elapsed)
		if err != nil {
			log.Warn("rpc failed",
				zap.String("method", info.FullMethod),
				zap.String("code", code.String()),
				zap.Duration("elapsed", elapsed),
				zap.Error(err),
			)
		} else {
			log.Debug("rpc served", zap.String("method", info.FullMethod), zap.Duration("elapsed", elapsed))
		}
		return resp, err
	}
}
