package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestContextInterceptorPropagatesClientID(t *testing.T) {
	interceptor := ContextInterceptor(logger.NewNop(), metrics.New())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(ClientIDHeader, "client-42"))

	var seen string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, req any) (any, error) {
			seen, _ = ClientIDFromContext(ctx)
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "client-42", seen)
}

func TestContextInterceptorWithoutMetadata(t *testing.T) {
	interceptor := ContextInterceptor(logger.NewNop(), nil)
	boom := errors.New("boom")

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test/Method"},
		func(ctx context.Context, req any) (any, error) {
			_, ok := ClientIDFromContext(ctx)
			assert.False(t, ok)
			return nil, boom
		})

	assert.ErrorIs(t, err, boom)
}
