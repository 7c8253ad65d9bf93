package session

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// ClientID returns the browsing client's id, or "" for anonymous callers.
// The interceptor normally puts it on the context; handlers served without
// the interceptor still find it in the incoming metadata.
func ClientID(ctx context.Context) string {
	if id, ok := middleware.ClientIDFromContext(ctx); ok {
		return id
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(middleware.ClientIDHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
