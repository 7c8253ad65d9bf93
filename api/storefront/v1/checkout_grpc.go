package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CheckoutService_BuyNow_FullMethodName = "/storefront.v1.CheckoutService/BuyNow"
)

type CheckoutServiceClient interface {
	BuyNow(ctx context.Context, in *BuyNowRequest, opts ...grpc.CallOption) (*BuyNowResponse, error)
}

type checkoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) CheckoutServiceClient {
	return &checkoutServiceClient{cc}
}

func (c *checkoutServiceClient) BuyNow(ctx context.Context, in *BuyNowRequest, opts ...grpc.CallOption) (*BuyNowResponse, error) {
	out := new(BuyNowResponse)
	if err := c.cc.Invoke(ctx, CheckoutService_BuyNow_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type CheckoutServiceServer interface {
	BuyNow(context.Context, *BuyNowRequest) (*BuyNowResponse, error)
	mustEmbedUnimplementedCheckoutServiceServer()
}

// UnimplementedCheckoutServiceServer must be embedded by implementations.
type UnimplementedCheckoutServiceServer struct{}

func (UnimplementedCheckoutServiceServer) BuyNow(context.Context, *BuyNowRequest) (*BuyNowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BuyNow not implemented")
}
func (UnimplementedCheckoutServiceServer) mustEmbedUnimplementedCheckoutServiceServer() {}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

func _CheckoutService_BuyNow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuyNowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CheckoutServiceServer).BuyNow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CheckoutService_BuyNow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CheckoutServiceServer).BuyNow(ctx, req.(*BuyNowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CheckoutService",
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BuyNow",
			Handler:    _CheckoutService_BuyNow_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1",
}
