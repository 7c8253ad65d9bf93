package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ThemeService_GetTheme_FullMethodName    = "/storefront.v1.ThemeService/GetTheme"
	ThemeService_ToggleTheme_FullMethodName = "/storefront.v1.ThemeService/ToggleTheme"
)

type ThemeServiceClient interface {
	GetTheme(ctx context.Context, in *ThemeRequest, opts ...grpc.CallOption) (*ThemeResponse, error)
	ToggleTheme(ctx context.Context, in *ThemeRequest, opts ...grpc.CallOption) (*ThemeResponse, error)
}

type themeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewThemeServiceClient(cc grpc.ClientConnInterface) ThemeServiceClient {
	return &themeServiceClient{cc}
}

func (c *themeServiceClient) GetTheme(ctx context.Context, in *ThemeRequest, opts ...grpc.CallOption) (*ThemeResponse, error) {
	out := new(ThemeResponse)
	if err := c.cc.Invoke(ctx, ThemeService_GetTheme_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *themeServiceClient) ToggleTheme(ctx context.Context, in *ThemeRequest, opts ...grpc.CallOption) (*ThemeResponse, error) {
	out := new(ThemeResponse)
	if err := c.cc.Invoke(ctx, ThemeService_ToggleTheme_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ThemeServiceServer interface {
	GetTheme(context.Context, *ThemeRequest) (*ThemeResponse, error)
	ToggleTheme(context.Context, *ThemeRequest) (*ThemeResponse, error)
	mustEmbedUnimplementedThemeServiceServer()
}

// UnimplementedThemeServiceServer must be embedded by implementations.
type UnimplementedThemeServiceServer struct{}

func (UnimplementedThemeServiceServer) GetTheme(context.Context, *ThemeRequest) (*ThemeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTheme not implemented")
}
func (UnimplementedThemeServiceServer) ToggleTheme(context.Context, *ThemeRequest) (*ThemeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleTheme not implemented")
}
func (UnimplementedThemeServiceServer) mustEmbedUnimplementedThemeServiceServer() {}

func RegisterThemeServiceServer(s grpc.ServiceRegistrar, srv ThemeServiceServer) {
	s.RegisterService(&ThemeService_ServiceDesc, srv)
}

func _ThemeService_GetTheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ThemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ThemeServiceServer).GetTheme(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ThemeService_GetTheme_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ThemeServiceServer).GetTheme(ctx, req.(*ThemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ThemeService_ToggleTheme_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ThemeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ThemeServiceServer).ToggleTheme(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ThemeService_ToggleTheme_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ThemeServiceServer).ToggleTheme(ctx, req.(*ThemeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ThemeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.ThemeService",
	HandlerType: (*ThemeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetTheme",
			Handler:    _ThemeService_GetTheme_Handler,
		},
		{
			MethodName: "ToggleTheme",
			Handler:    _ThemeService_ToggleTheme_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1",
}
