package protowire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ModzyModelServer is the legacy batched model contract kept alongside the
// typed v2 service for clients that have not migrated off it.
type ModzyModelServer interface {
	Run(context.Context, *RunRequest) (*RunResponse, error)
	Status(context.Context, *StatusRequestV1) (*StatusResponseV1, error)
	Shutdown(context.Context, *ShutdownRequestV1) (*ShutdownResponseV1, error)
}

type ModzyModelClient interface {
	Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error)
	Status(ctx context.Context, in *StatusRequestV1, opts ...grpc.CallOption) (*StatusResponseV1, error)
	Shutdown(ctx context.Context, in *ShutdownRequestV1, opts ...grpc.CallOption) (*ShutdownResponseV1, error)
}

type modzyModelClient struct {
	cc grpc.ClientConnInterface
}

func NewModzyModelClient(cc grpc.ClientConnInterface) ModzyModelClient {
	return &modzyModelClient{cc}
}

func (c *modzyModelClient) Run(ctx context.Context, in *RunRequest, opts ...grpc.CallOption) (*RunResponse, error) {
	out := new(RunResponse)
	if err := c.cc.Invoke(ctx, "/modzy.ModzyModel/Run", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modzyModelClient) Status(ctx context.Context, in *StatusRequestV1, opts ...grpc.CallOption) (*StatusResponseV1, error) {
	out := new(StatusResponseV1)
	if err := c.cc.Invoke(ctx, "/modzy.ModzyModel/Status", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modzyModelClient) Shutdown(ctx context.Context, in *ShutdownRequestV1, opts ...grpc.CallOption) (*ShutdownResponseV1, error) {
	out := new(ShutdownResponseV1)
	if err := c.cc.Invoke(ctx, "/modzy.ModzyModel/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type UnimplementedModzyModelServer struct{}

func (UnimplementedModzyModelServer) Run(context.Context, *RunRequest) (*RunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Run not implemented")
}
func (UnimplementedModzyModelServer) Status(context.Context, *StatusRequestV1) (*StatusResponseV1, error) {
	return nil, status.Error(codes.Unimplemented, "method Status not implemented")
}
func (UnimplementedModzyModelServer) Shutdown(context.Context, *ShutdownRequestV1) (*ShutdownResponseV1, error) {
	return nil, status.Error(codes.Unimplemented, "method Shutdown not implemented")
}

func RegisterModzyModelServer(s grpc.ServiceRegistrar, srv ModzyModelServer) {
	s.RegisterService(&modzyModelServiceDesc, srv)
}

func _ModzyModel_Run_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModzyModelServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modzy.ModzyModel/Run"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModzyModelServer).Run(ctx, req.(*RunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModzyModel_Status_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequestV1)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModzyModelServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modzy.ModzyModel/Status"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModzyModelServer).Status(ctx, req.(*StatusRequestV1))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModzyModel_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ShutdownRequestV1)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModzyModelServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/modzy.ModzyModel/Shutdown"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModzyModelServer).Shutdown(ctx, req.(*ShutdownRequestV1))
	}
	return interceptor(ctx, in, info, handler)
}

var modzyModelServiceDesc = grpc.ServiceDesc{
	ServiceName: "modzy.ModzyModel",
	HandlerType: (*ModzyModelServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Run", Handler: _ModzyModel_Run_Handler},
		{MethodName: "Status", Handler: _ModzyModel_Status_Handler},
		{MethodName: "Shutdown", Handler: _ModzyModel_Shutdown_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "modzy/model.proto",
}
