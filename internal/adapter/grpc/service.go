package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "networth.v1.NetWorthService"

// NetWorthServiceServer is the server API for the NetWorthService.
// Requests and responses are google.protobuf.Struct messages.
type NetWorthServiceServer interface {
	RegisterAsset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAssetValue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAssetValue(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetNetWorth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ProjectNetWorth(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSnapshots(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateGoal(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PredictGoal(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(NetWorthServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// ServiceDesc describes the NetWorthService for grpc.Server.RegisterService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NetWorthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterAsset", Handler: unaryHandler("RegisterAsset", NetWorthServiceServer.RegisterAsset)},
		{MethodName: "UpdateAssetValue", Handler: unaryHandler("UpdateAssetValue", NetWorthServiceServer.UpdateAssetValue)},
		{MethodName: "GetAssetValue", Handler: unaryHandler("GetAssetValue", NetWorthServiceServer.GetAssetValue)},
		{MethodName: "GetNetWorth", Handler: unaryHandler("GetNetWorth", NetWorthServiceServer.GetNetWorth)},
		{MethodName: "GetHistory", Handler: unaryHandler("GetHistory", NetWorthServiceServer.GetHistory)},
		{MethodName: "ProjectNetWorth", Handler: unaryHandler("ProjectNetWorth", NetWorthServiceServer.ProjectNetWorth)},
		{MethodName: "ListSnapshots", Handler: unaryHandler("ListSnapshots", NetWorthServiceServer.ListSnapshots)},
		{MethodName: "CreateGoal", Handler: unaryHandler("CreateGoal", NetWorthServiceServer.CreateGoal)},
		{MethodName: "PredictGoal", Handler: unaryHandler("PredictGoal", NetWorthServiceServer.PredictGoal)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "networth/v1/networth.proto",
}

// RegisterNetWorthServiceServer registers srv on the given gRPC server
func RegisterNetWorthServiceServer(s grpc.ServiceRegistrar, srv NetWorthServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryHandler decodes the Struct request and runs the call through the interceptor chain
func unaryHandler(method string, call unaryMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := "/" + ServiceName + "/" + method

	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NetWorthServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(NetWorthServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls NetWorthService methods with plain maps as bodies
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient creates a new NetWorthService client
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Call invokes a unary method by name, e.g. "GetNetWorth"
func (c *Client) Call(ctx context.Context, method string, req map[string]interface{}, opts ...grpc.CallOption) (map[string]interface{}, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}

	return out.AsMap(), nil
}
