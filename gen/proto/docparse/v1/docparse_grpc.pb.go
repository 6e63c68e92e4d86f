// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: docparse/v1/docparse.proto

package docparsev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ParseService_ParseDocument_FullMethodName  = "/docparse.v1.ParseService/ParseDocument"
	ParseService_GetParseRun_FullMethodName    = "/docparse.v1.ParseService/GetParseRun"
	ParseService_ListParseRuns_FullMethodName  = "/docparse.v1.ParseService/ListParseRuns"
	ParseService_ExportParseRun_FullMethodName = "/docparse.v1.ParseService/ExportParseRun"
)

// ParseServiceClient is the client API for ParseService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ParseService runs the extraction pipeline over uploaded documents and
// serves the archived results.
type ParseServiceClient interface {
	ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseDocumentResponse, error)
	GetParseRun(ctx context.Context, in *GetParseRunRequest, opts ...grpc.CallOption) (*GetParseRunResponse, error)
	ListParseRuns(ctx context.Context, in *ListParseRunsRequest, opts ...grpc.CallOption) (*ListParseRunsResponse, error)
	ExportParseRun(ctx context.Context, in *ExportParseRunRequest, opts ...grpc.CallOption) (*ExportParseRunResponse, error)
}

type parseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewParseServiceClient(cc grpc.ClientConnInterface) ParseServiceClient {
	return &parseServiceClient{cc}
}

func (c *parseServiceClient) ParseDocument(ctx context.Context, in *ParseDocumentRequest, opts ...grpc.CallOption) (*ParseDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseDocumentResponse)
	err := c.cc.Invoke(ctx, ParseService_ParseDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parseServiceClient) GetParseRun(ctx context.Context, in *GetParseRunRequest, opts ...grpc.CallOption) (*GetParseRunResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetParseRunResponse)
	err := c.cc.Invoke(ctx, ParseService_GetParseRun_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parseServiceClient) ListParseRuns(ctx context.Context, in *ListParseRunsRequest, opts ...grpc.CallOption) (*ListParseRunsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListParseRunsResponse)
	err := c.cc.Invoke(ctx, ParseService_ListParseRuns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parseServiceClient) ExportParseRun(ctx context.Context, in *ExportParseRunRequest, opts ...grpc.CallOption) (*ExportParseRunResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportParseRunResponse)
	err := c.cc.Invoke(ctx, ParseService_ExportParseRun_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseServiceServer is the server API for ParseService service.
// All implementations must embed UnimplementedParseServiceServer
// for forward compatibility.
//
// ParseService runs the extraction pipeline over uploaded documents and
// serves the archived results.
type ParseServiceServer interface {
	ParseDocument(context.Context, *ParseDocumentRequest) (*ParseDocumentResponse, error)
	GetParseRun(context.Context, *GetParseRunRequest) (*GetParseRunResponse, error)
	ListParseRuns(context.Context, *ListParseRunsRequest) (*ListParseRunsResponse, error)
	ExportParseRun(context.Context, *ExportParseRunRequest) (*ExportParseRunResponse, error)
	mustEmbedUnimplementedParseServiceServer()
}

// UnimplementedParseServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedParseServiceServer struct{}

func (UnimplementedParseServiceServer) ParseDocument(context.Context, *ParseDocumentRequest) (*ParseDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseDocument not implemented")
}
func (UnimplementedParseServiceServer) GetParseRun(context.Context, *GetParseRunRequest) (*GetParseRunResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetParseRun not implemented")
}
func (UnimplementedParseServiceServer) ListParseRuns(context.Context, *ListParseRunsRequest) (*ListParseRunsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListParseRuns not implemented")
}
func (UnimplementedParseServiceServer) ExportParseRun(context.Context, *ExportParseRunRequest) (*ExportParseRunResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportParseRun not implemented")
}
func (UnimplementedParseServiceServer) mustEmbedUnimplementedParseServiceServer() {}
func (UnimplementedParseServiceServer) testEmbeddedByValue()                      {}

// UnsafeParseServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ParseServiceServer will
// result in compilation errors.
type UnsafeParseServiceServer interface {
	mustEmbedUnimplementedParseServiceServer()
}

func RegisterParseServiceServer(s grpc.ServiceRegistrar, srv ParseServiceServer) {
	// If the following call pancis, it indicates UnimplementedParseServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ParseService_ServiceDesc, srv)
}

func _ParseService_ParseDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).ParseDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_ParseDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).ParseDocument(ctx, req.(*ParseDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParseService_GetParseRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetParseRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).GetParseRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_GetParseRun_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).GetParseRun(ctx, req.(*GetParseRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParseService_ListParseRuns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListParseRunsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).ListParseRuns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_ListParseRuns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).ListParseRuns(ctx, req.(*ListParseRunsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParseService_ExportParseRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportParseRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).ExportParseRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_ExportParseRun_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).ExportParseRun(ctx, req.(*ExportParseRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ParseService_ServiceDesc is the grpc.ServiceDesc for ParseService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ParseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "docparse.v1.ParseService",
	HandlerType: (*ParseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseDocument",
			Handler:    _ParseService_ParseDocument_Handler,
		},
		{
			MethodName: "GetParseRun",
			Handler:    _ParseService_GetParseRun_Handler,
		},
		{
			MethodName: "ListParseRuns",
			Handler:    _ParseService_ListParseRuns_Handler,
		},
		{
			MethodName: "ExportParseRun",
			Handler:    _ParseService_ExportParseRun_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docparse/v1/docparse.proto",
}
