// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sfc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	SfcService_CreateSfc_FullMethodName = "/ghost.SfcService/CreateSfc"
	SfcService_DeleteSfc_FullMethodName = "/ghost.SfcService/DeleteSfc"
	SfcService_Query_FullMethodName     = "/ghost.SfcService/Query"
)

// SfcServiceClient is the client API for the ghost.SfcService service.
type SfcServiceClient interface {
	CreateSfc(ctx context.Context, in *CreateSfcRequest,
		opts ...grpc.CallOption) (*CreateSfcResponse, error)
	DeleteSfc(ctx context.Context, in *DeleteSfcRequest,
		opts ...grpc.CallOption) (*DeleteSfcResponse, error)
	Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (*QueryResponse, error)
}

type sfcServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSfcServiceClient(cc grpc.ClientConnInterface) SfcServiceClient {
	return &sfcServiceClient{cc: cc}
}

func (c *sfcServiceClient) CreateSfc(ctx context.Context, in *CreateSfcRequest,
	opts ...grpc.CallOption) (*CreateSfcResponse, error) {

	out := new(CreateSfcResponse)
	err := c.cc.Invoke(ctx, SfcService_CreateSfc_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sfcServiceClient) DeleteSfc(ctx context.Context, in *DeleteSfcRequest,
	opts ...grpc.CallOption) (*DeleteSfcResponse, error) {

	out := new(DeleteSfcResponse)
	err := c.cc.Invoke(ctx, SfcService_DeleteSfc_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sfcServiceClient) Query(ctx context.Context, in *QueryRequest,
	opts ...grpc.CallOption) (*QueryResponse, error) {

	out := new(QueryResponse)
	err := c.cc.Invoke(ctx, SfcService_Query_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SfcServiceServer is the server API for the ghost.SfcService service.
type SfcServiceServer interface {
	CreateSfc(context.Context, *CreateSfcRequest) (*CreateSfcResponse, error)
	DeleteSfc(context.Context, *DeleteSfcRequest) (*DeleteSfcResponse, error)
	Query(context.Context, *QueryRequest) (*QueryResponse, error)
}

// UnimplementedSfcServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedSfcServiceServer struct{}

func (UnimplementedSfcServiceServer) CreateSfc(context.Context,
	*CreateSfcRequest) (*CreateSfcResponse, error) {

	return nil, status.Error(codes.Unimplemented, "method CreateSfc not implemented")
}

func (UnimplementedSfcServiceServer) DeleteSfc(context.Context,
	*DeleteSfcRequest) (*DeleteSfcResponse, error) {

	return nil, status.Error(codes.Unimplemented, "method DeleteSfc not implemented")
}

func (UnimplementedSfcServiceServer) Query(context.Context,
	*QueryRequest) (*QueryResponse, error) {

	return nil, status.Error(codes.Unimplemented, "method Query not implemented")
}

func RegisterSfcServiceServer(s grpc.ServiceRegistrar, srv SfcServiceServer) {
	s.RegisterService(&SfcService_ServiceDesc, srv)
}

func _SfcService_CreateSfc_Handler(srv any, ctx context.Context, dec func(any) error,
	interceptor grpc.UnaryServerInterceptor) (any, error) {

	in := new(CreateSfcRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SfcServiceServer).CreateSfc(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SfcService_CreateSfc_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SfcServiceServer).CreateSfc(ctx, req.(*CreateSfcRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SfcService_DeleteSfc_Handler(srv any, ctx context.Context, dec func(any) error,
	interceptor grpc.UnaryServerInterceptor) (any, error) {

	in := new(DeleteSfcRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SfcServiceServer).DeleteSfc(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SfcService_DeleteSfc_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SfcServiceServer).DeleteSfc(ctx, req.(*DeleteSfcRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SfcService_Query_Handler(srv any, ctx context.Context, dec func(any) error,
	interceptor grpc.UnaryServerInterceptor) (any, error) {

	in := new(QueryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SfcServiceServer).Query(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SfcService_Query_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SfcServiceServer).Query(ctx, req.(*QueryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SfcService_ServiceDesc is the grpc.ServiceDesc for the ghost.SfcService
// service.
var SfcService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ghost.SfcService",
	HandlerType: (*SfcServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSfc", Handler: _SfcService_CreateSfc_Handler},
		{MethodName: "DeleteSfc", Handler: _SfcService_DeleteSfc_Handler},
		{MethodName: "Query", Handler: _SfcService_Query_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ghost/sfc.proto",
}
