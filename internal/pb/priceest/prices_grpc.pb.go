// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: priceest/prices.proto

package priceest

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
	PriceEstimation_EstimatePrice_FullMethodName = "/priceestimator.PriceEstimation/EstimatePrice"
)

// PriceEstimationClient is the client API for PriceEstimation service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PriceEstimationClient interface {
	EstimatePrice(ctx context.Context, in *EstimatePriceRequest, opts ...grpc.CallOption) (*EstimatePriceResponse, error)
}

type priceEstimationClient struct {
	cc grpc.ClientConnInterface
}

func NewPriceEstimationClient(cc grpc.ClientConnInterface) PriceEstimationClient {
	return &priceEstimationClient{cc}
}

func (c *priceEstimationClient) EstimatePrice(ctx context.Context, in *EstimatePriceRequest, opts ...grpc.CallOption) (*EstimatePriceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EstimatePriceResponse)
	err := c.cc.Invoke(ctx, PriceEstimation_EstimatePrice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PriceEstimationServer is the server API for PriceEstimation service.
// All implementations must embed UnimplementedPriceEstimationServer
// for forward compatibility.
type PriceEstimationServer interface {
	EstimatePrice(context.Context, *EstimatePriceRequest) (*EstimatePriceResponse, error)
	mustEmbedUnimplementedPriceEstimationServer()
}

// UnimplementedPriceEstimationServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPriceEstimationServer struct{}

func (UnimplementedPriceEstimationServer) EstimatePrice(context.Context, *EstimatePriceRequest) (*EstimatePriceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EstimatePrice not implemented")
}
func (UnimplementedPriceEstimationServer) mustEmbedUnimplementedPriceEstimationServer() {}
func (UnimplementedPriceEstimationServer) testEmbeddedByValue()                         {}

// UnsafePriceEstimationServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PriceEstimationServer will
// result in compilation errors.
type UnsafePriceEstimationServer interface {
	mustEmbedUnimplementedPriceEstimationServer()
}

func RegisterPriceEstimationServer(s grpc.ServiceRegistrar, srv PriceEstimationServer) {
	// If the following call panics, it indicates UnimplementedPriceEstimationServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PriceEstimation_ServiceDesc, srv)
}

func _PriceEstimation_EstimatePrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EstimatePriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PriceEstimationServer).EstimatePrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PriceEstimation_EstimatePrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PriceEstimationServer).EstimatePrice(ctx, req.(*EstimatePriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PriceEstimation_ServiceDesc is the grpc.ServiceDesc for PriceEstimation service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PriceEstimation_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "priceestimator.PriceEstimation",
	HandlerType: (*PriceEstimationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EstimatePrice",
			Handler:    _PriceEstimation_EstimatePrice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "priceest/prices.proto",
}
