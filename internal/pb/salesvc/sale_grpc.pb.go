// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: salesvc/sale.proto

package salesvc

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
	Sale_SearchOffers_FullMethodName  = "/salesvc.Sale/SearchOffers"
	Sale_PurchaseOffer_FullMethodName = "/salesvc.Sale/PurchaseOffer"
)

// SaleClient is the client API for Sale service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SaleClient interface {
	SearchOffers(ctx context.Context, in *SearchOffersRequest, opts ...grpc.CallOption) (*SearchOffersResponse, error)
	PurchaseOffer(ctx context.Context, in *PurchaseOfferRequest, opts ...grpc.CallOption) (*PurchaseOfferResponse, error)
}

type saleClient struct {
	cc grpc.ClientConnInterface
}

func NewSaleClient(cc grpc.ClientConnInterface) SaleClient {
	return &saleClient{cc}
}

func (c *saleClient) SearchOffers(ctx context.Context, in *SearchOffersRequest, opts ...grpc.CallOption) (*SearchOffersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchOffersResponse)
	err := c.cc.Invoke(ctx, Sale_SearchOffers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *saleClient) PurchaseOffer(ctx context.Context, in *PurchaseOfferRequest, opts ...grpc.CallOption) (*PurchaseOfferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PurchaseOfferResponse)
	err := c.cc.Invoke(ctx, Sale_PurchaseOffer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaleServer is the server API for Sale service.
// All implementations must embed UnimplementedSaleServer
// for forward compatibility.
type SaleServer interface {
	SearchOffers(context.Context, *SearchOffersRequest) (*SearchOffersResponse, error)
	PurchaseOffer(context.Context, *PurchaseOfferRequest) (*PurchaseOfferResponse, error)
	mustEmbedUnimplementedSaleServer()
}

// UnimplementedSaleServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSaleServer struct{}

func (UnimplementedSaleServer) SearchOffers(context.Context, *SearchOffersRequest) (*SearchOffersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchOffers not implemented")
}
func (UnimplementedSaleServer) PurchaseOffer(context.Context, *PurchaseOfferRequest) (*PurchaseOfferResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PurchaseOffer not implemented")
}
func (UnimplementedSaleServer) mustEmbedUnimplementedSaleServer() {}
func (UnimplementedSaleServer) testEmbeddedByValue()              {}

// UnsafeSaleServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SaleServer will
// result in compilation errors.
type UnsafeSaleServer interface {
	mustEmbedUnimplementedSaleServer()
}

func RegisterSaleServer(s grpc.ServiceRegistrar, srv SaleServer) {
	// If the following call panics, it indicates UnimplementedSaleServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Sale_ServiceDesc, srv)
}

func _Sale_SearchOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SaleServer).SearchOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sale_SearchOffers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SaleServer).SearchOffers(ctx, req.(*SearchOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Sale_PurchaseOffer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PurchaseOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SaleServer).PurchaseOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Sale_PurchaseOffer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SaleServer).PurchaseOffer(ctx, req.(*PurchaseOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Sale_ServiceDesc is the grpc.ServiceDesc for Sale service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Sale_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "salesvc.Sale",
	HandlerType: (*SaleServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchOffers",
			Handler:    _Sale_SearchOffers_Handler,
		},
		{
			MethodName: "PurchaseOffer",
			Handler:    _Sale_PurchaseOffer_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "salesvc/sale.proto",
}
