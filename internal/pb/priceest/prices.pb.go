// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: priceest/prices.proto

package priceest

import (
	money "google.golang.org/genproto/googleapis/type/money"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FlightDetails struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OriginId      string                 `protobuf:"bytes,1,opt,name=origin_id,json=originId,proto3" json:"origin_id,omitempty"`
	DestinationId string                 `protobuf:"bytes,2,opt,name=destination_id,json=destinationId,proto3" json:"destination_id,omitempty"`
	DepartureTime *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=departure_time,json=departureTime,proto3" json:"departure_time,omitempty"`
	ArrivalTime   *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=arrival_time,json=arrivalTime,proto3" json:"arrival_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FlightDetails) Reset() {
	*x = FlightDetails{}
	mi := &file_priceest_prices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FlightDetails) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FlightDetails) ProtoMessage() {}

func (x *FlightDetails) ProtoReflect() protoreflect.Message {
	mi := &file_priceest_prices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FlightDetails.ProtoReflect.Descriptor instead.
func (*FlightDetails) Descriptor() ([]byte, []int) {
	return file_priceest_prices_proto_rawDescGZIP(), []int{0}
}

func (x *FlightDetails) GetOriginId() string {
	if x != nil {
		return x.OriginId
	}
	return ""
}

func (x *FlightDetails) GetDestinationId() string {
	if x != nil {
		return x.DestinationId
	}
	return ""
}

func (x *FlightDetails) GetDepartureTime() *timestamppb.Timestamp {
	if x != nil {
		return x.DepartureTime
	}
	return nil
}

func (x *FlightDetails) GetArrivalTime() *timestamppb.Timestamp {
	if x != nil {
		return x.ArrivalTime
	}
	return nil
}

type EstimatePriceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flight        *FlightDetails         `protobuf:"bytes,1,opt,name=flight,proto3" json:"flight,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EstimatePriceRequest) Reset() {
	*x = EstimatePriceRequest{}
	mi := &file_priceest_prices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimatePriceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimatePriceRequest) ProtoMessage() {}

func (x *EstimatePriceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_priceest_prices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimatePriceRequest.ProtoReflect.Descriptor instead.
func (*EstimatePriceRequest) Descriptor() ([]byte, []int) {
	return file_priceest_prices_proto_rawDescGZIP(), []int{1}
}

func (x *EstimatePriceRequest) GetFlight() *FlightDetails {
	if x != nil {
		return x.Flight
	}
	return nil
}

type EstimatePriceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Price         *money.Money           `protobuf:"bytes,1,opt,name=price,proto3" json:"price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EstimatePriceResponse) Reset() {
	*x = EstimatePriceResponse{}
	mi := &file_priceest_prices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimatePriceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimatePriceResponse) ProtoMessage() {}

func (x *EstimatePriceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_priceest_prices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimatePriceResponse.ProtoReflect.Descriptor instead.
func (*EstimatePriceResponse) Descriptor() ([]byte, []int) {
	return file_priceest_prices_proto_rawDescGZIP(), []int{2}
}

func (x *EstimatePriceResponse) GetPrice() *money.Money {
	if x != nil {
		return x.Price
	}
	return nil
}

var File_priceest_prices_proto protoreflect.FileDescriptor

const file_priceest_prices_proto_rawDesc = "" +
	"\n" +
	"\x15priceest/prices.proto\x12\x0epriceestimator\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x17google/type/money.proto\"\xd5\x01\n" +
	"\rFlightDetails\x12\x1b\n" +
	"\torigin_id\x18\x01 \x01(\tR\boriginId\x12%\n" +
	"\x0edestination_id\x18\x02 \x01(\tR\rdestinationId\x12A\n" +
	"\x0edeparture_time\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\rdepartureTime\x12=\n" +
	"\farrival_time\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\varrivalTime\"M\n" +
	"\x14EstimatePriceRequest\x125\n" +
	"\x06flight\x18\x01 \x01(\v2\x1d.priceestimator.FlightDetailsR\x06flight\"A\n" +
	"\x15EstimatePriceResponse\x12(\n" +
	"\x05price\x18\x01 \x01(\v2\x12.google.type.MoneyR\x05price2o\n" +
	"\x0fPriceEstimation\x12\\\n" +
	"\rEstimatePrice\x12$.priceestimator.EstimatePriceRequest\x1a%.priceestimator.EstimatePriceResponseB2Z0github.com/gfilippi/salesvc/internal/pb/priceestb\x06proto3"

var (
	file_priceest_prices_proto_rawDescOnce sync.Once
	file_priceest_prices_proto_rawDescData []byte
)

func file_priceest_prices_proto_rawDescGZIP() []byte {
	file_priceest_prices_proto_rawDescOnce.Do(func() {
		file_priceest_prices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_priceest_prices_proto_rawDesc), len(file_priceest_prices_proto_rawDesc)))
	})
	return file_priceest_prices_proto_rawDescData
}

var file_priceest_prices_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_priceest_prices_proto_goTypes = []any{
	(*FlightDetails)(nil),         // 0: priceestimator.FlightDetails
	(*EstimatePriceRequest)(nil),  // 1: priceestimator.EstimatePriceRequest
	(*EstimatePriceResponse)(nil), // 2: priceestimator.EstimatePriceResponse
	(*timestamppb.Timestamp)(nil), // 3: google.protobuf.Timestamp
	(*money.Money)(nil),           // 4: google.type.Money
}
var file_priceest_prices_proto_depIdxs = []int32{
	3, // 0: priceestimator.FlightDetails.departure_time:type_name -> google.protobuf.Timestamp
	3, // 1: priceestimator.FlightDetails.arrival_time:type_name -> google.protobuf.Timestamp
	0, // 2: priceestimator.EstimatePriceRequest.flight:type_name -> priceestimator.FlightDetails
	4, // 3: priceestimator.EstimatePriceResponse.price:type_name -> google.type.Money
	1, // 4: priceestimator.PriceEstimation.EstimatePrice:input_type -> priceestimator.EstimatePriceRequest
	2, // 5: priceestimator.PriceEstimation.EstimatePrice:output_type -> priceestimator.EstimatePriceResponse
	5, // [5:6] is the sub-list for method output_type
	4, // [4:5] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_priceest_prices_proto_init() }
func file_priceest_prices_proto_init() {
	if File_priceest_prices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_priceest_prices_proto_rawDesc), len(file_priceest_prices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_priceest_prices_proto_goTypes,
		DependencyIndexes: file_priceest_prices_proto_depIdxs,
		MessageInfos:      file_priceest_prices_proto_msgTypes,
	}.Build()
	File_priceest_prices_proto = out.File
	file_priceest_prices_proto_goTypes = nil
	file_priceest_prices_proto_depIdxs = nil
}
