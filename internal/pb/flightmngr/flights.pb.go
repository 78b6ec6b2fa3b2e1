// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: flightmngr/flights.proto

package flightmngr

import (
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

type Flight struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OriginId      string                 `protobuf:"bytes,2,opt,name=origin_id,json=originId,proto3" json:"origin_id,omitempty"`
	DestinationId string                 `protobuf:"bytes,3,opt,name=destination_id,json=destinationId,proto3" json:"destination_id,omitempty"`
	DepartureTime *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=departure_time,json=departureTime,proto3" json:"departure_time,omitempty"`
	ArrivalTime   *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=arrival_time,json=arrivalTime,proto3" json:"arrival_time,omitempty"`
	Cancelled     bool                   `protobuf:"varint,6,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Flight) Reset() {
	*x = Flight{}
	mi := &file_flightmngr_flights_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Flight) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Flight) ProtoMessage() {}

func (x *Flight) ProtoReflect() protoreflect.Message {
	mi := &file_flightmngr_flights_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Flight.ProtoReflect.Descriptor instead.
func (*Flight) Descriptor() ([]byte, []int) {
	return file_flightmngr_flights_proto_rawDescGZIP(), []int{0}
}

func (x *Flight) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Flight) GetOriginId() string {
	if x != nil {
		return x.OriginId
	}
	return ""
}

func (x *Flight) GetDestinationId() string {
	if x != nil {
		return x.DestinationId
	}
	return ""
}

func (x *Flight) GetDepartureTime() *timestamppb.Timestamp {
	if x != nil {
		return x.DepartureTime
	}
	return nil
}

func (x *Flight) GetArrivalTime() *timestamppb.Timestamp {
	if x != nil {
		return x.ArrivalTime
	}
	return nil
}

func (x *Flight) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

type SearchFlightsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OriginId      string                 `protobuf:"bytes,1,opt,name=origin_id,json=originId,proto3" json:"origin_id,omitempty"`
	DestinationId string                 `protobuf:"bytes,2,opt,name=destination_id,json=destinationId,proto3" json:"destination_id,omitempty"`
	DepartureDay  *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=departure_day,json=departureDay,proto3" json:"departure_day,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchFlightsRequest) Reset() {
	*x = SearchFlightsRequest{}
	mi := &file_flightmngr_flights_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchFlightsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchFlightsRequest) ProtoMessage() {}

func (x *SearchFlightsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flightmngr_flights_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchFlightsRequest.ProtoReflect.Descriptor instead.
func (*SearchFlightsRequest) Descriptor() ([]byte, []int) {
	return file_flightmngr_flights_proto_rawDescGZIP(), []int{1}
}

func (x *SearchFlightsRequest) GetOriginId() string {
	if x != nil {
		return x.OriginId
	}
	return ""
}

func (x *SearchFlightsRequest) GetDestinationId() string {
	if x != nil {
		return x.DestinationId
	}
	return ""
}

func (x *SearchFlightsRequest) GetDepartureDay() *timestamppb.Timestamp {
	if x != nil {
		return x.DepartureDay
	}
	return nil
}

type SearchFlightsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flights       []*Flight              `protobuf:"bytes,1,rep,name=flights,proto3" json:"flights,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchFlightsResponse) Reset() {
	*x = SearchFlightsResponse{}
	mi := &file_flightmngr_flights_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchFlightsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchFlightsResponse) ProtoMessage() {}

func (x *SearchFlightsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flightmngr_flights_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchFlightsResponse.ProtoReflect.Descriptor instead.
func (*SearchFlightsResponse) Descriptor() ([]byte, []int) {
	return file_flightmngr_flights_proto_rawDescGZIP(), []int{2}
}

func (x *SearchFlightsResponse) GetFlights() []*Flight {
	if x != nil {
		return x.Flights
	}
	return nil
}

var File_flightmngr_flights_proto protoreflect.FileDescriptor

const file_flightmngr_flights_proto_rawDesc = "" +
	"\n" +
	"\x18flightmngr/flights.proto\x12\n" +
	"flightmngr\x1a\x1fgoogle/protobuf/timestamp.proto\"\xfc\x01\n" +
	"\x06Flight\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\torigin_id\x18\x02 \x01(\tR\boriginId\x12%\n" +
	"\x0edestination_id\x18\x03 \x01(\tR\rdestinationId\x12A\n" +
	"\x0edeparture_time\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\rdepartureTime\x12=\n" +
	"\farrival_time\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\varrivalTime\x12\x1c\n" +
	"\tcancelled\x18\x06 \x01(\bR\tcancelled\"\x9b\x01\n" +
	"\x14SearchFlightsRequest\x12\x1b\n" +
	"\torigin_id\x18\x01 \x01(\tR\boriginId\x12%\n" +
	"\x0edestination_id\x18\x02 \x01(\tR\rdestinationId\x12?\n" +
	"\rdeparture_day\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\fdepartureDay\"E\n" +
	"\x15SearchFlightsResponse\x12,\n" +
	"\aflights\x18\x01 \x03(\v2\x12.flightmngr.FlightR\aflights2_\n" +
	"\aFlights\x12T\n" +
	"\rSearchFlights\x12 .flightmngr.SearchFlightsRequest\x1a!.flightmngr.SearchFlightsResponseB4Z2github.com/gfilippi/salesvc/internal/pb/flightmngrb\x06proto3"

var (
	file_flightmngr_flights_proto_rawDescOnce sync.Once
	file_flightmngr_flights_proto_rawDescData []byte
)

func file_flightmngr_flights_proto_rawDescGZIP() []byte {
	file_flightmngr_flights_proto_rawDescOnce.Do(func() {
		file_flightmngr_flights_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_flightmngr_flights_proto_rawDesc), len(file_flightmngr_flights_proto_rawDesc)))
	})
	return file_flightmngr_flights_proto_rawDescData
}

var file_flightmngr_flights_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_flightmngr_flights_proto_goTypes = []any{
	(*Flight)(nil),                // 0: flightmngr.Flight
	(*SearchFlightsRequest)(nil),  // 1: flightmngr.SearchFlightsRequest
	(*SearchFlightsResponse)(nil), // 2: flightmngr.SearchFlightsResponse
	(*timestamppb.Timestamp)(nil), // 3: google.protobuf.Timestamp
}
var file_flightmngr_flights_proto_depIdxs = []int32{
	3, // 0: flightmngr.Flight.departure_time:type_name -> google.protobuf.Timestamp
	3, // 1: flightmngr.Flight.arrival_time:type_name -> google.protobuf.Timestamp
	3, // 2: flightmngr.SearchFlightsRequest.departure_day:type_name -> google.protobuf.Timestamp
	0, // 3: flightmngr.SearchFlightsResponse.flights:type_name -> flightmngr.Flight
	1, // 4: flightmngr.Flights.SearchFlights:input_type -> flightmngr.SearchFlightsRequest
	2, // 5: flightmngr.Flights.SearchFlights:output_type -> flightmngr.SearchFlightsResponse
	5, // [5:6] is the sub-list for method output_type
	4, // [4:5] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_flightmngr_flights_proto_init() }
func file_flightmngr_flights_proto_init() {
	if File_flightmngr_flights_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_flightmngr_flights_proto_rawDesc), len(file_flightmngr_flights_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_flightmngr_flights_proto_goTypes,
		DependencyIndexes: file_flightmngr_flights_proto_depIdxs,
		MessageInfos:      file_flightmngr_flights_proto_msgTypes,
	}.Build()
	File_flightmngr_flights_proto = out.File
	file_flightmngr_flights_proto_goTypes = nil
	file_flightmngr_flights_proto_depIdxs = nil
}
