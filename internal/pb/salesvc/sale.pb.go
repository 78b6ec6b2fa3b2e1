// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: salesvc/sale.proto

package salesvc

import (
	flightmngr "github.com/gfilippi/salesvc/internal/pb/flightmngr"
	ticketsrvc "github.com/gfilippi/salesvc/internal/pb/ticketsrvc"
	_ "google.golang.org/genproto/googleapis/api/annotations"
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

type SearchOffersRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	DepartureAirport string                 `protobuf:"bytes,1,opt,name=departure_airport,json=departureAirport,proto3" json:"departure_airport,omitempty"`
	ArrivalAirport   string                 `protobuf:"bytes,2,opt,name=arrival_airport,json=arrivalAirport,proto3" json:"arrival_airport,omitempty"`
	DepartureDate    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=departure_date,json=departureDate,proto3" json:"departure_date,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SearchOffersRequest) Reset() {
	*x = SearchOffersRequest{}
	mi := &file_salesvc_sale_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchOffersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchOffersRequest) ProtoMessage() {}

func (x *SearchOffersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchOffersRequest.ProtoReflect.Descriptor instead.
func (*SearchOffersRequest) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{0}
}

func (x *SearchOffersRequest) GetDepartureAirport() string {
	if x != nil {
		return x.DepartureAirport
	}
	return ""
}

func (x *SearchOffersRequest) GetArrivalAirport() string {
	if x != nil {
		return x.ArrivalAirport
	}
	return ""
}

func (x *SearchOffersRequest) GetDepartureDate() *timestamppb.Timestamp {
	if x != nil {
		return x.DepartureDate
	}
	return nil
}

type SearchOffersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offers        []*Offer               `protobuf:"bytes,1,rep,name=offers,proto3" json:"offers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchOffersResponse) Reset() {
	*x = SearchOffersResponse{}
	mi := &file_salesvc_sale_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchOffersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchOffersResponse) ProtoMessage() {}

func (x *SearchOffersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchOffersResponse.ProtoReflect.Descriptor instead.
func (*SearchOffersResponse) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{1}
}

func (x *SearchOffersResponse) GetOffers() []*Offer {
	if x != nil {
		return x.Offers
	}
	return nil
}

// The tag authenticates (flight id, price, expiration); the other fields are
// the claims themselves, echoed back verbatim at purchase time.
type Offer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Flight        *flightmngr.Flight     `protobuf:"bytes,1,opt,name=flight,proto3" json:"flight,omitempty"`
	Price         *money.Money           `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Expiration    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expiration,proto3" json:"expiration,omitempty"`
	Tag           []byte                 `protobuf:"bytes,4,opt,name=tag,proto3" json:"tag,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Offer) Reset() {
	*x = Offer{}
	mi := &file_salesvc_sale_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Offer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Offer) ProtoMessage() {}

func (x *Offer) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Offer.ProtoReflect.Descriptor instead.
func (*Offer) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{2}
}

func (x *Offer) GetFlight() *flightmngr.Flight {
	if x != nil {
		return x.Flight
	}
	return nil
}

func (x *Offer) GetPrice() *money.Money {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *Offer) GetExpiration() *timestamppb.Timestamp {
	if x != nil {
		return x.Expiration
	}
	return nil
}

func (x *Offer) GetTag() []byte {
	if x != nil {
		return x.Tag
	}
	return nil
}

type OfferClaims struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FlightId      string                 `protobuf:"bytes,1,opt,name=flight_id,json=flightId,proto3" json:"flight_id,omitempty"`
	Price         *money.Money           `protobuf:"bytes,2,opt,name=price,proto3" json:"price,omitempty"`
	Expiration    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=expiration,proto3" json:"expiration,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OfferClaims) Reset() {
	*x = OfferClaims{}
	mi := &file_salesvc_sale_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OfferClaims) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OfferClaims) ProtoMessage() {}

func (x *OfferClaims) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OfferClaims.ProtoReflect.Descriptor instead.
func (*OfferClaims) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{3}
}

func (x *OfferClaims) GetFlightId() string {
	if x != nil {
		return x.FlightId
	}
	return ""
}

func (x *OfferClaims) GetPrice() *money.Money {
	if x != nil {
		return x.Price
	}
	return nil
}

func (x *OfferClaims) GetExpiration() *timestamppb.Timestamp {
	if x != nil {
		return x.Expiration
	}
	return nil
}

type PurchaseOfferRequest struct {
	state         protoimpl.MessageState       `protogen:"open.v1"`
	Offer         *OfferClaims                 `protobuf:"bytes,1,opt,name=offer,proto3" json:"offer,omitempty"`
	Tag           []byte                       `protobuf:"bytes,2,opt,name=tag,proto3" json:"tag,omitempty"`
	Data          *ticketsrvc.PassengerDetails `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PurchaseOfferRequest) Reset() {
	*x = PurchaseOfferRequest{}
	mi := &file_salesvc_sale_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PurchaseOfferRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PurchaseOfferRequest) ProtoMessage() {}

func (x *PurchaseOfferRequest) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PurchaseOfferRequest.ProtoReflect.Descriptor instead.
func (*PurchaseOfferRequest) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{4}
}

func (x *PurchaseOfferRequest) GetOffer() *OfferClaims {
	if x != nil {
		return x.Offer
	}
	return nil
}

func (x *PurchaseOfferRequest) GetTag() []byte {
	if x != nil {
		return x.Tag
	}
	return nil
}

func (x *PurchaseOfferRequest) GetData() *ticketsrvc.PassengerDetails {
	if x != nil {
		return x.Data
	}
	return nil
}

type PurchaseOfferResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ticket        *ticketsrvc.Ticket     `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PurchaseOfferResponse) Reset() {
	*x = PurchaseOfferResponse{}
	mi := &file_salesvc_sale_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PurchaseOfferResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PurchaseOfferResponse) ProtoMessage() {}

func (x *PurchaseOfferResponse) ProtoReflect() protoreflect.Message {
	mi := &file_salesvc_sale_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PurchaseOfferResponse.ProtoReflect.Descriptor instead.
func (*PurchaseOfferResponse) Descriptor() ([]byte, []int) {
	return file_salesvc_sale_proto_rawDescGZIP(), []int{5}
}

func (x *PurchaseOfferResponse) GetTicket() *ticketsrvc.Ticket {
	if x != nil {
		return x.Ticket
	}
	return nil
}

var File_salesvc_sale_proto protoreflect.FileDescriptor

const file_salesvc_sale_proto_rawDesc = "" +
	"\n" +
	"\x12salesvc/sale.proto\x12\asalesvc\x1a\x1cgoogle/api/annotations.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x17google/type/money.proto\x1a\x18flightmngr/flights.proto\x1a\x18ticketsrvc/tickets.proto\"\xae\x01\n" +
	"\x13SearchOffersRequest\x12+\n" +
	"\x11departure_airport\x18\x01 \x01(\tR\x10departureAirport\x12'\n" +
	"\x0farrival_airport\x18\x02 \x01(\tR\x0earrivalAirport\x12A\n" +
	"\x0edeparture_date\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\rdepartureDate\">\n" +
	"\x14SearchOffersResponse\x12&\n" +
	"\x06offers\x18\x01 \x03(\v2\x0e.salesvc.OfferR\x06offers\"\xab\x01\n" +
	"\x05Offer\x12*\n" +
	"\x06flight\x18\x01 \x01(\v2\x12.flightmngr.FlightR\x06flight\x12(\n" +
	"\x05price\x18\x02 \x01(\v2\x12.google.type.MoneyR\x05price\x12:\n" +
	"\n" +
	"expiration\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"expiration\x12\x10\n" +
	"\x03tag\x18\x04 \x01(\fR\x03tag\"\x90\x01\n" +
	"\vOfferClaims\x12\x1b\n" +
	"\tflight_id\x18\x01 \x01(\tR\bflightId\x12(\n" +
	"\x05price\x18\x02 \x01(\v2\x12.google.type.MoneyR\x05price\x12:\n" +
	"\n" +
	"expiration\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"expiration\"\x86\x01\n" +
	"\x14PurchaseOfferRequest\x12*\n" +
	"\x05offer\x18\x01 \x01(\v2\x14.salesvc.OfferClaimsR\x05offer\x12\x10\n" +
	"\x03tag\x18\x02 \x01(\fR\x03tag\x120\n" +
	"\x04data\x18\x03 \x01(\v2\x1c.ticketsrvc.PassengerDetailsR\x04data\"C\n" +
	"\x15PurchaseOfferResponse\x12*\n" +
	"\x06ticket\x18\x01 \x01(\v2\x12.ticketsrvc.TicketR\x06ticket2\xe1\x01\n" +
	"\x04Sale\x12i\n" +
	"\fSearchOffers\x12\x1c.salesvc.SearchOffersRequest\x1a\x1d.salesvc.SearchOffersResponse\"\x1c\x82\xd3\xe4\x93\x02\x16:\x01*\"\x11/v1/offers/search\x12n\n" +
	"\rPurchaseOffer\x12\x1d.salesvc.PurchaseOfferRequest\x1a\x1e.salesvc.PurchaseOfferResponse\"\x1e\x82\xd3\xe4\x93\x02\x18:\x01*\"\x13/v1/offers/purchaseB1Z/github.com/gfilippi/salesvc/internal/pb/salesvcb\x06proto3"

var (
	file_salesvc_sale_proto_rawDescOnce sync.Once
	file_salesvc_sale_proto_rawDescData []byte
)

func file_salesvc_sale_proto_rawDescGZIP() []byte {
	file_salesvc_sale_proto_rawDescOnce.Do(func() {
		file_salesvc_sale_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_salesvc_sale_proto_rawDesc), len(file_salesvc_sale_proto_rawDesc)))
	})
	return file_salesvc_sale_proto_rawDescData
}

var file_salesvc_sale_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_salesvc_sale_proto_goTypes = []any{
	(*SearchOffersRequest)(nil),         // 0: salesvc.SearchOffersRequest
	(*SearchOffersResponse)(nil),        // 1: salesvc.SearchOffersResponse
	(*Offer)(nil),                       // 2: salesvc.Offer
	(*OfferClaims)(nil),                 // 3: salesvc.OfferClaims
	(*PurchaseOfferRequest)(nil),        // 4: salesvc.PurchaseOfferRequest
	(*PurchaseOfferResponse)(nil),       // 5: salesvc.PurchaseOfferResponse
	(*timestamppb.Timestamp)(nil),       // 6: google.protobuf.Timestamp
	(*flightmngr.Flight)(nil),           // 7: flightmngr.Flight
	(*money.Money)(nil),                 // 8: google.type.Money
	(*ticketsrvc.PassengerDetails)(nil), // 9: ticketsrvc.PassengerDetails
	(*ticketsrvc.Ticket)(nil),           // 10: ticketsrvc.Ticket
}
var file_salesvc_sale_proto_depIdxs = []int32{
	6,  // 0: salesvc.SearchOffersRequest.departure_date:type_name -> google.protobuf.Timestamp
	2,  // 1: salesvc.SearchOffersResponse.offers:type_name -> salesvc.Offer
	7,  // 2: salesvc.Offer.flight:type_name -> flightmngr.Flight
	8,  // 3: salesvc.Offer.price:type_name -> google.type.Money
	6,  // 4: salesvc.Offer.expiration:type_name -> google.protobuf.Timestamp
	8,  // 5: salesvc.OfferClaims.price:type_name -> google.type.Money
	6,  // 6: salesvc.OfferClaims.expiration:type_name -> google.protobuf.Timestamp
	3,  // 7: salesvc.PurchaseOfferRequest.offer:type_name -> salesvc.OfferClaims
	9,  // 8: salesvc.PurchaseOfferRequest.data:type_name -> ticketsrvc.PassengerDetails
	10, // 9: salesvc.PurchaseOfferResponse.ticket:type_name -> ticketsrvc.Ticket
	0,  // 10: salesvc.Sale.SearchOffers:input_type -> salesvc.SearchOffersRequest
	4,  // 11: salesvc.Sale.PurchaseOffer:input_type -> salesvc.PurchaseOfferRequest
	1,  // 12: salesvc.Sale.SearchOffers:output_type -> salesvc.SearchOffersResponse
	5,  // 13: salesvc.Sale.PurchaseOffer:output_type -> salesvc.PurchaseOfferResponse
	12, // [12:14] is the sub-list for method output_type
	10, // [10:12] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_salesvc_sale_proto_init() }
func file_salesvc_sale_proto_init() {
	if File_salesvc_sale_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_salesvc_sale_proto_rawDesc), len(file_salesvc_sale_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_salesvc_sale_proto_goTypes,
		DependencyIndexes: file_salesvc_sale_proto_depIdxs,
		MessageInfos:      file_salesvc_sale_proto_msgTypes,
	}.Build()
	File_salesvc_sale_proto = out.File
	file_salesvc_sale_proto_goTypes = nil
	file_salesvc_sale_proto_depIdxs = nil
}
