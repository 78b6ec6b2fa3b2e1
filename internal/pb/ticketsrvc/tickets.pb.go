// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: ticketsrvc/tickets.proto

package ticketsrvc

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

type PassengerDetails struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FirstName     string                 `protobuf:"bytes,1,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,2,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PassengerDetails) Reset() {
	*x = PassengerDetails{}
	mi := &file_ticketsrvc_tickets_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PassengerDetails) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PassengerDetails) ProtoMessage() {}

func (x *PassengerDetails) ProtoReflect() protoreflect.Message {
	mi := &file_ticketsrvc_tickets_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PassengerDetails.ProtoReflect.Descriptor instead.
func (*PassengerDetails) Descriptor() ([]byte, []int) {
	return file_ticketsrvc_tickets_proto_rawDescGZIP(), []int{0}
}

func (x *PassengerDetails) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *PassengerDetails) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *PassengerDetails) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type Ticket struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FlightId        string                 `protobuf:"bytes,2,opt,name=flight_id,json=flightId,proto3" json:"flight_id,omitempty"`
	Passenger       *PassengerDetails      `protobuf:"bytes,3,opt,name=passenger,proto3" json:"passenger,omitempty"`
	ReservationTime *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=reservation_time,json=reservationTime,proto3" json:"reservation_time,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Ticket) Reset() {
	*x = Ticket{}
	mi := &file_ticketsrvc_tickets_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ticket) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ticket) ProtoMessage() {}

func (x *Ticket) ProtoReflect() protoreflect.Message {
	mi := &file_ticketsrvc_tickets_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Ticket.ProtoReflect.Descriptor instead.
func (*Ticket) Descriptor() ([]byte, []int) {
	return file_ticketsrvc_tickets_proto_rawDescGZIP(), []int{1}
}

func (x *Ticket) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Ticket) GetFlightId() string {
	if x != nil {
		return x.FlightId
	}
	return ""
}

func (x *Ticket) GetPassenger() *PassengerDetails {
	if x != nil {
		return x.Passenger
	}
	return nil
}

func (x *Ticket) GetReservationTime() *timestamppb.Timestamp {
	if x != nil {
		return x.ReservationTime
	}
	return nil
}

type CreateTicketRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	FlightId        string                 `protobuf:"bytes,1,opt,name=flight_id,json=flightId,proto3" json:"flight_id,omitempty"`
	Passenger       *PassengerDetails      `protobuf:"bytes,2,opt,name=passenger,proto3" json:"passenger,omitempty"`
	ReservationTime *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=reservation_time,json=reservationTime,proto3" json:"reservation_time,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateTicketRequest) Reset() {
	*x = CreateTicketRequest{}
	mi := &file_ticketsrvc_tickets_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTicketRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTicketRequest) ProtoMessage() {}

func (x *CreateTicketRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ticketsrvc_tickets_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTicketRequest.ProtoReflect.Descriptor instead.
func (*CreateTicketRequest) Descriptor() ([]byte, []int) {
	return file_ticketsrvc_tickets_proto_rawDescGZIP(), []int{2}
}

func (x *CreateTicketRequest) GetFlightId() string {
	if x != nil {
		return x.FlightId
	}
	return ""
}

func (x *CreateTicketRequest) GetPassenger() *PassengerDetails {
	if x != nil {
		return x.Passenger
	}
	return nil
}

func (x *CreateTicketRequest) GetReservationTime() *timestamppb.Timestamp {
	if x != nil {
		return x.ReservationTime
	}
	return nil
}

type CreateTicketResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ticket        *Ticket                `protobuf:"bytes,1,opt,name=ticket,proto3" json:"ticket,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTicketResponse) Reset() {
	*x = CreateTicketResponse{}
	mi := &file_ticketsrvc_tickets_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTicketResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTicketResponse) ProtoMessage() {}

func (x *CreateTicketResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ticketsrvc_tickets_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTicketResponse.ProtoReflect.Descriptor instead.
func (*CreateTicketResponse) Descriptor() ([]byte, []int) {
	return file_ticketsrvc_tickets_proto_rawDescGZIP(), []int{3}
}

func (x *CreateTicketResponse) GetTicket() *Ticket {
	if x != nil {
		return x.Ticket
	}
	return nil
}

var File_ticketsrvc_tickets_proto protoreflect.FileDescriptor

const file_ticketsrvc_tickets_proto_rawDesc = "" +
	"\n" +
	"\x18ticketsrvc/tickets.proto\x12\n" +
	"ticketsrvc\x1a\x1fgoogle/protobuf/timestamp.proto\"d\n" +
	"\x10PassengerDetails\x12\x1d\n" +
	"\n" +
	"first_name\x18\x01 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x02 \x01(\tR\blastName\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\"\xb8\x01\n" +
	"\x06Ticket\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tflight_id\x18\x02 \x01(\tR\bflightId\x12:\n" +
	"\tpassenger\x18\x03 \x01(\v2\x1c.ticketsrvc.PassengerDetailsR\tpassenger\x12E\n" +
	"\x10reservation_time\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x0freservationTime\"\xb5\x01\n" +
	"\x13CreateTicketRequest\x12\x1b\n" +
	"\tflight_id\x18\x01 \x01(\tR\bflightId\x12:\n" +
	"\tpassenger\x18\x02 \x01(\v2\x1c.ticketsrvc.PassengerDetailsR\tpassenger\x12E\n" +
	"\x10reservation_time\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x0freservationTime\"B\n" +
	"\x14CreateTicketResponse\x12*\n" +
	"\x06ticket\x18\x01 \x01(\v2\x12.ticketsrvc.TicketR\x06ticket2\\\n" +
	"\aTickets\x12Q\n" +
	"\fCreateTicket\x12\x1f.ticketsrvc.CreateTicketRequest\x1a .ticketsrvc.CreateTicketResponseB4Z2github.com/gfilippi/salesvc/internal/pb/ticketsrvcb\x06proto3"

var (
	file_ticketsrvc_tickets_proto_rawDescOnce sync.Once
	file_ticketsrvc_tickets_proto_rawDescData []byte
)

func file_ticketsrvc_tickets_proto_rawDescGZIP() []byte {
	file_ticketsrvc_tickets_proto_rawDescOnce.Do(func() {
		file_ticketsrvc_tickets_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ticketsrvc_tickets_proto_rawDesc), len(file_ticketsrvc_tickets_proto_rawDesc)))
	})
	return file_ticketsrvc_tickets_proto_rawDescData
}

var file_ticketsrvc_tickets_proto_msgTypes = make([]protoimpl.MessageInfo, 4)
var file_ticketsrvc_tickets_proto_goTypes = []any{
	(*PassengerDetails)(nil),      // 0: ticketsrvc.PassengerDetails
	(*Ticket)(nil),                // 1: ticketsrvc.Ticket
	(*CreateTicketRequest)(nil),   // 2: ticketsrvc.CreateTicketRequest
	(*CreateTicketResponse)(nil),  // 3: ticketsrvc.CreateTicketResponse
	(*timestamppb.Timestamp)(nil), // 4: google.protobuf.Timestamp
}
var file_ticketsrvc_tickets_proto_depIdxs = []int32{
	0, // 0: ticketsrvc.Ticket.passenger:type_name -> ticketsrvc.PassengerDetails
	4, // 1: ticketsrvc.Ticket.reservation_time:type_name -> google.protobuf.Timestamp
	0, // 2: ticketsrvc.CreateTicketRequest.passenger:type_name -> ticketsrvc.PassengerDetails
	4, // 3: ticketsrvc.CreateTicketRequest.reservation_time:type_name -> google.protobuf.Timestamp
	1, // 4: ticketsrvc.CreateTicketResponse.ticket:type_name -> ticketsrvc.Ticket
	2, // 5: ticketsrvc.Tickets.CreateTicket:input_type -> ticketsrvc.CreateTicketRequest
	3, // 6: ticketsrvc.Tickets.CreateTicket:output_type -> ticketsrvc.CreateTicketResponse
	6, // [6:7] is the sub-list for method output_type
	5, // [5:6] is the sub-list for method input_type
	5, // [5:5] is the sub-list for extension type_name
	5, // [5:5] is the sub-list for extension extendee
	0, // [0:5] is the sub-list for field type_name
}

func init() { file_ticketsrvc_tickets_proto_init() }
func file_ticketsrvc_tickets_proto_init() {
	if File_ticketsrvc_tickets_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ticketsrvc_tickets_proto_rawDesc), len(file_ticketsrvc_tickets_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   4,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ticketsrvc_tickets_proto_goTypes,
		DependencyIndexes: file_ticketsrvc_tickets_proto_depIdxs,
		MessageInfos:      file_ticketsrvc_tickets_proto_msgTypes,
	}.Build()
	File_ticketsrvc_tickets_proto = out.File
	file_ticketsrvc_tickets_proto_goTypes = nil
	file_ticketsrvc_tickets_proto_depIdxs = nil
}
