// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: health/v1/health.proto

package healthv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

// FamilyMember is a person whose reports are archived. Optional attributes
// are empty strings when unset; birth_date is YYYY-MM-DD.
type FamilyMember struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Relation      string                 `protobuf:"bytes,3,opt,name=relation,proto3" json:"relation,omitempty"`
	Gender        string                 `protobuf:"bytes,4,opt,name=gender,proto3" json:"gender,omitempty"`
	BirthDate     string                 `protobuf:"bytes,5,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FamilyMember) Reset() {
	*x = FamilyMember{}
	mi := &file_health_v1_health_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FamilyMember) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FamilyMember) ProtoMessage() {}

func (x *FamilyMember) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FamilyMember.ProtoReflect.Descriptor instead.
func (*FamilyMember) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{0}
}

func (x *FamilyMember) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FamilyMember) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FamilyMember) GetRelation() string {
	if x != nil {
		return x.Relation
	}
	return ""
}

func (x *FamilyMember) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *FamilyMember) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *FamilyMember) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

// MedicalReport is one archived report file plus its extracted fields.
// report_date is YYYY-MM-DD; optional fields are empty strings when unset.
type MedicalReport struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MemberId      string                 `protobuf:"bytes,2,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	FilePath      string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	HospitalName  string                 `protobuf:"bytes,4,opt,name=hospital_name,json=hospitalName,proto3" json:"hospital_name,omitempty"`
	ReportDate    string                 `protobuf:"bytes,5,opt,name=report_date,json=reportDate,proto3" json:"report_date,omitempty"`
	ReportType    string                 `protobuf:"bytes,6,opt,name=report_type,json=reportType,proto3" json:"report_type,omitempty"`
	Summary       string                 `protobuf:"bytes,7,opt,name=summary,proto3" json:"summary,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MedicalReport) Reset() {
	*x = MedicalReport{}
	mi := &file_health_v1_health_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MedicalReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MedicalReport) ProtoMessage() {}

func (x *MedicalReport) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MedicalReport.ProtoReflect.Descriptor instead.
func (*MedicalReport) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{1}
}

func (x *MedicalReport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *MedicalReport) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *MedicalReport) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *MedicalReport) GetHospitalName() string {
	if x != nil {
		return x.HospitalName
	}
	return ""
}

func (x *MedicalReport) GetReportDate() string {
	if x != nil {
		return x.ReportDate
	}
	return ""
}

func (x *MedicalReport) GetReportType() string {
	if x != nil {
		return x.ReportType
	}
	return ""
}

func (x *MedicalReport) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *MedicalReport) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Relation      string                 `protobuf:"bytes,2,opt,name=relation,proto3" json:"relation,omitempty"`
	Gender        string                 `protobuf:"bytes,3,opt,name=gender,proto3" json:"gender,omitempty"`
	BirthDate     string                 `protobuf:"bytes,4,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMemberRequest) Reset() {
	*x = CreateMemberRequest{}
	mi := &file_health_v1_health_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMemberRequest) ProtoMessage() {}

func (x *CreateMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMemberRequest.ProtoReflect.Descriptor instead.
func (*CreateMemberRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{2}
}

func (x *CreateMemberRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateMemberRequest) GetRelation() string {
	if x != nil {
		return x.Relation
	}
	return ""
}

func (x *CreateMemberRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *CreateMemberRequest) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

type CreateMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *FamilyMember          `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateMemberResponse) Reset() {
	*x = CreateMemberResponse{}
	mi := &file_health_v1_health_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateMemberResponse) ProtoMessage() {}

func (x *CreateMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateMemberResponse.ProtoReflect.Descriptor instead.
func (*CreateMemberResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{3}
}

func (x *CreateMemberResponse) GetMember() *FamilyMember {
	if x != nil {
		return x.Member
	}
	return nil
}

type GetMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemberId      string                 `protobuf:"bytes,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMemberRequest) Reset() {
	*x = GetMemberRequest{}
	mi := &file_health_v1_health_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMemberRequest) ProtoMessage() {}

func (x *GetMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMemberRequest.ProtoReflect.Descriptor instead.
func (*GetMemberRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{4}
}

func (x *GetMemberRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type GetMemberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *FamilyMember          `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMemberResponse) Reset() {
	*x = GetMemberResponse{}
	mi := &file_health_v1_health_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMemberResponse) ProtoMessage() {}

func (x *GetMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMemberResponse.ProtoReflect.Descriptor instead.
func (*GetMemberResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{5}
}

func (x *GetMemberResponse) GetMember() *FamilyMember {
	if x != nil {
		return x.Member
	}
	return nil
}

type ListMembersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMembersRequest) Reset() {
	*x = ListMembersRequest{}
	mi := &file_health_v1_health_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMembersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMembersRequest) ProtoMessage() {}

func (x *ListMembersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMembersRequest.ProtoReflect.Descriptor instead.
func (*ListMembersRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{6}
}

type MemberSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Member        *FamilyMember          `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
	ReportCount   int32                  `protobuf:"varint,2,opt,name=report_count,json=reportCount,proto3" json:"report_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MemberSummary) Reset() {
	*x = MemberSummary{}
	mi := &file_health_v1_health_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MemberSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MemberSummary) ProtoMessage() {}

func (x *MemberSummary) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MemberSummary.ProtoReflect.Descriptor instead.
func (*MemberSummary) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{7}
}

func (x *MemberSummary) GetMember() *FamilyMember {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *MemberSummary) GetReportCount() int32 {
	if x != nil {
		return x.ReportCount
	}
	return 0
}

type ListMembersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Members       []*MemberSummary       `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMembersResponse) Reset() {
	*x = ListMembersResponse{}
	mi := &file_health_v1_health_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMembersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMembersResponse) ProtoMessage() {}

func (x *ListMembersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMembersResponse.ProtoReflect.Descriptor instead.
func (*ListMembersResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{8}
}

func (x *ListMembersResponse) GetMembers() []*MemberSummary {
	if x != nil {
		return x.Members
	}
	return nil
}

type DeleteMemberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemberId      string                 `protobuf:"bytes,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteMemberRequest) Reset() {
	*x = DeleteMemberRequest{}
	mi := &file_health_v1_health_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMemberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMemberRequest) ProtoMessage() {}

func (x *DeleteMemberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMemberRequest.ProtoReflect.Descriptor instead.
func (*DeleteMemberRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteMemberRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type DeleteMemberResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Number of archived reports removed along with the member.
	ReportsDeleted int32 `protobuf:"varint,1,opt,name=reports_deleted,json=reportsDeleted,proto3" json:"reports_deleted,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DeleteMemberResponse) Reset() {
	*x = DeleteMemberResponse{}
	mi := &file_health_v1_health_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteMemberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteMemberResponse) ProtoMessage() {}

func (x *DeleteMemberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteMemberResponse.ProtoReflect.Descriptor instead.
func (*DeleteMemberResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteMemberResponse) GetReportsDeleted() int32 {
	if x != nil {
		return x.ReportsDeleted
	}
	return 0
}

type ListMemberReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MemberId      string                 `protobuf:"bytes,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMemberReportsRequest) Reset() {
	*x = ListMemberReportsRequest{}
	mi := &file_health_v1_health_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMemberReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMemberReportsRequest) ProtoMessage() {}

func (x *ListMemberReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMemberReportsRequest.ProtoReflect.Descriptor instead.
func (*ListMemberReportsRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{11}
}

func (x *ListMemberReportsRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type ListMemberReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*MedicalReport       `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMemberReportsResponse) Reset() {
	*x = ListMemberReportsResponse{}
	mi := &file_health_v1_health_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMemberReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMemberReportsResponse) ProtoMessage() {}

func (x *ListMemberReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMemberReportsResponse.ProtoReflect.Descriptor instead.
func (*ListMemberReportsResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{12}
}

func (x *ListMemberReportsResponse) GetReports() []*MedicalReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type GetReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	mi := &file_health_v1_health_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{13}
}

func (x *GetReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type GetReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *MedicalReport         `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	mi := &file_health_v1_health_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{14}
}

func (x *GetReportResponse) GetReport() *MedicalReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type ListReportsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Offset        int32                  `protobuf:"varint,1,opt,name=offset,proto3" json:"offset,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsRequest) Reset() {
	*x = ListReportsRequest{}
	mi := &file_health_v1_health_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsRequest) ProtoMessage() {}

func (x *ListReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsRequest.ProtoReflect.Descriptor instead.
func (*ListReportsRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{15}
}

func (x *ListReportsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListReportsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reports       []*MedicalReport       `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReportsResponse) Reset() {
	*x = ListReportsResponse{}
	mi := &file_health_v1_health_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsResponse) ProtoMessage() {}

func (x *ListReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsResponse.ProtoReflect.Descriptor instead.
func (*ListReportsResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{16}
}

func (x *ListReportsResponse) GetReports() []*MedicalReport {
	if x != nil {
		return x.Reports
	}
	return nil
}

type DeleteReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReportRequest) Reset() {
	*x = DeleteReportRequest{}
	mi := &file_health_v1_health_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReportRequest) ProtoMessage() {}

func (x *DeleteReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReportRequest.ProtoReflect.Descriptor instead.
func (*DeleteReportRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{17}
}

func (x *DeleteReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type DeleteReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReportResponse) Reset() {
	*x = DeleteReportResponse{}
	mi := &file_health_v1_health_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReportResponse) ProtoMessage() {}

func (x *DeleteReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReportResponse.ProtoReflect.Descriptor instead.
func (*DeleteReportResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{18}
}

type ExportMemberReportsRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	MemberId string                 `protobuf:"bytes,1,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	// Destination path on the server; defaults next to the upload directory.
	OutputPath    string `protobuf:"bytes,2,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMemberReportsRequest) Reset() {
	*x = ExportMemberReportsRequest{}
	mi := &file_health_v1_health_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMemberReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMemberReportsRequest) ProtoMessage() {}

func (x *ExportMemberReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMemberReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportMemberReportsRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{19}
}

func (x *ExportMemberReportsRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *ExportMemberReportsRequest) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

type ExportMemberReportsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OutputPath    string                 `protobuf:"bytes,1,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	ReportCount   int32                  `protobuf:"varint,2,opt,name=report_count,json=reportCount,proto3" json:"report_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMemberReportsResponse) Reset() {
	*x = ExportMemberReportsResponse{}
	mi := &file_health_v1_health_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMemberReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMemberReportsResponse) ProtoMessage() {}

func (x *ExportMemberReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMemberReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportMemberReportsResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{20}
}

func (x *ExportMemberReportsResponse) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *ExportMemberReportsResponse) GetReportCount() int32 {
	if x != nil {
		return x.ReportCount
	}
	return 0
}

type UploadReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadReportRequest) Reset() {
	*x = UploadReportRequest{}
	mi := &file_health_v1_health_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadReportRequest) ProtoMessage() {}

func (x *UploadReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadReportRequest.ProtoReflect.Descriptor instead.
func (*UploadReportRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{21}
}

func (x *UploadReportRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadReportRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestFileRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Path readable by the server process.
	Path          string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_health_v1_health_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{22}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *MedicalReport         `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	Member        *FamilyMember          `protobuf:"bytes,2,opt,name=member,proto3" json:"member,omitempty"`
	MemberCreated bool                   `protobuf:"varint,3,opt,name=member_created,json=memberCreated,proto3" json:"member_created,omitempty"`
	UsedFallback  bool                   `protobuf:"varint,4,opt,name=used_fallback,json=usedFallback,proto3" json:"used_fallback,omitempty"`
	Stage         string                 `protobuf:"bytes,5,opt,name=stage,proto3" json:"stage,omitempty"`
	Warnings      []string               `protobuf:"bytes,6,rep,name=warnings,proto3" json:"warnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_health_v1_health_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_health_v1_health_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_health_v1_health_proto_rawDescGZIP(), []int{23}
}

func (x *IngestResponse) GetReport() *MedicalReport {
	if x != nil {
		return x.Report
	}
	return nil
}

func (x *IngestResponse) GetMember() *FamilyMember {
	if x != nil {
		return x.Member
	}
	return nil
}

func (x *IngestResponse) GetMemberCreated() bool {
	if x != nil {
		return x.MemberCreated
	}
	return false
}

func (x *IngestResponse) GetUsedFallback() bool {
	if x != nil {
		return x.UsedFallback
	}
	return false
}

func (x *IngestResponse) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *IngestResponse) GetWarnings() []string {
	if x != nil {
		return x.Warnings
	}
	return nil
}

var File_health_v1_health_proto protoreflect.FileDescriptor

const file_health_v1_health_proto_rawDesc = "" +
	"\n" +
	"\x16health/v1/health.proto\x12\thealth.v1\"\xa4\x01\n" +
	"\fFamilyMember\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\brelation\x18\x03 \x01(\tR\brelation\x12\x16\n" +
	"\x06gender\x18\x04 \x01(\tR\x06gender\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x05 \x01(\tR\tbirthDate\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\xf9\x01\n" +
	"\rMedicalReport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tmember_id\x18\x02 \x01(\tR\bmemberId\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\x12#\n" +
	"\rhospital_name\x18\x04 \x01(\tR\fhospitalName\x12\x1f\n" +
	"\vreport_date\x18\x05 \x01(\tR\n" +
	"reportDate\x12\x1f\n" +
	"\vreport_type\x18\x06 \x01(\tR\n" +
	"reportType\x12\x18\n" +
	"\asummary\x18\a \x01(\tR\asummary\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"|\n" +
	"\x13CreateMemberRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\brelation\x18\x02 \x01(\tR\brelation\x12\x16\n" +
	"\x06gender\x18\x03 \x01(\tR\x06gender\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x04 \x01(\tR\tbirthDate\"G\n" +
	"\x14CreateMemberResponse\x12/\n" +
	"\x06member\x18\x01 \x01(\v2\x17.health.v1.FamilyMemberR\x06member\"/\n" +
	"\x10GetMemberRequest\x12\x1b\n" +
	"\tmember_id\x18\x01 \x01(\tR\bmemberId\"D\n" +
	"\x11GetMemberResponse\x12/\n" +
	"\x06member\x18\x01 \x01(\v2\x17.health.v1.FamilyMemberR\x06member\"\x14\n" +
	"\x12ListMembersRequest\"c\n" +
	"\rMemberSummary\x12/\n" +
	"\x06member\x18\x01 \x01(\v2\x17.health.v1.FamilyMemberR\x06member\x12!\n" +
	"\freport_count\x18\x02 \x01(\x05R\vreportCount\"I\n" +
	"\x13ListMembersResponse\x122\n" +
	"\amembers\x18\x01 \x03(\v2\x18.health.v1.MemberSummaryR\amembers\"2\n" +
	"\x13DeleteMemberRequest\x12\x1b\n" +
	"\tmember_id\x18\x01 \x01(\tR\bmemberId\"?\n" +
	"\x14DeleteMemberResponse\x12'\n" +
	"\x0freports_deleted\x18\x01 \x01(\x05R\x0ereportsDeleted\"7\n" +
	"\x18ListMemberReportsRequest\x12\x1b\n" +
	"\tmember_id\x18\x01 \x01(\tR\bmemberId\"O\n" +
	"\x19ListMemberReportsResponse\x122\n" +
	"\areports\x18\x01 \x03(\v2\x18.health.v1.MedicalReportR\areports\"/\n" +
	"\x10GetReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"E\n" +
	"\x11GetReportResponse\x120\n" +
	"\x06report\x18\x01 \x01(\v2\x18.health.v1.MedicalReportR\x06report\"B\n" +
	"\x12ListReportsRequest\x12\x16\n" +
	"\x06offset\x18\x01 \x01(\x05R\x06offset\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"I\n" +
	"\x13ListReportsResponse\x122\n" +
	"\areports\x18\x01 \x03(\v2\x18.health.v1.MedicalReportR\areports\"2\n" +
	"\x13DeleteReportRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"\x16\n" +
	"\x14DeleteReportResponse\"Z\n" +
	"\x1aExportMemberReportsRequest\x12\x1b\n" +
	"\tmember_id\x18\x01 \x01(\tR\bmemberId\x12\x1f\n" +
	"\voutput_path\x18\x02 \x01(\tR\n" +
	"outputPath\"a\n" +
	"\x1bExportMemberReportsResponse\x12\x1f\n" +
	"\voutput_path\x18\x01 \x01(\tR\n" +
	"outputPath\x12!\n" +
	"\freport_count\x18\x02 \x01(\x05R\vreportCount\"K\n" +
	"\x13UploadReportRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xf1\x01\n" +
	"\x0eIngestResponse\x120\n" +
	"\x06report\x18\x01 \x01(\v2\x18.health.v1.MedicalReportR\x06report\x12/\n" +
	"\x06member\x18\x02 \x01(\v2\x17.health.v1.FamilyMemberR\x06member\x12%\n" +
	"\x0emember_created\x18\x03 \x01(\bR\rmemberCreated\x12#\n" +
	"\rused_fallback\x18\x04 \x01(\bR\fusedFallback\x12\x14\n" +
	"\x05stage\x18\x05 \x01(\tR\x05stage\x12\x1a\n" +
	"\bwarnings\x18\x06 \x03(\tR\bwarnings2\xa8\x03\n" +
	"\x0eMembersService\x12O\n" +
	"\fCreateMember\x12\x1e.health.v1.CreateMemberRequest\x1a\x1f.health.v1.CreateMemberResponse\x12F\n" +
	"\tGetMember\x12\x1b.health.v1.GetMemberRequest\x1a\x1c.health.v1.GetMemberResponse\x12L\n" +
	"\vListMembers\x12\x1d.health.v1.ListMembersRequest\x1a\x1e.health.v1.ListMembersResponse\x12O\n" +
	"\fDeleteMember\x12\x1e.health.v1.DeleteMemberRequest\x1a\x1f.health.v1.DeleteMemberResponse\x12^\n" +
	"\x11ListMemberReports\x12#.health.v1.ListMemberReportsRequest\x1a$.health.v1.ListMemberReportsResponse2\xdd\x02\n" +
	"\x0eReportsService\x12F\n" +
	"\tGetReport\x12\x1b.health.v1.GetReportRequest\x1a\x1c.health.v1.GetReportResponse\x12L\n" +
	"\vListReports\x12\x1d.health.v1.ListReportsRequest\x1a\x1e.health.v1.ListReportsResponse\x12O\n" +
	"\fDeleteReport\x12\x1e.health.v1.DeleteReportRequest\x1a\x1f.health.v1.DeleteReportResponse\x12d\n" +
	"\x13ExportMemberReports\x12%.health.v1.ExportMemberReportsRequest\x1a&.health.v1.ExportMemberReportsResponse2\xa4\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\fUploadReport\x12\x1e.health.v1.UploadReportRequest\x1a\x19.health.v1.IngestResponse\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.health.v1.IngestFileRequest\x1a\x19.health.v1.IngestResponseBJZHgithub.com/wenjun-lei/family-health-archive/gen/proto/health/v1;healthv1b\x06proto3"

var (
	file_health_v1_health_proto_rawDescOnce sync.Once
	file_health_v1_health_proto_rawDescData []byte
)

func file_health_v1_health_proto_rawDescGZIP() []byte {
	file_health_v1_health_proto_rawDescOnce.Do(func() {
		file_health_v1_health_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_health_v1_health_proto_rawDesc), len(file_health_v1_health_proto_rawDesc)))
	})
	return file_health_v1_health_proto_rawDescData
}

var file_health_v1_health_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_health_v1_health_proto_goTypes = []any{
	(*FamilyMember)(nil),                // 0: health.v1.FamilyMember
	(*MedicalReport)(nil),               // 1: health.v1.MedicalReport
	(*CreateMemberRequest)(nil),         // 2: health.v1.CreateMemberRequest
	(*CreateMemberResponse)(nil),        // 3: health.v1.CreateMemberResponse
	(*GetMemberRequest)(nil),            // 4: health.v1.GetMemberRequest
	(*GetMemberResponse)(nil),           // 5: health.v1.GetMemberResponse
	(*ListMembersRequest)(nil),          // 6: health.v1.ListMembersRequest
	(*MemberSummary)(nil),               // 7: health.v1.MemberSummary
	(*ListMembersResponse)(nil),         // 8: health.v1.ListMembersResponse
	(*DeleteMemberRequest)(nil),         // 9: health.v1.DeleteMemberRequest
	(*DeleteMemberResponse)(nil),        // 10: health.v1.DeleteMemberResponse
	(*ListMemberReportsRequest)(nil),    // 11: health.v1.ListMemberReportsRequest
	(*ListMemberReportsResponse)(nil),   // 12: health.v1.ListMemberReportsResponse
	(*GetReportRequest)(nil),            // 13: health.v1.GetReportRequest
	(*GetReportResponse)(nil),           // 14: health.v1.GetReportResponse
	(*ListReportsRequest)(nil),          // 15: health.v1.ListReportsRequest
	(*ListReportsResponse)(nil),         // 16: health.v1.ListReportsResponse
	(*DeleteReportRequest)(nil),         // 17: health.v1.DeleteReportRequest
	(*DeleteReportResponse)(nil),        // 18: health.v1.DeleteReportResponse
	(*ExportMemberReportsRequest)(nil),  // 19: health.v1.ExportMemberReportsRequest
	(*ExportMemberReportsResponse)(nil), // 20: health.v1.ExportMemberReportsResponse
	(*UploadReportRequest)(nil),         // 21: health.v1.UploadReportRequest
	(*IngestFileRequest)(nil),           // 22: health.v1.IngestFileRequest
	(*IngestResponse)(nil),              // 23: health.v1.IngestResponse
}
var file_health_v1_health_proto_depIdxs = []int32{
	0,  // 0: health.v1.CreateMemberResponse.member:type_name -> health.v1.FamilyMember
	0,  // 1: health.v1.GetMemberResponse.member:type_name -> health.v1.FamilyMember
	0,  // 2: health.v1.MemberSummary.member:type_name -> health.v1.FamilyMember
	7,  // 3: health.v1.ListMembersResponse.members:type_name -> health.v1.MemberSummary
	1,  // 4: health.v1.ListMemberReportsResponse.reports:type_name -> health.v1.MedicalReport
	1,  // 5: health.v1.GetReportResponse.report:type_name -> health.v1.MedicalReport
	1,  // 6: health.v1.ListReportsResponse.reports:type_name -> health.v1.MedicalReport
	1,  // 7: health.v1.IngestResponse.report:type_name -> health.v1.MedicalReport
	0,  // 8: health.v1.IngestResponse.member:type_name -> health.v1.FamilyMember
	2,  // 9: health.v1.MembersService.CreateMember:input_type -> health.v1.CreateMemberRequest
	4,  // 10: health.v1.MembersService.GetMember:input_type -> health.v1.GetMemberRequest
	6,  // 11: health.v1.MembersService.ListMembers:input_type -> health.v1.ListMembersRequest
	9,  // 12: health.v1.MembersService.DeleteMember:input_type -> health.v1.DeleteMemberRequest
	11, // 13: health.v1.MembersService.ListMemberReports:input_type -> health.v1.ListMemberReportsRequest
	13, // 14: health.v1.ReportsService.GetReport:input_type -> health.v1.GetReportRequest
	15, // 15: health.v1.ReportsService.ListReports:input_type -> health.v1.ListReportsRequest
	17, // 16: health.v1.ReportsService.DeleteReport:input_type -> health.v1.DeleteReportRequest
	19, // 17: health.v1.ReportsService.ExportMemberReports:input_type -> health.v1.ExportMemberReportsRequest
	21, // 18: health.v1.IngestionService.UploadReport:input_type -> health.v1.UploadReportRequest
	22, // 19: health.v1.IngestionService.IngestFile:input_type -> health.v1.IngestFileRequest
	3,  // 20: health.v1.MembersService.CreateMember:output_type -> health.v1.CreateMemberResponse
	5,  // 21: health.v1.MembersService.GetMember:output_type -> health.v1.GetMemberResponse
	8,  // 22: health.v1.MembersService.ListMembers:output_type -> health.v1.ListMembersResponse
	10, // 23: health.v1.MembersService.DeleteMember:output_type -> health.v1.DeleteMemberResponse
	12, // 24: health.v1.MembersService.ListMemberReports:output_type -> health.v1.ListMemberReportsResponse
	14, // 25: health.v1.ReportsService.GetReport:output_type -> health.v1.GetReportResponse
	16, // 26: health.v1.ReportsService.ListReports:output_type -> health.v1.ListReportsResponse
	18, // 27: health.v1.ReportsService.DeleteReport:output_type -> health.v1.DeleteReportResponse
	20, // 28: health.v1.ReportsService.ExportMemberReports:output_type -> health.v1.ExportMemberReportsResponse
	23, // 29: health.v1.IngestionService.UploadReport:output_type -> health.v1.IngestResponse
	23, // 30: health.v1.IngestionService.IngestFile:output_type -> health.v1.IngestResponse
	20, // [20:31] is the sub-list for method output_type
	9,  // [9:20] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_health_v1_health_proto_init() }
func file_health_v1_health_proto_init() {
	if File_health_v1_health_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_health_v1_health_proto_rawDesc), len(file_health_v1_health_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_health_v1_health_proto_goTypes,
		DependencyIndexes: file_health_v1_health_proto_depIdxs,
		MessageInfos:      file_health_v1_health_proto_msgTypes,
	}.Build()
	File_health_v1_health_proto = out.File
	file_health_v1_health_proto_goTypes = nil
	file_health_v1_health_proto_depIdxs = nil
}
