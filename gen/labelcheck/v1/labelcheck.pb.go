// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: labelcheck/v1/labelcheck.proto

package labelcheckv1

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

type Label struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Status             string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CorrectionDeadline *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=correction_deadline,json=correctionDeadline,proto3" json:"correction_deadline,omitempty"`
	BeverageType       string                 `protobuf:"bytes,4,opt,name=beverage_type,json=beverageType,proto3" json:"beverage_type,omitempty"`
	ContainerMl        int32                  `protobuf:"varint,5,opt,name=container_ml,json=containerMl,proto3" json:"container_ml,omitempty"`
	ApplicationValues  map[string]string      `protobuf:"bytes,6,rep,name=application_values,json=applicationValues,proto3" json:"application_values,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	StatusReasoning    string                 `protobuf:"bytes,7,opt,name=status_reasoning,json=statusReasoning,proto3" json:"status_reasoning,omitempty"`
	CreatedAt          *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Label) Reset() {
	*x = Label{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Label) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Label) ProtoMessage() {}

func (x *Label) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Label.ProtoReflect.Descriptor instead.
func (*Label) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{0}
}

func (x *Label) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Label) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Label) GetCorrectionDeadline() *timestamppb.Timestamp {
	if x != nil {
		return x.CorrectionDeadline
	}
	return nil
}

func (x *Label) GetBeverageType() string {
	if x != nil {
		return x.BeverageType
	}
	return ""
}

func (x *Label) GetContainerMl() int32 {
	if x != nil {
		return x.ContainerMl
	}
	return 0
}

func (x *Label) GetApplicationValues() map[string]string {
	if x != nil {
		return x.ApplicationValues
	}
	return nil
}

func (x *Label) GetStatusReasoning() string {
	if x != nil {
		return x.StatusReasoning
	}
	return ""
}

func (x *Label) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Label) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type BoundingBox struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float64                `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float64                `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Width         float64                `protobuf:"fixed64,3,opt,name=width,proto3" json:"width,omitempty"`
	Height        float64                `protobuf:"fixed64,4,opt,name=height,proto3" json:"height,omitempty"`
	Angle         int32                  `protobuf:"varint,5,opt,name=angle,proto3" json:"angle,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{1}
}

func (x *BoundingBox) GetX() float64 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *BoundingBox) GetY() float64 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *BoundingBox) GetWidth() float64 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *BoundingBox) GetHeight() float64 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *BoundingBox) GetAngle() int32 {
	if x != nil {
		return x.Angle
	}
	return 0
}

type ValidationItem struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	FieldName            string                 `protobuf:"bytes,1,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	ExpectedValue        string                 `protobuf:"bytes,2,opt,name=expected_value,json=expectedValue,proto3" json:"expected_value,omitempty"`
	ExtractedValue       *string                `protobuf:"bytes,3,opt,name=extracted_value,json=extractedValue,proto3,oneof" json:"extracted_value,omitempty"`
	ComparisonStatus     string                 `protobuf:"bytes,4,opt,name=comparison_status,json=comparisonStatus,proto3" json:"comparison_status,omitempty"`
	ComparisonConfidence int32                  `protobuf:"varint,5,opt,name=comparison_confidence,json=comparisonConfidence,proto3" json:"comparison_confidence,omitempty"`
	ComparisonReasoning  string                 `protobuf:"bytes,6,opt,name=comparison_reasoning,json=comparisonReasoning,proto3" json:"comparison_reasoning,omitempty"`
	BoundingBox          *BoundingBox           `protobuf:"bytes,7,opt,name=bounding_box,json=boundingBox,proto3,oneof" json:"bounding_box,omitempty"`
	ImageIndex           int32                  `protobuf:"varint,8,opt,name=image_index,json=imageIndex,proto3" json:"image_index,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ValidationItem) Reset() {
	*x = ValidationItem{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationItem) ProtoMessage() {}

func (x *ValidationItem) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationItem.ProtoReflect.Descriptor instead.
func (*ValidationItem) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{2}
}

func (x *ValidationItem) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *ValidationItem) GetExpectedValue() string {
	if x != nil {
		return x.ExpectedValue
	}
	return ""
}

func (x *ValidationItem) GetExtractedValue() string {
	if x != nil && x.ExtractedValue != nil {
		return *x.ExtractedValue
	}
	return ""
}

func (x *ValidationItem) GetComparisonStatus() string {
	if x != nil {
		return x.ComparisonStatus
	}
	return ""
}

func (x *ValidationItem) GetComparisonConfidence() int32 {
	if x != nil {
		return x.ComparisonConfidence
	}
	return 0
}

func (x *ValidationItem) GetComparisonReasoning() string {
	if x != nil {
		return x.ComparisonReasoning
	}
	return ""
}

func (x *ValidationItem) GetBoundingBox() *BoundingBox {
	if x != nil {
		return x.BoundingBox
	}
	return nil
}

func (x *ValidationItem) GetImageIndex() int32 {
	if x != nil {
		return x.ImageIndex
	}
	return 0
}

type CreateLabelRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	BeverageType      string                 `protobuf:"bytes,1,opt,name=beverage_type,json=beverageType,proto3" json:"beverage_type,omitempty"`
	ContainerMl       int32                  `protobuf:"varint,2,opt,name=container_ml,json=containerMl,proto3" json:"container_ml,omitempty"`
	ApplicationValues map[string]string      `protobuf:"bytes,3,rep,name=application_values,json=applicationValues,proto3" json:"application_values,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ImagePaths        []string               `protobuf:"bytes,4,rep,name=image_paths,json=imagePaths,proto3" json:"image_paths,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CreateLabelRequest) Reset() {
	*x = CreateLabelRequest{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLabelRequest) ProtoMessage() {}

func (x *CreateLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLabelRequest.ProtoReflect.Descriptor instead.
func (*CreateLabelRequest) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{3}
}

func (x *CreateLabelRequest) GetBeverageType() string {
	if x != nil {
		return x.BeverageType
	}
	return ""
}

func (x *CreateLabelRequest) GetContainerMl() int32 {
	if x != nil {
		return x.ContainerMl
	}
	return 0
}

func (x *CreateLabelRequest) GetApplicationValues() map[string]string {
	if x != nil {
		return x.ApplicationValues
	}
	return nil
}

func (x *CreateLabelRequest) GetImagePaths() []string {
	if x != nil {
		return x.ImagePaths
	}
	return nil
}

type CreateLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *Label                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLabelResponse) Reset() {
	*x = CreateLabelResponse{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLabelResponse) ProtoMessage() {}

func (x *CreateLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLabelResponse.ProtoReflect.Descriptor instead.
func (*CreateLabelResponse) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{4}
}

func (x *CreateLabelResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type GetLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelRequest) Reset() {
	*x = GetLabelRequest{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelRequest) ProtoMessage() {}

func (x *GetLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelRequest.ProtoReflect.Descriptor instead.
func (*GetLabelRequest) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{5}
}

func (x *GetLabelRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         *Label                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLabelResponse) Reset() {
	*x = GetLabelResponse{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLabelResponse) ProtoMessage() {}

func (x *GetLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLabelResponse.ProtoReflect.Descriptor instead.
func (*GetLabelResponse) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{6}
}

func (x *GetLabelResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type VerifyLabelRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Variant        string                 `protobuf:"bytes,2,opt,name=variant,proto3" json:"variant,omitempty"` // "standard" (default) or "submission_fast"
	AutoDetectType bool                   `protobuf:"varint,3,opt,name=auto_detect_type,json=autoDetectType,proto3" json:"auto_detect_type,omitempty"`
	AttachImages   bool                   `protobuf:"varint,4,opt,name=attach_images,json=attachImages,proto3" json:"attach_images,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *VerifyLabelRequest) Reset() {
	*x = VerifyLabelRequest{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLabelRequest) ProtoMessage() {}

func (x *VerifyLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLabelRequest.ProtoReflect.Descriptor instead.
func (*VerifyLabelRequest) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{7}
}

func (x *VerifyLabelRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VerifyLabelRequest) GetVariant() string {
	if x != nil {
		return x.Variant
	}
	return ""
}

func (x *VerifyLabelRequest) GetAutoDetectType() bool {
	if x != nil {
		return x.AutoDetectType
	}
	return false
}

func (x *VerifyLabelRequest) GetAttachImages() bool {
	if x != nil {
		return x.AttachImages
	}
	return false
}

type VerifyLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Label         *Label                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyLabelResponse) Reset() {
	*x = VerifyLabelResponse{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyLabelResponse) ProtoMessage() {}

func (x *VerifyLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyLabelResponse.ProtoReflect.Descriptor instead.
func (*VerifyLabelResponse) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{8}
}

func (x *VerifyLabelResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *VerifyLabelResponse) GetLabel() *Label {
	if x != nil {
		return x.Label
	}
	return nil
}

type ListValidationItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListValidationItemsRequest) Reset() {
	*x = ListValidationItemsRequest{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListValidationItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListValidationItemsRequest) ProtoMessage() {}

func (x *ListValidationItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListValidationItemsRequest.ProtoReflect.Descriptor instead.
func (*ListValidationItemsRequest) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{9}
}

func (x *ListValidationItemsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListValidationItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ValidationItem      `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListValidationItemsResponse) Reset() {
	*x = ListValidationItemsResponse{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListValidationItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListValidationItemsResponse) ProtoMessage() {}

func (x *ListValidationItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListValidationItemsResponse.ProtoReflect.Descriptor instead.
func (*ListValidationItemsResponse) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{10}
}

func (x *ListValidationItemsResponse) GetItems() []*ValidationItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ExportValidationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportValidationRequest) Reset() {
	*x = ExportValidationRequest{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportValidationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportValidationRequest) ProtoMessage() {}

func (x *ExportValidationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportValidationRequest.ProtoReflect.Descriptor instead.
func (*ExportValidationRequest) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{11}
}

func (x *ExportValidationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportValidationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportValidationResponse) Reset() {
	*x = ExportValidationResponse{}
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportValidationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportValidationResponse) ProtoMessage() {}

func (x *ExportValidationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_labelcheck_v1_labelcheck_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportValidationResponse.ProtoReflect.Descriptor instead.
func (*ExportValidationResponse) Descriptor() ([]byte, []int) {
	return file_labelcheck_v1_labelcheck_proto_rawDescGZIP(), []int{12}
}

func (x *ExportValidationResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_labelcheck_v1_labelcheck_proto protoreflect.FileDescriptor

const file_labelcheck_v1_labelcheck_proto_rawDesc = "" +
	"\n" +
	"\x1elabelcheck/v1/labelcheck.proto\x12\rlabelcheck.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x87\x04\n" +
	"\x05Label\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12K\n" +
	"\x13correction_deadline\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x12correctionDeadline\x12#\n" +
	"\rbeverage_type\x18\x04 \x01(\tR\fbeverageType\x12!\n" +
	"\fcontainer_ml\x18\x05 \x01(\x05R\vcontainerMl\x12Z\n" +
	"\x12application_values\x18\x06 \x03(\v2+.labelcheck.v1.Label.ApplicationValuesEntryR\x11applicationValues\x12)\n" +
	"\x10status_reasoning\x18\a \x01(\tR\x0fstatusReasoning\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x1aD\n" +
	"\x16ApplicationValuesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"m\n" +
	"\vBoundingBox\x12\f\n" +
	"\x01x\x18\x01 \x01(\x01R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x01R\x01y\x12\x14\n" +
	"\x05width\x18\x03 \x01(\x01R\x05width\x12\x16\n" +
	"\x06height\x18\x04 \x01(\x01R\x06height\x12\x14\n" +
	"\x05angle\x18\x05 \x01(\x05R\x05angle\"\xa3\x03\n" +
	"\x0eValidationItem\x12\x1d\n" +
	"\n" +
	"field_name\x18\x01 \x01(\tR\tfieldName\x12%\n" +
	"\x0eexpected_value\x18\x02 \x01(\tR\rexpectedValue\x12,\n" +
	"\x0fextracted_value\x18\x03 \x01(\tH\x00R\x0eextractedValue\x88\x01\x01\x12+\n" +
	"\x11comparison_status\x18\x04 \x01(\tR\x10comparisonStatus\x123\n" +
	"\x15comparison_confidence\x18\x05 \x01(\x05R\x14comparisonConfidence\x121\n" +
	"\x14comparison_reasoning\x18\x06 \x01(\tR\x13comparisonReasoning\x12B\n" +
	"\fbounding_box\x18\a \x01(\v2\x1a.labelcheck.v1.BoundingBoxH\x01R\vboundingBox\x88\x01\x01\x12\x1f\n" +
	"\vimage_index\x18\b \x01(\x05R\n" +
	"imageIndexB\x12\n" +
	"\x10_extracted_valueB\x0f\n" +
	"\r_bounding_box\"\xac\x02\n" +
	"\x12CreateLabelRequest\x12#\n" +
	"\rbeverage_type\x18\x01 \x01(\tR\fbeverageType\x12!\n" +
	"\fcontainer_ml\x18\x02 \x01(\x05R\vcontainerMl\x12g\n" +
	"\x12application_values\x18\x03 \x03(\v28.labelcheck.v1.CreateLabelRequest.ApplicationValuesEntryR\x11applicationValues\x12\x1f\n" +
	"\vimage_paths\x18\x04 \x03(\tR\n" +
	"imagePaths\x1aD\n" +
	"\x16ApplicationValuesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"A\n" +
	"\x13CreateLabelResponse\x12*\n" +
	"\x05label\x18\x01 \x01(\v2\x14.labelcheck.v1.LabelR\x05label\"!\n" +
	"\x0fGetLabelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x10GetLabelResponse\x12*\n" +
	"\x05label\x18\x01 \x01(\v2\x14.labelcheck.v1.LabelR\x05label\"\x8d\x01\n" +
	"\x12VerifyLabelRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\avariant\x18\x02 \x01(\tR\avariant\x12(\n" +
	"\x10auto_detect_type\x18\x03 \x01(\bR\x0eautoDetectType\x12#\n" +
	"\rattach_images\x18\x04 \x01(\bR\fattachImages\"X\n" +
	"\x13VerifyLabelResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12*\n" +
	"\x05label\x18\x02 \x01(\v2\x14.labelcheck.v1.LabelR\x05label\"3\n" +
	"\x1aListValidationItemsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"R\n" +
	"\x1bListValidationItemsResponse\x123\n" +
	"\x05items\x18\x01 \x03(\v2\x1d.labelcheck.v1.ValidationItemR\x05items\"0\n" +
	"\x17ExportValidationRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\".\n" +
	"\x18ExportValidationResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xe6\x03\n" +
	"\x18LabelVerificationService\x12T\n" +
	"\vCreateLabel\x12!.labelcheck.v1.CreateLabelRequest\x1a\".labelcheck.v1.CreateLabelResponse\x12K\n" +
	"\bGetLabel\x12\x1e.labelcheck.v1.GetLabelRequest\x1a\x1f.labelcheck.v1.GetLabelResponse\x12T\n" +
	"\vVerifyLabel\x12!.labelcheck.v1.VerifyLabelRequest\x1a\".labelcheck.v1.VerifyLabelResponse\x12l\n" +
	"\x13ListValidationItems\x12).labelcheck.v1.ListValidationItemsRequest\x1a*.labelcheck.v1.ListValidationItemsResponse\x12c\n" +
	"\x10ExportValidation\x12&.labelcheck.v1.ExportValidationRequest\x1a'.labelcheck.v1.ExportValidationResponseBAZ?github.com/labelcheck/labelcheck/gen/labelcheck/v1;labelcheckv1b\x06proto3"

var (
	file_labelcheck_v1_labelcheck_proto_rawDescOnce sync.Once
	file_labelcheck_v1_labelcheck_proto_rawDescData []byte
)

func file_labelcheck_v1_labelcheck_proto_rawDescGZIP() []byte {
	file_labelcheck_v1_labelcheck_proto_rawDescOnce.Do(func() {
		file_labelcheck_v1_labelcheck_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_labelcheck_v1_labelcheck_proto_rawDesc), len(file_labelcheck_v1_labelcheck_proto_rawDesc)))
	})
	return file_labelcheck_v1_labelcheck_proto_rawDescData
}

var file_labelcheck_v1_labelcheck_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_labelcheck_v1_labelcheck_proto_goTypes = []any{
	(*Label)(nil),                       // 0: labelcheck.v1.Label
	(*BoundingBox)(nil),                 // 1: labelcheck.v1.BoundingBox
	(*ValidationItem)(nil),              // 2: labelcheck.v1.ValidationItem
	(*CreateLabelRequest)(nil),          // 3: labelcheck.v1.CreateLabelRequest
	(*CreateLabelResponse)(nil),         // 4: labelcheck.v1.CreateLabelResponse
	(*GetLabelRequest)(nil),             // 5: labelcheck.v1.GetLabelRequest
	(*GetLabelResponse)(nil),            // 6: labelcheck.v1.GetLabelResponse
	(*VerifyLabelRequest)(nil),          // 7: labelcheck.v1.VerifyLabelRequest
	(*VerifyLabelResponse)(nil),         // 8: labelcheck.v1.VerifyLabelResponse
	(*ListValidationItemsRequest)(nil),  // 9: labelcheck.v1.ListValidationItemsRequest
	(*ListValidationItemsResponse)(nil), // 10: labelcheck.v1.ListValidationItemsResponse
	(*ExportValidationRequest)(nil),     // 11: labelcheck.v1.ExportValidationRequest
	(*ExportValidationResponse)(nil),    // 12: labelcheck.v1.ExportValidationResponse
	nil,                                 // 13: labelcheck.v1.Label.ApplicationValuesEntry
	nil,                                 // 14: labelcheck.v1.CreateLabelRequest.ApplicationValuesEntry
	(*timestamppb.Timestamp)(nil),       // 15: google.protobuf.Timestamp
}
var file_labelcheck_v1_labelcheck_proto_depIdxs = []int32{
	15, // 0: labelcheck.v1.Label.correction_deadline:type_name -> google.protobuf.Timestamp
	13, // 1: labelcheck.v1.Label.application_values:type_name -> labelcheck.v1.Label.ApplicationValuesEntry
	15, // 2: labelcheck.v1.Label.created_at:type_name -> google.protobuf.Timestamp
	15, // 3: labelcheck.v1.Label.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 4: labelcheck.v1.ValidationItem.bounding_box:type_name -> labelcheck.v1.BoundingBox
	14, // 5: labelcheck.v1.CreateLabelRequest.application_values:type_name -> labelcheck.v1.CreateLabelRequest.ApplicationValuesEntry
	0,  // 6: labelcheck.v1.CreateLabelResponse.label:type_name -> labelcheck.v1.Label
	0,  // 7: labelcheck.v1.GetLabelResponse.label:type_name -> labelcheck.v1.Label
	0,  // 8: labelcheck.v1.VerifyLabelResponse.label:type_name -> labelcheck.v1.Label
	2,  // 9: labelcheck.v1.ListValidationItemsResponse.items:type_name -> labelcheck.v1.ValidationItem
	3,  // 10: labelcheck.v1.LabelVerificationService.CreateLabel:input_type -> labelcheck.v1.CreateLabelRequest
	5,  // 11: labelcheck.v1.LabelVerificationService.GetLabel:input_type -> labelcheck.v1.GetLabelRequest
	7,  // 12: labelcheck.v1.LabelVerificationService.VerifyLabel:input_type -> labelcheck.v1.VerifyLabelRequest
	9,  // 13: labelcheck.v1.LabelVerificationService.ListValidationItems:input_type -> labelcheck.v1.ListValidationItemsRequest
	11, // 14: labelcheck.v1.LabelVerificationService.ExportValidation:input_type -> labelcheck.v1.ExportValidationRequest
	4,  // 15: labelcheck.v1.LabelVerificationService.CreateLabel:output_type -> labelcheck.v1.CreateLabelResponse
	6,  // 16: labelcheck.v1.LabelVerificationService.GetLabel:output_type -> labelcheck.v1.GetLabelResponse
	8,  // 17: labelcheck.v1.LabelVerificationService.VerifyLabel:output_type -> labelcheck.v1.VerifyLabelResponse
	10, // 18: labelcheck.v1.LabelVerificationService.ListValidationItems:output_type -> labelcheck.v1.ListValidationItemsResponse
	12, // 19: labelcheck.v1.LabelVerificationService.ExportValidation:output_type -> labelcheck.v1.ExportValidationResponse
	15, // [15:20] is the sub-list for method output_type
	10, // [10:15] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_labelcheck_v1_labelcheck_proto_init() }
func file_labelcheck_v1_labelcheck_proto_init() {
	if File_labelcheck_v1_labelcheck_proto != nil {
		return
	}
	file_labelcheck_v1_labelcheck_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_labelcheck_v1_labelcheck_proto_rawDesc), len(file_labelcheck_v1_labelcheck_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_labelcheck_v1_labelcheck_proto_goTypes,
		DependencyIndexes: file_labelcheck_v1_labelcheck_proto_depIdxs,
		MessageInfos:      file_labelcheck_v1_labelcheck_proto_msgTypes,
	}.Build()
	File_labelcheck_v1_labelcheck_proto = out.File
	file_labelcheck_v1_labelcheck_proto_goTypes = nil
	file_labelcheck_v1_labelcheck_proto_depIdxs = nil
}
