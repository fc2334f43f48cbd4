// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: labelcheck/v1/labelcheck.proto

package labelcheckv1

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
	LabelVerificationService_CreateLabel_FullMethodName         = "/labelcheck.v1.LabelVerificationService/CreateLabel"
	LabelVerificationService_GetLabel_FullMethodName            = "/labelcheck.v1.LabelVerificationService/GetLabel"
	LabelVerificationService_VerifyLabel_FullMethodName         = "/labelcheck.v1.LabelVerificationService/VerifyLabel"
	LabelVerificationService_ListValidationItems_FullMethodName = "/labelcheck.v1.LabelVerificationService/ListValidationItems"
	LabelVerificationService_ExportValidation_FullMethodName    = "/labelcheck.v1.LabelVerificationService/ExportValidation"
)

// LabelVerificationServiceClient is the client API for LabelVerificationService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LabelVerificationServiceClient interface {
	// CreateLabel registers a label application plus its image paths.
	CreateLabel(ctx context.Context, in *CreateLabelRequest, opts ...grpc.CallOption) (*CreateLabelResponse, error)
	// GetLabel returns a label with its effective (lazily expired) status.
	GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error)
	// VerifyLabel runs the verification pipeline synchronously for one label.
	VerifyLabel(ctx context.Context, in *VerifyLabelRequest, opts ...grpc.CallOption) (*VerifyLabelResponse, error)
	// ListValidationItems returns the per-field evaluations of a job.
	ListValidationItems(ctx context.Context, in *ListValidationItemsRequest, opts ...grpc.CallOption) (*ListValidationItemsResponse, error)
	// ExportValidation returns the evaluations of a job as an XLSX workbook.
	ExportValidation(ctx context.Context, in *ExportValidationRequest, opts ...grpc.CallOption) (*ExportValidationResponse, error)
}

type labelVerificationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLabelVerificationServiceClient(cc grpc.ClientConnInterface) LabelVerificationServiceClient {
	return &labelVerificationServiceClient{cc}
}

func (c *labelVerificationServiceClient) CreateLabel(ctx context.Context, in *CreateLabelRequest, opts ...grpc.CallOption) (*CreateLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateLabelResponse)
	err := c.cc.Invoke(ctx, LabelVerificationService_CreateLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelVerificationServiceClient) GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLabelResponse)
	err := c.cc.Invoke(ctx, LabelVerificationService_GetLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelVerificationServiceClient) VerifyLabel(ctx context.Context, in *VerifyLabelRequest, opts ...grpc.CallOption) (*VerifyLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyLabelResponse)
	err := c.cc.Invoke(ctx, LabelVerificationService_VerifyLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelVerificationServiceClient) ListValidationItems(ctx context.Context, in *ListValidationItemsRequest, opts ...grpc.CallOption) (*ListValidationItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListValidationItemsResponse)
	err := c.cc.Invoke(ctx, LabelVerificationService_ListValidationItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelVerificationServiceClient) ExportValidation(ctx context.Context, in *ExportValidationRequest, opts ...grpc.CallOption) (*ExportValidationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportValidationResponse)
	err := c.cc.Invoke(ctx, LabelVerificationService_ExportValidation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LabelVerificationServiceServer is the server API for LabelVerificationService service.
// All implementations must embed UnimplementedLabelVerificationServiceServer
// for forward compatibility.
type LabelVerificationServiceServer interface {
	// CreateLabel registers a label application plus its image paths.
	CreateLabel(context.Context, *CreateLabelRequest) (*CreateLabelResponse, error)
	// GetLabel returns a label with its effective (lazily expired) status.
	GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error)
	// VerifyLabel runs the verification pipeline synchronously for one label.
	VerifyLabel(context.Context, *VerifyLabelRequest) (*VerifyLabelResponse, error)
	// ListValidationItems returns the per-field evaluations of a job.
	ListValidationItems(context.Context, *ListValidationItemsRequest) (*ListValidationItemsResponse, error)
	// ExportValidation returns the evaluations of a job as an XLSX workbook.
	ExportValidation(context.Context, *ExportValidationRequest) (*ExportValidationResponse, error)
	mustEmbedUnimplementedLabelVerificationServiceServer()
}

// UnimplementedLabelVerificationServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLabelVerificationServiceServer struct{}

func (UnimplementedLabelVerificationServiceServer) CreateLabel(context.Context, *CreateLabelRequest) (*CreateLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLabel not implemented")
}
func (UnimplementedLabelVerificationServiceServer) GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLabel not implemented")
}
func (UnimplementedLabelVerificationServiceServer) VerifyLabel(context.Context, *VerifyLabelRequest) (*VerifyLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyLabel not implemented")
}
func (UnimplementedLabelVerificationServiceServer) ListValidationItems(context.Context, *ListValidationItemsRequest) (*ListValidationItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListValidationItems not implemented")
}
func (UnimplementedLabelVerificationServiceServer) ExportValidation(context.Context, *ExportValidationRequest) (*ExportValidationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportValidation not implemented")
}
func (UnimplementedLabelVerificationServiceServer) mustEmbedUnimplementedLabelVerificationServiceServer() {
}
func (UnimplementedLabelVerificationServiceServer) testEmbeddedByValue() {}

// UnsafeLabelVerificationServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LabelVerificationServiceServer will
// result in compilation errors.
type UnsafeLabelVerificationServiceServer interface {
	mustEmbedUnimplementedLabelVerificationServiceServer()
}

func RegisterLabelVerificationServiceServer(s grpc.ServiceRegistrar, srv LabelVerificationServiceServer) {
	// If the following call pancis, it indicates UnimplementedLabelVerificationServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LabelVerificationService_ServiceDesc, srv)
}

func _LabelVerificationService_CreateLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelVerificationServiceServer).CreateLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelVerificationService_CreateLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelVerificationServiceServer).CreateLabel(ctx, req.(*CreateLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelVerificationService_GetLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelVerificationServiceServer).GetLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelVerificationService_GetLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelVerificationServiceServer).GetLabel(ctx, req.(*GetLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelVerificationService_VerifyLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelVerificationServiceServer).VerifyLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelVerificationService_VerifyLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelVerificationServiceServer).VerifyLabel(ctx, req.(*VerifyLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelVerificationService_ListValidationItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListValidationItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelVerificationServiceServer).ListValidationItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelVerificationService_ListValidationItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelVerificationServiceServer).ListValidationItems(ctx, req.(*ListValidationItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelVerificationService_ExportValidation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportValidationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelVerificationServiceServer).ExportValidation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelVerificationService_ExportValidation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelVerificationServiceServer).ExportValidation(ctx, req.(*ExportValidationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LabelVerificationService_ServiceDesc is the grpc.ServiceDesc for LabelVerificationService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LabelVerificationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labelcheck.v1.LabelVerificationService",
	HandlerType: (*LabelVerificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateLabel",
			Handler:    _LabelVerificationService_CreateLabel_Handler,
		},
		{
			MethodName: "GetLabel",
			Handler:    _LabelVerificationService_GetLabel_Handler,
		},
		{
			MethodName: "VerifyLabel",
			Handler:    _LabelVerificationService_VerifyLabel_Handler,
		},
		{
			MethodName: "ListValidationItems",
			Handler:    _LabelVerificationService_ListValidationItems_Handler,
		},
		{
			MethodName: "ExportValidation",
			Handler:    _LabelVerificationService_ExportValidation_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "labelcheck/v1/labelcheck.proto",
}
