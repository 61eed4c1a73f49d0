// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: narrative.proto

package enginepb

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
	NarrativeEngine_SubmitChoice_FullMethodName    = "/narrative.v1.NarrativeEngine/SubmitChoice"
	NarrativeEngine_SubmitMission_FullMethodName   = "/narrative.v1.NarrativeEngine/SubmitMission"
	NarrativeEngine_GetState_FullMethodName        = "/narrative.v1.NarrativeEngine/GetState"
	NarrativeEngine_GetArchetype_FullMethodName    = "/narrative.v1.NarrativeEngine/GetArchetype"
	NarrativeEngine_PublishFragment_FullMethodName = "/narrative.v1.NarrativeEngine/PublishFragment"
	NarrativeEngine_Finalize_FullMethodName        = "/narrative.v1.NarrativeEngine/Finalize"
	NarrativeEngine_ResetUser_FullMethodName       = "/narrative.v1.NarrativeEngine/ResetUser"
)

// NarrativeEngineClient is the client API for NarrativeEngine service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// NarrativeEngine exposes the progression engine to the messaging and
// transport layer.
type NarrativeEngineClient interface {
	SubmitChoice(ctx context.Context, in *SubmitChoiceRequest, opts ...grpc.CallOption) (*SubmitChoiceResponse, error)
	SubmitMission(ctx context.Context, in *SubmitMissionRequest, opts ...grpc.CallOption) (*SubmitMissionResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	GetArchetype(ctx context.Context, in *GetArchetypeRequest, opts ...grpc.CallOption) (*GetArchetypeResponse, error)
	PublishFragment(ctx context.Context, in *PublishFragmentRequest, opts ...grpc.CallOption) (*PublishFragmentResponse, error)
	Finalize(ctx context.Context, in *FinalizeRequest, opts ...grpc.CallOption) (*FinalizeResponse, error)
	ResetUser(ctx context.Context, in *ResetUserRequest, opts ...grpc.CallOption) (*ResetUserResponse, error)
}

type narrativeEngineClient struct {
	cc grpc.ClientConnInterface
}

func NewNarrativeEngineClient(cc grpc.ClientConnInterface) NarrativeEngineClient {
	return &narrativeEngineClient{cc}
}

func (c *narrativeEngineClient) SubmitChoice(ctx context.Context, in *SubmitChoiceRequest, opts ...grpc.CallOption) (*SubmitChoiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitChoiceResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_SubmitChoice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) SubmitMission(ctx context.Context, in *SubmitMissionRequest, opts ...grpc.CallOption) (*SubmitMissionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitMissionResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_SubmitMission_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStateResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) GetArchetype(ctx context.Context, in *GetArchetypeRequest, opts ...grpc.CallOption) (*GetArchetypeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetArchetypeResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_GetArchetype_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) PublishFragment(ctx context.Context, in *PublishFragmentRequest, opts ...grpc.CallOption) (*PublishFragmentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PublishFragmentResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_PublishFragment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) Finalize(ctx context.Context, in *FinalizeRequest, opts ...grpc.CallOption) (*FinalizeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinalizeResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_Finalize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeEngineClient) ResetUser(ctx context.Context, in *ResetUserRequest, opts ...grpc.CallOption) (*ResetUserResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetUserResponse)
	err := c.cc.Invoke(ctx, NarrativeEngine_ResetUser_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NarrativeEngineServer is the server API for NarrativeEngine service.
// All implementations must embed UnimplementedNarrativeEngineServer
// for forward compatibility.
//
// NarrativeEngine exposes the progression engine to the messaging and
// transport layer.
type NarrativeEngineServer interface {
	SubmitChoice(context.Context, *SubmitChoiceRequest) (*SubmitChoiceResponse, error)
	SubmitMission(context.Context, *SubmitMissionRequest) (*SubmitMissionResponse, error)
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	GetArchetype(context.Context, *GetArchetypeRequest) (*GetArchetypeResponse, error)
	PublishFragment(context.Context, *PublishFragmentRequest) (*PublishFragmentResponse, error)
	Finalize(context.Context, *FinalizeRequest) (*FinalizeResponse, error)
	ResetUser(context.Context, *ResetUserRequest) (*ResetUserResponse, error)
	mustEmbedUnimplementedNarrativeEngineServer()
}

// UnimplementedNarrativeEngineServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNarrativeEngineServer struct{}

func (UnimplementedNarrativeEngineServer) SubmitChoice(context.Context, *SubmitChoiceRequest) (*SubmitChoiceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitChoice not implemented")
}
func (UnimplementedNarrativeEngineServer) SubmitMission(context.Context, *SubmitMissionRequest) (*SubmitMissionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitMission not implemented")
}
func (UnimplementedNarrativeEngineServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedNarrativeEngineServer) GetArchetype(context.Context, *GetArchetypeRequest) (*GetArchetypeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetArchetype not implemented")
}
func (UnimplementedNarrativeEngineServer) PublishFragment(context.Context, *PublishFragmentRequest) (*PublishFragmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PublishFragment not implemented")
}
func (UnimplementedNarrativeEngineServer) Finalize(context.Context, *FinalizeRequest) (*FinalizeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Finalize not implemented")
}
func (UnimplementedNarrativeEngineServer) ResetUser(context.Context, *ResetUserRequest) (*ResetUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetUser not implemented")
}
func (UnimplementedNarrativeEngineServer) mustEmbedUnimplementedNarrativeEngineServer() {}
func (UnimplementedNarrativeEngineServer) testEmbeddedByValue()                         {}

// UnsafeNarrativeEngineServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NarrativeEngineServer will
// result in compilation errors.
type UnsafeNarrativeEngineServer interface {
	mustEmbedUnimplementedNarrativeEngineServer()
}

func RegisterNarrativeEngineServer(s grpc.ServiceRegistrar, srv NarrativeEngineServer) {
	// If the following call pancis, it indicates UnimplementedNarrativeEngineServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NarrativeEngine_ServiceDesc, srv)
}

func _NarrativeEngine_SubmitChoice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitChoiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).SubmitChoice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_SubmitChoice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).SubmitChoice(ctx, req.(*SubmitChoiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_SubmitMission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitMissionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).SubmitMission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_SubmitMission_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).SubmitMission(ctx, req.(*SubmitMissionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_GetArchetype_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetArchetypeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).GetArchetype(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_GetArchetype_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).GetArchetype(ctx, req.(*GetArchetypeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_PublishFragment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PublishFragmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).PublishFragment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_PublishFragment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).PublishFragment(ctx, req.(*PublishFragmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_Finalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).Finalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_Finalize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).Finalize(ctx, req.(*FinalizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeEngine_ResetUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeEngineServer).ResetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeEngine_ResetUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeEngineServer).ResetUser(ctx, req.(*ResetUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NarrativeEngine_ServiceDesc is the grpc.ServiceDesc for NarrativeEngine service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NarrativeEngine_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "narrative.v1.NarrativeEngine",
	HandlerType: (*NarrativeEngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitChoice",
			Handler:    _NarrativeEngine_SubmitChoice_Handler,
		},
		{
			MethodName: "SubmitMission",
			Handler:    _NarrativeEngine_SubmitMission_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _NarrativeEngine_GetState_Handler,
		},
		{
			MethodName: "GetArchetype",
			Handler:    _NarrativeEngine_GetArchetype_Handler,
		},
		{
			MethodName: "PublishFragment",
			Handler:    _NarrativeEngine_PublishFragment_Handler,
		},
		{
			MethodName: "Finalize",
			Handler:    _NarrativeEngine_Finalize_Handler,
		},
		{
			MethodName: "ResetUser",
			Handler:    _NarrativeEngine_ResetUser_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "narrative.proto",
}
