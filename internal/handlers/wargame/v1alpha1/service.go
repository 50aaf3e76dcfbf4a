package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	// CombatServiceName is the fully qualified gRPC service name
	CombatServiceName = "wargame.api.v1alpha1.CombatService"

	CombatService_RollDice_FullMethodName         = "/wargame.api.v1alpha1.CombatService/RollDice"
	CombatService_ResolveWeapon_FullMethodName    = "/wargame.api.v1alpha1.CombatService/ResolveWeapon"
	CombatService_GetRollSession_FullMethodName   = "/wargame.api.v1alpha1.CombatService/GetRollSession"
	CombatService_ClearRollSession_FullMethodName = "/wargame.api.v1alpha1.CombatService/ClearRollSession"
)

// CombatServiceServer is the server API for CombatService
type CombatServiceServer interface {
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)
	ResolveWeapon(context.Context, *ResolveWeaponRequest) (*ResolveWeaponResponse, error)
	GetRollSession(context.Context, *GetRollSessionRequest) (*GetRollSessionResponse, error)
	ClearRollSession(context.Context, *ClearRollSessionRequest) (*ClearRollSessionResponse, error)
}

// RegisterCombatServiceServer registers srv on s
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_RollDice_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollDiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RollDice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RollDice_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).RollDice(ctx, req.(*RollDiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ResolveWeapon_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResolveWeaponRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ResolveWeapon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ResolveWeapon_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ResolveWeapon(ctx, req.(*ResolveWeaponRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetRollSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRollSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetRollSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetRollSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).GetRollSession(ctx, req.(*GetRollSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ClearRollSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ClearRollSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ClearRollSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ClearRollSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ClearRollSession(ctx, req.(*ClearRollSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CombatServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RollDice", Handler: _CombatService_RollDice_Handler},
		{MethodName: "ResolveWeapon", Handler: _CombatService_ResolveWeapon_Handler},
		{MethodName: "GetRollSession", Handler: _CombatService_GetRollSession_Handler},
		{MethodName: "ClearRollSession", Handler: _CombatService_ClearRollSession_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wargame/api/v1alpha1/combat.json",
}

// CombatServiceClient is the client API for CombatService
type CombatServiceClient interface {
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error)
	ResolveWeapon(ctx context.Context, in *ResolveWeaponRequest, opts ...grpc.CallOption) (*ResolveWeaponResponse, error)
	GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error)
	ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatServiceClient returns a client that sends JSON encoded requests over cc
func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc: cc}
}

func (c *combatServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *combatServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	out := new(RollDiceResponse)
	if err := c.invoke(ctx, CombatService_RollDice_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ResolveWeapon(ctx context.Context, in *ResolveWeaponRequest, opts ...grpc.CallOption) (*ResolveWeaponResponse, error) {
	out := new(ResolveWeaponResponse)
	if err := c.invoke(ctx, CombatService_ResolveWeapon_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetRollSession(ctx context.Context, in *GetRollSessionRequest, opts ...grpc.CallOption) (*GetRollSessionResponse, error) {
	out := new(GetRollSessionResponse)
	if err := c.invoke(ctx, CombatService_GetRollSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ClearRollSession(ctx context.Context, in *ClearRollSessionRequest, opts ...grpc.CallOption) (*ClearRollSessionResponse, error) {
	out := new(ClearRollSessionResponse)
	if err := c.invoke(ctx, CombatService_ClearRollSession_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
