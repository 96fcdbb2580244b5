package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FastJetServiceServer is the server API for FastJetService.
type FastJetServiceServer interface {
	Reconstruct(context.Context, *ReconstructRequest) (*ReconstructResponse, error)
	Summarize(context.Context, *SummaryRequest) (*SummaryResponse, error)
}

// UnimplementedFastJetServiceServer may be embedded to have forward
// compatible implementations.
type UnimplementedFastJetServiceServer struct{}

func (UnimplementedFastJetServiceServer) Reconstruct(context.Context, *ReconstructRequest) (*ReconstructResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reconstruct not implemented")
}

func (UnimplementedFastJetServiceServer) Summarize(context.Context, *SummaryRequest) (*SummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Summarize not implemented")
}

// RegisterFastJetServiceServer registers srv as the implementation of
// FastJetService on s.
func RegisterFastJetServiceServer(s grpc.ServiceRegistrar, srv FastJetServiceServer) {
	s.RegisterService(&fastJetServiceDesc, srv)
}

func fastJetServiceReconstructHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReconstructRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastJetServiceServer).Reconstruct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/fastjet.FastJetService/Reconstruct"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FastJetServiceServer).Reconstruct(ctx, req.(*ReconstructRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func fastJetServiceSummarizeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FastJetServiceServer).Summarize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/fastjet.FastJetService/Summarize"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FastJetServiceServer).Summarize(ctx, req.(*SummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var fastJetServiceDesc = grpc.ServiceDesc{
	ServiceName: "fastjet.FastJetService",
	HandlerType: (*FastJetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Reconstruct", Handler: fastJetServiceReconstructHandler},
		{MethodName: "Summarize", Handler: fastJetServiceSummarizeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fastjet.proto",
}

// FastJetServiceClient is the client API for FastJetService.
type FastJetServiceClient interface {
	Reconstruct(ctx context.Context, in *ReconstructRequest, opts ...grpc.CallOption) (*ReconstructResponse, error)
	Summarize(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error)
}

type fastJetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewFastJetServiceClient builds a client bound to cc.
func NewFastJetServiceClient(cc grpc.ClientConnInterface) FastJetServiceClient {
	return &fastJetServiceClient{cc}
}

func (c *fastJetServiceClient) Reconstruct(ctx context.Context, in *ReconstructRequest, opts ...grpc.CallOption) (*ReconstructResponse, error) {
	out := new(ReconstructResponse)
	if err := c.cc.Invoke(ctx, "/fastjet.FastJetService/Reconstruct", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fastJetServiceClient) Summarize(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error) {
	out := new(SummaryResponse)
	if err := c.cc.Invoke(ctx, "/fastjet.FastJetService/Summarize", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
