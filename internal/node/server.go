package node

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	hlcpb "hybridclock/internal/gen/api"
)

// Server implements the ClockSync gRPC service.
type Server struct {
	hlcpb.UnimplementedClockSyncServer
	node *Node
}

// NewServer creates a new gRPC server instance.
func NewServer(n *Node) *Server {
	return &Server{node: n}
}

// Observe handles Observe requests.
func (s *Server) Observe(ctx context.Context, req *hlcpb.ObserveRequest) (*hlcpb.ObserveResponse, error) {
	if req.Timestamp == nil {
		return nil, status.Error(codes.InvalidArgument, "timestamp is required")
	}

	ts, rejected, err := s.node.ObserveRemote(req.FromId, protoToTimestamp(req.Timestamp))
	if err != nil {
		log.Printf("[%s] Observe from %s failed: %v", s.node.nodeID, req.FromId, err)
		return nil, status.Errorf(codes.Internal, "observe: %v", err)
	}

	return &hlcpb.ObserveResponse{
		ResponderId: s.node.nodeID,
		Timestamp:   timestampToProto(ts),
		Rejected:    rejected,
	}, nil
}

// Now handles Now requests.
func (s *Server) Now(ctx context.Context, req *hlcpb.NowRequest) (*hlcpb.NowResponse, error) {
	ts, err := s.node.CurrentTimestamp()
	if err != nil {
		log.Printf("[%s] Now failed: %v", s.node.nodeID, err)
		return nil, status.Errorf(codes.Internal, "now: %v", err)
	}

	return &hlcpb.NowResponse{
		NodeId:    s.node.nodeID,
		Timestamp: timestampToProto(ts),
	}, nil
}

// Snapshot handles Snapshot requests.
func (s *Server) Snapshot(ctx context.Context, req *hlcpb.SnapshotRequest) (*hlcpb.SnapshotResponse, error) {
	result := s.node.CollectSnapshot(ctx, int(req.Required))

	resp := &hlcpb.SnapshotResponse{
		Success:      result.Success,
		Responses:    uint32(result.Responses),
		Required:     uint32(result.Required),
		ErrorMessage: result.ErrorMessage,
	}
	if result.Success {
		resp.Watermark = timestampToProto(result.Watermark)
	} else {
		log.Printf("[%s] Snapshot failed: %s", s.node.nodeID, result.ErrorMessage)
	}
	return resp, nil
}

// Health handles Health requests.
func (s *Server) Health(ctx context.Context, req *hlcpb.HealthRequest) (*hlcpb.HealthResponse, error) {
	return &hlcpb.HealthResponse{
		NodeId: s.node.nodeID,
		Epoch:  s.node.epoch,
	}, nil
}
