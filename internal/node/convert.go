package node

import (
	hlcpb "hybridclock/internal/gen/api"
	"hybridclock/internal/hlc"
)

// protoToTimestamp converts a protobuf Timestamp to hlc.WallTimestamp.
func protoToTimestamp(pb *hlcpb.Timestamp) hlc.WallTimestamp {
	if pb == nil {
		return hlc.WallTimestamp{}
	}
	return hlc.WallTimestamp{
		Epoch: pb.Epoch,
		Time:  hlc.NanoTime(pb.Ticks),
		Count: pb.Count,
	}
}

// timestampToProto converts an hlc.WallTimestamp to its protobuf form.
func timestampToProto(ts hlc.WallTimestamp) *hlcpb.Timestamp {
	return &hlcpb.Timestamp{
		Epoch: ts.Epoch,
		Ticks: uint64(ts.Time),
		Count: ts.Count,
	}
}
