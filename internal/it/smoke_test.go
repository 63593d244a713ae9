package it

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hlcpb "hybridclock/internal/gen/api"
	"hybridclock/internal/hlc"
)

func protoTS(pb *hlcpb.Timestamp) hlc.WallTimestamp {
	return hlc.WallTimestamp{
		Epoch: pb.GetEpoch(),
		Time:  hlc.NanoTime(pb.GetTicks()),
		Count: pb.GetCount(),
	}
}

func TestSmoke_TimestampsAreMonotonicAcrossNodes(t *testing.T) {
	binaryPath := "./hlcd"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o hlcd ./cmd/hlcd")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err, "Failed to start cluster")

	node1 := cluster.GetNode("n1")
	node2 := cluster.GetNode("n2")
	require.NotNil(t, node1)
	require.NotNil(t, node2)

	// Take a reading from n1
	nowCtx, nowCancel := context.WithTimeout(ctx, 10*time.Second)
	resp1, err := node1.GetClient().Now(nowCtx, &hlcpb.NowRequest{})
	nowCancel()
	require.NoError(t, err)
	require.NotNil(t, resp1.Timestamp)
	ts1 := protoTS(resp1.Timestamp)

	// Hand it to n2; n2's answer must be strictly greater
	obsCtx, obsCancel := context.WithTimeout(ctx, 10*time.Second)
	resp2, err := node2.GetClient().Observe(obsCtx, &hlcpb.ObserveRequest{
		FromId:    "test-client",
		Timestamp: resp1.Timestamp,
	})
	obsCancel()
	require.NoError(t, err)
	assert.False(t, resp2.Rejected, "in-range timestamp should not be rejected")
	require.NotNil(t, resp2.Timestamp)
	ts2 := protoTS(resp2.Timestamp)
	assert.True(t, ts2.After(ts1), "n2's timestamp %v should be after n1's %v", ts2, ts1)

	// And back to n1
	obsCtx2, obsCancel2 := context.WithTimeout(ctx, 10*time.Second)
	resp3, err := node1.GetClient().Observe(obsCtx2, &hlcpb.ObserveRequest{
		FromId:    "test-client",
		Timestamp: resp2.Timestamp,
	})
	obsCancel2()
	require.NoError(t, err)
	assert.False(t, resp3.Rejected)
	ts3 := protoTS(resp3.Timestamp)
	assert.True(t, ts3.After(ts2), "n1's timestamp %v should be after n2's %v", ts3, ts2)
}

func TestSmoke_ObserveRejectsFarFuture(t *testing.T) {
	binaryPath := "./hlcd"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err)

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	// An hour ahead of the wall clock, far past the 500ms limit
	future := uint64(time.Now().Add(time.Hour).UnixNano())

	obsCtx, obsCancel := context.WithTimeout(ctx, 10*time.Second)
	resp, err := node1.GetClient().Observe(obsCtx, &hlcpb.ObserveRequest{
		FromId:    "test-client",
		Timestamp: &hlcpb.Timestamp{Ticks: future},
	})
	obsCancel()
	require.NoError(t, err)
	assert.True(t, resp.Rejected, "far-future timestamp should be rejected")
	require.NotNil(t, resp.Timestamp)
	assert.Less(t, resp.Timestamp.Ticks, future, "node must not adopt the rejected time")
}

func TestSmoke_SnapshotWatermark(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./hlcd"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err)

	// Let a few beacon rounds run so every node has seen its peers
	time.Sleep(2 * time.Second)

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	snapCtx, snapCancel := context.WithTimeout(ctx, 10*time.Second)
	resp, err := node1.GetClient().Snapshot(snapCtx, &hlcpb.SnapshotRequest{})
	snapCancel()
	require.NoError(t, err)
	require.True(t, resp.Success, "snapshot failed: %s", resp.ErrorMessage)
	require.NotNil(t, resp.Watermark)

	// The watermark must not be ahead of a fresh reading taken afterwards
	nowCtx, nowCancel := context.WithTimeout(ctx, 10*time.Second)
	nowResp, err := node1.GetClient().Now(nowCtx, &hlcpb.NowRequest{})
	nowCancel()
	require.NoError(t, err)
	assert.True(t, protoTS(nowResp.Timestamp).After(protoTS(resp.Watermark)),
		"fresh reading should be after the snapshot watermark")
}

func TestSmoke_SnapshotToleratesOneNodeDown(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./hlcd"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	err = cluster.StartCluster(ctx)
	require.NoError(t, err)
	time.Sleep(2 * time.Second)

	require.NoError(t, cluster.KillNode("n3"))
	time.Sleep(2 * time.Second) // let failure detection settle

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	// With one of two peers alive the quorum of one is still reachable
	snapCtx, snapCancel := context.WithTimeout(ctx, 15*time.Second)
	resp, err := node1.GetClient().Snapshot(snapCtx, &hlcpb.SnapshotRequest{Required: 1})
	snapCancel()
	require.NoError(t, err)
	assert.True(t, resp.Success, "snapshot failed: %s", resp.ErrorMessage)
}
