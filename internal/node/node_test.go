package node

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"hybridclock/internal/config"
	hlcpb "hybridclock/internal/gen/api"
	"hybridclock/internal/hlc"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestNode(t *testing.T, epoch uint) *Node {
	t.Helper()
	cfg := config.Config{
		NodeID:     "n1",
		ListenAddr: "127.0.0.1:0",
		Epoch:      epoch,
		Peers: []config.Peer{
			{ID: "n2", Addr: "127.0.0.1:50052"},
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	n, err := NewNode(&cfg)
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	return n
}

func nowNanos(t *testing.T) hlc.NanoTime {
	t.Helper()
	nt, err := hlc.NanoTimeFrom(time.Now())
	if err != nil {
		t.Fatalf("NanoTimeFrom: %v", err)
	}
	return nt
}

func TestCurrentTimestampIsMonotonic(t *testing.T) {
	n := newTestNode(t, 0)

	prev, err := n.CurrentTimestamp()
	if err != nil {
		t.Fatalf("CurrentTimestamp: %v", err)
	}
	for i := 0; i < 100; i++ {
		next, err := n.CurrentTimestamp()
		if err != nil {
			t.Fatalf("CurrentTimestamp: %v", err)
		}
		if !next.After(prev) {
			t.Fatalf("timestamp %v not after %v", next, prev)
		}
		prev = next
	}
}

func TestCurrentTimestampRecordsEvents(t *testing.T) {
	n := newTestNode(t, 0)

	if _, err := n.CurrentTimestamp(); err != nil {
		t.Fatalf("CurrentTimestamp: %v", err)
	}
	if n.Events().Len() == 0 {
		t.Error("event log is empty after issuing a timestamp")
	}
	if events := n.Events().Recent(1); events[0].Origin != "n1" {
		t.Errorf("event origin = %s, want n1", events[0].Origin)
	}
}

func TestObserveRemoteAdvancesClock(t *testing.T) {
	n := newTestNode(t, 0)

	// Slightly ahead of the local clock, within the offset limit.
	remote := hlc.WallTimestamp{Time: nowNanos(t) + hlc.NanoTime(100*time.Millisecond), Count: 3}

	got, rejected, err := n.ObserveRemote("n2", remote)
	if err != nil {
		t.Fatalf("ObserveRemote: %v", err)
	}
	if rejected {
		t.Fatal("in-range timestamp was rejected")
	}
	if !got.After(remote) {
		t.Errorf("result %v not after observed %v", got, remote)
	}

	// The tracker remembers what the peer reached.
	low, ok := n.Tracker().Watermark()
	if !ok || low != remote {
		t.Errorf("Watermark = %v, %v, want %v", low, ok, remote)
	}
}

func TestObserveRemoteRejectsFarFuture(t *testing.T) {
	n := newTestNode(t, 0)

	before, err := n.CurrentTimestamp()
	if err != nil {
		t.Fatalf("CurrentTimestamp: %v", err)
	}

	remote := hlc.WallTimestamp{Time: nowNanos(t) + hlc.NanoTime(time.Hour)}
	got, rejected, err := n.ObserveRemote("n2", remote)
	if err != nil {
		t.Fatalf("ObserveRemote: %v", err)
	}
	if !rejected {
		t.Fatal("far-future timestamp was accepted")
	}
	if got.Time >= remote.Time {
		t.Errorf("clock adopted rejected time: %v", got)
	}
	if got.Before(before) {
		t.Errorf("clock went backward: %v < %v", got, before)
	}

	// Rejected peers don't contribute to the watermark.
	if _, ok := n.Tracker().Watermark(); ok {
		t.Error("rejected timestamp reached the watermark")
	}
}

func TestServerObserve(t *testing.T) {
	n := newTestNode(t, 0)
	s := NewServer(n)

	resp, err := s.Observe(context.Background(), &hlcpb.ObserveRequest{
		FromId:    "n2",
		Timestamp: &hlcpb.Timestamp{Ticks: uint64(nowNanos(t)), Count: 1},
	})
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}
	if resp.Rejected {
		t.Error("in-range timestamp was rejected")
	}
	if resp.ResponderId != "n1" {
		t.Errorf("ResponderId = %s", resp.ResponderId)
	}
	if resp.Timestamp == nil {
		t.Fatal("response timestamp missing")
	}
}

func TestServerObserveRequiresTimestamp(t *testing.T) {
	n := newTestNode(t, 0)
	s := NewServer(n)

	_, err := s.Observe(context.Background(), &hlcpb.ObserveRequest{FromId: "n2"})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument", err)
	}
}

func TestServerNow(t *testing.T) {
	n := newTestNode(t, 7)
	s := NewServer(n)

	resp, err := s.Now(context.Background(), &hlcpb.NowRequest{})
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	if resp.NodeId != "n1" {
		t.Errorf("NodeId = %s", resp.NodeId)
	}
	if resp.Timestamp.GetEpoch() != 7 {
		t.Errorf("Epoch = %d, want 7", resp.Timestamp.GetEpoch())
	}
}

func TestServerHealth(t *testing.T) {
	n := newTestNode(t, 3)
	s := NewServer(n)

	resp, err := s.Health(context.Background(), &hlcpb.HealthRequest{})
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if resp.NodeId != "n1" || resp.Epoch != 3 {
		t.Errorf("Health = %+v", resp)
	}
}

func TestServerSnapshotWithUnreachablePeers(t *testing.T) {
	n := newTestNode(t, 0)
	s := NewServer(n)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// The only peer is not listening; the quorum cannot be met.
	resp, err := s.Snapshot(ctx, &hlcpb.SnapshotRequest{Required: 1})
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if resp.Success {
		t.Error("Snapshot succeeded with no reachable peers")
	}
	if resp.ErrorMessage == "" {
		t.Error("Expected error message")
	}

	n.clientMgr.Close()
}

func TestConvertRoundTrip(t *testing.T) {
	ts := hlc.WallTimestamp{Epoch: 2, Time: 1558805131923316000, Count: 9}
	got := protoToTimestamp(timestampToProto(ts))
	if got != ts {
		t.Errorf("round trip = %v, want %v", got, ts)
	}

	if got := protoToTimestamp(nil); got != (hlc.WallTimestamp{}) {
		t.Errorf("protoToTimestamp(nil) = %v", got)
	}
}
