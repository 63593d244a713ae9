package node

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"hybridclock/internal/config"
	hlcpb "hybridclock/internal/gen/api"
	"hybridclock/internal/hlc"
	"hybridclock/internal/peer"
	"hybridclock/internal/snapshot"
	"hybridclock/internal/store"
)

// Node is a single member of the clock-sync cluster. It owns the
// hybrid logical clock, the peer tracker, and the event log, and
// serves the ClockSync gRPC service.
type Node struct {
	nodeID     string
	listenAddr string
	epoch      uint32
	grpcServer *grpc.Server

	clockMu sync.Mutex
	clock   *hlc.OffsetLimiter[hlc.NanoTime, time.Duration]

	tracker   *peer.Tracker
	events    *store.Log
	clientMgr *ClientManager
	peerAddrs map[string]string
}

// NewNode creates a new node instance from a validated config.
func NewNode(cfg *config.Config) (*Node, error) {
	clock, err := hlc.WallNanos()
	if err != nil {
		return nil, fmt.Errorf("create clock: %w", err)
	}
	clock.SetEpoch(uint32(cfg.Epoch))

	events, err := store.NewLog(cfg.LogCapacity)
	if err != nil {
		return nil, fmt.Errorf("create event log: %w", err)
	}

	n := &Node{
		nodeID:     cfg.NodeID,
		listenAddr: cfg.ListenAddr,
		epoch:      uint32(cfg.Epoch),
		clock:      clock.WithMaxDiff(cfg.MaxOffset),
		tracker:    peer.NewTracker(cfg.NodeID, cfg.BeaconInterval, 3*cfg.BeaconInterval),
		events:     events,
		clientMgr:  NewClientManager(),
		peerAddrs:  make(map[string]string),
	}

	for _, p := range cfg.RemotePeers() {
		n.tracker.Add(p.ID, p.Addr)
		n.peerAddrs[p.ID] = p.Addr
	}

	return n, nil
}

// Start starts the gRPC server and the beacon loop, then blocks
// serving requests until Stop is called.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	n.grpcServer = grpc.NewServer()
	hlcpb.RegisterClockSyncServer(n.grpcServer, NewServer(n))

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	n.tracker.Start(n.beaconFn)

	log.Printf("[%s] Starting node on %s (epoch %d)", n.nodeID, n.listenAddr, n.epoch)

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	n.tracker.Stop()
	if n.grpcServer != nil {
		log.Printf("[%s] Stopping node", n.nodeID)
		n.grpcServer.GracefulStop()
	}
	n.clientMgr.Close()
}

// CurrentTimestamp issues a fresh timestamp from the clock and records
// it in the event log.
func (n *Node) CurrentTimestamp() (hlc.WallTimestamp, error) {
	n.clockMu.Lock()
	ts, err := n.clock.Now()
	n.clockMu.Unlock()
	if err != nil {
		return hlc.WallTimestamp{}, err
	}

	n.recordEvent(ts, n.nodeID)
	return ts, nil
}

// ObserveRemote folds a peer's timestamp into the clock and returns
// the clock's resulting reading. The rejected result is true when the
// timestamp was refused for being too far ahead; the clock is then
// unchanged and the returned timestamp is simply the current one.
func (n *Node) ObserveRemote(fromID string, ts hlc.WallTimestamp) (hlc.WallTimestamp, bool, error) {
	n.clockMu.Lock()
	obsErr := n.clock.Observe(ts)
	now, nowErr := n.clock.Now()
	n.clockMu.Unlock()

	if nowErr != nil {
		return hlc.WallTimestamp{}, false, nowErr
	}

	if obsErr != nil {
		if errors.Is(obsErr, hlc.ErrOffsetTooGreat) {
			log.Printf("[%s] Rejected timestamp %v from %s: too far ahead", n.nodeID, ts, fromID)
			return now, true, nil
		}
		return hlc.WallTimestamp{}, false, obsErr
	}

	n.tracker.RecordTimestamp(fromID, ts)
	n.recordEvent(now, n.nodeID)
	return now, false, nil
}

// CollectSnapshot fans a Now request out to the alive peers and
// returns the quorum watermark.
func (n *Node) CollectSnapshot(ctx context.Context, required int) snapshot.Result {
	alive := n.tracker.AlivePeers()
	peerIDs := make([]string, 0, len(alive))
	for _, p := range alive {
		peerIDs = append(peerIDs, p.ID)
	}

	return snapshot.Collect(ctx, peerIDs, required, n.fetchTimestamp)
}

// Events exposes the event log.
func (n *Node) Events() *store.Log { return n.events }

// Tracker exposes the peer tracker.
func (n *Node) Tracker() *peer.Tracker { return n.tracker }

// beaconFn exchanges timestamps with a peer: it sends our current
// reading and folds the peer's answer back into the clock.
func (n *Node) beaconFn(ctx context.Context, id, addr string) error {
	client, err := n.clientMgr.GetClient(addr)
	if err != nil {
		return err
	}

	ts, err := n.CurrentTimestamp()
	if err != nil {
		return err
	}

	resp, err := client.Observe(ctx, &hlcpb.ObserveRequest{
		FromId:    n.nodeID,
		Timestamp: timestampToProto(ts),
	})
	if err != nil {
		return err
	}

	if resp.Rejected {
		log.Printf("[%s] Beacon to %s rejected: local clock too far ahead of peer", n.nodeID, id)
		return nil
	}

	_, _, err = n.ObserveRemote(resp.ResponderId, protoToTimestamp(resp.Timestamp))
	return err
}

// fetchTimestamp asks one peer for a fresh timestamp and folds it into
// the local clock.
func (n *Node) fetchTimestamp(ctx context.Context, peerID string) (hlc.WallTimestamp, error) {
	addr, ok := n.peerAddrs[peerID]
	if !ok {
		return hlc.WallTimestamp{}, fmt.Errorf("unknown peer %s", peerID)
	}

	client, err := n.clientMgr.GetClient(addr)
	if err != nil {
		return hlc.WallTimestamp{}, err
	}

	resp, err := client.Now(ctx, &hlcpb.NowRequest{})
	if err != nil {
		return hlc.WallTimestamp{}, err
	}

	ts := protoToTimestamp(resp.Timestamp)
	if _, _, err := n.ObserveRemote(resp.NodeId, ts); err != nil {
		return hlc.WallTimestamp{}, err
	}
	return ts, nil
}

// recordEvent appends a timestamp to the event log. Duplicate
// timestamps cannot happen for locally issued readings, so append
// errors only mean the log saw the value already.
func (n *Node) recordEvent(ts hlc.WallTimestamp, origin string) {
	if err := n.events.Append(store.Event{Timestamp: ts, Origin: origin}); err != nil {
		log.Printf("[%s] Event log append skipped: %v", n.nodeID, err)
	}
}
