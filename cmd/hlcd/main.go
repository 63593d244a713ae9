package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hybridclock/internal/config"
	"hybridclock/internal/node"
)

func main() {
	var (
		nodeID         = flag.String("node-id", "", "unique node identifier (required)")
		listenAddr     = flag.String("listen", ":50051", "gRPC listen address")
		peersStr       = flag.String("peers", "", "comma-separated peers: id1=addr1,id2=addr2")
		maxOffset      = flag.Duration("max-offset", config.DefaultMaxOffset, "maximum accepted clock offset from a peer")
		beaconInterval = flag.Duration("beacon-interval", config.DefaultBeaconInterval, "interval between timestamp beacons")
		epoch          = flag.Uint("epoch", 0, "clock epoch override")
		logCapacity    = flag.Int("log-capacity", config.DefaultLogCapacity, "maximum events kept in the local log")
	)
	flag.Parse()

	peers, err := config.ParsePeers(*peersStr)
	if err != nil {
		log.Fatalf("invalid --peers: %v", err)
	}

	cfg := config.Config{
		NodeID:         *nodeID,
		ListenAddr:     *listenAddr,
		Peers:          peers,
		MaxOffset:      *maxOffset,
		BeaconInterval: *beaconInterval,
		Epoch:          *epoch,
		LogCapacity:    *logCapacity,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	n, err := node.NewNode(&cfg)
	if err != nil {
		log.Fatalf("failed to create node: %v", err)
	}

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.Start()
	}()

	select {
	case sig := <-sigCh:
		log.Printf("[%s] Received %v, shutting down", cfg.NodeID, sig)
		n.Stop()
		select {
		case <-errCh:
		case <-time.After(5 * time.Second):
			log.Printf("[%s] Shutdown timed out", cfg.NodeID)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("node exited: %v", err)
		}
	}
}
