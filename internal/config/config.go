package config

import (
	"fmt"
	"strings"
	"time"
)

// Peer represents a peer node in the cluster.
type Peer struct {
	ID   string
	Addr string
}

// Config holds the node configuration.
type Config struct {
	NodeID         string
	ListenAddr     string
	Peers          []Peer
	MaxOffset      time.Duration
	BeaconInterval time.Duration
	Epoch          uint
	LogCapacity    int
}

// Defaults applied by Validate when the corresponding field is unset.
const (
	DefaultMaxOffset      = 500 * time.Millisecond
	DefaultBeaconInterval = 1 * time.Second
	DefaultLogCapacity    = 1024
)

// ParsePeers parses a comma-separated list of peers in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer ID and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			ID:   id,
			Addr: addr,
		})
	}

	return peers, nil
}

// Validate checks required fields and fills in defaults for the
// optional ones.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("node ID is required")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.MaxOffset < 0 {
		return fmt.Errorf("max offset cannot be negative: %v", c.MaxOffset)
	}
	if c.MaxOffset == 0 {
		c.MaxOffset = DefaultMaxOffset
	}
	if c.BeaconInterval <= 0 {
		c.BeaconInterval = DefaultBeaconInterval
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = DefaultLogCapacity
	}
	if c.Epoch > uint(^uint32(0)) {
		return fmt.Errorf("epoch %d does not fit in 32 bits", c.Epoch)
	}
	for _, peer := range c.Peers {
		if peer.ID == c.NodeID {
			return fmt.Errorf("peer list must not contain the local node: %s", peer.ID)
		}
	}
	return nil
}

// RemotePeers returns the configured peers, excluding any entry that
// duplicates the local node ID.
func (c *Config) RemotePeers() []Peer {
	peers := make([]Peer, 0, len(c.Peers))
	for _, peer := range c.Peers {
		if peer.ID != c.NodeID {
			peers = append(peers, peer)
		}
	}
	return peers
}
