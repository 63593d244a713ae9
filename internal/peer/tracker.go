package peer

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"hybridclock/internal/hlc"
)

// Status represents the liveness state of a peer.
type Status int

const (
	Alive Status = iota
	Suspect
	Dead
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case Alive:
		return "ALIVE"
	case Suspect:
		return "SUSPECT"
	case Dead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Peer is tracker state for a single remote node.
type Peer struct {
	ID            string
	Addr          string
	Status        Status
	LastSeen      time.Time
	LastTimestamp hlc.WallTimestamp
}

// BeaconFunc sends a beacon to the peer at addr and reports whether it
// answered.
type BeaconFunc func(ctx context.Context, id, addr string) error

// Tracker maintains liveness and last-observed timestamps for the
// configured peers. It runs a beacon loop that periodically pings a
// random alive peer and a checker that ages Suspect peers into Dead.
type Tracker struct {
	mu      sync.RWMutex
	localID string
	peers   map[string]*Peer

	beaconInterval time.Duration
	suspectTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTracker creates a tracker for the local node.
func NewTracker(localID string, beaconInterval, suspectTimeout time.Duration) *Tracker {
	if beaconInterval <= 0 {
		beaconInterval = 1 * time.Second
	}
	if suspectTimeout <= 0 {
		suspectTimeout = 3 * beaconInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Tracker{
		localID:        localID,
		peers:          make(map[string]*Peer),
		beaconInterval: beaconInterval,
		suspectTimeout: suspectTimeout,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Add registers a peer. Known and local IDs are ignored.
func (t *Tracker) Add(id, addr string) {
	if id == t.localID {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.peers[id]; !exists {
		t.peers[id] = &Peer{
			ID:       id,
			Addr:     addr,
			Status:   Alive, // Assume alive initially
			LastSeen: time.Now(),
		}
	}
}

// Start runs the beacon and timeout loops until Stop is called.
func (t *Tracker) Start(beaconFn BeaconFunc) {
	t.wg.Add(2)

	// Beacon loop
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.beaconInterval)
		defer ticker.Stop()

		for {
			select {
			case <-t.ctx.Done():
				return
			case <-ticker.C:
				t.beacon(beaconFn)
			}
		}
	}()

	// Timeout checker
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.beaconInterval / 2)
		defer ticker.Stop()

		for {
			select {
			case <-t.ctx.Done():
				return
			case <-ticker.C:
				t.checkTimeouts()
			}
		}
	}()
}

// Stop stops the loops and waits for them to exit.
func (t *Tracker) Stop() {
	t.cancel()
	t.wg.Wait()
}

// beacon pings one random non-dead peer.
func (t *Tracker) beacon(beaconFn BeaconFunc) {
	target, ok := t.PickTarget()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(t.ctx, t.beaconInterval)
	defer cancel()

	err := beaconFn(ctx, target.ID, target.Addr)
	if err == nil {
		t.MarkAlive(target.ID)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if peer, exists := t.peers[target.ID]; exists && peer.Status == Alive {
		peer.Status = Suspect
		log.Printf("[%s] Marked %s as SUSPECT (beacon failed: %v)", t.localID, target.ID, err)
	}
}

// checkTimeouts ages Suspect peers that have been silent too long into
// Dead.
func (t *Tracker) checkTimeouts() {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	for id, peer := range t.peers {
		if peer.Status == Suspect && now.Sub(peer.LastSeen) > t.suspectTimeout {
			peer.Status = Dead
			log.Printf("[%s] Marked %s as DEAD (suspect timeout)", t.localID, id)
		}
	}
}

// MarkAlive records a successful exchange with a peer. Dead peers come
// back when they answer again.
func (t *Tracker) MarkAlive(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	peer, exists := t.peers[id]
	if !exists {
		return
	}
	if peer.Status != Alive {
		log.Printf("[%s] Marked %s as ALIVE", t.localID, id)
	}
	peer.Status = Alive
	peer.LastSeen = time.Now()
}

// RecordTimestamp remembers the greatest timestamp seen from a peer
// and refreshes its liveness.
func (t *Tracker) RecordTimestamp(id string, ts hlc.WallTimestamp) {
	t.mu.Lock()
	defer t.mu.Unlock()

	peer, exists := t.peers[id]
	if !exists {
		return
	}
	if ts.After(peer.LastTimestamp) {
		peer.LastTimestamp = ts
	}
	peer.Status = Alive
	peer.LastSeen = time.Now()
}

// PickTarget returns a random non-dead peer for the beacon loop.
func (t *Tracker) PickTarget() (Peer, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	candidates := make([]*Peer, 0, len(t.peers))
	for _, peer := range t.peers {
		if peer.Status != Dead {
			candidates = append(candidates, peer)
		}
	}
	if len(candidates) == 0 {
		return Peer{}, false
	}
	return *candidates[rand.Intn(len(candidates))], true
}

// Snapshot returns a copy of all tracked peers.
func (t *Tracker) Snapshot() []Peer {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make([]Peer, 0, len(t.peers))
	for _, peer := range t.peers {
		snapshot = append(snapshot, *peer)
	}
	return snapshot
}

// AlivePeers returns copies of the peers currently marked Alive.
func (t *Tracker) AlivePeers() []Peer {
	t.mu.RLock()
	defer t.mu.RUnlock()

	alive := make([]Peer, 0, len(t.peers))
	for _, peer := range t.peers {
		if peer.Status == Alive {
			alive = append(alive, *peer)
		}
	}
	return alive
}

// Watermark returns the smallest of the last timestamps seen from
// alive peers. Events at or below the watermark have been observed by
// every responsive peer. The second result is false when no alive peer
// has reported a timestamp yet.
func (t *Tracker) Watermark() (hlc.WallTimestamp, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var low hlc.WallTimestamp
	found := false
	for _, peer := range t.peers {
		if peer.Status != Alive || peer.LastTimestamp == (hlc.WallTimestamp{}) {
			continue
		}
		if !found || peer.LastTimestamp.Before(low) {
			low = peer.LastTimestamp
			found = true
		}
	}
	return low, found
}
