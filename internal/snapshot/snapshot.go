package snapshot

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hybridclock/internal/hlc"
)

const (
	// DefaultPerPeerTimeout is the default timeout for each peer RPC.
	DefaultPerPeerTimeout = 2 * time.Second
)

// Result represents the outcome of a snapshot collection.
type Result struct {
	Success      bool
	Responses    int
	Required     int
	Peers        int
	Watermark    hlc.WallTimestamp
	ErrorMessage string
}

// FetchFunc fetches the current timestamp from a single peer.
type FetchFunc func(ctx context.Context, peerID string) (hlc.WallTimestamp, error)

// Collect fans out to all peers in parallel and computes the quorum
// watermark: the greatest timestamp that at least required peers have
// reached. With required <= 0 a majority is used.
func Collect(ctx context.Context, peers []string, required int, fetchFn FetchFunc) Result {
	if len(peers) == 0 {
		return Result{
			Success:      false,
			ErrorMessage: "no peers provided",
		}
	}

	if required <= 0 {
		required = (len(peers) / 2) + 1 // default: majority
	}

	if required > len(peers) {
		return Result{
			Success:      false,
			Required:     required,
			Peers:        len(peers),
			ErrorMessage: fmt.Sprintf("required=%d exceeds peer count=%d", required, len(peers)),
		}
	}

	var (
		mu         sync.Mutex
		timestamps []hlc.WallTimestamp
		errors     []error
		wg         sync.WaitGroup
	)

	peerCtx, cancel := context.WithTimeout(ctx, DefaultPerPeerTimeout)
	defer cancel()

	for _, peerID := range peers {
		wg.Add(1)
		go func(pid string) {
			defer wg.Done()

			ts, err := fetchFn(peerCtx, pid)
			mu.Lock()
			defer mu.Unlock()

			if err == nil {
				timestamps = append(timestamps, ts)
			} else {
				errors = append(errors, fmt.Errorf("peer %s: %w", pid, err))
			}
		}(peerID)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// All peers responded
	case <-ctx.Done():
		mu.Lock()
		defer mu.Unlock()
		return Result{
			Success:      false,
			Responses:    len(timestamps),
			Required:     required,
			Peers:        len(peers),
			ErrorMessage: fmt.Sprintf("context cancelled: %v", ctx.Err()),
		}
	}

	mu.Lock()
	defer mu.Unlock()

	if len(timestamps) >= required {
		// Descending; the required-th greatest timestamp has been
		// reached by at least required peers.
		sort.Slice(timestamps, func(i, j int) bool {
			return timestamps[j].Before(timestamps[i])
		})
		return Result{
			Success:   true,
			Responses: len(timestamps),
			Required:  required,
			Peers:     len(peers),
			Watermark: timestamps[required-1],
		}
	}

	errMsg := fmt.Sprintf("quorum not met: responses=%d required=%d peers=%d", len(timestamps), required, len(peers))
	if len(errors) > 0 {
		errMsg += fmt.Sprintf(" errors=%v", errors[:min(3, len(errors))])
	}

	return Result{
		Success:      false,
		Responses:    len(timestamps),
		Required:     required,
		Peers:        len(peers),
		ErrorMessage: errMsg,
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
