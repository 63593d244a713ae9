package store

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"hybridclock/internal/hlc"
)

// Event is a single entry in the log: who produced it, when in hybrid
// time, and an opaque payload.
type Event struct {
	Timestamp hlc.WallTimestamp
	Origin    string
	Payload   []byte
}

// Log is a bounded, timestamp-ordered event log. When the log is full,
// appending evicts the oldest event. It's thread-safe.
type Log struct {
	mu       sync.RWMutex
	capacity int
	keys     [][hlc.KeyLen]byte // sorted ascending
	events   map[[hlc.KeyLen]byte]Event
}

// NewLog creates a log holding at most capacity events.
func NewLog(capacity int) (*Log, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("log capacity must be positive, got %d", capacity)
	}
	return &Log{
		capacity: capacity,
		keys:     make([][hlc.KeyLen]byte, 0, capacity),
		events:   make(map[[hlc.KeyLen]byte]Event, capacity),
	}, nil
}

// Append records an event. An event with a timestamp already present
// is rejected, since timestamps are unique per clock. If the log is at
// capacity the oldest event is evicted.
func (l *Log) Append(ev Event) error {
	key := hlc.Key(ev.Timestamp)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.events[key]; exists {
		return fmt.Errorf("duplicate event timestamp %v", ev.Timestamp)
	}

	if len(l.keys) == l.capacity {
		oldest := l.keys[0]
		l.keys = l.keys[1:]
		delete(l.events, oldest)
	}

	idx := sort.Search(len(l.keys), func(i int) bool {
		return bytes.Compare(l.keys[i][:], key[:]) >= 0
	})
	l.keys = append(l.keys, [hlc.KeyLen]byte{})
	copy(l.keys[idx+1:], l.keys[idx:])
	l.keys[idx] = key

	ev.Payload = append([]byte(nil), ev.Payload...)
	l.events[key] = ev
	return nil
}

// Len returns the number of events currently held.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.keys)
}

// Recent returns up to n events with the greatest timestamps, in
// ascending order.
func (l *Log) Recent(n int) []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n > len(l.keys) {
		n = len(l.keys)
	}
	out := make([]Event, 0, n)
	for _, key := range l.keys[len(l.keys)-n:] {
		out = append(out, l.copyEvent(key))
	}
	return out
}

// Range returns all events with from <= timestamp < to, in ascending
// order.
func (l *Log) Range(from, to hlc.WallTimestamp) []Event {
	fromKey := hlc.Key(from)
	toKey := hlc.Key(to)

	l.mu.RLock()
	defer l.mu.RUnlock()

	lo := sort.Search(len(l.keys), func(i int) bool {
		return bytes.Compare(l.keys[i][:], fromKey[:]) >= 0
	})
	hi := sort.Search(len(l.keys), func(i int) bool {
		return bytes.Compare(l.keys[i][:], toKey[:]) >= 0
	})

	out := make([]Event, 0, hi-lo)
	for _, key := range l.keys[lo:hi] {
		out = append(out, l.copyEvent(key))
	}
	return out
}

// Latest returns the greatest timestamp in the log. The second result
// is false when the log is empty.
func (l *Log) Latest() (hlc.WallTimestamp, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.keys) == 0 {
		return hlc.WallTimestamp{}, false
	}
	return l.events[l.keys[len(l.keys)-1]].Timestamp, true
}

func (l *Log) copyEvent(key [hlc.KeyLen]byte) Event {
	ev := l.events[key]
	ev.Payload = append([]byte(nil), ev.Payload...)
	return ev
}
