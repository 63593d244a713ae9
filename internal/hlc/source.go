package hlc

import (
	"cmp"
	"time"
)

// Source supplies physical-time readings to a Clock. A reading may
// fail, for example when the platform clock cannot be resolved or the
// instant does not fit the fixed-width tick representation.
type Source[T Time[T, D], D cmp.Ordered] interface {
	Now() (T, error)
}

// SystemNanos reads the operating system wall clock at nanosecond
// resolution.
type SystemNanos struct{}

// Now returns the current wall-clock reading.
func (SystemNanos) Now() (NanoTime, error) { return NanoTimeFrom(time.Now()) }

// SystemTicks reads the operating system wall clock at 1/65536-second
// resolution.
type SystemTicks struct{}

// Now returns the current wall-clock reading.
func (SystemTicks) Now() (TickTime, error) { return TickTimeFrom(time.Now()) }

// ManualTime is the reading produced by a ManualSource: a bare counter
// with uint64 deltas.
type ManualTime uint64

// Compare returns -1, 0 or +1 ordering t against other.
func (t ManualTime) Compare(other ManualTime) int { return cmp.Compare(t, other) }

// Sub returns t - other, saturating at zero.
func (t ManualTime) Sub(other ManualTime) uint64 {
	if other >= t {
		return 0
	}
	return uint64(t - other)
}

// ManualSource is a deterministic source whose reading is set by the
// caller. It exists for testing the update algorithm and follows the
// same single-writer rule as Clock: no internal synchronization.
type ManualSource struct {
	reading ManualTime
}

// NewManualSource returns a source whose reading starts at t.
func NewManualSource(t uint64) *ManualSource {
	return &ManualSource{reading: ManualTime(t)}
}

// Now returns the configured reading. It never fails.
func (s *ManualSource) Now() (ManualTime, error) { return s.reading, nil }

// Set replaces the reading returned by subsequent Now calls.
func (s *ManualSource) Set(t uint64) { s.reading = ManualTime(t) }
