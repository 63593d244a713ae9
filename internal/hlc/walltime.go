package hlc

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"time"
)

const nanosPerSecond = uint64(time.Second)

// TicksPerSecond is the TickTime resolution: 2^16 ticks per second.
const TicksPerSecond = uint64(1) << 16

// NanoTime is a wall-clock reading in nanoseconds since the Unix
// epoch.
type NanoTime uint64

// NanoTimeFrom converts t to a NanoTime, failing for instants before
// the Unix epoch.
func NanoTimeFrom(t time.Time) (NanoTime, error) {
	ns := t.UnixNano()
	if ns < 0 {
		return 0, fmt.Errorf("%w: %v is before the unix epoch", ErrTimeOutOfRange, t)
	}
	return NanoTime(ns), nil
}

// Compare returns -1, 0 or +1 ordering t against other.
func (t NanoTime) Compare(other NanoTime) int { return cmp.Compare(t, other) }

// Sub returns t - other. It saturates at zero when other is ahead of t
// and at the maximum Duration when the gap does not fit in int64
// nanoseconds.
func (t NanoTime) Sub(other NanoTime) time.Duration {
	if other >= t {
		return 0
	}
	diff := uint64(t - other)
	if diff > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(diff)
}

// Ticks returns the raw nanosecond count.
func (t NanoTime) Ticks() uint64 { return uint64(t) }

// AsTime returns the reading as a time.Time.
func (t NanoTime) AsTime() time.Time {
	return time.Unix(int64(uint64(t)/nanosPerSecond), int64(uint64(t)%nanosPerSecond))
}

// String renders the reading as fractional seconds since the epoch.
func (t NanoTime) String() string {
	return strconv.FormatFloat(float64(t)/float64(nanosPerSecond), 'f', -1, 64)
}

// TickTime is a wall-clock reading in 1/65536-second ticks since the
// Unix epoch. The fixed fractional-second resolution keeps encoded
// keys comparable across platforms with different clock precision.
type TickTime uint64

// TickTimeFrom converts t to a TickTime, failing for instants before
// the Unix epoch or whose tick count does not fit in 64 bits.
func TickTimeFrom(t time.Time) (TickTime, error) {
	ns := t.UnixNano()
	if ns < 0 {
		return 0, fmt.Errorf("%w: %v is before the unix epoch", ErrTimeOutOfRange, t)
	}
	return tickTimeFromNanos(uint64(ns))
}

func tickTimeFromNanos(ns uint64) (TickTime, error) {
	// ticks = ns * 2^16 / 1e9, computed with a 128-bit intermediate.
	hi, lo := bits.Mul64(ns, TicksPerSecond)
	if hi >= nanosPerSecond {
		return 0, fmt.Errorf("%w: %d ns since epoch", ErrTimeOutOfRange, ns)
	}
	ticks, _ := bits.Div64(hi, lo, nanosPerSecond)
	return TickTime(ticks), nil
}

// Compare returns -1, 0 or +1 ordering t against other.
func (t TickTime) Compare(other TickTime) int { return cmp.Compare(t, other) }

// Sub returns t - other, saturating at zero when other is ahead of t
// and at the maximum Duration when the gap is too large.
func (t TickTime) Sub(other TickTime) time.Duration {
	if other >= t {
		return 0
	}
	// ns = ticks * 1e9 / 2^16, with a 128-bit intermediate. The
	// division is a shift.
	hi, lo := bits.Mul64(uint64(t-other), nanosPerSecond)
	if hi>>16 != 0 {
		return time.Duration(math.MaxInt64)
	}
	ns := hi<<48 | lo>>16
	if ns > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// Ticks returns the raw tick count.
func (t TickTime) Ticks() uint64 { return uint64(t) }

// AsTime returns the reading as a time.Time, truncated to tick
// resolution.
func (t TickTime) AsTime() time.Time {
	secs := uint64(t) / TicksPerSecond
	minor := uint64(t) % TicksPerSecond
	return time.Unix(int64(secs), int64(minor*nanosPerSecond/TicksPerSecond))
}

// String renders the reading as fractional seconds since the epoch.
func (t TickTime) String() string {
	return strconv.FormatFloat(float64(t)/float64(TicksPerSecond), 'f', -1, 64)
}
