package hlc

import (
	"cmp"
	"fmt"
	"time"
)

// Time is the physical reading carried inside a Timestamp. A reading
// is an ordinary value: totally ordered, copyable, and subtractable,
// where subtraction yields a Delta that can be compared against a
// configured threshold.
type Time[T, D any] interface {
	comparable
	// Compare returns -1, 0 or +1 depending on whether the receiver
	// orders before, equal to, or after other.
	Compare(other T) int
	// Sub returns the difference between the receiver and other as a
	// Delta. It must saturate rather than wrap when other is ahead of
	// the receiver.
	Sub(other T) D
}

// Timestamp is a hybrid logical timestamp. Timestamps order
// lexicographically on (Epoch, Time, Count); if a < b then the event
// stamped a could have causally preceded the event stamped b.
// Because the value is scalar, a pair of timestamps cannot distinguish
// concurrency from causal precedence.
//
// A Timestamp is pure data: produced by Clock.Now or received from a
// peer, replaced wholesale on update, never mutated.
type Timestamp[T Time[T, D], D cmp.Ordered] struct {
	// Epoch is an operator-controlled generation counter. A higher
	// epoch orders after any timestamp of a lower epoch, regardless of
	// the physical readings.
	Epoch uint32
	// Time is the physical reading the timestamp was derived from.
	Time T
	// Count disambiguates events that share the same epoch and
	// physical reading. It resets implicitly whenever Time advances.
	Count uint32
}

// Compare returns -1, 0 or +1 according to the total order on
// (Epoch, Time, Count). Two timestamps compare equal only when all
// three fields are equal.
func (ts Timestamp[T, D]) Compare(other Timestamp[T, D]) int {
	if c := cmp.Compare(ts.Epoch, other.Epoch); c != 0 {
		return c
	}
	if c := ts.Time.Compare(other.Time); c != 0 {
		return c
	}
	return cmp.Compare(ts.Count, other.Count)
}

// Before reports whether ts happens-before other.
func (ts Timestamp[T, D]) Before(other Timestamp[T, D]) bool {
	return ts.Compare(other) < 0
}

// After reports whether ts happens-after other.
func (ts Timestamp[T, D]) After(other Timestamp[T, D]) bool {
	return ts.Compare(other) > 0
}

// String renders the timestamp as "epoch:time+count".
func (ts Timestamp[T, D]) String() string {
	return fmt.Sprintf("%d:%v+%d", ts.Epoch, ts.Time, ts.Count)
}

// WallTimestamp is the nanosecond-resolution timestamp variant: the
// one exchanged by the demo transport and encoded as sort keys.
type WallTimestamp = Timestamp[NanoTime, time.Duration]
