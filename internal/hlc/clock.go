package hlc

import (
	"cmp"
	"fmt"
	"time"
)

// Clock produces strictly monotonic hybrid logical timestamps from a
// physical-time source. Every output of Now happens-after every
// previous output and every timestamp folded in through Observe, even
// when the physical source stalls or runs backward.
//
// A Clock requires exclusive access for every operation. Callers that
// share one across goroutines must guard it with a mutex or a single
// owning goroutine.
type Clock[T Time[T, D], D cmp.Ordered] struct {
	src          Source[T, D]
	epoch        uint32
	lastObserved Timestamp[T, D]
}

// New returns a clock seeded with one reading from src.
func New[T Time[T, D], D cmp.Ordered](src Source[T, D]) (*Clock[T, D], error) {
	init, err := src.Now()
	if err != nil {
		return nil, fmt.Errorf("seed clock: %w", err)
	}
	return &Clock[T, D]{
		src:          src,
		lastObserved: Timestamp[T, D]{Time: init},
	}, nil
}

// WallNanos returns a clock backed by the system wall clock at
// nanosecond resolution.
func WallNanos() (*Clock[NanoTime, time.Duration], error) {
	return New[NanoTime, time.Duration](SystemNanos{})
}

// WallTicks returns a clock backed by the system wall clock at
// 1/65536-second resolution.
func WallTicks() (*Clock[TickTime, time.Duration], error) {
	return New[TickTime, time.Duration](SystemTicks{})
}

// Manual returns a clock driven by a deterministic source, along with
// the source so tests can steer the reading.
func Manual(t uint64) (*Clock[ManualTime, uint64], *ManualSource, error) {
	src := NewManualSource(t)
	clock, err := New[ManualTime, uint64](src)
	if err != nil {
		return nil, nil, err
	}
	return clock, src, nil
}

// SetEpoch overrides the epoch used for future readings. It does not
// rewrite lastObserved: the next Now or Observe folds the new epoch in
// through the ordinary ordering rule, where a higher epoch always
// wins. Intended as a manual override when a cluster member has
// skewed the clock far into the future.
func (c *Clock[T, D]) SetEpoch(epoch uint32) { c.epoch = epoch }

// Now returns a timestamp strictly greater than every previous output
// and every observed message, suitable for stamping outgoing events.
// If the source read fails the error is returned and the clock is
// unchanged.
func (c *Clock[T, D]) Now() (Timestamp[T, D], error) {
	pt, err := c.readPhysical()
	if err != nil {
		return Timestamp[T, D]{}, err
	}
	c.observe(pt)
	return c.lastObserved, nil
}

// Observe folds a timestamp from an incoming message into the clock,
// so that every later Now result happens-after it.
func (c *Clock[T, D]) Observe(msg Timestamp[T, D]) { c.observe(msg) }

// WithMaxDiff wraps the clock in an OffsetLimiter that refuses remote
// observations more than maxOffset ahead of the local physical clock.
func (c *Clock[T, D]) WithMaxDiff(maxOffset D) *OffsetLimiter[T, D] {
	return &OffsetLimiter[T, D]{clock: c, maxOffset: maxOffset}
}

func (c *Clock[T, D]) readPhysical() (Timestamp[T, D], error) {
	t, err := c.src.Now()
	if err != nil {
		return Timestamp[T, D]{}, fmt.Errorf("clock source: %w", err)
	}
	return Timestamp[T, D]{Epoch: c.epoch, Time: t}, nil
}

// observe replaces lastObserved with a value strictly greater than
// both lastObserved and obs.
func (c *Clock[T, D]) observe(obs Timestamp[T, D]) {
	lp := c.lastObserved
	epochCmp := cmp.Compare(lp.Epoch, obs.Epoch)
	timeCmp := lp.Time.Compare(obs.Time)
	switch {
	case epochCmp < 0 || (epochCmp == 0 && timeCmp < 0):
		// The observation is ahead on (epoch, time): adopt it
		// wholesale.
		c.lastObserved = obs
	case epochCmp == 0 && timeCmp == 0 && lp.Count < obs.Count:
		// Behind only on the counter: jump past the observation.
		lp.Count = obs.Count + 1
		c.lastObserved = lp
	default:
		// Neither input advanced (epoch, time). This branch also
		// covers physical regression; the counter alone preserves
		// monotonicity there.
		lp.Count++
		c.lastObserved = lp
	}
}

// OffsetLimiter wraps a Clock and refuses to fold in remote
// observations whose physical component is implausibly far ahead of
// the local reading. Without the check, a misbehaving peer could push
// the clock arbitrarily far into the future and poison every
// subsequent local timestamp.
type OffsetLimiter[T Time[T, D], D cmp.Ordered] struct {
	clock     *Clock[T, D]
	maxOffset D
}

// Observe folds msg into the wrapped clock. It returns
// ErrOffsetTooGreat, leaving the clock unchanged, when msg's reading
// is more than the configured maximum ahead of a fresh physical read.
// The delta is taken against the physical reading rather than
// lastObserved, and saturates at zero, so a message behind the local
// clock is never rejected.
func (l *OffsetLimiter[T, D]) Observe(msg Timestamp[T, D]) error {
	pt, err := l.clock.readPhysical()
	if err != nil {
		return err
	}
	if msg.Time.Sub(pt.Time) > l.maxOffset {
		return ErrOffsetTooGreat
	}
	l.clock.observe(msg)
	return nil
}

// Now returns a fresh timestamp from the wrapped clock.
func (l *OffsetLimiter[T, D]) Now() (Timestamp[T, D], error) {
	return l.clock.Now()
}

// Inner returns the wrapped clock.
func (l *OffsetLimiter[T, D]) Inner() *Clock[T, D] { return l.clock }
