package hlc

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestTickTimeRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Unix(0, 0),
		time.Unix(1, 500_000_000),
		time.Date(2019, time.May, 25, 17, 25, 31, 923316000, time.UTC),
		time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	// One tick is ~15.3µs, so a converted instant can drift by at
	// most half a millisecond even after truncation.
	const tolerance = 500 * time.Microsecond
	for _, in := range instants {
		tt, err := TickTimeFrom(in)
		if err != nil {
			t.Fatalf("TickTimeFrom(%v): %v", in, err)
		}
		out := tt.AsTime()
		diff := in.Sub(out)
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			t.Errorf("round trip %v = %v, off by %v", in, out, diff)
		}
	}
}

func TestTickTimeFromRejectsPreEpoch(t *testing.T) {
	if _, err := TickTimeFrom(time.Unix(-1, 0)); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("pre-epoch err = %v, want ErrTimeOutOfRange", err)
	}
}

func TestTickTimeFromHandlesHugeNanos(t *testing.T) {
	// The 128-bit intermediate keeps the conversion defined all the
	// way to the top of the nanosecond range.
	big, err := tickTimeFromNanos(math.MaxUint64)
	if err != nil {
		t.Fatalf("tickTimeFromNanos(max): %v", err)
	}
	now, err := TickTimeFrom(time.Now())
	if err != nil {
		t.Fatalf("TickTimeFrom(now): %v", err)
	}
	if big.Compare(now) <= 0 {
		t.Errorf("tickTimeFromNanos(max) = %d not after now = %d", big, now)
	}
}

func TestNanoTimeFromRejectsPreEpoch(t *testing.T) {
	if _, err := NanoTimeFrom(time.Unix(-1, 0)); !errors.Is(err, ErrTimeOutOfRange) {
		t.Errorf("err = %v, want ErrTimeOutOfRange", err)
	}
}

func TestNanoTimeSubSaturates(t *testing.T) {
	if got := NanoTime(5).Sub(NanoTime(10)); got != 0 {
		t.Errorf("Sub(behind) = %v, want 0", got)
	}
	if got := NanoTime(10).Sub(NanoTime(3)); got != 7 {
		t.Errorf("Sub = %v, want 7", got)
	}
	if got := NanoTime(math.MaxUint64).Sub(NanoTime(0)); got != time.Duration(math.MaxInt64) {
		t.Errorf("Sub(huge) = %v, want max duration", got)
	}
}

func TestTickTimeSubSaturates(t *testing.T) {
	if got := TickTime(5).Sub(TickTime(10)); got != 0 {
		t.Errorf("Sub(behind) = %v, want 0", got)
	}
	if got := TickTime(TicksPerSecond).Sub(TickTime(0)); got != time.Second {
		t.Errorf("Sub(1s) = %v, want 1s", got)
	}
	if got := TickTime(math.MaxUint64).Sub(TickTime(0)); got != time.Duration(math.MaxInt64) {
		t.Errorf("Sub(huge) = %v, want max duration", got)
	}
}

func TestWallReadingString(t *testing.T) {
	if got, want := NanoTime(1_500_000_000).String(), "1.5"; got != want {
		t.Errorf("NanoTime.String() = %q, want %q", got, want)
	}
	if got, want := TickTime(TicksPerSecond/2).String(), "0.5"; got != want {
		t.Errorf("TickTime.String() = %q, want %q", got, want)
	}
}

func TestNanoTimeAsTime(t *testing.T) {
	in := time.Date(2019, time.May, 25, 17, 25, 31, 923316000, time.UTC)
	nt, err := NanoTimeFrom(in)
	if err != nil {
		t.Fatalf("NanoTimeFrom: %v", err)
	}
	if !nt.AsTime().Equal(in) {
		t.Errorf("AsTime() = %v, want %v", nt.AsTime(), in)
	}
}
