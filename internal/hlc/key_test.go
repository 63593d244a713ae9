package hlc

import (
	"bytes"
	"math/rand"
	"testing"
	"time"
)

func TestKeyRoundTrip(t *testing.T) {
	cases := []WallTimestamp{
		{},
		{Epoch: 1, Time: 2, Count: 3},
		{Epoch: ^uint32(0), Time: NanoTime(^uint64(0)), Count: ^uint32(0)},
		{Time: 1558805131923316000},
	}
	for _, ts := range cases {
		key := Key(ts)
		got, err := ParseKey[NanoTime, time.Duration](key[:])
		if err != nil {
			t.Fatalf("ParseKey(%v): %v", ts, err)
		}
		if got != ts {
			t.Errorf("ParseKey(Key(%v)) = %v", ts, got)
		}
	}
}

func TestKeyOrderMatchesTimestampOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randTS := func() WallTimestamp {
		return WallTimestamp{
			Epoch: uint32(rng.Intn(4)),
			Time:  NanoTime(rng.Intn(16)),
			Count: uint32(rng.Intn(4)),
		}
	}
	for i := 0; i < 2000; i++ {
		a, b := randTS(), randTS()
		ka, kb := Key(a), Key(b)
		if got, want := bytes.Compare(ka[:], kb[:]), a.Compare(b); got != want {
			t.Fatalf("bytes.Compare(Key(%v), Key(%v)) = %d, want %d", a, b, got, want)
		}
	}
}

func TestAppendKeyExtends(t *testing.T) {
	ts := WallTimestamp{Epoch: 1, Time: 2, Count: 3}
	buf := AppendKey([]byte("prefix"), ts)
	if len(buf) != 6+KeyLen {
		t.Fatalf("AppendKey len = %d, want %d", len(buf), 6+KeyLen)
	}
	got, err := ParseKey[NanoTime, time.Duration](buf[6:])
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if got != ts {
		t.Errorf("ParseKey = %v, want %v", got, ts)
	}
}

func TestParseKeyRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 32} {
		if _, err := ParseKey[NanoTime, time.Duration](make([]byte, n)); err == nil {
			t.Errorf("ParseKey accepted %d bytes", n)
		}
	}
}

func TestKeyWorksWithTickTime(t *testing.T) {
	ts := Timestamp[TickTime, time.Duration]{Epoch: 2, Time: 1 << 40, Count: 9}
	key := Key(ts)
	got, err := ParseKey[TickTime, time.Duration](key[:])
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if got != ts {
		t.Errorf("ParseKey = %v, want %v", got, ts)
	}
}
