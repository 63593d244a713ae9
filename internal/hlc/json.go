package hlc

import (
	"encoding/json"
	"fmt"
)

// Timestamps serialize as a three-element JSON array
// [epoch, time, count] so that lexicographic field order survives the
// wire format. Wall readings serialize as a one-element array holding
// the raw tick count, which keeps them distinguishable from bare
// numbers in mixed payloads.

// MarshalJSON encodes ts as [epoch, time, count].
func (ts Timestamp[T, D]) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{ts.Epoch, ts.Time, ts.Count})
}

// UnmarshalJSON decodes the [epoch, time, count] form.
func (ts *Timestamp[T, D]) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("timestamp must have 3 elements, got %d", len(parts))
	}
	var out Timestamp[T, D]
	if err := json.Unmarshal(parts[0], &out.Epoch); err != nil {
		return fmt.Errorf("timestamp epoch: %w", err)
	}
	if err := json.Unmarshal(parts[1], &out.Time); err != nil {
		return fmt.Errorf("timestamp time: %w", err)
	}
	if err := json.Unmarshal(parts[2], &out.Count); err != nil {
		return fmt.Errorf("timestamp count: %w", err)
	}
	*ts = out
	return nil
}

func marshalTicks(ticks uint64) ([]byte, error) {
	return json.Marshal([1]uint64{ticks})
}

func unmarshalTicks(data []byte) (uint64, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return 0, err
	}
	if len(parts) != 1 {
		return 0, fmt.Errorf("wall reading must have 1 element, got %d", len(parts))
	}
	var ticks uint64
	if err := json.Unmarshal(parts[0], &ticks); err != nil {
		return 0, err
	}
	return ticks, nil
}

// MarshalJSON encodes t as a one-element array of nanoseconds.
func (t NanoTime) MarshalJSON() ([]byte, error) { return marshalTicks(uint64(t)) }

// UnmarshalJSON decodes the one-element array form.
func (t *NanoTime) UnmarshalJSON(data []byte) error {
	ticks, err := unmarshalTicks(data)
	if err != nil {
		return err
	}
	*t = NanoTime(ticks)
	return nil
}

// MarshalJSON encodes t as a one-element array of ticks.
func (t TickTime) MarshalJSON() ([]byte, error) { return marshalTicks(uint64(t)) }

// UnmarshalJSON decodes the one-element array form.
func (t *TickTime) UnmarshalJSON(data []byte) error {
	ticks, err := unmarshalTicks(data)
	if err != nil {
		return err
	}
	*t = TickTime(ticks)
	return nil
}
