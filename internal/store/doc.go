// Package store provides a bounded in-memory event log ordered by
// hybrid logical timestamp. Events are keyed by the fixed-width sort
// key encoding, so iteration order matches the happens-before order of
// the timestamps.
package store
