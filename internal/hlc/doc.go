// Package hlc implements hybrid logical clocks: scalar timestamps that
// combine a wall-clock reading with a logical counter, giving each
// process a strictly monotonic clock whose order is consistent with
// message causality. Based on "Logical Physical Clocks and Consistent
// Snapshots in Globally Distributed Databases" (Kulkarni et al.).
//
// A Clock is a plain state machine: no goroutines, no locking, no I/O
// beyond the single physical-time read per call. Callers that share a
// clock across goroutines must serialize access themselves.
package hlc
