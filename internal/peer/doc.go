// Package peer tracks the liveness and most recent hybrid timestamp
// of every known peer. Peers are probed by the beacon loop; a peer
// that stops answering becomes Suspect and eventually Dead.
package peer
