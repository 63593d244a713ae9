// Package snapshot collects a consistent view of hybrid time across
// the cluster. It fans a timestamp request out to every peer in
// parallel and reports the quorum watermark: the greatest timestamp
// that a required number of peers have reached.
package snapshot
