// Package queue defines message payloads exchanged over the message broker.
package queue

// ReconcileRequestedEvent is published when the best-effort analytics
// propagation of a mass transition fails. It carries enough for the
// reconciler to re-derive the projection without trusting the message
// contents: the authoritative status is re-read from the wristbands table,
// Status here is informational.
type ReconcileRequestedEvent struct {
    EventID  uint64 `json:"event_id"`
    Status   string `json:"status"`
    FailedAt string `json:"failed_at"`
}
