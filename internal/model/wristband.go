package model

import "time"

// Status enumerates the lifecycle states of a wristband. It is the only
// mutable aspect of a wristband after issuance; every other column is
// write-once. `used`, `lost` and `cancelled` are terminal.
type Status string

const (
    StatusActive    Status = "active"
    StatusUsed      Status = "used"
    StatusLost      Status = "lost"
    StatusCancelled Status = "cancelled"
    StatusPending   Status = "pending"
)

// ParseStatus validates a raw status string against the closed set and
// returns the typed value. The second return is false for anything outside
// the five legal states, including the empty string.
func ParseStatus(raw string) (Status, bool) {
    switch Status(raw) {
    case StatusActive, StatusUsed, StatusLost, StatusCancelled, StatusPending:
        return Status(raw), true
    }
    return "", false
}

// Destructive reports whether transitioning to this status deactivates the
// wristband. Destructive transitions are blocked on events that already
// have sold wristbands.
func (s Status) Destructive() bool {
    return s == StatusLost || s == StatusCancelled
}

// Wristband represents a single sellable access unit as stored in the
// `wristbands` table.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – owning event.
//  Code       – human/QR-scannable code, fixed once issued.
//  AccessType – category label such as VIP or General.
//  Price      – decimal price as stored (DECIMAL scanned into a string).
//  Status     – lifecycle status, the only mutable column.
//  CreatedAt  – issuance timestamp.
type Wristband struct {
    ID         uint64    `json:"id"`          // wristbands.id
    EventID    uint64    `json:"event_id"`    // wristbands.event_id
    Code       string    `json:"code"`        // wristbands.code
    AccessType string    `json:"access_type"` // wristbands.access_type
    Price      string    `json:"price"`       // wristbands.price
    Status     Status    `json:"status"`      // wristbands.status
    CreatedAt  time.Time `json:"created_at"`  // wristbands.created_at
}
