package model

// TicketOffer is a derived, purchasable line built from active wristbands.
// It is never persisted; every read recomputes it from the store. The
// grouping key includes the representative wristband id on purpose: each
// physical wristband batch stays a distinct line instead of collapsing
// same-priced categories together.
//
// Fields:
//  AccessType  – category label shared by the group.
//  Price       – parsed decimal price; malformed source values become 0.
//  WristbandID – representative wristband of the group.
//  Available   – count of active wristbands in the group (at least 1).
type TicketOffer struct {
    AccessType  string  `json:"access_type"`
    Price       float64 `json:"price"`
    WristbandID uint64  `json:"wristband_id"`
    Available   int     `json:"available"`
}
