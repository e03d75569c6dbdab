package model

import "encoding/json"

// AnalyticsRecord is the read-optimized projection row tied to a sold
// wristband. At most one exists per wristband; a wristband that was never
// sold has none. Status mirrors the wristband status but may lag after a
// mass transition until the reconciler catches up.
//
// Fields:
//  WristbandID  – reference to the wristband, immutable.
//  ClientUserID – purchasing principal, nil until the wristband is sold.
//  Status       – mirrored lifecycle status (eventually consistent).
//  EventData    – free-form purchase metadata (JSON column).
type AnalyticsRecord struct {
    WristbandID  uint64          `json:"wristband_id"`             // wristband_analytics.wristband_id
    ClientUserID *uint64         `json:"client_user_id,omitempty"` // wristband_analytics.client_user_id (nullable)
    Status       Status          `json:"status"`                   // wristband_analytics.status
    EventData    json.RawMessage `json:"event_data,omitempty"`     // wristband_analytics.event_data (nullable JSON)
}

// WristbandWithAnalytics is one row of the event-scoped left join between
// wristbands and their analytics projection. Analytics is nil when the
// wristband has no projection row.
type WristbandWithAnalytics struct {
    Wristband
    Analytics *AnalyticsRecord `json:"analytics,omitempty"`
}
