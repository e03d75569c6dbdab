package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/iliyamo/event-wristbands/internal/model"
)

// AnalyticsRepo provides access to the wristband_analytics projection.
// The projection is secondary to the wristbands table: writes here are
// best-effort from the caller's point of view and may be replayed by the
// reconciler when they fail mid-flight.
type AnalyticsRepo struct {
    db *sql.DB
}

// NewAnalyticsRepo returns an AnalyticsRepo bound to the given database.
func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{db: db} }

// SoldCountByEvent counts analytics rows with a purchaser attached among the
// wristbands of one event. The join keeps the check event-scoped; a sold
// wristband on another event never blocks this one.
func (r *AnalyticsRepo) SoldCountByEvent(ctx context.Context, eventID uint64) (int64, error) {
    const q = `SELECT COUNT(*)
	           FROM wristband_analytics a
	           JOIN wristbands w ON w.id = a.wristband_id
	           WHERE w.event_id = ? AND a.client_user_id IS NOT NULL`
    var n int64
    if err := r.db.QueryRowContext(ctx, q, eventID).Scan(&n); err != nil {
        return 0, err
    }
    return n, nil
}

// UpdateStatusByWristbandIDs mirrors a status change onto the analytics rows
// of the given wristbands in one statement. Wristbands without an analytics
// row are simply not matched. Passing an empty slice has no effect and
// returns nil.
func (r *AnalyticsRepo) UpdateStatusByWristbandIDs(ctx context.Context, ids []uint64, status model.Status) error {
    if len(ids) == 0 {
        return nil
    }
    placeholders := strings.Repeat("?,", len(ids))
    placeholders = placeholders[:len(placeholders)-1]
    query := `UPDATE wristband_analytics SET status = ? WHERE wristband_id IN (` + placeholders + `)`
    args := make([]interface{}, 0, len(ids)+1)
    args = append(args, string(status))
    for _, id := range ids {
        args = append(args, id)
    }
    _, err := r.db.ExecContext(ctx, query, args...)
    return err
}

// ResyncFromWristbands re-derives the analytics status of one event from the
// authoritative wristband status. The reconciler runs this after a failed
// best-effort propagation; it is idempotent and safe to replay. Returns the
// number of rows brought back in line.
func (r *AnalyticsRepo) ResyncFromWristbands(ctx context.Context, eventID uint64) (int64, error) {
    const q = `UPDATE wristband_analytics a
	           JOIN wristbands w ON w.id = a.wristband_id
	           SET a.status = w.status
	           WHERE w.event_id = ? AND a.status <> w.status`
    res, err := r.db.ExecContext(ctx, q, eventID)
    if err != nil {
        return 0, err
    }
    n, _ := res.RowsAffected()
    return n, nil
}

// ListJoinedByEvent resolves the wristbands of an event left-joined with
// their at-most-one analytics row, ordered by creation time ascending. A
// wristband that was never sold is still returned, with Analytics nil.
func (r *AnalyticsRepo) ListJoinedByEvent(ctx context.Context, eventID uint64) ([]model.WristbandWithAnalytics, error) {
    const q = `SELECT w.id, w.event_id, w.code, w.access_type, w.price, w.status, w.created_at,
	                  a.wristband_id, a.client_user_id, a.status, a.event_data
	           FROM wristbands w
	           LEFT JOIN wristband_analytics a ON a.wristband_id = w.id
	           WHERE w.event_id = ?
	           ORDER BY w.created_at ASC`
    rows, err := r.db.QueryContext(ctx, q, eventID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var result []model.WristbandWithAnalytics
    for rows.Next() {
        var item model.WristbandWithAnalytics
        var wStatus string
        var aWristbandID sql.NullInt64
        var aClientID sql.NullInt64
        var aStatus sql.NullString
        var aEventData []byte
        if err := rows.Scan(
            &item.ID, &item.EventID, &item.Code, &item.AccessType, &item.Price,
            &wStatus, &item.CreatedAt,
            &aWristbandID, &aClientID, &aStatus, &aEventData,
        ); err != nil {
            return nil, err
        }
        item.Status = model.Status(wStatus)
        if aWristbandID.Valid {
            rec := &model.AnalyticsRecord{
                WristbandID: uint64(aWristbandID.Int64),
                Status:      model.Status(aStatus.String),
            }
            if aClientID.Valid {
                cid := uint64(aClientID.Int64)
                rec.ClientUserID = &cid
            }
            if len(aEventData) > 0 {
                rec.EventData = aEventData
            }
            item.Analytics = rec
        }
        result = append(result, item)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}
