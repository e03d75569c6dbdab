package repository // repository defines data access for wristbands

import (
    "context"      // context allows query cancellation and timeouts
    "database/sql" // sql provides DB primitives

    "github.com/iliyamo/event-wristbands/internal/model"
)

// WristbandRepo provides read and status-update access to the wristbands
// table. Status is the only column any method here mutates; issuance and
// every other write-once field belong to a separate process.
type WristbandRepo struct {
    db *sql.DB
}

// NewWristbandRepo constructs a WristbandRepo with the given DB handle.
func NewWristbandRepo(db *sql.DB) *WristbandRepo {
    return &WristbandRepo{db: db}
}

// IDsByEvent returns the ids of every wristband belonging to the event,
// regardless of status. An event with no wristbands yields an empty slice,
// not an error.
func (r *WristbandRepo) IDsByEvent(ctx context.Context, eventID uint64) ([]uint64, error) {
    const q = `SELECT id FROM wristbands WHERE event_id = ?`
    rows, err := r.db.QueryContext(ctx, q, eventID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var ids []uint64
    for rows.Next() {
        var id uint64
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        ids = append(ids, id)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return ids, nil
}

// UpdateStatusByEvent sets the status of every wristband of the event in a
// single statement. The event_id predicate re-checks scoping in the store
// itself, so a caller can never widen a mass update past one event.
func (r *WristbandRepo) UpdateStatusByEvent(ctx context.Context, eventID uint64, status model.Status) error {
    const q = `UPDATE wristbands SET status = ? WHERE event_id = ?`
    _, err := r.db.ExecContext(ctx, q, string(status), eventID)
    return err
}

// ListByEvent retrieves all wristbands of an event ordered by creation time
// ascending.
func (r *WristbandRepo) ListByEvent(ctx context.Context, eventID uint64) ([]model.Wristband, error) {
    const q = `SELECT id, event_id, code, access_type, price, status, created_at
	           FROM wristbands
	           WHERE event_id = ?
	           ORDER BY created_at ASC`
    return r.scanList(ctx, q, eventID)
}

// ActiveByEvent retrieves the active wristbands of an event ordered by
// creation time ascending. This is the input of the ticket aggregation.
func (r *WristbandRepo) ActiveByEvent(ctx context.Context, eventID uint64) ([]model.Wristband, error) {
    const q = `SELECT id, event_id, code, access_type, price, status, created_at
	           FROM wristbands
	           WHERE event_id = ? AND status = 'active'
	           ORDER BY created_at ASC`
    return r.scanList(ctx, q, eventID)
}

func (r *WristbandRepo) scanList(ctx context.Context, q string, args ...interface{}) ([]model.Wristband, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var result []model.Wristband
    for rows.Next() {
        var w model.Wristband
        var status string
        if err := rows.Scan(
            &w.ID, &w.EventID, &w.Code, &w.AccessType, &w.Price,
            &status, &w.CreatedAt,
        ); err != nil {
            return nil, err
        }
        w.Status = model.Status(status)
        result = append(result, w)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}
