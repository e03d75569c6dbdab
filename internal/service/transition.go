// Package service implements the wristband lifecycle core: the mass status
// transition and the ticket-type aggregation. Store access goes through
// narrow interfaces so the orchestration stays testable without a database.
package service

import (
    "context"
    "errors"
    "log"
    "time"

    "github.com/iliyamo/event-wristbands/internal/model"
    "github.com/iliyamo/event-wristbands/internal/queue"
)

// ErrInvalidStatus is returned when the requested status is not one of the
// five legal lifecycle values. Handlers translate it into HTTP 400.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidEvent is returned when the event id is missing or zero.
var ErrInvalidEvent = errors.New("invalid event id")

// ErrForbiddenRole is returned when the principal's role may not perform
// mass transitions at all. Handlers translate it into HTTP 403.
var ErrForbiddenRole = errors.New("role not allowed")

// ErrEventNotOwned is returned when an event manager targets an event
// outside their ownership scope.
var ErrEventNotOwned = errors.New("event not owned by principal")

// ErrSoldInventory is returned when a destructive transition would hit an
// event that already has sold wristbands. The whole operation is refused;
// deactivating a paying client's credential would break their entitlement.
var ErrSoldInventory = errors.New("sold wristbands present")

// WristbandStore is the slice of the wristband repository the transition
// service needs.
type WristbandStore interface {
    IDsByEvent(ctx context.Context, eventID uint64) ([]uint64, error)
    UpdateStatusByEvent(ctx context.Context, eventID uint64, status model.Status) error
}

// AnalyticsStore is the slice of the analytics repository the transition
// service needs. UpdateStatusByWristbandIDs is the best-effort half of the
// two-table write.
type AnalyticsStore interface {
    SoldCountByEvent(ctx context.Context, eventID uint64) (int64, error)
    UpdateStatusByWristbandIDs(ctx context.Context, ids []uint64, status model.Status) error
}

// ReconcilePublisher hands a failed propagation off to the reconciliation
// queue. Its own failure is only logged; the caller has already committed
// the authoritative write.
type ReconcilePublisher func(ctx context.Context, ev queue.ReconcileRequestedEvent) error

// Transition applies bulk status changes to every wristband of one event.
// The wristbands table is the source of truth; the analytics projection is
// updated best-effort afterwards and reconciled out of band when that part
// fails. There is no cross-request locking: two concurrent transitions on
// one event can interleave between the sold-inventory check and the write.
type Transition struct {
    wristbands WristbandStore
    analytics  AnalyticsStore
    publish    ReconcilePublisher
}

// NewTransition constructs the service. publish may be nil, in which case a
// failed propagation is only logged.
func NewTransition(wristbands WristbandStore, analytics AnalyticsStore, publish ReconcilePublisher) *Transition {
    if wristbands == nil || analytics == nil {
        panic("nil store passed to NewTransition")
    }
    return &Transition{wristbands: wristbands, analytics: analytics, publish: publish}
}

// TransitionWristbands validates and applies a mass status change. Checks
// run in a fixed order and each failure short-circuits the rest: argument
// validation, role and scope, then the sold-inventory invariant for
// destructive targets. The returned count is the number of wristbands that
// belonged to the event, so repeating the same call reports the same count
// again rather than zero.
func (s *Transition) TransitionWristbands(ctx context.Context, eventID uint64, principal model.Principal, rawStatus string) (int, error) {
    if eventID == 0 {
        return 0, ErrInvalidEvent
    }
    status, ok := model.ParseStatus(rawStatus)
    if !ok {
        return 0, ErrInvalidStatus
    }

    if !principal.Role.CanMassTransition() {
        return 0, ErrForbiddenRole
    }
    if !principal.Scope.Allows(eventID) {
        return 0, ErrEventNotOwned
    }

    // Destructive transitions are hard-blocked while any wristband of the
    // event has been sold. The check is scoped to this event and must
    // complete before any write.
    if status.Destructive() {
        sold, err := s.analytics.SoldCountByEvent(ctx, eventID)
        if err != nil {
            return 0, err
        }
        if sold > 0 {
            return 0, ErrSoldInventory
        }
    }

    ids, err := s.wristbands.IDsByEvent(ctx, eventID)
    if err != nil {
        return 0, err
    }
    if len(ids) == 0 {
        // Trivial success: nothing to update, no writes issued.
        return 0, nil
    }

    if err := s.wristbands.UpdateStatusByEvent(ctx, eventID, status); err != nil {
        return 0, err
    }

    // Best-effort propagation. The wristband write above already succeeded
    // and is not rolled back; a failure here is logged and queued for the
    // reconciler, and the caller still gets a success.
    if err := s.analytics.UpdateStatusByWristbandIDs(ctx, ids, status); err != nil {
        log.Printf("transition: analytics propagation failed for event=%d status=%s: %v", eventID, status, err)
        if s.publish != nil {
            ev := queue.ReconcileRequestedEvent{
                EventID:  eventID,
                Status:   string(status),
                FailedAt: time.Now().UTC().Format(time.RFC3339),
            }
            if pubErr := s.publish(ctx, ev); pubErr != nil {
                log.Printf("transition: reconcile publish failed for event=%d: %v", eventID, pubErr)
            }
        }
    }

    return len(ids), nil
}
