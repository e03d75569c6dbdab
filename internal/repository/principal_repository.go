package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/event-wristbands/internal/model"
)

// PrincipalRepo resolves an authenticated subject id into a principal with
// role and ownership scope. It is the authorization gate's storage half: a
// pure lookup with no side effects. Response caching, when wanted, lives in
// the integration layer above, never here.
type PrincipalRepo struct {
    db *sql.DB
}

// NewPrincipalRepo constructs a PrincipalRepo with the given DB handle.
func NewPrincipalRepo(db *sql.DB) *PrincipalRepo {
    return &PrincipalRepo{db: db}
}

// Resolve loads the principal row and computes its event scope. Platform
// admins are scoped to every event. Event managers get the explicit id set
// of the events run by their company, resolved here rather than trusted to
// any downstream filter. Unknown subjects yield ErrPrincipalNotFound and
// unrecognized role names yield ErrUnknownRole.
func (r *PrincipalRepo) Resolve(ctx context.Context, userID uint64) (model.Principal, error) {
    const q = `SELECT role, company_id FROM principals WHERE id = ?`
    var roleName string
    var companyID sql.NullInt64
    err := r.db.QueryRowContext(ctx, q, userID).Scan(&roleName, &companyID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return model.Principal{}, ErrPrincipalNotFound
        }
        return model.Principal{}, err
    }

    role, ok := model.ParseRole(roleName)
    if !ok {
        return model.Principal{}, ErrUnknownRole
    }

    p := model.Principal{UserID: userID, Role: role}
    if role == model.RolePlatformAdmin {
        p.Scope = model.Scope{All: true}
        return p, nil
    }
    if role != model.RoleEventManager || !companyID.Valid {
        // Clients and managers without a company own no events.
        return p, nil
    }

    const qEvents = `SELECT id FROM events WHERE company_id = ?`
    rows, err := r.db.QueryContext(ctx, qEvents, companyID.Int64)
    if err != nil {
        return model.Principal{}, err
    }
    defer rows.Close()
    for rows.Next() {
        var id uint64
        if err := rows.Scan(&id); err != nil {
            return model.Principal{}, err
        }
        p.Scope.EventIDs = append(p.Scope.EventIDs, id)
    }
    if err := rows.Err(); err != nil {
        return model.Principal{}, err
    }
    return p, nil
}
