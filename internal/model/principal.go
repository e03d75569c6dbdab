package model

// Role is the closed set of principal roles. Role comparison happens only
// through these constants and ParseRole; no caller inspects raw strings or
// numeric role ids.
type Role string

const (
    RolePlatformAdmin Role = "PLATFORM_ADMIN"
    RoleEventManager  Role = "EVENT_MANAGER"
    RoleClient        Role = "CLIENT"
)

// ParseRole maps a stored role name onto the closed set. Unknown names
// return false rather than leaking through as a usable role.
func ParseRole(raw string) (Role, bool) {
    switch Role(raw) {
    case RolePlatformAdmin, RoleEventManager, RoleClient:
        return Role(raw), true
    }
    return "", false
}

// CanMassTransition reports whether the role may invoke a mass status
// transition at all. Only platform admins and event managers qualify;
// clients (and anything unknown) are rejected before any store access.
func (r Role) CanMassTransition() bool {
    return r == RolePlatformAdmin || r == RoleEventManager
}

// Scope is the set of events a principal may act on. All=true short-circuits
// the id set and grants every event (platform admins). For event managers
// EventIDs holds the events of the company they manage, resolved explicitly
// at authorization time — there is no silent row filter to fall back on.
type Scope struct {
    All      bool     `json:"all"`
    EventIDs []uint64 `json:"event_ids,omitempty"`
}

// Allows reports whether the scope covers the given event.
func (s Scope) Allows(eventID uint64) bool {
    if s.All {
        return true
    }
    for _, id := range s.EventIDs {
        if id == eventID {
            return true
        }
    }
    return false
}

// Principal is the authenticated actor behind a request, as resolved by the
// authorization gate from the credential's subject id.
type Principal struct {
    UserID uint64 `json:"user_id"`
    Role   Role   `json:"role"`
    Scope  Scope  `json:"scope"`
}
