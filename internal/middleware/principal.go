package middleware

import (
    "context"
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/model"
    "github.com/iliyamo/event-wristbands/internal/repository"
)

// AuthGate resolves a subject id into a principal with role and ownership
// scope. repository.PrincipalRepo is the production implementation;
// PrincipalCache wraps it when redis is available.
type AuthGate interface {
    Resolve(ctx context.Context, userID uint64) (model.Principal, error)
}

// ResolvePrincipal returns a middleware that turns the authenticated
// subject id (stored by JWTAuth) into a full principal and stores it under
// "principal". A subject that does not resolve to a known principal gets
// 401; a data error resolving the scope gets 500. Role and scope decisions
// stay with the handlers and the service, this middleware only resolves.
func ResolvePrincipal(gate AuthGate) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            id, err := subjectID(c)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            p, err := gate.Resolve(c.Request().Context(), id)
            if err != nil {
                if errors.Is(err, repository.ErrPrincipalNotFound) || errors.Is(err, repository.ErrUnknownRole) {
                    return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown principal"})
                }
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve principal"})
            }
            c.Set("principal", p)
            return next(c)
        }
    }
}

// RequireRole returns a middleware that rejects requests whose resolved
// principal is outside the allowed role set with 403. It assumes
// ResolvePrincipal ran earlier in the chain.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            p, ok := c.Get("principal").(model.Principal)
            if !ok || !allowed[p.Role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// subjectID extracts the subject stored by JWTAuth and converts it to
// uint64. JWT map claims carry numbers as float64; string subjects are
// parsed for tokens minted that way.
func subjectID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
