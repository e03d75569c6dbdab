package handler // handler defines http handlers

import (
    "encoding/json"
    "errors"
    "math"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/model"
)

// getPrincipal extracts the resolved principal stored by the
// ResolvePrincipal middleware.
func getPrincipal(c echo.Context) (model.Principal, error) {
    p, ok := c.Get("principal").(model.Principal)
    if !ok {
        return model.Principal{}, errors.New("missing principal in context")
    }
    return p, nil
}

// parseEventParam parses the :id path parameter as an event id. Zero is
// rejected along with anything non-numeric.
func parseEventParam(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid event id")
    }
    return id, nil
}

// coerceEventID accepts the event_id body field as either a JSON number or
// a numeric string. Clients of the original API sent both shapes.
func coerceEventID(v interface{}) (uint64, bool) {
    switch t := v.(type) {
    case float64:
        // Fractional ids are malformed, not truncatable: 9.5 must never
        // silently target event 9.
        if t <= 0 || t != math.Trunc(t) {
            return 0, false
        }
        return uint64(t), true
    case json.Number:
        if n, err := strconv.ParseUint(t.String(), 10, 64); err == nil && n > 0 {
            return n, true
        }
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil && n > 0 {
            return n, true
        }
    }
    return 0, false
}
