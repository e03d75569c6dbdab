package handler

// This file defines the HTTP surface of the mass transition service and the
// event-scoped wristband listing. Role filtering happens in middleware;
// ownership scope is still checked explicitly here and in the service, so a
// handler never trusts a silent row filter to do it.

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/repository"
    "github.com/iliyamo/event-wristbands/internal/service"
)

// WristbandHandler groups the transition service and the wristband
// repository behind the wristband routes.
type WristbandHandler struct {
    Transition *service.Transition
    Wristbands *repository.WristbandRepo
}

// NewWristbandHandler constructs a WristbandHandler. All dependencies must
// be non-nil.
func NewWristbandHandler(transition *service.Transition, wristbands *repository.WristbandRepo) *WristbandHandler {
    if transition == nil || wristbands == nil {
        panic("nil dependency passed to NewWristbandHandler")
    }
    return &WristbandHandler{Transition: transition, Wristbands: wristbands}
}

// MassTransition handles POST /v1/wristbands/mass-status. The JSON body
// carries `event_id` (number or numeric string) and `new_status`. On
// success it responds 200 with the number of wristbands the event had,
// including the zero-wristband trivial success. Validation failures map to
// 400, role/scope violations and the sold-inventory refusal to 403.
func (h *WristbandHandler) MassTransition(c echo.Context) error {
    principal, err := getPrincipal(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var body struct {
        EventID   interface{} `json:"event_id"`
        NewStatus string      `json:"new_status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.EventID == nil || body.NewStatus == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_id and new_status are required"})
    }
    eventID, ok := coerceEventID(body.EventID)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event_id"})
    }

    count, err := h.Transition.TransitionWristbands(c.Request().Context(), eventID, principal, body.NewStatus)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrInvalidEvent), errors.Is(err, service.ErrInvalidStatus):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        case errors.Is(err, service.ErrForbiddenRole), errors.Is(err, service.ErrEventNotOwned):
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        case errors.Is(err, service.ErrSoldInventory):
            return c.JSON(http.StatusForbidden, echo.Map{"error": "sold wristbands present"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update wristbands"})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "message": "wristbands updated",
        "count":   count,
    })
}

// ListEventWristbands handles GET /v1/events/:id/wristbands. It returns the
// event's wristbands ordered by creation time ascending. Managers only see
// events inside their ownership scope.
func (h *WristbandHandler) ListEventWristbands(c echo.Context) error {
    principal, err := getPrincipal(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    eventID, err := parseEventParam(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
    }
    if !principal.Scope.Allows(eventID) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    items, err := h.Wristbands.ListByEvent(c.Request().Context(), eventID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load wristbands"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "items": items,
        "count": len(items),
    })
}
