package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/repository"
)

// AnalyticsHandler serves the manager-facing wristband + analytics join.
type AnalyticsHandler struct {
    Analytics *repository.AnalyticsRepo
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analytics *repository.AnalyticsRepo) *AnalyticsHandler {
    if analytics == nil {
        panic("nil repository passed to NewAnalyticsHandler")
    }
    return &AnalyticsHandler{Analytics: analytics}
}

// ListEventWristbandAnalytics handles
// GET /v1/events/:id/wristbands/analytics. Each wristband appears once,
// ordered by creation time ascending; the analytics object is omitted for
// wristbands that were never sold. The projection can lag the wristband
// status briefly after a mass transition.
func (h *AnalyticsHandler) ListEventWristbandAnalytics(c echo.Context) error {
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

    items, err := h.Analytics.ListJoinedByEvent(c.Request().Context(), eventID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load analytics"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "items": items,
        "count": len(items),
    })
}
