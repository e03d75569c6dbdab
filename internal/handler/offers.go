package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/service"
)

// OffersHandler exposes the derived ticket offers of an event. The route is
// public: it is the storefront view of sellable inventory.
type OffersHandler struct {
    Offers *service.Offers
}

// NewOffersHandler constructs an OffersHandler.
func NewOffersHandler(offers *service.Offers) *OffersHandler {
    if offers == nil {
        panic("nil service passed to NewOffersHandler")
    }
    return &OffersHandler{Offers: offers}
}

// GetTicketOffers handles GET /v1/events/:id/ticket-offers. Offers are
// recomputed from active wristbands on every call and sorted by ascending
// price.
func (h *OffersHandler) GetTicketOffers(c echo.Context) error {
    eventID, err := parseEventParam(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
    }
    items, err := h.Offers.DeriveTicketOffers(c.Request().Context(), eventID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to derive offers"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "items": items,
        "count": len(items),
    })
}
