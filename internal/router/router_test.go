package router

import (
    "context"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/event-wristbands/internal/handler"
    "github.com/iliyamo/event-wristbands/internal/model"
    "github.com/iliyamo/event-wristbands/internal/service"
)

type emptyLister struct{}

func (emptyLister) ActiveByEvent(ctx context.Context, eventID uint64) ([]model.Wristband, error) {
    return nil, nil
}

func newTestEcho() *echo.Echo {
    e := echo.New()
    RegisterRoutes(e, nil, handler.NewOffersHandler(service.NewOffers(emptyLister{})))
    return e
}

func TestPreflightReturnsEmptyOK(t *testing.T) {
    e := newTestEcho()

    req := httptest.NewRequest(http.MethodOptions, "/v1/events/9/ticket-offers", nil)
    req.Header.Set(echo.HeaderOrigin, "https://tickets.example.com")
    req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusOK, rec.Code, "preflight answers an empty 200")
    assert.Empty(t, rec.Body.String())
    assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
    assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods))
    assert.NotEmpty(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
}

func TestCrossOriginGetCarriesAllowOrigin(t *testing.T) {
    e := newTestEcho()

    req := httptest.NewRequest(http.MethodGet, "/v1/events/9/ticket-offers", nil)
    req.Header.Set(echo.HeaderOrigin, "https://tickets.example.com")
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
