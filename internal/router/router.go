package router // package router defines how HTTP routes are registered for the API

import (
    "database/sql"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/event-wristbands/internal/handler"
    "github.com/iliyamo/event-wristbands/internal/middleware"
    "github.com/iliyamo/event-wristbands/internal/model"
)

// permissiveCORS opens every route to cross-origin callers. Preflight
// OPTIONS requests are answered directly with an empty 200 and the allow
// headers; actual requests just get the origin header and pass through.
func permissiveCORS() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            h := c.Response().Header()
            h.Set(echo.HeaderAccessControlAllowOrigin, "*")
            if c.Request().Method == http.MethodOptions {
                h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
                h.Set(echo.HeaderAccessControlAllowHeaders, "Authorization, Content-Type")
                return c.NoContent(http.StatusOK)
            }
            return next(c)
        }
    }
}

// RegisterRoutes registers routes that do not require authentication:
// the health check, permissive CORS, and the public ticket-offer listing.
func RegisterRoutes(e *echo.Echo, db *sql.DB, offers *handler.OffersHandler) {
    e.Use(permissiveCORS())
    e.GET("/healthz", handler.Health(db))
    // Storefront view of sellable inventory; recomputed per request, so no
    // auth and no caching in front of it.
    e.GET("/v1/events/:id/ticket-offers", offers.GetTicketOffers)
}

// RegisterWristbands registers the protected wristband routes. The chain
// is: bearer token validation, principal resolution through the gate (with
// its integration-layer cache), role filtering, then rate limiting keyed by
// principal. Only platform admins and event managers reach these handlers;
// ownership scope is enforced again inside them.
func RegisterWristbands(e *echo.Echo, w *handler.WristbandHandler, a *handler.AnalyticsHandler, gate middleware.AuthGate, jwtSecret string, limit echo.MiddlewareFunc) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.ResolvePrincipal(gate))
    g.Use(middleware.RequireRole(model.RolePlatformAdmin, model.RoleEventManager))
    if limit != nil {
        g.Use(limit)
    }

    g.POST("/wristbands/mass-status", w.MassTransition)
    g.GET("/events/:id/wristbands", w.ListEventWristbands)
    g.GET("/events/:id/wristbands/analytics", a.ListEventWristbandAnalytics)
}
