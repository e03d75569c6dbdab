// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers and services to distinguish between failure scenarios with
// errors.Is instead of matching on driver-specific errors.
package repository

import "errors"

// ErrPrincipalNotFound is returned when a credential subject does not
// resolve to a known principal row. Handlers translate this into an
// HTTP 401 response.
var ErrPrincipalNotFound = errors.New("principal not found")

// ErrUnknownRole is returned when a principal row carries a role name
// outside the closed set. The row is treated as unusable rather than
// letting an unrecognized role reach an authorization decision.
var ErrUnknownRole = errors.New("unknown role")
