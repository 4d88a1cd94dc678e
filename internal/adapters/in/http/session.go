package http

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Request headers carrying the acting identity. Upstream gateways are
// expected to set these after authenticating the caller.
const (
	HeaderUserID    = "X-User-Id"
	HeaderCompanyID = "X-Company-Id"
)

type sessionContextKey int

const (
	currentUserKey sessionContextKey = iota
	currentCompanyKey
)

// SessionMiddleware extracts the acting user and company from the request
// headers and stores them in the request context. Requests without the
// headers pass through; operations that need the identity fail later with
// an authorization error.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := c.Request().Context()

			if userID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID)); err == nil {
				reqCtx = context.WithValue(reqCtx, currentUserKey, userID)
			}
			if companyID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderCompanyID)); err == nil {
				reqCtx = context.WithValue(reqCtx, currentCompanyKey, companyID)
			}

			c.SetRequest(c.Request().WithContext(reqCtx))
			return next(c)
		}
	}
}

// HeaderSession resolves the acting identity from values placed in the
// request context by SessionMiddleware. Implements ports.SessionContext.
type HeaderSession struct{}

// NewHeaderSession creates a session source backed by request headers.
func NewHeaderSession() HeaderSession {
	return HeaderSession{}
}

// CurrentUser returns the acting user taken from the request headers.
func (HeaderSession) CurrentUser(ctx context.Context) (kernel.UUID, error) {
	userID, ok := ctx.Value(currentUserKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewAuthorizationError("identify the acting user")
	}
	return userID, nil
}

// CurrentCompany returns the acting user's company taken from the request
// headers.
func (HeaderSession) CurrentCompany(ctx context.Context) (kernel.UUID, error) {
	companyID, ok := ctx.Value(currentCompanyKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewAuthorizationError("identify the acting company")
	}
	return companyID, nil
}
