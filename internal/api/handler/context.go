package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogit/blogit-api/internal/api/middleware"
	"github.com/blogit/blogit-api/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// performs a fast-fail check before any service call: a non-nil session with
// a user id proves the middleware ran and verified the credential.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil || session.Identity.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}
