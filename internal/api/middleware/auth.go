package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogit/blogit-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the session credential.
const SessionCookie = "authToken"

// SessionKey is the echo context key the verified session is stored under.
const SessionKey = "session"

// Session gates a route on a valid session credential: the cookie must be
// present, its token must verify, and the token must not have been revoked.
// On success the domain.Session is injected into the echo context. The
// middleware never mutates state.
func Session(verifier ports.TokenVerifier, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session credential")
			}

			session, err := verifier.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session credential")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), session.TokenID)
			if err != nil {
				return err
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session credential")
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}
