package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playgroundlabs/playground-api/internal/api/metrics"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "accessToken"

// Session gates protected routes behind the session cookie and injects the
// verified identity into context. Fail closed: a missing cookie is 401, a
// malformed, forged, or expired token is 403.
//
// The gate trusts the verified claims as the identity; it performs no store
// access. Downstream handlers re-resolve the account when they need it.
func Session(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				metrics.SessionVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Invalid Token")
			}

			metrics.SessionVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("user_id", claims.AccountID)
			c.Set("emailid", claims.EmailID)

			return next(c)
		}
	}
}
