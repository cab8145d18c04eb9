package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the session identity injected by the Session
// middleware. An empty email means the middleware did not run for this
// route; treat it as an unauthenticated request rather than panicking.
func ctxIdentity(c echo.Context) (emailID string, err error) {
	emailID, _ = c.Get("emailid").(string)
	if emailID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return emailID, nil
}
