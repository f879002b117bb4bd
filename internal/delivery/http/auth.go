package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const contextKeyPersonID = "personID"

// bearerToken pulls the session token from the Authorization header, or
// from the token query parameter as a fallback for clients that cannot
// set headers.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}

// authenticatedPersonID returns the person bound to the request token.
// Only meaningful after enforce ran for an Authenticated or AdminOnly
// operation.
func authenticatedPersonID(c echo.Context) uint {
	if id, ok := c.Get(contextKeyPersonID).(uint); ok {
		return id
	}
	return 0
}
