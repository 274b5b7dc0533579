package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// actingUserID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware never ran on this route.
func actingUserID(c echo.Context) (int64, error) {
	id, ok := c.Get("user_id").(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "You must be authenticated to access this content")
	}
	return id, nil
}
