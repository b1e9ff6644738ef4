package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireRole returns a middleware that enforces that the authenticated
// user has one of the specified roles.  Every navigable feature declares
// the roles permitted to reach it at route-registration time, and this
// guard evaluates membership.  Roles correspond to the JWT's "role" claim
// ("admin" or "teacher"); guests never pass JWTAuth and so never reach this
// check.  A missing or disallowed role aborts with 403 Forbidden.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    // Build a set of allowed roles for constant-time lookups.
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Role was stored by JWTAuth as a string.  If not present or
            // of wrong type, treat as missing.
            v := c.Get("role")
            role, ok := v.(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
