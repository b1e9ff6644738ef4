package middleware

// identity.go holds the identity helper shared by the rate limiter and the
// cache key builders.  JWTAuth stores the account id as a plain string under
// "user_id"; unauthenticated requests resolve to "guest".

import (
    "github.com/labstack/echo/v4"
)

// currentUserID extracts the account identifier from context, or "guest"
// when no user is authenticated.
func currentUserID(c echo.Context) string {
    if v := c.Get("user_id"); v != nil {
        if s, ok := v.(string); ok && s != "" {
            return s
        }
    }
    return "guest"
}
