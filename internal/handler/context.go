package handler

import (
	"github.com/labstack/echo/v4"
)

// Identity helpers over the string claims stashed by the JWT middleware.

func accountID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok {
		return s
	}
	return ""
}

func accountRole(c echo.Context) string {
	if s, ok := c.Get("role").(string); ok {
		return s
	}
	return ""
}

func accountName(c echo.Context) string {
	if s, ok := c.Get("name").(string); ok {
		return s
	}
	return ""
}
