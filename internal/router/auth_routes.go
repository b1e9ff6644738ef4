package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/handler"
	"github.com/fahrudins/school-lab-booking/internal/middleware"
	"github.com/fahrudins/school-lab-booking/internal/model"
)

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: login, refresh
	// and logout.  There is no self-registration; only an admin creates
	// accounts, so no /register route exists here.
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token and returns a new pair.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body with a `refresh_token` to end one session,
	// or a Bearer access token to end every session of the account.  It is
	// registered outside the JWT middleware so both forms work.
	g.POST("/logout", a.Logout)

	// Routes that require a valid access token.  The JWTAuth middleware
	// verifies the signature and expiry; RequireRole rejects tokens whose
	// role claim is missing or unknown.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleTeacher))
	// Return the authenticated account's information.
	auth.GET("/me", a.Me)
}
