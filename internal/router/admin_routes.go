package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/handler"
	"github.com/fahrudins/school-lab-booking/internal/middleware"
	"github.com/fahrudins/school-lab-booking/internal/model"
)

// RegisterAdmin registers admin-scoped endpoints under /v1.  All routes
// require a valid access token with the admin role: booking decisions, the
// AI schedule auto-fill and account management.
func RegisterAdmin(e *echo.Echo, bk *handler.BookingHandler, sch *handler.ScheduleHandler, acc *handler.AccountHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Decide a pending booking.  ?force=true re-decides a settled one.
	g.POST("/bookings/:id/approve", bk.Approve)
	g.POST("/bookings/:id/reject", bk.Reject)

	// Fill free slots on a date with an AI-generated schedule.
	g.POST("/schedule/generate", sch.Generate)

	// Account management.  The default admin account cannot be deleted.
	g.GET("/users", acc.List)
	g.POST("/users", acc.Create)
	g.DELETE("/users/:id", acc.Delete)
}
