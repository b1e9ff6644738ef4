package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/handler"
	"github.com/fahrudins/school-lab-booking/internal/middleware"
	"github.com/fahrudins/school-lab-booking/internal/model"
)

// RegisterBookings registers the booking-submission endpoints shared by
// teachers and admins.  Teachers submit requests that start Pending; an
// admin using the same endpoint gets an immediately Approved booking.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleTeacher))
	// Submit a booking request.
	g.POST("/bookings", h.Create)
	// Dry-run conflict analysis for the booking form.  The local checker is
	// authoritative; AI suggestions are attached when the collaborator is
	// configured.
	g.POST("/bookings/analyze", h.Analyze)
}
