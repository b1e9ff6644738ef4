package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/handler"
)

// RegisterPublic registers unauthenticated browse endpoints.  Guests can see
// the day schedule, live lab occupancy and the class-group catalogue, and can
// download or print the recap without logging in.  No JWT or role middleware
// is applied here.
func RegisterPublic(e *echo.Echo, b *handler.BrowseHandler, s *handler.ScheduleHandler, bk *handler.BookingHandler, ex *handler.ExportHandler) {
	// Static catalogue of class groups (rombels).
	e.GET("/v1/rombels", b.Rombels)
	// The two labs the school operates.
	e.GET("/v1/labs", s.Labs)
	// Live occupancy per lab.  Optional ?date= and ?at= override the clock,
	// which the dashboard uses for its "what if" view.
	e.GET("/v1/labs/status", s.LiveStatus)
	// The schedule for one day (default today), every status included so
	// teachers can see their pending requests.
	e.GET("/v1/bookings", bk.List)
	// Recap downloads: ?format=csv (default) or ?format=xlsx.
	e.GET("/v1/bookings/export", ex.Export)
	// Printable HTML table of the same recap.
	e.GET("/v1/bookings/print", ex.Print)
}
