package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                             // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus HTTP handler for the scrape endpoint

	"github.com/fahrudins/school-lab-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not belong to any feature area:
// the health check used by load balancers and the Prometheus metrics
// endpoint scraped by monitoring.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	// Expose Prometheus counters (submissions, decisions, AI calls, exports).
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
