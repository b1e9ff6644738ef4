package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/ai"
	"github.com/fahrudins/school-lab-booking/internal/metrics"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

// Generator is the slice of the AI client used by the auto-fill endpoint.
type Generator interface {
	Enabled() bool
	GenerateMockSchedule(ctx context.Context, date string) ([]ai.GeneratedBooking, error)
}

// ScheduleHandler serves the live dashboard and the admin auto-fill.
type ScheduleHandler struct {
	Store *store.Store
	AI    Generator
}

func NewScheduleHandler(s *store.Store, gen Generator) *ScheduleHandler {
	if s == nil {
		panic("nil store passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Store: s, AI: gen}
}

// Labs handles GET /v1/labs: the fixed lab catalogue.
func (h *ScheduleHandler) Labs(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"labs": model.Labs})
}

// LiveStatus handles GET /v1/labs/status.  For each lab it reports the
// approved booking currently in progress, if any.  The optional at=HH:MM
// and date=YYYY-MM-DD query parameters exist for inspection; normal calls
// use the server clock.
func (h *ScheduleHandler) LiveStatus(c echo.Context) error {
	date, hhmm := schedule.Now()
	if d := c.QueryParam("date"); d != "" {
		date = d
	}
	if at := c.QueryParam("at"); at != "" {
		hhmm = at
	}
	statuses := schedule.LiveStatus(h.Store.Bookings(), date, hhmm)
	return c.JSON(http.StatusOK, echo.Map{"date": date, "time": hhmm, "labs": statuses})
}

type generateReq struct {
	Date string `json:"date"`
}

// Generate handles POST /v1/schedule/generate.  It asks the AI collaborator
// for a plausible day of bookings and commits the ones that do not collide
// with an existing lab/date/start slot, marked Approved with a placeholder
// rombel reference.  A failing or disabled collaborator produces an empty
// result, not an error; the schedule simply stays as it was.
func (h *ScheduleHandler) Generate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil || req.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date required"})
	}

	if h.AI == nil || !h.AI.Enabled() {
		metrics.AICalls.WithLabelValues("generate", "disabled").Inc()
		return c.JSON(http.StatusOK, echo.Map{"generated": []model.Booking{}})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 25*time.Second)
	defer cancel()
	rows, err := h.AI.GenerateMockSchedule(ctx, req.Date)
	if err != nil {
		log.Printf("generate: AI collaborator failed: %v", err)
		metrics.AICalls.WithLabelValues("generate", "error").Inc()
		return c.JSON(http.StatusOK, echo.Map{"generated": []model.Booking{}})
	}
	metrics.AICalls.WithLabelValues("generate", "ok").Inc()

	committed := []model.Booking{}
	for _, g := range rows {
		if !model.ValidLab(g.LabID) {
			continue
		}
		lab := model.Lab(g.LabID)
		// the collaborator may return unpadded or nonsense clock values;
		// anything that is not a well-formed HH:MM interval is dropped
		if !schedule.ValidTime(g.StartTime) || !schedule.ValidTime(g.EndTime) || g.StartTime >= g.EndTime {
			continue
		}
		// skip slots that collide with an existing booking's exact start
		if h.Store.HasBookingAt(lab, req.Date, g.StartTime) {
			continue
		}
		b := h.Store.AddBooking(model.Booking{
			TeacherName: g.TeacherName,
			Subject:     g.Subject,
			RombelID:    "generated",
			RombelName:  g.RombelName,
			Lab:         lab,
			Date:        req.Date,
			StartTime:   g.StartTime,
			EndTime:     g.EndTime,
			Status:      model.StatusApproved,
			Notes:       g.Notes,
		})
		metrics.BookingsSubmitted.WithLabelValues(string(model.StatusApproved)).Inc()
		committed = append(committed, b)
	}
	return c.JSON(http.StatusOK, echo.Map{"generated": committed})
}
