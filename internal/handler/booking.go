package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/ai"
	"github.com/fahrudins/school-lab-booking/internal/audit"
	"github.com/fahrudins/school-lab-booking/internal/metrics"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/queue"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
	queue_publisher "github.com/fahrudins/school-lab-booking/internal/service"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

// Analyzer is the slice of the AI client the booking handler needs; tests
// substitute a stub.
type Analyzer interface {
	Enabled() bool
	AnalyzeSchedule(ctx context.Context, approved []model.Booking, cand schedule.Candidate) (*ai.Analysis, error)
}

// BookingHandler serves the booking lifecycle: browse, submit, analyze and
// decide.  All state lives in the Store; the analyzer and audit trail are
// optional collaborators.
type BookingHandler struct {
	Store *store.Store
	AI    Analyzer
	Audit *audit.Trail
}

func NewBookingHandler(s *store.Store, analyzer Analyzer, trail *audit.Trail) *BookingHandler {
	if s == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Store: s, AI: analyzer, Audit: trail}
}

// List handles GET /v1/bookings?date=YYYY-MM-DD.  Defaults to today; the
// result is the day view sorted by start time, visible to guests.
func (h *BookingHandler) List(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date, _ = schedule.Now()
	}
	bookings := h.Store.BookingsOn(date)
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "bookings": bookings})
}

type createBookingReq struct {
	TeacherName string `json:"teacher_name"`
	Subject     string `json:"subject"`
	RombelID    string `json:"rombel_id"`
	Lab         string `json:"lab"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Notes       string `json:"notes"`
}

func (r createBookingReq) candidate() schedule.Candidate {
	return schedule.Candidate{
		TeacherName: r.TeacherName,
		Subject:     r.Subject,
		RombelID:    r.RombelID,
		Lab:         model.Lab(r.Lab),
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Notes:       r.Notes,
	}
}

// Create handles POST /v1/bookings.  A teacher's request enters Pending; a
// booking filed by an admin is committed Approved immediately and does NOT
// consult the conflict checker.  That bypass is the admin override the
// school asked to keep, so an admin can force-book over anything.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TeacherName == "" {
		req.TeacherName = accountName(c)
	}

	cand := req.candidate()
	if err := schedule.ValidateCandidate(cand); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	rombel, ok := h.Store.RombelByID(req.RombelID)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "unknown rombel"})
	}

	status := model.StatusPending
	if accountRole(c) == model.RoleAdmin {
		status = model.StatusApproved
	}

	b := h.Store.AddBooking(model.Booking{
		TeacherName: req.TeacherName,
		Subject:     req.Subject,
		RombelID:    rombel.ID,
		RombelName:  rombel.Name,
		Lab:         cand.Lab,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      status,
		Notes:       req.Notes,
	})
	metrics.BookingsSubmitted.WithLabelValues(string(status)).Inc()
	return c.JSON(http.StatusCreated, b)
}

// analysisResp merges the local checker's verdict with the collaborator's
// suggestions.  Safe and Conflicts always come from the local checker; the
// AI only ever contributes Suggestions.
type analysisResp struct {
	Safe        bool                `json:"safe"`
	Conflicts   []schedule.Conflict `json:"conflicts"`
	Suggestions []string            `json:"suggestions"`
}

// Analyze handles POST /v1/bookings/analyze.  Validation failures are
// reported synchronously and nothing is committed.  A failing or disabled
// AI collaborator degrades to an empty suggestion list, never an error.
func (h *BookingHandler) Analyze(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TeacherName == "" {
		req.TeacherName = accountName(c)
	}

	cand := req.candidate()
	if err := schedule.ValidateCandidate(cand); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}

	approved := h.Store.ApprovedBookings()
	conflicts := schedule.Conflicts(approved, cand)
	resp := analysisResp{
		Safe:        len(conflicts) == 0,
		Conflicts:   conflicts,
		Suggestions: []string{},
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []schedule.Conflict{}
	}

	if h.AI != nil && h.AI.Enabled() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 25*time.Second)
		defer cancel()
		analysis, err := h.AI.AnalyzeSchedule(ctx, approved, cand)
		switch {
		case err != nil:
			log.Printf("analyze: AI collaborator failed: %v", err)
			metrics.AICalls.WithLabelValues("analyze", "error").Inc()
		case analysis != nil:
			resp.Suggestions = analysis.Suggestions
			if resp.Suggestions == nil {
				resp.Suggestions = []string{}
			}
			metrics.AICalls.WithLabelValues("analyze", "ok").Inc()
		}
	} else {
		metrics.AICalls.WithLabelValues("analyze", "disabled").Inc()
	}

	return c.JSON(http.StatusOK, resp)
}

// Approve handles POST /v1/bookings/:id/approve.
func (h *BookingHandler) Approve(c echo.Context) error {
	return h.decide(c, model.StatusApproved)
}

// Reject handles POST /v1/bookings/:id/reject.
func (h *BookingHandler) Reject(c echo.Context) error {
	return h.decide(c, model.StatusRejected)
}

// decide transitions a booking and fans out the side channels: metrics,
// the audit trail and the broker event.  ?force=true re-decides a settled
// booking (admin override).  Only the status field changes.
func (h *BookingHandler) decide(c echo.Context, status model.Status) error {
	id := c.Param("id")
	force := c.QueryParam("force") == "true"

	prev, err := h.Store.BookingByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	b, err := h.Store.SetBookingStatus(id, status, force)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "only pending bookings can be decided (use force=true to override)"})
		case errors.Is(err, store.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	decidedBy := accountName(c)
	metrics.BookingsDecided.WithLabelValues(string(status)).Inc()
	h.Audit.RecordDecision(c.Request().Context(), b, prev.Status, decidedBy)

	// Fire-and-forget: a broker outage must not fail the decision.
	ev := queue.BookingDecidedEvent{
		BookingID:   b.ID,
		Lab:         string(b.Lab),
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TeacherName: b.TeacherName,
		RombelName:  b.RombelName,
		Subject:     b.Subject,
		Status:      string(b.Status),
		DecidedBy:   decidedBy,
		DecidedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingDecided(ctx, ev)
	}()

	return c.JSON(http.StatusOK, b)
}
