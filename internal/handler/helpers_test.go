package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/fahrudins/school-lab-booking/internal/ai"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/schedule"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

// bcrypt.MinCost keeps seeding fast in tests
const testBcryptCost = 4

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, s.Seed(testBcryptCost))
	return s
}

// newCtx builds an Echo context around a JSON request.
func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asClaims stashes the identity the JWT middleware would have set.
func asClaims(c echo.Context, id, role, name string) {
	c.Set("user_id", id)
	c.Set("role", role)
	c.Set("name", name)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// stubAnalyzer satisfies Analyzer with canned output.
type stubAnalyzer struct {
	enabled  bool
	analysis *ai.Analysis
	err      error
}

func (s stubAnalyzer) Enabled() bool { return s.enabled }
func (s stubAnalyzer) AnalyzeSchedule(context.Context, []model.Booking, schedule.Candidate) (*ai.Analysis, error) {
	return s.analysis, s.err
}

// stubGenerator satisfies Generator with canned output.
type stubGenerator struct {
	enabled bool
	rows    []ai.GeneratedBooking
	err     error
}

func (s stubGenerator) Enabled() bool { return s.enabled }
func (s stubGenerator) GenerateMockSchedule(context.Context, string) ([]ai.GeneratedBooking, error) {
	return s.rows, s.err
}
