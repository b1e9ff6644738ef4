package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrudins/school-lab-booking/internal/config"
)

func cacheCtx(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/bookings")
	return c
}

func TestCacheKeyFrom(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "labbook:cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, cacheCtx("/v1/bookings?date=2030-05-10"))
	b := cacheKeyFrom(cfg, cacheCtx("/v1/bookings?date=2030-05-10"))
	other := cacheKeyFrom(cfg, cacheCtx("/v1/bookings?date=2030-05-11"))

	assert.Equal(t, a, b, "same route and query hash to the same key")
	assert.NotEqual(t, a, other, "the date filter is part of the key")
	assert.Contains(t, a, "labbook:cache:")

	// the route strategy ignores the query
	cfg.KeyStrategy = "route"
	assert.Equal(t,
		cacheKeyFrom(cfg, cacheCtx("/v1/bookings?date=2030-05-10")),
		cacheKeyFrom(cfg, cacheCtx("/v1/bookings?date=2030-05-11")))
}

func TestCachePayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "text/csv; charset=utf-8")
	hdr.Set("Content-Disposition", `attachment; filename="rekap_lab_2030-05-10.csv"`)
	body := []byte("ID,Tanggal\nb1,2030-05-10\n")

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr.Get("Content-Disposition"), gotHdr.Get("Content-Disposition"))
	assert.Equal(t, body, gotBody)
}

func TestCachePayloadDecode_Garbage(t *testing.T) {
	_, _, _, ok := decodePayload([]byte("short"))
	assert.False(t, ok)
	_, _, _, ok = decodePayload(make([]byte, 8)) // zero header, empty body
	assert.True(t, ok)
}

func TestNewRedisCache_DisabledPassthrough(t *testing.T) {
	// no Redis client: the middleware must be a transparent no-op
	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)

	c := cacheCtx("/v1/bookings?date=2030-05-10")
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, h(c))
	assert.Empty(t, c.Response().Header().Get("X-Cache"))
}
