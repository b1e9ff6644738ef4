package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrudins/school-lab-booking/internal/utils"
)

const testSecret = "test-secret"

func runChain(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "acc-1", "teacher", "Ibu Salsa", 15)
	require.NoError(t, err)

	rec, c := runChain(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acc-1", c.Get("user_id"))
	assert.Equal(t, "teacher", c.Get("role"))
	assert.Equal(t, "Ibu Salsa", c.Get("name"))
}

func TestJWTAuth_Rejections(t *testing.T) {
	wrong, err := utils.NewAccessToken("other-secret", "acc-1", "teacher", "X", 15)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
		"wrong secret":   "Bearer " + wrong.Token,
	} {
		t.Run(name, func(t *testing.T) {
			rec, _ := runChain(t, JWTAuth(testSecret), header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role any) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		h := RequireRole("admin")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run("admin"))
	assert.Equal(t, http.StatusForbidden, run("teacher"))
	assert.Equal(t, http.StatusForbidden, run(nil))
	assert.Equal(t, http.StatusForbidden, run(42))
}
