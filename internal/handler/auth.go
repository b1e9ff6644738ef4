package handler

import (
    "net/http" // HTTP status codes and primitives
    "strings"  // string manipulation utilities
    "time"     // token expiry timestamps

    "github.com/golang-jwt/jwt/v5" // JSON Web Token library for parsing access tokens
    "github.com/labstack/echo/v4"  // Echo framework for HTTP routing

    "github.com/fahrudins/school-lab-booking/internal/config" // app configuration
    "github.com/fahrudins/school-lab-booking/internal/store"  // in-memory state owner
    "github.com/fahrudins/school-lab-booking/internal/utils"  // token issuing and hashing helpers
)

// AuthHandler bundles dependencies for auth endpoints.  There is no
// self-registration: accounts are created by admins through the account
// management endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAuthHandler(cfg config.Config, s *store.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Login: verify credentials and return a token pair.  Unknown username and
// wrong password are reported identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	acc, err := h.Store.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, acc.Role, acc.Name, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	h.Store.StoreRefresh(acc.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp)

	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: acc.ID, Username: acc.Username, Name: acc.Name, Role: acc.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Refresh: validate by hash, revoke old, issue new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	accID, err := h.Store.ValidateRefresh(hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	h.Store.RevokeRefresh(hash)

	acc, err := h.Store.AccountByID(accID)
	if err != nil {
		// account was deleted while the session was live
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, acc.Role, acc.Name, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	newRef, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	h.Store.StoreRefresh(acc.ID, utils.HashRefreshRaw(newRef.Raw), newRef.Exp)

	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: acc.ID, Username: acc.Username, Name: acc.Name, Role: acc.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: newRef.Raw, Expires: newRef.Exp},
	})
}

// Logout supports two modes: a `refresh_token` in the body revokes that
// single session; a valid Bearer token with no body revokes every session
// of that account.  Neither present is a bad request.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)

	if refreshToken != "" {
		hash := utils.HashRefreshRaw(refreshToken)
		if _, err := h.Store.ValidateRefresh(hash); err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		h.Store.RevokeRefresh(hash)
		return c.NoContent(http.StatusNoContent)
	}

	// No refresh token: look for a Bearer access token and revoke all
	// sessions for its subject.  Parsed here so this endpoint works
	// without the JWT middleware.
	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		raw := strings.TrimPrefix(authHeader, "Bearer ")
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, echo.ErrUnauthorized
			}
			return []byte(h.Cfg.JWTSecret), nil
		})
		if err == nil && tok.Valid {
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				if sub, ok := claims["sub"].(string); ok && sub != "" {
					h.Store.RevokeAllForAccount(sub)
					return c.NoContent(http.StatusNoContent)
				}
			}
		}
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	return c.JSON(http.StatusBadRequest, echo.Map{"error": "provide Authorization header or refresh_token"})
}

// Me: simple protected endpoint echoing the authenticated identity.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": accountID(c),
		"role":    accountRole(c),
		"name":    accountName(c),
	})
}
