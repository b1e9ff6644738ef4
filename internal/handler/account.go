package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/config"
	"github.com/fahrudins/school-lab-booking/internal/model"
	"github.com/fahrudins/school-lab-booking/internal/store"
)

// AccountHandler is the admin-only account management surface.
type AccountHandler struct {
	Cfg   config.Config
	Store *store.Store
}

func NewAccountHandler(cfg config.Config, s *store.Store) *AccountHandler {
	return &AccountHandler{Cfg: cfg, Store: s}
}

// List handles GET /v1/users.
func (h *AccountHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"users": h.Store.Accounts()})
}

type createAccountReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | teacher
}

// Create handles POST /v1/users.  Username collisions are rejected with
// 409 and leave the account list untouched.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Name = strings.TrimSpace(req.Name)
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, password and name required"})
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != model.RoleAdmin && role != model.RoleTeacher {
		role = model.RoleTeacher
	}

	acc, err := h.Store.AddAccount(req.Username, req.Password, req.Name, role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create account failed"})
	}
	return c.JSON(http.StatusCreated, acc)
}

// Delete handles DELETE /v1/users/:id.  The default admin account is
// protected; deleting it is refused and changes nothing.
func (h *AccountHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.Store.RemoveAccount(id); err != nil {
		switch {
		case errors.Is(err, store.ErrProtectedAccount):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "the default admin account cannot be removed"})
		case errors.Is(err, store.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "account not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	// Any live sessions for the removed account die with it.
	h.Store.RevokeAllForAccount(id)
	return c.NoContent(http.StatusNoContent)
}
