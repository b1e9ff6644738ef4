package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fahrudins/school-lab-booking/internal/store"
)

// BrowseHandler serves guest-visible reference data.
type BrowseHandler struct {
	Store *store.Store
}

func NewBrowseHandler(s *store.Store) *BrowseHandler { return &BrowseHandler{Store: s} }

// Rombels handles GET /v1/rombels: the static class-group catalogue.
func (h *BrowseHandler) Rombels(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"rombels": h.Store.Rombels()})
}
