package handler

import (
	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(statsUC usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// GetStats returns the dashboard counters.
func (h *StatsHandler) GetStats(c echo.Context) error {
	stats, err := h.statsUC.GetStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, presentStats(stats))
}
