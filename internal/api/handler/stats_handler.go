package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/core/ports"
)

// StatsHandler serves streaming analytics: point ingestion for the importer
// and the aggregated dashboard view.
type StatsHandler struct {
	statsService ports.StatsService
}

func NewStatsHandler(statsService ports.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type recordStreamRequest struct {
	ArtistID  string    `json:"artist_id" validate:"required"`
	Platform  string    `json:"platform"  validate:"required,oneof=spotify deezer apple_music youtube_music"`
	Streams   int64     `json:"streams"   validate:"gte=0"`
	Listeners int64     `json:"listeners" validate:"gte=0"`
	Revenue   float64   `json:"revenue"   validate:"gte=0"`
	Date      time.Time `json:"date"      validate:"required"`
}

// RecordStream ingests one analytics point.
//
// @Summary      Record stream data
// @Tags         stats
// @Accept       json
// @Produce      json
// @Param        body  body      recordStreamRequest  true  "Analytics point"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /stats/streams [post]
func (h *StatsHandler) RecordStream(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req recordStreamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err := h.statsService.RecordStream(c.Request().Context(), ports.RecordStreamInput{
		ArtistID:  req.ArtistID,
		Platform:  req.Platform,
		Streams:   req.Streams,
		Listeners: req.Listeners,
		Revenue:   req.Revenue,
		Date:      req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "stream data recorded"})
}

// Dashboard returns the aggregated stats behind the back-office charts.
//
// @Summary      Dashboard stats
// @Tags         stats
// @Produce      json
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /stats/dashboard [get]
func (h *StatsHandler) Dashboard(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
