package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/core/ports"
)

// ArtistHandler serves the public catalog reads and the back-office writes.
type ArtistHandler struct {
	artistService ports.ArtistService
}

func NewArtistHandler(artistService ports.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// List returns the catalog, optionally filtered by genre or contract.
//
// @Summary      List artists
// @Tags         artists
// @Produce      json
// @Param        genre     query     string  false  "Filter by genre"
// @Param        contract  query     string  false  "Filter by contract type"
// @Success      200       {array}   domain.Artist
// @Failure      400       {object}  map[string]string
// @Router       /artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists, err := h.artistService.List(c.Request().Context(), ports.ArtistFilter{
		Genre:    c.QueryParam("genre"),
		Contract: c.QueryParam("contract"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artists)
}

// Get returns one artist by slug.
//
// @Summary      Get artist
// @Tags         artists
// @Produce      json
// @Param        slug  path      string  true  "Artist slug"
// @Success      200   {object}  domain.Artist
// @Failure      404   {object}  map[string]string
// @Router       /artists/{slug} [get]
func (h *ArtistHandler) Get(c echo.Context) error {
	artist, err := h.artistService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artist)
}

// Create adds a catalog entry.
//
// @Summary      Create artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        body  body      artistRequest  true  "New artist"
// @Success      200   {object}  domain.Artist
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /artists [post]
func (h *ArtistHandler) Create(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req artistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	artist, err := h.artistService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artist)
}

// Update replaces a catalog entry's writable fields.
//
// @Summary      Update artist
// @Tags         artists
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Artist id"
// @Param        body  body      artistRequest  true  "Artist fields"
// @Success      200   {object}  domain.Artist
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /artists/{id} [patch]
func (h *ArtistHandler) Update(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req artistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	artist, err := h.artistService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, artist)
}

// Delete removes a catalog entry.
//
// @Summary      Delete artist
// @Tags         artists
// @Produce      json
// @Param        id  path      string  true  "Artist id"
// @Success      200 {object}  messageResponse
// @Failure      403 {object}  map[string]string
// @Failure      404 {object}  map[string]string
// @Router       /artists/{id} [delete]
func (h *ArtistHandler) Delete(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	if err := h.artistService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "artist deleted"})
}

// Calendar returns upcoming events across the whole catalog.
//
// @Summary      Upcoming events
// @Tags         artists
// @Produce      json
// @Success      200  {array}   domain.ArtistEvent
// @Failure      401  {object}  map[string]string
// @Router       /calendar [get]
func (h *ArtistHandler) Calendar(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	events, err := h.artistService.UpcomingEvents(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
