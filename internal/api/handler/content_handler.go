package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// FileHandler serves the back-office file area.
type FileHandler struct {
	fileService ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

type fileShareRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Access string `json:"access"  validate:"required,oneof=view edit"`
}

type createFileRequest struct {
	Name        string             `json:"name"         validate:"required"`
	Path        string             `json:"path"         validate:"required"`
	ContentType string             `json:"content_type" validate:"required"`
	Size        int64              `json:"size"         validate:"gte=0"`
	SharedWith  []fileShareRequest `json:"shared_with"  validate:"dive"`
	LinkTTLDays int                `json:"link_ttl_days" validate:"gte=0"`
}

// List returns every registered file.
//
// @Summary      List files
// @Tags         files
// @Produce      json
// @Success      200  {array}   domain.SharedFile
// @Failure      401  {object}  map[string]string
// @Router       /files [get]
func (h *FileHandler) List(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	files, err := h.fileService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, files)
}

// Create registers an uploaded file and optionally mints a private link.
//
// @Summary      Register file
// @Tags         files
// @Accept       json
// @Produce      json
// @Param        body  body      createFileRequest  true  "File metadata"
// @Success      200   {object}  domain.SharedFile
// @Failure      400   {object}  map[string]string
// @Router       /files [post]
func (h *FileHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createFileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	shares := make([]domain.FileShare, 0, len(req.SharedWith))
	for _, s := range req.SharedWith {
		shares = append(shares, domain.FileShare{UserID: s.UserID, Access: domain.FileAccess(s.Access)})
	}

	file, err := h.fileService.Create(c.Request().Context(), userID, ports.CreateFileInput{
		Name:        req.Name,
		Path:        req.Path,
		ContentType: req.ContentType,
		Size:        req.Size,
		SharedWith:  shares,
		LinkTTL:     time.Duration(req.LinkTTLDays) * 24 * time.Hour,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, file)
}

// Delete removes a file record.
//
// @Summary      Delete file
// @Tags         files
// @Produce      json
// @Param        id  path      string  true  "File id"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  map[string]string
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	if err := h.fileService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "file deleted"})
}

// ResolveLink resolves a private share link without a session.
//
// @Summary      Resolve share link
// @Tags         files
// @Produce      json
// @Param        token  path      string  true  "Private link token"
// @Success      200    {object}  domain.SharedFile
// @Failure      404    {object}  map[string]string
// @Failure      410    {object}  map[string]string
// @Router       /files/link/{token} [get]
func (h *FileHandler) ResolveLink(c echo.Context) error {
	file, err := h.fileService.ResolveLink(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, file)
}

// SocialHandler manages social post drafts and scheduling.
type SocialHandler struct {
	socialService ports.SocialService
}

func NewSocialHandler(socialService ports.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

type createPostRequest struct {
	ArtistID string   `json:"artist_id" validate:"required"`
	Platform string   `json:"platform"  validate:"required,oneof=instagram facebook twitter tiktok"`
	Content  string   `json:"content"   validate:"required"`
	Media    []string `json:"media"`
}

type schedulePostRequest struct {
	At time.Time `json:"at" validate:"required"`
}

// List returns posts, optionally filtered by artist or status.
//
// @Summary      List social posts
// @Tags         social
// @Produce      json
// @Param        artist_id  query     string  false  "Filter by artist"
// @Param        status     query     string  false  "Filter by status"
// @Success      200        {array}   domain.SocialPost
// @Failure      401        {object}  map[string]string
// @Router       /social [get]
func (h *SocialHandler) List(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	posts, err := h.socialService.List(c.Request().Context(), ports.SocialPostFilter{
		ArtistID: c.QueryParam("artist_id"),
		Status:   domain.PostStatus(c.QueryParam("status")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create drafts a new post.
//
// @Summary      Create draft post
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "New post"
// @Success      200   {object}  domain.SocialPost
// @Failure      400   {object}  map[string]string
// @Router       /social [post]
func (h *SocialHandler) Create(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.socialService.CreateDraft(c.Request().Context(), ports.CreatePostInput{
		ArtistID: req.ArtistID,
		Platform: req.Platform,
		Content:  req.Content,
		Media:    req.Media,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Schedule queues a draft for publication at a future instant.
//
// @Summary      Schedule post
// @Tags         social
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Post id"
// @Param        body  body      schedulePostRequest  true  "Publish time"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /social/{id}/schedule [post]
func (h *SocialHandler) Schedule(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req schedulePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.socialService.Schedule(c.Request().Context(), c.Param("id"), req.At); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post scheduled"})
}
