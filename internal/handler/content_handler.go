package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnhub/internal/auth"
	"learnhub/internal/dto"
	"learnhub/internal/service"
)

// ContentHandler handles module, video and document endpoints.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// AddModule godoc
// @Summary Add a module to a course (owner or admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.ModuleRequest true "Module data"
// @Success 201 {object} dto.ModuleResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/modules [post]
func (h *ContentHandler) AddModule(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ModuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.contentService.AddModule(c.Request().Context(), courseID, &req, id.UserID, id.IsAdmin())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// AddVideo godoc
// @Summary Attach a video to a module (owner or admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param request body dto.VideoRequest true "Video data"
// @Success 201 {object} dto.VideoResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /modules/{id}/videos [post]
func (h *ContentHandler) AddVideo(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	moduleID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.VideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.contentService.AddVideo(c.Request().Context(), moduleID, &req, id.UserID, id.IsAdmin())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// AddDocument godoc
// @Summary Attach a document to a module (owner or admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param request body dto.DocumentRequest true "Document data"
// @Success 201 {object} dto.DocumentResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /modules/{id}/documents [post]
func (h *ContentHandler) AddDocument(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	moduleID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.DocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.contentService.AddDocument(c.Request().Context(), moduleID, &req, id.UserID, id.IsAdmin())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}
