package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnhub/internal/auth"
	"learnhub/internal/dto"
	"learnhub/internal/service"
)

// FeedbackHandler handles course review endpoints.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Submit godoc
// @Summary Leave a review on a course (enrolled students)
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.FeedbackRequest true "Review data"
// @Success 201 {object} dto.FeedbackDetailResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.feedbackService.Submit(c.Request().Context(), courseID, &req, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListForCourse godoc
// @Summary List reviews for a course
// @Tags feedback
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} dto.FeedbackDetailResponse
// @Router /courses/{id}/feedback [get]
func (h *FeedbackHandler) ListForCourse(c echo.Context) error {
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	feedback, err := h.feedbackService.ListForCourse(c.Request().Context(), courseID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, feedback)
}
