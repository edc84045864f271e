package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"learnhub/internal/auth"
	"learnhub/internal/service"
)

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll the caller in a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /courses/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	enrollment, err := h.enrollmentService.Enroll(c.Request().Context(), courseID, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, enrollment)
}

// Complete godoc
// @Summary Mark the caller's enrollment as completed
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.EnrollmentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /enrollments/{id}/complete [post]
func (h *EnrollmentHandler) Complete(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	enrollmentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	enrollment, err := h.enrollmentService.Complete(c.Request().Context(), enrollmentID, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, enrollment)
}

// GetCourseContent godoc
// @Summary Get course content for an enrolled student
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseContentResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/course-content [get]
func (h *EnrollmentHandler) GetCourseContent(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	content, err := h.enrollmentService.CourseContent(c.Request().Context(), courseID, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, content)
}
