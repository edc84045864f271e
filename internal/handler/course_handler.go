package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"learnhub/internal/auth"
	"learnhub/internal/dto"
	"learnhub/internal/model"
	"learnhub/internal/service"
)

// forbiddenCourseDetails is the body returned to an instructor who requests
// the full view of a course they do not own.
const forbiddenCourseDetails = "You are not authorized to view full course details of this course."

const defaultPopularLimit = 5

// CourseHandler handles course endpoints.
type CourseHandler struct {
	courseService service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// GetAll godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.BasicCourseDetails
// @Router /courses/all [get]
func (h *CourseHandler) GetAll(c echo.Context) error {
	courses, err := h.courseService.ListAll(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, courses)
}

// GetByID godoc
// @Summary Get course details by ID (role-based response)
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 403 {string} string
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetByID(c echo.Context) error {
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	// Unauthenticated callers get the student-safe view.
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		basic, err := h.courseService.GetBasicCourse(ctx, courseID)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, basic)
	}

	// Instructors see the full view of their own courses; admins of any.
	if id.Role == model.RoleInstructor || id.Role == model.RoleAdmin {
		course, err := h.courseService.GetCourseEntity(ctx, courseID)
		if err != nil {
			return domainError(err)
		}
		if id.IsAdmin() || course.InstructorID == id.UserID {
			full, err := h.courseService.GetFullCourse(ctx, courseID)
			if err != nil {
				return domainError(err)
			}
			return c.JSON(http.StatusOK, full)
		}
		return c.String(http.StatusForbidden, forbiddenCourseDetails)
	}

	// Students get the student-safe view.
	basic, err := h.courseService.GetBasicCourse(ctx, courseID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, basic)
}

// GetInstructorCourses godoc
// @Summary List the caller's own courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CourseResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /courses/instructor [get]
func (h *CourseHandler) GetInstructorCourses(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courses, err := h.courseService.ListByInstructor(c.Request().Context(), id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /courses/create [post]
func (h *CourseHandler) Create(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.courseService.Create(c.Request().Context(), &req, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a course owned by the caller
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseUpdateRequest true "Course data"
// @Success 200 {object} dto.CourseResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CourseUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.courseService.Update(c.Request().Context(), courseID, &req, id.UserID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a course (owner or admin)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.courseService.Delete(c.Request().Context(), courseID, id.UserID, id.IsAdmin()); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Course deleted successfully",
	})
}

// GetEnrolledStudents godoc
// @Summary List students enrolled in a course (owner or admin)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} dto.UserResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/students [get]
func (h *CourseHandler) GetEnrolledStudents(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	students, err := h.courseService.EnrolledStudents(c.Request().Context(), courseID, id.UserID, id.IsAdmin())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, students)
}

// GetEnrolledStudentsCount godoc
// @Summary Count students enrolled in a course (owner or admin)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {integer} int
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/students-count [get]
func (h *CourseHandler) GetEnrolledStudentsCount(c echo.Context) error {
	id, ok := auth.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	courseID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	students, err := h.courseService.EnrolledStudents(c.Request().Context(), courseID, id.UserID, id.IsAdmin())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, len(students))
}

// GetPopular godoc
// @Summary List popular courses by enrollment count
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {array} dto.BasicCourseDetails
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses/popular [get]
func (h *CourseHandler) GetPopular(c echo.Context) error {
	limit := defaultPopularLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	courses, err := h.courseService.Popular(c.Request().Context(), limit)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Search godoc
// @Summary Search courses by keyword
// @Tags courses
// @Produce json
// @Param query query string true "Search keyword"
// @Success 200 {array} dto.BasicCourseDetails
// @Failure 400 {object} errors.ErrorResponse
// @Router /courses/search [get]
func (h *CourseHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	courses, err := h.courseService.Search(c.Request().Context(), query)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, courses)
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	raw, err := strconv.Atoi(c.Param(name))
	if err != nil || raw <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(raw), nil
}
