package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"learnhub/internal/cache"
	"learnhub/internal/dto"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
	"learnhub/internal/repository"
)

const courseCacheTTL = 5 * time.Minute

func courseBasicCacheKey(id uint) string {
	return fmt.Sprintf("course:%d:basic", id)
}

// CourseService exposes course CRUD, listings and role-scoped detail views.
type CourseService interface {
	Create(ctx context.Context, req *dto.CourseRequest, instructorID uint) (*dto.CourseResponse, error)
	Update(ctx context.Context, id uint, req *dto.CourseUpdateRequest, instructorID uint) (*dto.CourseResponse, error)
	Delete(ctx context.Context, id uint, callerID uint, isAdmin bool) error
	GetCourseEntity(ctx context.Context, id uint) (*model.Course, error)
	GetBasicCourse(ctx context.Context, id uint) (*dto.BasicCourseDetails, error)
	GetFullCourse(ctx context.Context, id uint) (*dto.CourseResponse, error)
	ListAll(ctx context.Context) ([]dto.BasicCourseDetails, error)
	ListByInstructor(ctx context.Context, instructorID uint) ([]dto.CourseResponse, error)
	Popular(ctx context.Context, limit int) ([]dto.BasicCourseDetails, error)
	Search(ctx context.Context, query string) ([]dto.BasicCourseDetails, error)
	EnrolledStudents(ctx context.Context, courseID, callerID uint, isAdmin bool) ([]dto.UserResponse, error)
}

type courseService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	cache          *cache.Client
}

// NewCourseService builds a CourseService.
func NewCourseService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		cache:          cache,
	}
}

// Create persists a new course owned by the instructor. Nested modules from
// the request are created with it.
func (s *courseService) Create(ctx context.Context, req *dto.CourseRequest, instructorID uint) (*dto.CourseResponse, error) {
	course := dto.CourseFromRequest(req)
	course.InstructorID = instructorID
	course.CreatedAt = time.Now()

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

// Update mutates title, description and price. Only the owning instructor may
// update; admins go through Delete, not Update, matching the route guards.
func (s *courseService) Update(ctx context.Context, id uint, req *dto.CourseUpdateRequest, instructorID uint) (*dto.CourseResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.InstructorID != instructorID {
		return nil, apperrors.ErrNotCourseOwner
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Price = req.Price

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	_ = s.cache.Delete(ctx, courseBasicCacheKey(id))

	full, err := s.courseRepo.FindByIDFull(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload course: %w", err)
	}
	resp := dto.ToCourseResponse(full)
	return &resp, nil
}

// Delete removes a course and its owned sub-collections. The caller must be
// the owning instructor or an admin.
func (s *courseService) Delete(ctx context.Context, id uint, callerID uint, isAdmin bool) error {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && course.InstructorID != callerID {
		return apperrors.ErrNotCourseOwner
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	_ = s.cache.Delete(ctx, courseBasicCacheKey(id))
	return nil
}

// GetCourseEntity loads the bare course row, used by the endpoint layer for
// the ownership check on role-dependent detail views.
func (s *courseService) GetCourseEntity(ctx context.Context, id uint) (*model.Course, error) {
	return s.findCourse(ctx, id)
}

// GetBasicCourse returns the student-safe view, cached briefly since it is
// the shape served to anonymous traffic.
func (s *courseService) GetBasicCourse(ctx context.Context, id uint) (*dto.BasicCourseDetails, error) {
	key := courseBasicCacheKey(id)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached dto.BasicCourseDetails
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	course, err := s.findCourseFull(ctx, id)
	if err != nil {
		return nil, err
	}

	basic := dto.ToBasicCourseDetails(course)
	if payload, err := json.Marshal(basic); err == nil {
		_ = s.cache.Set(ctx, key, payload, courseCacheTTL)
	}
	return &basic, nil
}

// GetFullCourse returns the instructor view with the whole content graph.
func (s *courseService) GetFullCourse(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	course, err := s.findCourseFull(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

func (s *courseService) ListAll(ctx context.Context) ([]dto.BasicCourseDetails, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return toBasicList(courses), nil
}

func (s *courseService) ListByInstructor(ctx context.Context, instructorID uint) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("list instructor courses: %w", err)
	}
	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, dto.ToCourseResponse(&courses[i]))
	}
	return out, nil
}

func (s *courseService) Popular(ctx context.Context, limit int) ([]dto.BasicCourseDetails, error) {
	courses, err := s.courseRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list popular courses: %w", err)
	}
	return toBasicList(courses), nil
}

func (s *courseService) Search(ctx context.Context, query string) ([]dto.BasicCourseDetails, error) {
	courses, err := s.courseRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	return toBasicList(courses), nil
}

// EnrolledStudents returns the users enrolled in the course. Restricted to
// the owning instructor or an admin.
func (s *courseService) EnrolledStudents(ctx context.Context, courseID, callerID uint, isAdmin bool) ([]dto.UserResponse, error) {
	course, err := s.findCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && course.InstructorID != callerID {
		return nil, apperrors.ErrNotCourseOwner
	}

	enrollments, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	studentIDs := make([]uint, 0, len(enrollments))
	for i := range enrollments {
		studentIDs = append(studentIDs, enrollments[i].StudentID)
	}

	students, err := s.userRepo.FindByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}

	out := make([]dto.UserResponse, 0, len(students))
	for i := range students {
		out = append(out, dto.ToUserResponse(&students[i]))
	}
	return out, nil
}

func (s *courseService) findCourse(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return course, nil
}

func (s *courseService) findCourseFull(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.courseRepo.FindByIDFull(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return course, nil
}

func toBasicList(courses []model.Course) []dto.BasicCourseDetails {
	out := make([]dto.BasicCourseDetails, 0, len(courses))
	for i := range courses {
		out = append(out, dto.ToBasicCourseDetails(&courses[i]))
	}
	return out
}
