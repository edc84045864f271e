package service

import (
	"context"
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

// EnrollmentService handles students enrolling in and completing courses, and
// gates course content on enrollment.
type EnrollmentService interface {
	Enroll(ctx context.Context, courseID, studentID uint) (*dto.EnrollmentResponse, error)
	Complete(ctx context.Context, enrollmentID, studentID uint) (*dto.EnrollmentResponse, error)
	CourseContent(ctx context.Context, courseID, studentID uint) (*dto.CourseContentResponse, error)
}

type enrollmentService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	cache          *cache.Client
}

// NewEnrollmentService builds an EnrollmentService.
func NewEnrollmentService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	cache *cache.Client,
) EnrollmentService {
	return &enrollmentService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		cache:          cache,
	}
}

// Enroll records the student taking the course at its current price.
func (s *enrollmentService) Enroll(ctx context.Context, courseID, studentID uint) (*dto.EnrollmentResponse, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	existing, err := s.enrollmentRepo.FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		CourseID:   courseID,
		StudentID:  studentID,
		PricePaid:  course.Price,
		Status:     model.EnrollmentStatusEnrolled,
		EnrolledAt: time.Now(),
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	// Enrollment counts appear in the cached student summary.
	_ = s.cache.Delete(ctx, courseBasicCacheKey(courseID))

	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// Complete marks the student's own enrollment as finished.
func (s *enrollmentService) Complete(ctx context.Context, enrollmentID, studentID uint) (*dto.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	// Another student's enrollment is reported as absent, not forbidden.
	if enrollment.StudentID != studentID {
		return nil, apperrors.ErrEnrollmentNotFound
	}

	now := time.Now()
	enrollment.CompletedAt = &now
	enrollment.Status = model.EnrollmentStatusCompleted
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}

	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// CourseContent serves the full module/video/document tree to a student
// enrolled in the course.
func (s *enrollmentService) CourseContent(ctx context.Context, courseID, studentID uint) (*dto.CourseContentResponse, error) {
	if _, err := s.enrollmentRepo.FindByStudentAndCourse(ctx, studentID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotEnrolled
		}
		return nil, fmt.Errorf("check enrollment: %w", err)
	}

	course, err := s.courseRepo.FindByIDFull(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	resp := dto.ToCourseContentResponse(course)
	return &resp, nil
}
