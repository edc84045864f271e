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
	"learnhub/internal/repository"
)

// FeedbackService handles course reviews. Only enrolled students may review.
type FeedbackService interface {
	Submit(ctx context.Context, courseID uint, req *dto.FeedbackRequest, studentID uint) (*dto.FeedbackDetailResponse, error)
	ListForCourse(ctx context.Context, courseID uint) ([]dto.FeedbackDetailResponse, error)
}

type feedbackService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	feedbackRepo   repository.FeedbackRepository
	cache          *cache.Client
}

// NewFeedbackService builds a FeedbackService.
func NewFeedbackService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	feedbackRepo repository.FeedbackRepository,
	cache *cache.Client,
) FeedbackService {
	return &feedbackService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		feedbackRepo:   feedbackRepo,
		cache:          cache,
	}
}

// Submit stores a review from an enrolled student.
func (s *feedbackService) Submit(ctx context.Context, courseID uint, req *dto.FeedbackRequest, studentID uint) (*dto.FeedbackDetailResponse, error) {
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	if _, err := s.enrollmentRepo.FindByStudentAndCourse(ctx, studentID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotEnrolled
		}
		return nil, fmt.Errorf("check enrollment: %w", err)
	}

	feedback := dto.FeedbackFromRequest(req)
	feedback.CourseID = courseID
	feedback.StudentID = studentID
	feedback.CreatedAt = time.Now()

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	// Reviews appear in the cached student summary.
	_ = s.cache.Delete(ctx, courseBasicCacheKey(courseID))

	resp := dto.ToFeedbackDetailResponse(feedback)
	return &resp, nil
}

// ListForCourse returns all reviews for a course.
func (s *feedbackService) ListForCourse(ctx context.Context, courseID uint) ([]dto.FeedbackDetailResponse, error) {
	feedback, err := s.feedbackRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	out := make([]dto.FeedbackDetailResponse, 0, len(feedback))
	for i := range feedback {
		out = append(out, dto.ToFeedbackDetailResponse(&feedback[i]))
	}
	return out, nil
}
