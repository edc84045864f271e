package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"learnhub/internal/cache"
	"learnhub/internal/dto"
	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
	"learnhub/internal/repository"
)

// ContentService manages modules and their videos and documents. Every
// mutation checks that the owning parent exists and that the caller owns the
// enclosing course (or is an admin).
type ContentService interface {
	AddModule(ctx context.Context, courseID uint, req *dto.ModuleRequest, callerID uint, isAdmin bool) (*dto.ModuleResponse, error)
	AddVideo(ctx context.Context, moduleID uint, req *dto.VideoRequest, callerID uint, isAdmin bool) (*dto.VideoResponse, error)
	AddDocument(ctx context.Context, moduleID uint, req *dto.DocumentRequest, callerID uint, isAdmin bool) (*dto.DocumentResponse, error)
}

type contentService struct {
	courseRepo   repository.CourseRepository
	moduleRepo   repository.ModuleRepository
	videoRepo    repository.VideoRepository
	documentRepo repository.DocumentRepository
	cache        *cache.Client
}

// NewContentService builds a ContentService.
func NewContentService(
	courseRepo repository.CourseRepository,
	moduleRepo repository.ModuleRepository,
	videoRepo repository.VideoRepository,
	documentRepo repository.DocumentRepository,
	cache *cache.Client,
) ContentService {
	return &contentService{
		courseRepo:   courseRepo,
		moduleRepo:   moduleRepo,
		videoRepo:    videoRepo,
		documentRepo: documentRepo,
		cache:        cache,
	}
}

// AddModule attaches a new module to the course.
func (s *contentService) AddModule(ctx context.Context, courseID uint, req *dto.ModuleRequest, callerID uint, isAdmin bool) (*dto.ModuleResponse, error) {
	if err := s.authorizeCourse(ctx, courseID, callerID, isAdmin); err != nil {
		return nil, err
	}

	module := dto.ModuleFromRequest(req)
	module.CourseID = courseID
	if err := s.moduleRepo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	// Module names appear in the cached student summary.
	_ = s.cache.Delete(ctx, courseBasicCacheKey(courseID))

	resp := dto.ToModuleResponse(module)
	return &resp, nil
}

// AddVideo attaches a video to the module.
func (s *contentService) AddVideo(ctx context.Context, moduleID uint, req *dto.VideoRequest, callerID uint, isAdmin bool) (*dto.VideoResponse, error) {
	module, err := s.authorizeModule(ctx, moduleID, callerID, isAdmin)
	if err != nil {
		return nil, err
	}

	video := dto.VideoFromRequest(req)
	video.ModuleID = module.ID
	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}

	resp := dto.ToVideoResponse(video)
	return &resp, nil
}

// AddDocument attaches a document to the module.
func (s *contentService) AddDocument(ctx context.Context, moduleID uint, req *dto.DocumentRequest, callerID uint, isAdmin bool) (*dto.DocumentResponse, error) {
	module, err := s.authorizeModule(ctx, moduleID, callerID, isAdmin)
	if err != nil {
		return nil, err
	}

	document := dto.DocumentFromRequest(req)
	document.ModuleID = module.ID
	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	resp := dto.ToDocumentResponse(document)
	return &resp, nil
}

func (s *contentService) authorizeCourse(ctx context.Context, courseID, callerID uint, isAdmin bool) error {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("find course: %w", err)
	}
	if !isAdmin && course.InstructorID != callerID {
		return apperrors.ErrNotCourseOwner
	}
	return nil
}

func (s *contentService) authorizeModule(ctx context.Context, moduleID, callerID uint, isAdmin bool) (*model.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, moduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModuleNotFound
		}
		return nil, fmt.Errorf("find module: %w", err)
	}
	if err := s.authorizeCourse(ctx, module.CourseID, callerID, isAdmin); err != nil {
		return nil, err
	}
	return module, nil
}
