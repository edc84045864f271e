package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/model"
)

// VideoRepository defines video persistence operations.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
}

type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository builds a GORM-backed repository.
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// DocumentRepository defines document persistence operations.
type DocumentRepository interface {
	Create(ctx context.Context, document *model.Document) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository builds a GORM-backed repository.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, document *model.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}
