package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/model"
)

// ModuleRepository defines module persistence operations.
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	FindByID(ctx context.Context, id uint) (*model.Module, error)
}

type moduleRepository struct {
	db *gorm.DB
}

// NewModuleRepository builds a GORM-backed repository.
func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{db: db}
}

func (r *moduleRepository) Create(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepository) FindByID(ctx context.Context, id uint) (*model.Module, error) {
	var module model.Module
	if err := r.db.WithContext(ctx).First(&module, id).Error; err != nil {
		return nil, err
	}
	return &module, nil
}
