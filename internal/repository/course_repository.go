package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"learnhub/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindByIDFull(ctx context.Context, id uint) (*model.Course, error)
	ListAll(ctx context.Context) ([]model.Course, error)
	ListByInstructor(ctx context.Context, instructorID uint) ([]model.Course, error)
	ListPopular(ctx context.Context, limit int) ([]model.Course, error)
	Search(ctx context.Context, query string) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository builds a GORM-backed repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// Delete removes the course; modules, feedback and enrollments go with it via
// the cascade constraints.
func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

// FindByID loads the bare course row without relations.
func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByIDFull loads the course with its entire content graph.
func (r *courseRepository) FindByIDFull(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.fullPreload(r.db.WithContext(ctx)).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) ListAll(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.summaryPreload(r.db.WithContext(ctx)).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) ListByInstructor(ctx context.Context, instructorID uint) ([]model.Course, error) {
	var courses []model.Course
	if err := r.fullPreload(r.db.WithContext(ctx)).
		Where("instructor_id = ?", instructorID).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// ListPopular orders courses by enrollment count, descending.
func (r *courseRepository) ListPopular(ctx context.Context, limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.summaryPreload(r.db.WithContext(ctx)).
		Select("courses.*, COUNT(enrollments.id) AS enroll_count").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id").
		Group("courses.id").
		Order("enroll_count DESC").
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// Search matches the query against title and description, case-insensitive.
func (r *courseRepository) Search(ctx context.Context, query string) ([]model.Course, error) {
	like := "%" + strings.ToLower(query) + "%"
	var courses []model.Course
	err := r.summaryPreload(r.db.WithContext(ctx)).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// summaryPreload loads what the student-safe summary needs: module names,
// feedback and the enrollment rows counted in the response.
func (r *courseRepository) summaryPreload(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Modules").Preload("Feedback").Preload("Enrollments")
}

// fullPreload loads the complete content graph for instructor views.
func (r *courseRepository) fullPreload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Modules").
		Preload("Modules.Videos").
		Preload("Modules.Documents").
		Preload("Feedback").
		Preload("Enrollments")
}
