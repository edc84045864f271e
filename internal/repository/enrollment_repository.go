package repository

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Update(ctx context.Context, enrollment *model.Enrollment) error
	FindByID(ctx context.Context, id uint) (*model.Enrollment, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error)
	ListByCourse(ctx context.Context, courseID uint) ([]model.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository builds a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) Update(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

func (r *enrollmentRepository) FindByID(ctx context.Context, id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) ListByCourse(ctx context.Context, courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
