package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "ENROLLED"
	EnrollmentStatusCompleted EnrollmentStatus = "COMPLETED"
)

// Enrollment records a student taking a course, with the price paid at the time.
type Enrollment struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	CourseID    uint             `json:"course_id" gorm:"not null;index"`
	StudentID   uint             `json:"student_id" gorm:"not null;index"`
	PricePaid   decimal.Decimal  `json:"price_paid" gorm:"type:decimal(20,2);not null"`
	Status      EnrollmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'ENROLLED';index"`
	EnrolledAt  time.Time        `json:"enrolled_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}
