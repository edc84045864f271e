package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course is a published course owned by an instructor. Modules, feedback and
// enrollments are owned sub-collections and are removed with the course.
type Course struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Title        string          `json:"title" gorm:"size:100;not null;index"`
	Description  string          `json:"description" gorm:"size:1000;not null"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	InstructorID uint            `json:"instructor_id" gorm:"not null;index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relations (identifier-based, loaded via Preload)
	Modules     []Module     `json:"modules,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Feedback    []Feedback   `json:"feedback,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// Module is an ordered unit of course content. It cannot exist without a course.
type Module struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"course_id" gorm:"not null;index"`
	Name     string `json:"name" gorm:"size:255;not null"`

	Videos    []Video    `json:"videos,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// Video is a piece of hosted video content attached to a module.
type Video struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ModuleID      uint   `json:"module_id" gorm:"not null;index"`
	URL           string `json:"url" gorm:"size:512;not null"`
	Filename      string `json:"filename" gorm:"size:255;not null"`
	Description   string `json:"description" gorm:"size:1000"`
	CloudProvider string `json:"cloud_provider" gorm:"size:100"`
}

// Document is a downloadable file attached to a module.
type Document struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	ModuleID      uint   `json:"module_id" gorm:"not null;index"`
	URL           string `json:"url" gorm:"size:512;not null"`
	Filename      string `json:"filename" gorm:"size:255;not null"`
	CloudProvider string `json:"cloud_provider" gorm:"size:100"`
}
