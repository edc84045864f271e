package model

import "time"

// Feedback is a student review left on a course.
type Feedback struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	StudentID   uint      `json:"student_id" gorm:"not null;index"`
	Rating      int       `json:"rating" gorm:"not null"`
	Review      string    `json:"review" gorm:"size:2000"`
	ReviewTitle string    `json:"review_title" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}
