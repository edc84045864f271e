package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"learnhub/internal/model"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Name    string     `json:"name"`
	Role    model.Role `json:"role"`
	Token   string     `json:"token"`
	Message string     `json:"message"`
}

// RegisterResponse summarizes a newly registered account.
type RegisterResponse struct {
	Message string     `json:"message"`
	ID      uint       `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Role    model.Role `json:"role"`
}

// FeedbackResponse is the rating summary embedded in course views.
type FeedbackResponse struct {
	Rating      int    `json:"rating"`
	Review      string `json:"review"`
	ReviewTitle string `json:"review_title"`
}

// FeedbackDetailResponse is the full view of a single feedback entry.
type FeedbackDetailResponse struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	StudentID   uint      `json:"student_id"`
	Rating      int       `json:"rating"`
	Review      string    `json:"review"`
	ReviewTitle string    `json:"review_title"`
	CreatedAt   time.Time `json:"created_at"`
}

// BasicCourseDetails is the student-safe course view: no instructor-only
// content, just what a prospective student needs.
type BasicCourseDetails struct {
	ID                   uint               `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Price                decimal.Decimal    `json:"price"`
	NoOfStudentsEnrolled int                `json:"no_of_students_enrolled"`
	ModuleNames          []string           `json:"module_names"`
	Feedback             []FeedbackResponse `json:"feedback"`
}

// VideoResponse is the public view of a video.
type VideoResponse struct {
	ID            uint   `json:"id"`
	ModuleID      uint   `json:"module_id"`
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	Description   string `json:"description"`
	CloudProvider string `json:"cloud_provider,omitempty"`
}

// DocumentResponse is the public view of a document.
type DocumentResponse struct {
	ID            uint   `json:"id"`
	ModuleID      uint   `json:"module_id"`
	URL           string `json:"url"`
	Filename      string `json:"filename"`
	CloudProvider string `json:"cloud_provider,omitempty"`
}

// ModuleResponse is the public view of a module with its content.
type ModuleResponse struct {
	ID        uint               `json:"id"`
	CourseID  uint               `json:"course_id"`
	Name      string             `json:"name"`
	Videos    []VideoResponse    `json:"videos"`
	Documents []DocumentResponse `json:"documents"`
}

// EnrollmentResponse is the public view of an enrollment.
type EnrollmentResponse struct {
	ID          uint                   `json:"id"`
	CourseID    uint                   `json:"course_id"`
	StudentID   uint                   `json:"student_id"`
	PricePaid   decimal.Decimal        `json:"price_paid"`
	Status      model.EnrollmentStatus `json:"status"`
	EnrolledAt  time.Time              `json:"enrolled_at"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}

// CourseResponse is the full instructor view of a course, including modules
// with their content, feedback and enrollments.
type CourseResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	InstructorID uint                 `json:"instructor_id"`
	Price        decimal.Decimal      `json:"price"`
	Modules      []ModuleResponse     `json:"modules"`
	Feedback     []FeedbackResponse   `json:"feedback"`
	Enrollments  []EnrollmentResponse `json:"enrollments"`
	CreatedAt    time.Time            `json:"created_at"`
}

// CourseContentResponse is the content view served to enrolled students.
type CourseContentResponse struct {
	CourseID uint             `json:"course_id"`
	Title    string           `json:"title"`
	Modules  []ModuleResponse `json:"modules"`
}
