package dto

import "github.com/shopspring/decimal"

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=STUDENT INSTRUCTOR ADMIN"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest starts the OTP password-reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest checks a password-reset code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// ResetPasswordRequest completes the OTP password-reset flow.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// CourseRequest is the payload for course creation. Nested modules are
// optional and created together with the course.
type CourseRequest struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"required,dmin=0"`
	Modules     []ModuleRequest `json:"modules" validate:"omitempty,dive"`
}

// CourseUpdateRequest is the payload for course updates.
type CourseUpdateRequest struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"required,dmin=0"`
}

// ModuleRequest is the payload for adding a module to a course.
type ModuleRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// VideoRequest is the payload for attaching a video to a module.
type VideoRequest struct {
	URL           string `json:"url" validate:"required,url,max=512"`
	Filename      string `json:"filename" validate:"required,max=255"`
	Description   string `json:"description" validate:"max=1000"`
	CloudProvider string `json:"cloud_provider" validate:"max=100"`
}

// DocumentRequest is the payload for attaching a document to a module.
type DocumentRequest struct {
	URL           string `json:"url" validate:"required,url,max=512"`
	Filename      string `json:"filename" validate:"required,max=255"`
	CloudProvider string `json:"cloud_provider" validate:"max=100"`
}

// FeedbackRequest is the payload for leaving a course review.
type FeedbackRequest struct {
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Review      string `json:"review" validate:"max=2000"`
	ReviewTitle string `json:"review_title" validate:"max=255"`
}
