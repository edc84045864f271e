// Package dto holds the request/response shapes of the HTTP API and the pure
// conversion functions between them and the persisted models. Conversions do
// no I/O and no validation; fields owned by the service layer (identifiers,
// foreign keys, timestamps, password hashes) are left unset on the
// request-to-model direction and must be filled by the caller.
package dto

import "learnhub/internal/model"

// ToUserResponse maps a user to its public view.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// UserFromRegisterRequest builds an unsaved user from a registration payload.
// PasswordHash and CreatedAt are set by the auth service.
func UserFromRegisterRequest(req *RegisterRequest) *model.User {
	return &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  model.Role(req.Role),
	}
}

// ToFeedbackResponse maps feedback to the rating summary embedded in course views.
func ToFeedbackResponse(f *model.Feedback) FeedbackResponse {
	return FeedbackResponse{
		Rating:      f.Rating,
		Review:      f.Review,
		ReviewTitle: f.ReviewTitle,
	}
}

// ToFeedbackDetailResponse maps feedback to its full standalone view.
func ToFeedbackDetailResponse(f *model.Feedback) FeedbackDetailResponse {
	return FeedbackDetailResponse{
		ID:          f.ID,
		CourseID:    f.CourseID,
		StudentID:   f.StudentID,
		Rating:      f.Rating,
		Review:      f.Review,
		ReviewTitle: f.ReviewTitle,
		CreatedAt:   f.CreatedAt,
	}
}

// FeedbackFromRequest builds unsaved feedback from a review payload.
// CourseID, StudentID and CreatedAt are set by the feedback service.
func FeedbackFromRequest(req *FeedbackRequest) *model.Feedback {
	return &model.Feedback{
		Rating:      req.Rating,
		Review:      req.Review,
		ReviewTitle: req.ReviewTitle,
	}
}

// ToVideoResponse maps a video to its public view.
func ToVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:            v.ID,
		ModuleID:      v.ModuleID,
		URL:           v.URL,
		Filename:      v.Filename,
		Description:   v.Description,
		CloudProvider: v.CloudProvider,
	}
}

// VideoFromRequest builds an unsaved video. ModuleID is set by the caller.
func VideoFromRequest(req *VideoRequest) *model.Video {
	return &model.Video{
		URL:           req.URL,
		Filename:      req.Filename,
		Description:   req.Description,
		CloudProvider: req.CloudProvider,
	}
}

// ToDocumentResponse maps a document to its public view.
func ToDocumentResponse(d *model.Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID,
		ModuleID:      d.ModuleID,
		URL:           d.URL,
		Filename:      d.Filename,
		CloudProvider: d.CloudProvider,
	}
}

// DocumentFromRequest builds an unsaved document. ModuleID is set by the caller.
func DocumentFromRequest(req *DocumentRequest) *model.Document {
	return &model.Document{
		URL:           req.URL,
		Filename:      req.Filename,
		CloudProvider: req.CloudProvider,
	}
}

// ToModuleResponse maps a module and its content, preserving order.
func ToModuleResponse(m *model.Module) ModuleResponse {
	videos := make([]VideoResponse, 0, len(m.Videos))
	for i := range m.Videos {
		videos = append(videos, ToVideoResponse(&m.Videos[i]))
	}
	documents := make([]DocumentResponse, 0, len(m.Documents))
	for i := range m.Documents {
		documents = append(documents, ToDocumentResponse(&m.Documents[i]))
	}
	return ModuleResponse{
		ID:        m.ID,
		CourseID:  m.CourseID,
		Name:      m.Name,
		Videos:    videos,
		Documents: documents,
	}
}

// ModuleFromRequest builds an unsaved module. CourseID is set by the caller.
func ModuleFromRequest(req *ModuleRequest) *model.Module {
	return &model.Module{
		Name: req.Name,
	}
}

// ToEnrollmentResponse maps an enrollment to its public view.
func ToEnrollmentResponse(e *model.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		CourseID:    e.CourseID,
		StudentID:   e.StudentID,
		PricePaid:   e.PricePaid,
		Status:      e.Status,
		EnrolledAt:  e.EnrolledAt,
		CompletedAt: e.CompletedAt,
	}
}

// ToCourseResponse maps a fully loaded course to the instructor view.
func ToCourseResponse(c *model.Course) CourseResponse {
	modules := make([]ModuleResponse, 0, len(c.Modules))
	for i := range c.Modules {
		modules = append(modules, ToModuleResponse(&c.Modules[i]))
	}
	feedback := make([]FeedbackResponse, 0, len(c.Feedback))
	for i := range c.Feedback {
		feedback = append(feedback, ToFeedbackResponse(&c.Feedback[i]))
	}
	enrollments := make([]EnrollmentResponse, 0, len(c.Enrollments))
	for i := range c.Enrollments {
		enrollments = append(enrollments, ToEnrollmentResponse(&c.Enrollments[i]))
	}
	return CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		InstructorID: c.InstructorID,
		Price:        c.Price,
		Modules:      modules,
		Feedback:     feedback,
		Enrollments:  enrollments,
		CreatedAt:    c.CreatedAt,
	}
}

// ToBasicCourseDetails maps a course to the student-safe summary.
func ToBasicCourseDetails(c *model.Course) BasicCourseDetails {
	moduleNames := make([]string, 0, len(c.Modules))
	for i := range c.Modules {
		moduleNames = append(moduleNames, c.Modules[i].Name)
	}
	feedback := make([]FeedbackResponse, 0, len(c.Feedback))
	for i := range c.Feedback {
		feedback = append(feedback, ToFeedbackResponse(&c.Feedback[i]))
	}
	return BasicCourseDetails{
		ID:                   c.ID,
		Title:                c.Title,
		Description:          c.Description,
		Price:                c.Price,
		NoOfStudentsEnrolled: len(c.Enrollments),
		ModuleNames:          moduleNames,
		Feedback:             feedback,
	}
}

// ToCourseContentResponse maps a fully loaded course to the enrolled-student
// content view.
func ToCourseContentResponse(c *model.Course) CourseContentResponse {
	modules := make([]ModuleResponse, 0, len(c.Modules))
	for i := range c.Modules {
		modules = append(modules, ToModuleResponse(&c.Modules[i]))
	}
	return CourseContentResponse{
		CourseID: c.ID,
		Title:    c.Title,
		Modules:  modules,
	}
}

// CourseFromRequest builds an unsaved course with its nested modules.
// InstructorID and CreatedAt are set by the course service.
func CourseFromRequest(req *CourseRequest) *model.Course {
	modules := make([]model.Module, 0, len(req.Modules))
	for i := range req.Modules {
		modules = append(modules, *ModuleFromRequest(&req.Modules[i]))
	}
	return &model.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Modules:     modules,
	}
}
