package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/model"
)

func TestCourseFromRequest_PreservesModuleOrder(t *testing.T) {
	req := &CourseRequest{
		Title:       "Go Fundamentals",
		Description: "Types, interfaces and goroutines.",
		Price:       decimal.NewFromFloat(29.99),
		Modules: []ModuleRequest{
			{Name: "Basics"},
			{Name: "Interfaces"},
			{Name: "Concurrency"},
		},
	}

	course := CourseFromRequest(req)

	require.Len(t, course.Modules, 3)
	assert.Equal(t, "Basics", course.Modules[0].Name)
	assert.Equal(t, "Interfaces", course.Modules[1].Name)
	assert.Equal(t, "Concurrency", course.Modules[2].Name)
	// Service-owned fields stay unset.
	assert.Zero(t, course.InstructorID)
	assert.True(t, course.CreatedAt.IsZero())
}

func TestToCourseResponse_PreservesContentOrder(t *testing.T) {
	course := &model.Course{
		ID:           1,
		Title:        "Go Fundamentals",
		InstructorID: 9,
		Price:        decimal.NewFromFloat(29.99),
		Modules: []model.Module{
			{
				ID:   1,
				Name: "Basics",
				Videos: []model.Video{
					{ID: 1, Filename: "a.mp4"},
					{ID: 2, Filename: "b.mp4"},
				},
				Documents: []model.Document{
					{ID: 1, Filename: "notes.pdf"},
				},
			},
			{
				ID:   2,
				Name: "Concurrency",
				Videos: []model.Video{
					{ID: 3, Filename: "c.mp4"},
				},
			},
		},
		Feedback: []model.Feedback{
			{Rating: 4, ReviewTitle: "Solid"},
			{Rating: 5, ReviewTitle: "Great"},
		},
		Enrollments: []model.Enrollment{
			{ID: 1, StudentID: 11},
			{ID: 2, StudentID: 12},
		},
	}

	resp := ToCourseResponse(course)

	require.Len(t, resp.Modules, 2)
	assert.Equal(t, "Basics", resp.Modules[0].Name)
	require.Len(t, resp.Modules[0].Videos, 2)
	assert.Equal(t, "a.mp4", resp.Modules[0].Videos[0].Filename)
	assert.Equal(t, "b.mp4", resp.Modules[0].Videos[1].Filename)
	require.Len(t, resp.Modules[0].Documents, 1)
	assert.Equal(t, "notes.pdf", resp.Modules[0].Documents[0].Filename)
	assert.Equal(t, "Concurrency", resp.Modules[1].Name)
	require.Len(t, resp.Modules[1].Videos, 1)
	assert.Empty(t, resp.Modules[1].Documents)

	require.Len(t, resp.Feedback, 2)
	assert.Equal(t, "Solid", resp.Feedback[0].ReviewTitle)
	require.Len(t, resp.Enrollments, 2)
	assert.Equal(t, uint(11), resp.Enrollments[0].StudentID)
}

func TestToBasicCourseDetails(t *testing.T) {
	course := &model.Course{
		ID:          3,
		Title:       "Practical SQL",
		Description: "Indexing and query tuning.",
		Price:       decimal.NewFromFloat(49.99),
		Modules: []model.Module{
			{Name: "Getting Started", Videos: []model.Video{{URL: "https://cdn.example.com/v.mp4"}}},
			{Name: "Indexes in Depth"},
		},
		Feedback: []model.Feedback{
			{Rating: 5, Review: "Clear and practical.", ReviewTitle: "Recommended"},
		},
		Enrollments: []model.Enrollment{{ID: 1}, {ID: 2}},
	}

	basic := ToBasicCourseDetails(course)

	assert.Equal(t, uint(3), basic.ID)
	assert.Equal(t, "Practical SQL", basic.Title)
	assert.Equal(t, 2, basic.NoOfStudentsEnrolled)
	// Only module names make it into the student-safe view.
	assert.Equal(t, []string{"Getting Started", "Indexes in Depth"}, basic.ModuleNames)
	require.Len(t, basic.Feedback, 1)
	assert.Equal(t, "Recommended", basic.Feedback[0].ReviewTitle)
}

func TestToBasicCourseDetails_EmptyCourse(t *testing.T) {
	basic := ToBasicCourseDetails(&model.Course{ID: 1, Title: "Empty"})

	assert.Zero(t, basic.NoOfStudentsEnrolled)
	assert.NotNil(t, basic.ModuleNames)
	assert.Empty(t, basic.ModuleNames)
	assert.NotNil(t, basic.Feedback)
	assert.Empty(t, basic.Feedback)
}

func TestToCourseContentResponse(t *testing.T) {
	course := &model.Course{
		ID:    7,
		Title: "Go Fundamentals",
		Modules: []model.Module{
			{
				ID:        1,
				CourseID:  7,
				Name:      "Basics",
				Videos:    []model.Video{{ID: 1, ModuleID: 1, URL: "https://cdn.example.com/v.mp4", Filename: "v.mp4"}},
				Documents: []model.Document{{ID: 1, ModuleID: 1, URL: "https://cdn.example.com/d.pdf", Filename: "d.pdf"}},
			},
		},
	}

	resp := ToCourseContentResponse(course)

	assert.Equal(t, uint(7), resp.CourseID)
	assert.Equal(t, "Go Fundamentals", resp.Title)
	require.Len(t, resp.Modules, 1)
	assert.Equal(t, "v.mp4", resp.Modules[0].Videos[0].Filename)
	assert.Equal(t, "d.pdf", resp.Modules[0].Documents[0].Filename)
}

func TestUserFromRegisterRequest(t *testing.T) {
	req := &RegisterRequest{Name: "Test User", Email: "test@example.com", Password: "secret123", Role: "INSTRUCTOR"}

	user := UserFromRegisterRequest(req)

	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, model.RoleInstructor, user.Role)
	// The raw password never lands on the model.
	assert.Empty(t, user.PasswordHash)
}
