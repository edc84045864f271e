package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "learnhub/internal/errors"
	"learnhub/internal/model"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	course := testCourse(1, 9)

	tests := []struct {
		name          string
		setupMocks    func(*MockCourseRepository, *MockEnrollmentRepository)
		expectedError error
	}{
		{
			name: "successful enrollment",
			setupMocks: func(courses *MockCourseRepository, enrollments *MockEnrollmentRepository) {
				courses.On("FindByID", mock.Anything, uint(1)).Return(course, nil)
				enrollments.On("FindByStudentAndCourse", mock.Anything, uint(11), uint(1)).Return(nil, gorm.ErrRecordNotFound)
				enrollments.On("Create", mock.Anything, mock.AnythingOfType("*model.Enrollment")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.Enrollment).ID = 77
					}).
					Return(nil)
			},
		},
		{
			name: "course not found",
			setupMocks: func(courses *MockCourseRepository, enrollments *MockEnrollmentRepository) {
				courses.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCourseNotFound,
		},
		{
			name: "already enrolled",
			setupMocks: func(courses *MockCourseRepository, enrollments *MockEnrollmentRepository) {
				courses.On("FindByID", mock.Anything, uint(1)).Return(course, nil)
				enrollments.On("FindByStudentAndCourse", mock.Anything, uint(11), uint(1)).
					Return(&model.Enrollment{ID: 5, CourseID: 1, StudentID: 11}, nil)
			},
			expectedError: apperrors.ErrAlreadyEnrolled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCourses := new(MockCourseRepository)
			mockEnrollments := new(MockEnrollmentRepository)
			tt.setupMocks(mockCourses, mockEnrollments)

			svc := NewEnrollmentService(mockCourses, mockEnrollments, nil)
			resp, err := svc.Enroll(context.Background(), 1, 11)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(77), resp.ID)
				assert.Equal(t, uint(1), resp.CourseID)
				assert.Equal(t, uint(11), resp.StudentID)
				// The price is captured at enrollment time.
				assert.True(t, resp.PricePaid.Equal(course.Price))
				assert.Equal(t, model.EnrollmentStatusEnrolled, resp.Status)
				assert.False(t, resp.EnrolledAt.IsZero())
			}
			mockCourses.AssertExpectations(t)
			mockEnrollments.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_Complete(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockEnrollmentRepository)
		expectedError error
	}{
		{
			name: "marks own enrollment completed",
			setupMocks: func(enrollments *MockEnrollmentRepository) {
				enrollments.On("FindByID", mock.Anything, uint(5)).
					Return(&model.Enrollment{ID: 5, CourseID: 1, StudentID: 11, Status: model.EnrollmentStatusEnrolled}, nil)
				enrollments.On("Update", mock.Anything, mock.AnythingOfType("*model.Enrollment")).Return(nil)
			},
		},
		{
			name: "unknown enrollment",
			setupMocks: func(enrollments *MockEnrollmentRepository) {
				enrollments.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrEnrollmentNotFound,
		},
		{
			name: "someone else's enrollment looks absent",
			setupMocks: func(enrollments *MockEnrollmentRepository) {
				enrollments.On("FindByID", mock.Anything, uint(5)).
					Return(&model.Enrollment{ID: 5, CourseID: 1, StudentID: 99}, nil)
			},
			expectedError: apperrors.ErrEnrollmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEnrollments := new(MockEnrollmentRepository)
			tt.setupMocks(mockEnrollments)

			svc := NewEnrollmentService(new(MockCourseRepository), mockEnrollments, nil)
			resp, err := svc.Complete(context.Background(), 5, 11)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, resp)
				mockEnrollments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.EnrollmentStatusCompleted, resp.Status)
				require.NotNil(t, resp.CompletedAt)
				assert.False(t, resp.CompletedAt.IsZero())
			}
			mockEnrollments.AssertExpectations(t)
		})
	}
}

func TestEnrollmentService_CourseContent(t *testing.T) {
	course := testCourse(1, 9)
	course.Modules = []model.Module{
		{ID: 1, CourseID: 1, Name: "Basics", Videos: []model.Video{{ID: 1, ModuleID: 1, URL: "https://cdn.example.com/v1.mp4", Filename: "v1.mp4"}}},
	}

	t.Run("enrolled student gets content", func(t *testing.T) {
		mockCourses := new(MockCourseRepository)
		mockEnrollments := new(MockEnrollmentRepository)
		mockEnrollments.On("FindByStudentAndCourse", mock.Anything, uint(11), uint(1)).
			Return(&model.Enrollment{ID: 5, CourseID: 1, StudentID: 11}, nil)
		mockCourses.On("FindByIDFull", mock.Anything, uint(1)).Return(course, nil)

		svc := NewEnrollmentService(mockCourses, mockEnrollments, nil)
		resp, err := svc.CourseContent(context.Background(), 1, 11)

		require.NoError(t, err)
		assert.Equal(t, uint(1), resp.CourseID)
		require.Len(t, resp.Modules, 1)
		require.Len(t, resp.Modules[0].Videos, 1)
		assert.Equal(t, "v1.mp4", resp.Modules[0].Videos[0].Filename)
	})

	t.Run("unenrolled student rejected", func(t *testing.T) {
		mockCourses := new(MockCourseRepository)
		mockEnrollments := new(MockEnrollmentRepository)
		mockEnrollments.On("FindByStudentAndCourse", mock.Anything, uint(12), uint(1)).
			Return(nil, gorm.ErrRecordNotFound)

		svc := NewEnrollmentService(mockCourses, mockEnrollments, nil)
		resp, err := svc.CourseContent(context.Background(), 1, 12)

		assert.Equal(t, apperrors.ErrNotEnrolled, err)
		assert.Nil(t, resp)
		mockCourses.AssertNotCalled(t, "FindByIDFull", mock.Anything, mock.Anything)
	})
}
