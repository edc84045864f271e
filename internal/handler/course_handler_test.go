package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"learnhub/internal/auth"
	"learnhub/internal/dto"
	"learnhub/internal/model"
)

// MockCourseService is a mock implementation of service.CourseService.
type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) Create(ctx context.Context, req *dto.CourseRequest, instructorID uint) (*dto.CourseResponse, error) {
	args := m.Called(ctx, req, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CourseResponse), args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, id uint, req *dto.CourseUpdateRequest, instructorID uint) (*dto.CourseResponse, error) {
	args := m.Called(ctx, id, req, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CourseResponse), args.Error(1)
}

func (m *MockCourseService) Delete(ctx context.Context, id uint, callerID uint, isAdmin bool) error {
	args := m.Called(ctx, id, callerID, isAdmin)
	return args.Error(0)
}

func (m *MockCourseService) GetCourseEntity(ctx context.Context, id uint) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseService) GetBasicCourse(ctx context.Context, id uint) (*dto.BasicCourseDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BasicCourseDetails), args.Error(1)
}

func (m *MockCourseService) GetFullCourse(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CourseResponse), args.Error(1)
}

func (m *MockCourseService) ListAll(ctx context.Context) ([]dto.BasicCourseDetails, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BasicCourseDetails), args.Error(1)
}

func (m *MockCourseService) ListByInstructor(ctx context.Context, instructorID uint) ([]dto.CourseResponse, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CourseResponse), args.Error(1)
}

func (m *MockCourseService) Popular(ctx context.Context, limit int) ([]dto.BasicCourseDetails, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BasicCourseDetails), args.Error(1)
}

func (m *MockCourseService) Search(ctx context.Context, query string) ([]dto.BasicCourseDetails, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BasicCourseDetails), args.Error(1)
}

func (m *MockCourseService) EnrolledStudents(ctx context.Context, courseID, callerID uint, isAdmin bool) ([]dto.UserResponse, error) {
	args := m.Called(ctx, courseID, callerID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.UserResponse), args.Error(1)
}

func courseDetailContext(t *testing.T, courseID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues(courseID)
	return c, rec
}

func TestCourseHandler_GetByID(t *testing.T) {
	basic := &dto.BasicCourseDetails{ID: 1, Title: "Go Fundamentals", ModuleNames: []string{"Basics"}}
	full := &dto.CourseResponse{ID: 1, Title: "Go Fundamentals", InstructorID: 9}
	course := &model.Course{ID: 1, Title: "Go Fundamentals", InstructorID: 9}

	tests := []struct {
		name         string
		identity     *auth.Identity
		setupMock    func(*MockCourseService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "anonymous caller gets basic view",
			setupMock: func(m *MockCourseService) {
				m.On("GetBasicCourse", mock.Anything, uint(1)).Return(basic, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"title":"Go Fundamentals"`,
		},
		{
			name:     "student gets basic view",
			identity: &auth.Identity{UserID: 11, Role: model.RoleStudent},
			setupMock: func(m *MockCourseService) {
				m.On("GetBasicCourse", mock.Anything, uint(1)).Return(basic, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"module_names":["Basics"]`,
		},
		{
			name:     "owning instructor gets full view",
			identity: &auth.Identity{UserID: 9, Role: model.RoleInstructor},
			setupMock: func(m *MockCourseService) {
				m.On("GetCourseEntity", mock.Anything, uint(1)).Return(course, nil)
				m.On("GetFullCourse", mock.Anything, uint(1)).Return(full, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"instructor_id":9`,
		},
		{
			name:     "admin gets full view of any course",
			identity: &auth.Identity{UserID: 100, Role: model.RoleAdmin},
			setupMock: func(m *MockCourseService) {
				m.On("GetCourseEntity", mock.Anything, uint(1)).Return(course, nil)
				m.On("GetFullCourse", mock.Anything, uint(1)).Return(full, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"instructor_id":9`,
		},
		{
			name:     "other instructor is forbidden",
			identity: &auth.Identity{UserID: 5, Role: model.RoleInstructor},
			setupMock: func(m *MockCourseService) {
				m.On("GetCourseEntity", mock.Anything, uint(1)).Return(course, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: "You are not authorized to view full course details of this course.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCourseService)
			tt.setupMock(mockService)

			c, rec := courseDetailContext(t, "1")
			if tt.identity != nil {
				auth.SetIdentity(c, *tt.identity)
			}

			h := NewCourseHandler(mockService)
			err := h.GetByID(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			if tt.expectedCode == http.StatusForbidden {
				mockService.AssertNotCalled(t, "GetFullCourse", mock.Anything, mock.Anything)
				mockService.AssertNotCalled(t, "GetBasicCourse", mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCourseHandler_GetByID_InvalidID(t *testing.T) {
	mockService := new(MockCourseService)
	c, _ := courseDetailContext(t, "abc")

	h := NewCourseHandler(mockService)
	err := h.GetByID(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "GetBasicCourse", mock.Anything, mock.Anything)
}

func TestCourseHandler_GetPopular_LimitValidation(t *testing.T) {
	tests := []struct {
		name          string
		limit         string
		expectedLimit int
		expectBadReq  bool
	}{
		{name: "default limit", limit: "", expectedLimit: defaultPopularLimit},
		{name: "explicit limit", limit: "3", expectedLimit: 3},
		{name: "non-numeric limit", limit: "abc", expectBadReq: true},
		{name: "zero limit", limit: "0", expectBadReq: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCourseService)
			if !tt.expectBadReq {
				mockService.On("Popular", mock.Anything, tt.expectedLimit).Return([]dto.BasicCourseDetails{}, nil)
			}

			e := echo.New()
			target := "/api/courses/popular"
			if tt.limit != "" {
				target += "?limit=" + tt.limit
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewCourseHandler(mockService)
			err := h.GetPopular(c)

			if tt.expectBadReq {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCourseHandler_Search_RequiresQuery(t *testing.T) {
	mockService := new(MockCourseService)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewCourseHandler(mockService)
	err := h.Search(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
