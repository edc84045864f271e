package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	echoSwagger "github.com/swaggo/echo-swagger"

	"learnhub/internal/auth"
	"learnhub/internal/config"
	"learnhub/internal/handler"
	"learnhub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	contentHandler *handler.ContentHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	feedbackHandler *handler.FeedbackHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = NewCustomValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/forgot-password", authHandler.ForgotPassword)
	api.POST("/auth/verify-otp", authHandler.VerifyOTP)
	api.POST("/auth/reset-password", authHandler.ResetPassword)

	api.GET("/courses/all", courseHandler.GetAll)
	api.GET("/courses/popular", courseHandler.GetPopular)
	api.GET("/courses/search", courseHandler.Search)
	api.GET("/courses/:id/feedback", feedbackHandler.ListForCourse)

	// Role-dependent response shape: authenticated callers are identified,
	// anonymous ones pass through.
	api.GET("/courses/:id", courseHandler.GetByID, auth.OptionalAuth(jwtService))

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), auth.LoadIdentity)

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/users/me", userHandler.Me)

	instructorOnly := auth.RequireRoles(model.RoleInstructor)
	instructorOrAdmin := auth.RequireRoles(model.RoleInstructor, model.RoleAdmin)
	studentOnly := auth.RequireRoles(model.RoleStudent)

	// Course routes
	secured.GET("/courses/instructor", courseHandler.GetInstructorCourses, instructorOnly)
	secured.POST("/courses/create", courseHandler.Create, instructorOnly)
	secured.PUT("/courses/:id", courseHandler.Update, instructorOnly)
	secured.DELETE("/courses/:id", courseHandler.Delete, instructorOrAdmin)
	secured.GET("/courses/:id/students", courseHandler.GetEnrolledStudents, instructorOrAdmin)
	secured.GET("/courses/:id/students-count", courseHandler.GetEnrolledStudentsCount)

	// Content routes
	secured.POST("/courses/:id/modules", contentHandler.AddModule, instructorOrAdmin)
	secured.POST("/modules/:id/videos", contentHandler.AddVideo, instructorOrAdmin)
	secured.POST("/modules/:id/documents", contentHandler.AddDocument, instructorOrAdmin)

	// Enrollment routes
	secured.POST("/courses/:id/enroll", enrollmentHandler.Enroll, studentOnly)
	secured.POST("/enrollments/:id/complete", enrollmentHandler.Complete, studentOnly)
	secured.GET("/courses/:id/course-content", enrollmentHandler.GetCourseContent, studentOnly)

	// Feedback routes
	secured.POST("/courses/:id/feedback", feedbackHandler.Submit, studentOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator builds the request validator with the domain validations
// registered.
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// dmin enforces a decimal lower bound, e.g. `dmin=0` on prices.
	_ = v.RegisterValidation("dmin", decimalMin)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func decimalMin(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(min)
}
