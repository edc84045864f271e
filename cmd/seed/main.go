package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"learnhub/internal/config"
	"learnhub/internal/db"
	"learnhub/internal/model"
	"learnhub/internal/repository"
)

const seedPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	instructor := seedUser(ctx, userRepo, &model.User{
		Name:         "Ada Holt",
		Email:        "ada.instructor@learnhub.dev",
		PasswordHash: string(hash),
		Role:         model.RoleInstructor,
	})
	studentOne := seedUser(ctx, userRepo, &model.User{
		Name:         "Ben Ortiz",
		Email:        "ben.student@learnhub.dev",
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
	})
	studentTwo := seedUser(ctx, userRepo, &model.User{
		Name:         "Mina Park",
		Email:        "mina.student@learnhub.dev",
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
	})

	price := decimal.NewFromFloat(49.99)
	course := &model.Course{
		Title:        "Practical SQL for Backend Developers",
		Description:  "Schema design, indexing and query tuning with worked examples.",
		Price:        price,
		InstructorID: instructor.ID,
		CreatedAt:    time.Now(),
		Modules: []model.Module{
			{
				Name: "Getting Started",
				Videos: []model.Video{
					{URL: "https://cdn.learnhub.dev/sql/intro.mp4", Filename: "intro.mp4", Description: "Course overview", CloudProvider: "s3"},
				},
				Documents: []model.Document{
					{URL: "https://cdn.learnhub.dev/sql/setup.pdf", Filename: "setup.pdf", CloudProvider: "s3"},
				},
			},
			{
				Name: "Indexes in Depth",
				Videos: []model.Video{
					{URL: "https://cdn.learnhub.dev/sql/btrees.mp4", Filename: "btrees.mp4", Description: "B-tree internals"},
				},
			},
		},
	}
	if err := courseRepo.Create(ctx, course); err != nil {
		log.Fatalf("Failed to seed course: %v", err)
	}
	log.Printf("Seeded course %d: %s", course.ID, course.Title)

	for _, student := range []*model.User{studentOne, studentTwo} {
		enrollment := &model.Enrollment{
			CourseID:   course.ID,
			StudentID:  student.ID,
			PricePaid:  price,
			Status:     model.EnrollmentStatusEnrolled,
			EnrolledAt: time.Now(),
		}
		if err := enrollmentRepo.Create(ctx, enrollment); err != nil {
			log.Fatalf("Failed to seed enrollment: %v", err)
		}
	}

	feedback := &model.Feedback{
		CourseID:    course.ID,
		StudentID:   studentOne.ID,
		Rating:      5,
		Review:      "Clear explanations and realistic exercises.",
		ReviewTitle: "Worth every minute",
		CreatedAt:   time.Now(),
	}
	if err := feedbackRepo.Create(ctx, feedback); err != nil {
		log.Fatalf("Failed to seed feedback: %v", err)
	}

	log.Println("Seed completed")
}

// seedUser creates the user unless the email is already present.
func seedUser(ctx context.Context, repo repository.UserRepository, user *model.User) *model.User {
	if existing, err := repo.FindByEmail(ctx, user.Email); err == nil {
		log.Printf("User %s already exists, skipping", user.Email)
		return existing
	}
	user.CreatedAt = time.Now()
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", user.Email, err)
	}
	log.Printf("Seeded user %d: %s (%s)", user.ID, user.Email, user.Role)
	return user
}
