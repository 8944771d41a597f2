package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"learnhub/backend/config"
	"learnhub/backend/models"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

// Seeds the database with demo users, courses, lessons and a bit of
// enrollment/progress data. Safe to run against an empty database only.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	users := []models.User{
		{Email: "instructor1@example.com", PasswordHash: string(hash), FullName: "Dr. Sarah Johnson", Role: "instructor"},
		{Email: "instructor2@example.com", PasswordHash: string(hash), FullName: "Prof. Michael Chen", Role: "instructor"},
		{Email: "student1@example.com", PasswordHash: string(hash), FullName: "Alice Williams", Role: "student"},
		{Email: "student2@example.com", PasswordHash: string(hash), FullName: "Bob Martinez", Role: "student"},
		{Email: "admin@example.com", PasswordHash: string(hash), FullName: "Admin User", Role: "admin"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}

	courses := []models.Course{
		{
			Title:             "Introduction to JavaScript",
			Description:       "Learn the fundamentals of JavaScript programming from scratch. Covers variables, functions, objects, and modern ES6+ features.",
			Category:          "Programming",
			DifficultyLevel:   "beginner",
			EstimatedDuration: 480,
			InstructorID:      users[0].ID,
			Lessons: []models.Lesson{
				{Title: "Variables and Types", OrderIndex: 1, DurationMinutes: 45},
				{Title: "Functions", OrderIndex: 2, DurationMinutes: 60},
				{Title: "Objects and Arrays", OrderIndex: 3, DurationMinutes: 60},
				{Title: "ES6+ Features", OrderIndex: 4, DurationMinutes: 75},
			},
		},
		{
			Title:             "Advanced React Development",
			Description:       "Master React.js with hooks, context, performance optimization, and advanced patterns.",
			Category:          "Web Development",
			DifficultyLevel:   "advanced",
			EstimatedDuration: 720,
			InstructorID:      users[0].ID,
			Lessons: []models.Lesson{
				{Title: "Hooks in Depth", OrderIndex: 1, DurationMinutes: 90},
				{Title: "Context and State", OrderIndex: 2, DurationMinutes: 80},
				{Title: "Performance Patterns", OrderIndex: 3, DurationMinutes: 95},
			},
		},
		{
			Title:             "Data Science with Python",
			Description:       "Dive into data analysis, visualization, and machine learning using Python, pandas, and scikit-learn.",
			Category:          "Data Science",
			DifficultyLevel:   "intermediate",
			EstimatedDuration: 600,
			InstructorID:      users[1].ID,
			Lessons: []models.Lesson{
				{Title: "Pandas Basics", OrderIndex: 1, DurationMinutes: 70},
				{Title: "Visualization", OrderIndex: 2, DurationMinutes: 65},
			},
		},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("Error seeding courses: %v", err)
	}

	enrollSvc := services.NewEnrollmentService(db)
	progressSvc := services.NewProgressService(db)

	if _, err := enrollSvc.Enroll(users[2].ID, courses[0].ID); err != nil {
		log.Fatalf("Error seeding enrollment: %v", err)
	}
	if _, err := enrollSvc.Enroll(users[3].ID, courses[2].ID); err != nil {
		log.Fatalf("Error seeding enrollment: %v", err)
	}

	completed := true
	minutes := 45
	_, err = progressSvc.ReportProgress(users[2].ID, courses[0].Lessons[0].ID, services.ProgressUpdate{
		Completed: &completed,
		TimeSpent: &minutes,
	})
	if err != nil {
		log.Fatalf("Error seeding progress: %v", err)
	}

	log.Println("Seeding completed.")
}
