package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/backend/config"
	"learnhub/backend/controllers"
	"learnhub/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	instructorOnly := middleware.RequireRole("instructor", "admin")

	// Courses routes (catalog reads are public)
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Post("/api/courses", authMiddleware, instructorOnly, coursesController.CreateCourse)
	app.Put("/api/courses/:id", authMiddleware, instructorOnly, coursesController.UpdateCourse)
	app.Delete("/api/courses/:id", authMiddleware, instructorOnly, coursesController.DeleteCourse)
	app.Post("/api/courses/:id/lessons", authMiddleware, instructorOnly, coursesController.AddLesson)

	// Enrollment routes
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	enrollments := app.Group("/api/enrollments", authMiddleware)
	enrollments.Get("/my-courses", enrollmentController.GetMyCourses)
	enrollments.Post("/", enrollmentController.Enroll)
	enrollments.Delete("/:course_id", enrollmentController.Unenroll)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	progress := app.Group("/api/progress", authMiddleware)
	progress.Get("/course/:course_id", progressController.GetCourseProgress)
	progress.Post("/lesson/:lesson_id", progressController.UpdateLessonProgress)
	progress.Get("/stats", progressController.GetStats)
}
