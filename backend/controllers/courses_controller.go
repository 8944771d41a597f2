package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/backend/config"
	"learnhub/backend/models"
	"learnhub/backend/utils"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := cc.DB.Preload("Instructor").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "course_id", "title", "order_index").Order("order_index")
		}).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch courses")
	}

	return c.JSON(fiber.Map{"courses": courses})
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	err = cc.DB.Preload("Instructor").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index")
		}).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	return c.JSON(fiber.Map{"course": course})
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type CourseInput struct {
		Title             string `json:"title"`
		Description       string `json:"description"`
		Category          string `json:"category"`
		DifficultyLevel   string `json:"difficulty_level"`
		EstimatedDuration int    `json:"estimated_duration"`
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Title == "" || input.Description == "" {
		return utils.BadRequest(c, "Title and description are required")
	}

	course := models.Course{
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		DifficultyLevel:   input.DifficultyLevel,
		EstimatedDuration: input.EstimatedDuration,
		InstructorID:      userID,
	}
	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create course")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	if course.InstructorID != userID && role != "admin" {
		return utils.Forbidden(c, "Not authorized")
	}

	type CourseInput struct {
		Title             string `json:"title"`
		Description       string `json:"description"`
		Category          string `json:"category"`
		DifficultyLevel   string `json:"difficulty_level"`
		EstimatedDuration int    `json:"estimated_duration"`
	}

	var input CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updates := models.Course{
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		DifficultyLevel:   input.DifficultyLevel,
		EstimatedDuration: input.EstimatedDuration,
	}
	if err := cc.DB.Model(&course).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Failed to update course")
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	if course.InstructorID != userID && role != "admin" {
		return utils.Forbidden(c, "Not authorized")
	}

	if err := cc.DB.Delete(&course).Error; err != nil {
		return utils.InternalServerError(c, "Failed to delete course")
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Failed to fetch course")
	}

	if course.InstructorID != userID && role != "admin" {
		return utils.Forbidden(c, "Not authorized")
	}

	var lesson models.Lesson
	if err := c.BodyParser(&lesson); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if lesson.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if lesson.DurationMinutes < 0 {
		return utils.BadRequest(c, "Duration must not be negative")
	}

	lesson.CourseID = course.ID
	if err := cc.DB.Create(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest(c, "A lesson with this order index already exists")
		}
		return utils.InternalServerError(c, "Failed to create lesson")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lesson added successfully",
		"lesson":  lesson,
	})
}
