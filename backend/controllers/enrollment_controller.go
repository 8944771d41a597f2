package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/backend/config"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

type EnrollmentController struct {
	Svc *services.EnrollmentService
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{Svc: services.NewEnrollmentService(db), Cfg: cfg}
}

// GetMyCourses godoc
// @Summary List enrollments
// @Description Returns the user's enrollments, most recent first
// @Tags enrollments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /enrollments/my-courses [get]
func (ec *EnrollmentController) GetMyCourses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	enrollments, err := ec.Svc.ListEnrollments(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments")
	}

	return c.JSON(fiber.Map{"enrollments": enrollments})
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /enrollments [post]
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type EnrollInput struct {
		CourseID uint `json:"course_id"`
	}

	var input EnrollInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == 0 {
		return utils.BadRequest(c, "Course ID is required")
	}

	enrollment, err := ec.Svc.Enroll(userID, input.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			return utils.NotFound(c, "Course not found")
		case errors.Is(err, services.ErrAlreadyEnrolled):
			return utils.BadRequest(c, "Already enrolled in this course")
		default:
			return utils.InternalServerError(c, "Failed to enroll in course")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Successfully enrolled in course",
		"enrollment": enrollment,
	})
}

// Unenroll godoc
// @Summary Unenroll from a course
// @Description Removes the enrollment; unenrolling twice is not an error
// @Tags enrollments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /enrollments/{course_id} [delete]
func (ec *EnrollmentController) Unenroll(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("course_id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := ec.Svc.Unenroll(userID, uint(courseID)); err != nil {
		return utils.InternalServerError(c, "Failed to unenroll from course")
	}

	return c.JSON(fiber.Map{"message": "Successfully unenrolled from course"})
}
