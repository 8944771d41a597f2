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

type ProgressController struct {
	Svc *services.ProgressService
	Cfg *config.Config
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{Svc: services.NewProgressService(db), Cfg: cfg}
}

// UpdateLessonProgress godoc
// @Summary Report lesson activity
// @Description Merges a progress report into the lesson's progress row
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/lesson/{lesson_id} [post]
func (pc *ProgressController) UpdateLessonProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	lessonID, err := strconv.Atoi(c.Params("lesson_id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var upd services.ProgressUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := pc.Svc.ReportProgress(userID, uint(lessonID), upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLessonNotFound):
			return utils.NotFound(c, "Lesson not found")
		case errors.Is(err, services.ErrNotEnrolled):
			return utils.Forbidden(c, "Not enrolled in this course")
		case errors.Is(err, services.ErrNegativeTimeSpent):
			return utils.BadRequest(c, "time_spent must not be negative")
		default:
			return utils.InternalServerError(c, "Failed to update progress")
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Progress updated successfully",
		"progress": progress,
	})
}

// GetCourseProgress godoc
// @Summary Get progress for a course
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/course/{course_id} [get]
func (pc *ProgressController) GetCourseProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("course_id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	progress, stats, err := pc.Svc.GetCourseProgress(userID, uint(courseID))
	if err != nil {
		if errors.Is(err, services.ErrNotEnrolled) {
			return utils.Forbidden(c, "Not enrolled in this course")
		}
		return utils.InternalServerError(c, "Failed to fetch progress")
	}

	return c.JSON(fiber.Map{
		"progress": progress,
		"stats":    stats,
	})
}

// GetStats godoc
// @Summary Get account-level stats
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /progress/stats [get]
func (pc *ProgressController) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	stats, err := pc.Svc.Stats.AccountStats(userID)
	if err != nil {
		return utils.InternalServerError(c, "Failed to fetch stats")
	}

	return c.JSON(fiber.Map{"stats": stats})
}
