package services

import (
	"math"

	"gorm.io/gorm"

	"learnhub/backend/models"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// CourseStats derives completion statistics for one enrollment. Total
// lessons counts every lesson in the course whether or not the user has
// touched it; a course with no lessons reports 0 percent rather than
// dividing by zero.
func (s *StatsService) CourseStats(userID, courseID, enrollmentID uint) (models.CompletionStats, error) {
	var stats models.CompletionStats

	err := s.DB.Model(&models.Lesson{}).
		Where("course_id = ?", courseID).
		Count(&stats.TotalLessons).Error
	if err != nil {
		return stats, err
	}

	err = s.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND enrollment_id = ? AND completed = ?", userID, enrollmentID, true).
		Count(&stats.CompletedLessons).Error
	if err != nil {
		return stats, err
	}

	if stats.TotalLessons > 0 {
		stats.CompletionPercentage = int(math.Round(float64(stats.CompletedLessons) / float64(stats.TotalLessons) * 100))
	}
	return stats, nil
}

// AccountStats aggregates across every course the user touched,
// including progress left behind by past enrollments. Empty sets come
// back as zeros.
func (s *StatsService) AccountStats(userID uint) (models.AccountStats, error) {
	var stats models.AccountStats

	err := s.DB.Model(&models.Enrollment{}).
		Where("user_id = ?", userID).
		Count(&stats.EnrolledCourses).Error
	if err != nil {
		return stats, err
	}

	var totals struct {
		Completed int64
		Minutes   int64
	}
	err = s.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Select("COUNT(*) AS completed, COALESCE(SUM(time_spent), 0) AS minutes").
		Scan(&totals).Error
	if err != nil {
		return stats, err
	}

	stats.CompletedLessons = totals.Completed
	stats.TotalTimeSpentMinutes = totals.Minutes
	return stats, nil
}
