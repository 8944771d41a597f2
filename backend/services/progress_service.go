package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnhub/backend/models"
)

type ProgressService struct {
	DB    *gorm.DB
	Stats *StatsService
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{DB: db, Stats: NewStatsService(db)}
}

// ProgressUpdate carries an incoming progress report. Both fields are
// pointers so that "not provided" is distinguishable from zero values:
// a nil Completed leaves the stored flag untouched, a nil TimeSpent
// adds nothing.
type ProgressUpdate struct {
	Completed *bool `json:"completed"`
	TimeSpent *int  `json:"time_spent"`
}

// ReportProgress upserts the progress row for (user, lesson, enrollment).
// The merge runs as a single INSERT ... ON CONFLICT DO UPDATE so the
// time_spent accumulation is evaluated by the database; two concurrent
// reports for the same lesson cannot lose each other's minutes.
func (s *ProgressService) ReportProgress(userID, lessonID uint, upd ProgressUpdate) (*models.LessonProgress, error) {
	if upd.TimeSpent != nil && *upd.TimeSpent < 0 {
		return nil, ErrNegativeTimeSpent
	}

	var lesson models.Lesson
	if err := s.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	var enrollment models.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, lesson.CourseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	delta := 0
	if upd.TimeSpent != nil {
		delta = *upd.TimeSpent
	}
	now := time.Now()

	assignments := map[string]interface{}{
		"time_spent":    gorm.Expr("time_spent + ?", delta),
		"last_accessed": now,
	}
	if upd.Completed != nil {
		assignments["completed"] = *upd.Completed
	}

	progress := models.LessonProgress{
		UserID:       userID,
		LessonID:     lessonID,
		EnrollmentID: enrollment.ID,
		Completed:    upd.Completed != nil && *upd.Completed,
		TimeSpent:    delta,
		LastAccessed: now,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "lesson_id"}, {Name: "enrollment_id"},
		},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the merged row, not the insert values.
	var merged models.LessonProgress
	err = s.DB.Where("user_id = ? AND lesson_id = ? AND enrollment_id = ?",
		userID, lessonID, enrollment.ID).First(&merged).Error
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// GetCourseProgress returns the user's progress rows for the course,
// each with its lesson summary, plus the course completion stats.
func (s *ProgressService) GetCourseProgress(userID, courseID uint) ([]models.LessonProgress, models.CompletionStats, error) {
	var stats models.CompletionStats

	var enrollment models.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stats, ErrNotEnrolled
		}
		return nil, stats, err
	}

	var progress []models.LessonProgress
	err = s.DB.Where("user_id = ? AND enrollment_id = ?", userID, enrollment.ID).
		Preload("Lesson").
		Find(&progress).Error
	if err != nil {
		return nil, stats, err
	}

	stats, err = s.Stats.CourseStats(userID, courseID, enrollment.ID)
	if err != nil {
		return nil, stats, err
	}
	return progress, stats, nil
}
