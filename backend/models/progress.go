package models

import "time"

// LessonProgress holds one row per (user, lesson, enrollment). Repeated
// reports merge into the same row: time_spent accumulates, completed is
// overwritten only when a report sets it explicitly.
type LessonProgress struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_user_lesson_enrollment" json:"user_id"`
	LessonID     uint      `gorm:"not null;uniqueIndex:idx_user_lesson_enrollment" json:"lesson_id"`
	EnrollmentID uint      `gorm:"not null;uniqueIndex:idx_user_lesson_enrollment" json:"enrollment_id"`
	Completed    bool      `gorm:"default:false" json:"completed"`
	TimeSpent    int       `gorm:"default:0" json:"time_spent"` // minutes
	LastAccessed time.Time `json:"last_accessed"`
	Lesson       Lesson    `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
}

type CompletionStats struct {
	CompletedLessons     int64 `json:"completed_lessons"`
	TotalLessons         int64 `json:"total_lessons"`
	CompletionPercentage int   `json:"completion_percentage"`
}

type AccountStats struct {
	EnrolledCourses       int64 `json:"enrolled_courses"`
	CompletedLessons      int64 `json:"completed_lessons"`
	TotalTimeSpentMinutes int64 `json:"total_time_spent_minutes"`
}
