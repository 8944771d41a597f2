package models

import "time"

// Enrollment ties a user to a course. One row per (user, course); the
// composite unique index is the authoritative guard against double
// enrollment. No soft delete: unenrolling removes the row for good.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"user_id"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"course_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	Course     Course    `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
