package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title             string   `gorm:"not null" json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	DifficultyLevel   string   `json:"difficulty_level"` // beginner, intermediate, advanced
	EstimatedDuration int      `json:"estimated_duration"`
	InstructorID      uint     `json:"instructor_id"`
	Instructor        User     `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Lessons           []Lesson `json:"lessons,omitempty"`
}

type Lesson struct {
	gorm.Model
	CourseID        uint   `gorm:"not null;uniqueIndex:idx_course_order" json:"course_id"`
	Title           string `gorm:"not null" json:"title"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	OrderIndex      int    `gorm:"uniqueIndex:idx_course_order" json:"order_index"`
	DurationMinutes int    `json:"duration_minutes"`
	VideoURL        string `json:"video_url"`
}
