package services

import (
	"errors"

	"gorm.io/gorm"

	"learnhub/backend/models"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll creates an enrollment for the user in the given course. The
// lookup before the insert only serves the common case a friendly error;
// the unique index on (user_id, course_id) is what actually prevents
// duplicates under concurrent requests.
func (s *EnrollmentService) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// Unenroll removes the enrollment if it exists. Deleting a missing
// enrollment is not an error.
func (s *EnrollmentService) Unenroll(userID, courseID uint) error {
	return s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.Enrollment{}).Error
}

// ListEnrollments returns the user's enrollments, most recent first,
// with the course and its instructor preloaded.
func (s *EnrollmentService) ListEnrollments(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.DB.Where("user_id = ?", userID).
		Preload("Course").
		Preload("Course.Instructor").
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
