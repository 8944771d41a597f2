package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/backend/models"
)

func TestEnrollCreatesSingleEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice@example.com")
	course := createCourse(t, db, "Go Basics", 2)

	enrollment, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	enrollments, err := svc.ListEnrollments(user.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, course.ID, enrollments[0].CourseID)
	assert.Equal(t, "Go Basics", enrollments[0].Course.Title)
}

func TestEnrollTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice@example.com")
	course := createCourse(t, db, "Go Basics", 0)

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(user.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice@example.com")

	_, err := svc.Enroll(user.ID, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUnenrollIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice@example.com")
	course := createCourse(t, db, "Go Basics", 0)

	// Deleting an enrollment that never existed is fine.
	require.NoError(t, svc.Unenroll(user.ID, course.ID))

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(user.ID, course.ID))
	require.NoError(t, svc.Unenroll(user.ID, course.ID))

	enrollments, err := svc.ListEnrollments(user.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestListEnrollmentsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice@example.com")
	first := createCourse(t, db, "First Course", 0)
	second := createCourse(t, db, "Second Course", 0)

	older, err := svc.Enroll(user.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(user.ID, second.ID)
	require.NoError(t, err)

	// Push the first enrollment clearly into the past.
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("id = ?", older.ID).
		Update("enrolled_at", time.Now().Add(-time.Hour)).Error)

	enrollments, err := svc.ListEnrollments(user.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, second.ID, enrollments[0].CourseID)
	assert.Equal(t, first.ID, enrollments[1].CourseID)
}
