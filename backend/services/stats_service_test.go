package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseStatsEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	user, course, enrollment := enrolledFixture(t, db, 0)

	stats, err := NewStatsService(db).CourseStats(user.ID, course.ID, enrollment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalLessons)
	assert.EqualValues(t, 0, stats.CompletedLessons)
	assert.Equal(t, 0, stats.CompletionPercentage)
}

func TestCourseStatsRounding(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	user, course, enrollment := enrolledFixture(t, db, 3)

	_, err := svc.ReportProgress(user.ID, course.Lessons[0].ID, ProgressUpdate{Completed: boolPtr(true)})
	require.NoError(t, err)

	stats, err := svc.Stats.CourseStats(user.ID, course.ID, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, stats.CompletionPercentage)

	_, err = svc.ReportProgress(user.ID, course.Lessons[1].ID, ProgressUpdate{Completed: boolPtr(true)})
	require.NoError(t, err)

	stats, err = svc.Stats.CourseStats(user.ID, course.ID, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 67, stats.CompletionPercentage)
}

func TestCourseStatsIgnoresIncompleteRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressService(db)
	user, course, enrollment := enrolledFixture(t, db, 2)

	_, err := svc.ReportProgress(user.ID, course.Lessons[0].ID, ProgressUpdate{TimeSpent: intPtr(20)})
	require.NoError(t, err)

	stats, err := svc.Stats.CourseStats(user.ID, course.ID, enrollment.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.CompletedLessons)
	assert.EqualValues(t, 2, stats.TotalLessons)
	assert.Equal(t, 0, stats.CompletionPercentage)
}

func TestAccountStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "alice@example.com")

	stats, err := NewStatsService(db).AccountStats(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.EnrolledCourses)
	assert.EqualValues(t, 0, stats.CompletedLessons)
	assert.EqualValues(t, 0, stats.TotalTimeSpentMinutes)
}

func TestAccountStatsAggregatesAcrossCourses(t *testing.T) {
	db := newTestDB(t)
	enrollSvc := NewEnrollmentService(db)
	svc := NewProgressService(db)
	user := createUser(t, db, "alice@example.com")
	first := createCourse(t, db, "First Course", 2)
	second := createCourse(t, db, "Second Course", 2)

	_, err := enrollSvc.Enroll(user.ID, first.ID)
	require.NoError(t, err)
	_, err = enrollSvc.Enroll(user.ID, second.ID)
	require.NoError(t, err)

	_, err = svc.ReportProgress(user.ID, first.Lessons[0].ID, ProgressUpdate{
		Completed: boolPtr(true), TimeSpent: intPtr(30),
	})
	require.NoError(t, err)
	_, err = svc.ReportProgress(user.ID, second.Lessons[1].ID, ProgressUpdate{
		Completed: boolPtr(true), TimeSpent: intPtr(45),
	})
	require.NoError(t, err)

	// Started but not completed; must not count toward the totals.
	_, err = svc.ReportProgress(user.ID, second.Lessons[0].ID, ProgressUpdate{TimeSpent: intPtr(99)})
	require.NoError(t, err)

	stats, err := svc.Stats.AccountStats(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.EnrolledCourses)
	assert.EqualValues(t, 2, stats.CompletedLessons)
	assert.EqualValues(t, 75, stats.TotalTimeSpentMinutes)
}
