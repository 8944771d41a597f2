package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/backend/models"
	"learnhub/backend/utils"
)

// newTestDB opens a fresh in-memory database per test. cache=shared
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "x", FullName: "Test User", Role: "student"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string, lessonCount int) models.Course {
	t.Helper()

	course := models.Course{Title: title, Description: "test course"}
	for i := 1; i <= lessonCount; i++ {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:           fmt.Sprintf("Lesson %d", i),
			OrderIndex:      i,
			DurationMinutes: 30,
		})
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
