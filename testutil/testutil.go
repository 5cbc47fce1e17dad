// Package testutil builds in-memory databases and fixtures for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursehub/database"
	"coursehub/models"
)

// NewDB returns a migrated, empty in-memory SQLite database that lives for the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user on the given tier.
func CreateUser(t testing.TB, db *gorm.DB, username, tier string, unlimited bool) *models.User {
	t.Helper()

	user := &models.User{
		Username:           username,
		Email:              fmt.Sprintf("%s@example.com", username),
		Password:           "not-a-real-hash",
		SubscriptionTier:   tier,
		HasUnlimitedAccess: unlimited,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateCourse inserts a course, with its category and instructor, at the given price.
func CreateCourse(t testing.TB, db *gorm.DB, title string, price float64, duration string) *models.Course {
	t.Helper()

	category := &models.Category{Name: "Category for " + title, Icon: "code"}
	require.NoError(t, db.Create(category).Error)
	instructor := &models.Instructor{Name: "Instructor for " + title, Avatar: "avatar.png", Bio: "bio"}
	require.NoError(t, db.Create(instructor).Error)

	course := &models.Course{
		Title:        title,
		Description:  "About " + title,
		Image:        "course.png",
		Price:        price,
		Difficulty:   models.DifficultyBeginner,
		Duration:     duration,
		CategoryID:   category.ID,
		InstructorID: instructor.ID,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}
