package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"coursehub/config"
	"coursehub/models"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	assert.Error(t, err)
}

func TestConnectDbMigratesAndSeedsOnce(t *testing.T) {
	cfg := &config.Config{DBDriver: DriverSQLite, DatabaseURL: ":memory:", SeedData: true}

	db, err := ConnectDb(cfg)
	require.NoError(t, err)
	assert.Same(t, db, Database.Db)

	var courses, categories int64
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(7), courses)
	assert.Equal(t, int64(8), categories)

	require.NoError(t, Seed(db))
	require.NoError(t, db.Model(&models.Course{}).Count(&courses).Error)
	assert.Equal(t, int64(7), courses)

	var free models.Course
	require.NoError(t, db.Where("price = ?", 0).First(&free).Error)
	assert.Equal(t, "Introduction to Programming", free.Title)
}

func TestEnrollmentUniqueIndex(t *testing.T) {
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	require.NoError(t, Seed(db))

	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 1, Status: models.EnrollmentActive}).Error)
	err = db.Create(&models.Enrollment{UserID: 1, CourseID: 1, Status: models.EnrollmentActive}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 2, Status: models.EnrollmentActive}).Error)
}

func TestDsnFor(t *testing.T) {
	cfg := &config.Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "3306", DBName: "n"}
	assert.Equal(t, "u:p@tcp(h:3306)/n?charset=utf8mb4&parseTime=True&loc=Local", dsnFor(cfg))

	cfg = &config.Config{DBDriver: DriverPostgres, DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", dsnFor(cfg))

	cfg.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", dsnFor(cfg))
}
