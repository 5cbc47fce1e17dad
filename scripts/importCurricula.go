package main

import (
	"errors"
	"log"
	"os"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursehub/config"
	"coursehub/database"
	"coursehub/logger"
	"coursehub/models"
	"coursehub/services/learning"
)

// Imports course curricula from a CSV file (default curricula.csv) into Course.Curriculum.
// Courses without a curriculum keep serving the default learning template.
func main() {
	cfg := config.LoadConfig()
	if _, err := logger.Init(cfg); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := database.ConnectDb(cfg)
	if err != nil {
		zap.L().Fatal("failed to connect to the database", zap.Error(err))
	}

	path := "curricula.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		zap.L().Fatal("failed to open CSV file", zap.String("path", path), zap.Error(err))
	}
	defer file.Close()

	res, err := learning.ParseCurriculumCSV(file)
	if err != nil {
		zap.L().Fatal("failed to read CSV", zap.Error(err))
	}
	zap.L().Info("parsed curricula", zap.Int("rows", res.Rows), zap.Int("courses", len(res.Curricula)))

	updated, missing := 0, 0
	for courseID, curriculum := range res.Curricula {
		var course models.Course
		if err := db.Select("id").First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				zap.L().Warn("course not found, skipping", zap.Uint("courseId", courseID))
				missing++
				continue
			}
			zap.L().Fatal("failed to load course", zap.Uint("courseId", courseID), zap.Error(err))
		}

		err := db.Model(&course).Update("curriculum", datatypes.NewJSONType(curriculum)).Error
		if err != nil {
			zap.L().Error("error updating curriculum", zap.Uint("courseId", courseID), zap.Error(err))
			continue
		}
		updated++
	}

	zap.L().Info("=== Import Complete ===",
		zap.Int("updated", updated),
		zap.Int("missingCourses", missing),
		zap.Int("skippedRows", res.Skipped))
}
