package learning

import (
	"fmt"

	"coursehub/models"
)

// ForCourse returns the course's stored curriculum, or the default template when the
// course has none.
func ForCourse(course *models.Course) models.Curriculum {
	if course != nil {
		if stored := course.Curriculum.Data(); stored.TotalSteps() > 0 {
			return stored
		}
	}
	title := "this course"
	if course != nil && course.Title != "" {
		title = course.Title
	}
	return DefaultCurriculum(title)
}

// DefaultCurriculum is the 4 section / 10 step layout used for every course that does not
// define its own.
func DefaultCurriculum(title string) models.Curriculum {
	return models.Curriculum{Sections: []models.CurriculumSection{
		{
			ID:    1,
			Title: "Getting Started",
			Steps: []models.CurriculumStep{
				{ID: 1, Title: "Welcome to the Course", Type: models.StepVideo, Content: fmt.Sprintf("An overview of what you will learn in %s.", title), Duration: "5:30"},
				{ID: 2, Title: "Setting Up Your Environment", Type: models.StepText, Content: "Install the tools used throughout the course."},
				{ID: 3, Title: "Course Resources", Type: models.StepDownload, Content: "Slides, exercise files and reference sheets."},
			},
		},
		{
			ID:    2,
			Title: "Core Concepts",
			Steps: []models.CurriculumStep{
				{ID: 4, Title: "Fundamentals", Type: models.StepVideo, Content: "The building blocks everything else relies on.", Duration: "12:45"},
				{ID: 5, Title: "Key Terminology", Type: models.StepText, Content: "A glossary of the terms used in later lessons."},
				{ID: 6, Title: "Concepts Check", Type: models.StepQuiz, Content: "Test your understanding of the fundamentals."},
			},
		},
		{
			ID:    3,
			Title: "Hands-on Practice",
			Steps: []models.CurriculumStep{
				{ID: 7, Title: "Guided Project", Type: models.StepVideo, Content: "Build a small project step by step.", Duration: "18:20"},
				{ID: 8, Title: "Practice Exercises", Type: models.StepDownload, Content: "Exercises with worked solutions."},
			},
		},
		{
			ID:    4,
			Title: "Wrapping Up",
			Steps: []models.CurriculumStep{
				{ID: 9, Title: "Final Assessment", Type: models.StepQuiz, Content: "Show what you have learned."},
				{ID: 10, Title: "Next Steps", Type: models.StepText, Content: "Where to go after finishing the course."},
			},
		},
	}}
}
