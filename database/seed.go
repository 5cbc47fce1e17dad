package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/models"
)

// Seed fills an empty catalog with sample categories, instructors, courses and testimonials.
// It is a no-op once any category exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		zap.L().Info("database already has data, skipping initialization")
		return nil
	}

	zap.L().Info("initializing database with sample data")

	return db.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Programming", Icon: "code", CourseCount: 24},
			{Name: "Data Science", Icon: "chart-line", CourseCount: 18},
			{Name: "Design", Icon: "paint-brush", CourseCount: 15},
			{Name: "Business", Icon: "briefcase", CourseCount: 12},
			{Name: "Marketing", Icon: "bullhorn", CourseCount: 10},
			{Name: "IT & Software", Icon: "cogs", CourseCount: 22},
			{Name: "Languages", Icon: "language", CourseCount: 8},
			{Name: "Personal Development", Icon: "lightbulb", CourseCount: 14},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		instructors := []models.Instructor{
			{
				Name:   "John Smith",
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Bio:    "Senior Web Developer with 10+ years of experience",
			},
			{
				Name:   "Sarah Johnson",
				Avatar: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Bio:    "Data Scientist and Machine Learning Engineer",
			},
			{
				Name:   "Michael Chen",
				Avatar: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Bio:    "UX/UI Designer with experience at top tech companies",
			},
		}
		if err := tx.Create(&instructors).Error; err != nil {
			return err
		}

		programming, dataScience, design := categories[0].ID, categories[1].ID, categories[2].ID
		john, sarah, michael := instructors[0].ID, instructors[1].ID, instructors[2].ID

		courses := []models.Course{
			{
				Title:       "Web Development Bootcamp",
				Description: "Learn modern web development with JavaScript, React, and Node.js in this comprehensive bootcamp.",
				Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       499, Difficulty: models.DifficultyIntermediate, Duration: "8 weeks",
				CategoryID: programming, InstructorID: john, IsPopular: true, Rating: 4.9,
			},
			{
				Title:       "Data Science Fundamentals",
				Description: "Master the core concepts of data analysis, Python programming, and machine learning algorithms.",
				Image:       "https://images.unsplash.com/photo-1551434678-e076c223a692?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       399, Difficulty: models.DifficultyBeginner, Duration: "6 weeks",
				CategoryID: dataScience, InstructorID: sarah, IsNew: true, Rating: 4.7,
			},
			{
				Title:       "UX/UI Design Masterclass",
				Description: "Learn the principles of user experience and interface design to create beautiful, functional web applications.",
				Image:       "https://images.unsplash.com/photo-1545235617-9465d2a55698?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       549, Difficulty: models.DifficultyAllLevels, Duration: "10 weeks",
				CategoryID: design, InstructorID: michael, Rating: 4.8,
			},
			{
				Title:       "JavaScript for Beginners",
				Description: "Start your programming journey with JavaScript, the language of the web.",
				Image:       "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       299, Difficulty: models.DifficultyBeginner, Duration: "4 weeks",
				CategoryID: programming, InstructorID: john, IsPopular: true, Rating: 4.6,
			},
			{
				Title:       "Advanced React & Redux",
				Description: "Take your React skills to the next level with advanced patterns and Redux state management.",
				Image:       "https://images.unsplash.com/photo-1633356122102-3fe601e05bd2?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       449, Difficulty: models.DifficultyAdvanced, Duration: "6 weeks",
				CategoryID: programming, InstructorID: john, IsNew: true, Rating: 4.9,
			},
			{
				Title:       "Python for Data Analysis",
				Description: "Learn how to use Python for data manipulation, visualization, and analysis.",
				Image:       "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       349, Difficulty: models.DifficultyIntermediate, Duration: "5 weeks",
				CategoryID: dataScience, InstructorID: sarah, IsPopular: true, Rating: 4.8,
			},
			{
				Title:       "Introduction to Programming",
				Description: "A free first look at programming concepts for absolute beginners.",
				Image:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?auto=format&fit=crop&w=1200&h=600&q=80",
				Price:       0, Difficulty: models.DifficultyBeginner, Duration: "2 weeks",
				CategoryID: programming, InstructorID: john, IsNew: true, Rating: 4.5,
			},
		}
		if err := tx.Create(&courses).Error; err != nil {
			return err
		}

		testimonials := []models.Testimonial{
			{
				Name:    "Emily Walker",
				Avatar:  "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Rating:  5,
				Text:    "The Web Development Bootcamp was exactly what I needed to transition into tech. Within 3 months of completing the course, I landed my first developer job.",
				Program: "Web Development Graduate",
			},
			{
				Name:    "David Kim",
				Avatar:  "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Rating:  4,
				Text:    "The Data Science course gave me practical skills I use daily. The instructors were knowledgeable and the projects helped build a strong portfolio.",
				Program: "Data Science Graduate",
			},
			{
				Name:    "Jessica Rodriguez",
				Avatar:  "https://images.unsplash.com/photo-1517841905240-472988babdf9?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
				Rating:  5,
				Text:    "I took the UX/UI Design Masterclass while working full-time, and the flexible schedule was perfect. I've completely redesigned our product based on what I learned.",
				Program: "UX/UI Design Graduate",
			},
		}
		if err := tx.Create(&testimonials).Error; err != nil {
			return err
		}

		zap.L().Info("database initialized successfully",
			zap.Int("categories", len(categories)),
			zap.Int("courses", len(courses)))
		return nil
	})
}
