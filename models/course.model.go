package models

import "gorm.io/datatypes"

// Difficulty values used by the catalog
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
	DifficultyAllLevels    = "All Levels"
)

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Icon        string `gorm:"not null" json:"icon"`
	CourseCount int    `gorm:"not null;default:0" json:"courseCount"`
}

type Instructor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Avatar string `gorm:"not null" json:"avatar"`
	Bio    string `gorm:"type:text;not null" json:"bio"`
}

// Course represents a purchasable course in the catalog
type Course struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Image        string  `gorm:"not null" json:"image"`
	Price        float64 `gorm:"not null;default:0;check:price >= 0" json:"price"`
	Difficulty   string  `gorm:"not null" json:"difficulty"`
	Duration     string  `gorm:"not null" json:"duration"` // free text, e.g. "8 weeks"
	CategoryID   uint    `gorm:"not null;index" json:"categoryId"`
	InstructorID uint    `gorm:"not null;index" json:"instructorId"`
	IsPopular    bool    `gorm:"default:false" json:"isPopular"`
	IsNew        bool    `gorm:"default:false" json:"isNew"`
	Rating       float64 `gorm:"default:0" json:"rating"`

	// Curriculum is optional; courses without one use the default learning template.
	Curriculum datatypes.JSONType[Curriculum] `json:"-"`

	// Relations
	Category   *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
}

// IsFree reports whether the course can be taken without payment
func (c *Course) IsFree() bool {
	return c.Price == 0
}
