package models

import "time"

type Waitlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Interest  *string   `json:"interest"`
	CourseID  *uint     `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the singular table name
func (Waitlist) TableName() string {
	return "waitlist"
}

type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Testimonial struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Avatar  string `gorm:"not null" json:"avatar"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Program string `gorm:"not null" json:"program"`
}
