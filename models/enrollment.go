package models

import "time"

// EnrollmentStatus enum values
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Progress bounds, inclusive
const (
	MinProgress = 0
	MaxProgress = 100
)

// Enrollment binds one user to one course. The composite unique index is what keeps
// concurrent enroll requests from creating duplicates.
type Enrollment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID    uint       `gorm:"not null;uniqueIndex:idx_enrollment_user_course;index" json:"courseId"`
	EnrolledAt  time.Time  `gorm:"not null" json:"enrolledAt"`
	Status      string     `gorm:"not null;type:varchar(20);default:'active'" json:"status"`
	Progress    int        `gorm:"not null;default:0" json:"progress"` // 0-100 percentage
	CompletedAt *time.Time `json:"completedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// ApplyProgress sets progress and keeps status consistent with it: a full course is
// completed, anything less is active. Cancelled enrollments keep their status.
func (e *Enrollment) ApplyProgress(progress int, at time.Time) {
	e.Progress = progress
	if e.Status == EnrollmentCancelled {
		return
	}
	if progress >= MaxProgress {
		e.Status = EnrollmentCompleted
		if e.CompletedAt == nil {
			e.CompletedAt = &at
		}
		return
	}
	e.Status = EnrollmentActive
	e.CompletedAt = nil
}
