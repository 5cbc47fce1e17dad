package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/models"
)

func enrollment(progress int, status string) models.Enrollment {
	return models.Enrollment{Progress: progress, Status: status}
}

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Compute(nil))
}

func TestComputeMixedSet(t *testing.T) {
	stats := Compute([]models.Enrollment{
		enrollment(0, models.EnrollmentActive),
		enrollment(45, models.EnrollmentActive),
		enrollment(100, models.EnrollmentActive),
	})

	assert.Equal(t, 3, stats.EnrolledCourses)
	assert.Equal(t, 2, stats.ActiveCourses)
	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Equal(t, 1, stats.NotStartedCourses)
	assert.Equal(t, 48, stats.AverageProgress)
	assert.Equal(t, 33, stats.CompletionRate)
}

func TestComputeCountsCompletedStatusAndSkipsCancelled(t *testing.T) {
	stats := Compute([]models.Enrollment{
		enrollment(80, models.EnrollmentCompleted),
		enrollment(0, models.EnrollmentCancelled),
	})

	assert.Equal(t, 1, stats.CompletedCourses)
	assert.Zero(t, stats.ActiveCourses)
	assert.Zero(t, stats.NotStartedCourses)
	assert.Equal(t, 40, stats.AverageProgress)
	assert.Equal(t, 50, stats.CompletionRate)
}

func TestComputeTotalCoursesTime(t *testing.T) {
	stats := Compute([]models.Enrollment{
		{Progress: 10, Status: models.EnrollmentActive, Course: &models.Course{Duration: "8 weeks"}},
		{Progress: 10, Status: models.EnrollmentActive, Course: &models.Course{Duration: "3 hours"}},
		{Progress: 10, Status: models.EnrollmentActive},
	})
	assert.Equal(t, 43, stats.TotalCoursesTime)
}

func TestEstimateHours(t *testing.T) {
	cases := map[string]int{
		"8 weeks":    40,
		"1 week":     5,
		"3 hours":    3,
		"2 Days":     4,
		"2 months":   40,
		"":           0,
		"self-paced": 0,
		"ten weeks":  0,
		"4 years":    0,
	}
	for in, want := range cases {
		assert.Equal(t, want, EstimateHours(in), in)
	}
}

func TestMonthlyActivity(t *testing.T) {
	at := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	enrollments := []models.Enrollment{
		{EnrolledAt: time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)},
		{EnrolledAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{EnrolledAt: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{EnrolledAt: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}

	activity := MonthlyActivity(enrollments, at)
	require.Len(t, activity, 12)

	assert.Equal(t, "Jan", activity[0].Month)
	require.NotNil(t, activity[0].Value)
	assert.Equal(t, 1, *activity[0].Value)
	require.NotNil(t, activity[1].Value)
	assert.Equal(t, 0, *activity[1].Value)
	require.NotNil(t, activity[2].Value)
	assert.Equal(t, 2, *activity[2].Value)
	assert.True(t, activity[2].Active)

	for _, m := range activity[3:] {
		assert.Nil(t, m.Value, m.Month)
		assert.False(t, m.Active)
	}
	assert.Equal(t, "Dec", activity[11].Month)
}
