// Package dashboard derives learner statistics from an enrollment set. Nothing here is
// persisted; every read recomputes from the ledger.
package dashboard

import (
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"

	"coursehub/models"
)

// Stats is the payload of GET /api/dashboard/stats.
type Stats struct {
	EnrolledCourses   int `json:"enrolledCourses"`
	ActiveCourses     int `json:"activeCourses"`
	CompletedCourses  int `json:"completedCourses"`
	NotStartedCourses int `json:"notStartedCourses"`
	AverageProgress   int `json:"averageProgress"`
	CompletionRate    int `json:"completionRate"`
	TotalCoursesTime  int `json:"totalCoursesTime"`
}

// MonthActivity is one point of the yearly activity chart. Value is nil for months that
// have not started yet.
type MonthActivity struct {
	Month  string `json:"month"`
	Value  *int   `json:"value"`
	Active bool   `json:"active"`
}

// Compute aggregates enrollments. An enrollment counts as completed when its progress is
// full or its status says so; averages are floored.
func Compute(enrollments []models.Enrollment) Stats {
	stats := Stats{EnrolledCourses: len(enrollments)}
	if len(enrollments) == 0 {
		return stats
	}

	totalProgress := 0
	for _, e := range enrollments {
		totalProgress += e.Progress

		switch {
		case e.Progress >= models.MaxProgress || e.Status == models.EnrollmentCompleted:
			stats.CompletedCourses++
		case e.Status == models.EnrollmentActive:
			stats.ActiveCourses++
			if e.Progress == models.MinProgress {
				stats.NotStartedCourses++
			}
		}

		if e.Course != nil {
			stats.TotalCoursesTime += EstimateHours(e.Course.Duration)
		}
	}

	stats.AverageProgress = totalProgress / len(enrollments)
	stats.CompletionRate = stats.CompletedCourses * 100 / len(enrollments)
	return stats
}

// hours per unit of course duration
var unitHours = map[string]int{
	"hour":  1,
	"day":   2,
	"week":  5,
	"month": 20,
}

// EstimateHours turns a free-text duration such as "8 weeks" into study hours.
// Anything it cannot read counts as zero.
func EstimateHours(duration string) int {
	fields := strings.Fields(strings.ToLower(duration))
	if len(fields) != 2 {
		return 0
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0
	}

	perUnit, ok := unitHours[strings.TrimSuffix(fields[1], "s")]
	if !ok {
		return 0
	}
	return n * perUnit
}

// MonthlyActivity counts enrollments started in each month of the year containing at.
func MonthlyActivity(enrollments []models.Enrollment, at time.Time) []MonthActivity {
	yearStart := now.With(at).BeginningOfYear()
	yearEnd := now.With(at).EndOfYear()
	current := at.Month()

	counts := make([]int, 12)
	for _, e := range enrollments {
		started := e.EnrolledAt.In(at.Location())
		if started.Before(yearStart) || started.After(yearEnd) {
			continue
		}
		counts[started.Month()-1]++
	}

	activity := make([]MonthActivity, 12)
	for i := range activity {
		month := time.Month(i + 1)
		activity[i] = MonthActivity{
			Month:  month.String()[:3],
			Active: month == current,
		}
		if month <= current {
			v := counts[i]
			activity[i].Value = &v
		}
	}
	return activity
}
