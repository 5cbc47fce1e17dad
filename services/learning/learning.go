// Package learning reconstructs per-step completion from an enrollment's scalar progress.
//
// Only Enrollment.Progress is persisted. Step i (1-based) of a curriculum with T steps
// counts as completed once progress reaches Threshold(i, T) = ceil(i*100/T), so lowering
// progress un-completes the later steps again.
package learning

import "coursehub/models"

// StepView is a curriculum step annotated with its derived completion flag.
type StepView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	Duration    string `json:"duration,omitempty"`
	Threshold   int    `json:"threshold"`
	IsCompleted bool   `json:"isCompleted"`
}

type SectionView struct {
	ID    uint       `json:"id"`
	Title string     `json:"title"`
	Steps []StepView `json:"steps"`
}

// Threshold is the progress percentage at which the step at position (1-based) of total
// steps counts as completed.
func Threshold(position, total int) int {
	if total <= 0 || position <= 0 {
		return 0
	}
	if position >= total {
		return models.MaxProgress
	}
	return (position*models.MaxProgress + total - 1) / total
}

// StepIncrement is how far completing one step advances progress for a curriculum of
// total steps.
func StepIncrement(total int) int {
	return Threshold(1, total)
}

// Build lays the curriculum out with isCompleted derived from progress.
func Build(curriculum models.Curriculum, progress int) []SectionView {
	total := curriculum.TotalSteps()
	sections := make([]SectionView, 0, len(curriculum.Sections))

	position := 0
	for _, section := range curriculum.Sections {
		view := SectionView{ID: section.ID, Title: section.Title, Steps: make([]StepView, 0, len(section.Steps))}
		for _, step := range section.Steps {
			position++
			threshold := Threshold(position, total)
			view.Steps = append(view.Steps, StepView{
				ID:          step.ID,
				Title:       step.Title,
				Type:        step.Type,
				Content:     step.Content,
				Duration:    step.Duration,
				Threshold:   threshold,
				IsCompleted: progress >= threshold,
			})
		}
		sections = append(sections, view)
	}
	return sections
}

// Locate returns the 1-based position of stepID across the curriculum and the total
// number of steps.
func Locate(curriculum models.Curriculum, stepID uint) (position, total int, ok bool) {
	total = curriculum.TotalSteps()
	for _, section := range curriculum.Sections {
		for _, step := range section.Steps {
			position++
			if step.ID == stepID {
				return position, total, true
			}
		}
	}
	return 0, total, false
}

// CompletedSteps counts the steps progress has reached.
func CompletedSteps(total, progress int) int {
	done := 0
	for i := 1; i <= total; i++ {
		if progress >= Threshold(i, total) {
			done++
		}
	}
	return done
}
