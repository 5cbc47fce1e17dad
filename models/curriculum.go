package models

// StepType enum values
const (
	StepVideo    = "video"
	StepText     = "text"
	StepQuiz     = "quiz"
	StepDownload = "download"
)

// Curriculum is the ordered section/step layout of a course. Only the shape is stored;
// per-step completion is derived from Enrollment.Progress.
type Curriculum struct {
	Sections []CurriculumSection `json:"sections"`
}

type CurriculumSection struct {
	ID    uint             `json:"id"`
	Title string           `json:"title"`
	Steps []CurriculumStep `json:"steps"`
}

type CurriculumStep struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Duration string `json:"duration,omitempty"`
}

// TotalSteps counts steps across all sections
func (c Curriculum) TotalSteps() int {
	total := 0
	for _, s := range c.Sections {
		total += len(s.Steps)
	}
	return total
}
