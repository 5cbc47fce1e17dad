package learning

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursehub/models"
)

// CurriculumColumns is the header ParseCurriculumCSV expects, in any order.
var CurriculumColumns = []string{"courseId", "sectionId", "sectionTitle", "stepId", "stepTitle", "type", "content", "duration"}

var stepTypes = map[string]bool{
	models.StepVideo:    true,
	models.StepText:     true,
	models.StepQuiz:     true,
	models.StepDownload: true,
}

// ImportResult is the outcome of ParseCurriculumCSV.
type ImportResult struct {
	Curricula map[uint]models.Curriculum
	Rows      int
	Skipped   int
}

// ParseCurriculumCSV reads one step per row and groups steps into sections per course,
// keeping file order. Rows without ids, with an unknown step type or repeating a step id
// already seen for the same course are skipped.
func ParseCurriculumCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headerIndex := make(map[string]int, len(header))
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{"courseId", "sectionId", "stepId", "stepTitle", "type"} {
		if _, ok := headerIndex[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	res := &ImportResult{Curricula: map[uint]models.Curriculum{}}
	seenSteps := map[uint]map[uint]bool{}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", res.Rows+2, err)
		}
		res.Rows++

		courseID := parseID(getField(row, headerIndex, "courseId"))
		sectionID := parseID(getField(row, headerIndex, "sectionId"))
		stepID := parseID(getField(row, headerIndex, "stepId"))
		stepType := strings.ToLower(getField(row, headerIndex, "type"))
		if courseID == 0 || sectionID == 0 || stepID == 0 || !stepTypes[stepType] {
			res.Skipped++
			continue
		}
		if seenSteps[courseID] == nil {
			seenSteps[courseID] = map[uint]bool{}
		}
		if seenSteps[courseID][stepID] {
			res.Skipped++
			continue
		}
		seenSteps[courseID][stepID] = true

		step := models.CurriculumStep{
			ID:       stepID,
			Title:    getField(row, headerIndex, "stepTitle"),
			Type:     stepType,
			Content:  getField(row, headerIndex, "content"),
			Duration: getField(row, headerIndex, "duration"),
		}

		curriculum := res.Curricula[courseID]
		idx := -1
		for i, s := range curriculum.Sections {
			if s.ID == sectionID {
				idx = i
				break
			}
		}
		if idx < 0 {
			curriculum.Sections = append(curriculum.Sections, models.CurriculumSection{
				ID:    sectionID,
				Title: getField(row, headerIndex, "sectionTitle"),
			})
			idx = len(curriculum.Sections) - 1
		}
		curriculum.Sections[idx].Steps = append(curriculum.Sections[idx].Steps, step)
		res.Curricula[courseID] = curriculum
	}

	return res, nil
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

func parseID(s string) uint {
	val, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint(val)
}
