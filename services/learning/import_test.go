package learning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const curriculaCSV = `courseId,sectionId,sectionTitle,stepId,stepTitle,type,content,duration
1,1,Basics,1,Intro,video,Hello,3:00
1,1,Basics,2,Reading,text,Read this,
1,2,Practice,3,Quiz,quiz,Answer,
2,1,Only,1,Welcome,VIDEO,Hi,1:00
1,2,Practice,3,Duplicate,quiz,Again,
1,2,Practice,4,Bad type,podcast,,
,1,Orphan,9,No course,text,,
`

func TestParseCurriculumCSV(t *testing.T) {
	res, err := ParseCurriculumCSV(strings.NewReader(curriculaCSV))
	require.NoError(t, err)

	assert.Equal(t, 7, res.Rows)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Curricula, 2)

	first := res.Curricula[1]
	require.Len(t, first.Sections, 2)
	assert.Equal(t, "Basics", first.Sections[0].Title)
	assert.Len(t, first.Sections[0].Steps, 2)
	assert.Equal(t, "3:00", first.Sections[0].Steps[0].Duration)
	assert.Equal(t, 3, first.TotalSteps())

	position, total, ok := Locate(first, 3)
	require.True(t, ok)
	assert.Equal(t, 3, position)
	assert.Equal(t, 3, total)

	second := res.Curricula[2]
	require.Len(t, second.Sections, 1)
	assert.Equal(t, "video", second.Sections[0].Steps[0].Type)
}

func TestParseCurriculumCSVMissingColumn(t *testing.T) {
	_, err := ParseCurriculumCSV(strings.NewReader("courseId,stepId\n1,1\n"))
	assert.Error(t, err)

	_, err = ParseCurriculumCSV(strings.NewReader(""))
	assert.Error(t, err)
}
