package validate

import (
	"errors"
	"testing"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcademic_DefaultFixtureIsValid(t *testing.T) {
	assert.NoError(t, Academic(testutil.NewAcademicRecord()))
}

func TestLearner_DefaultFixtureIsValid(t *testing.T) {
	assert.NoError(t, Learner(testutil.NewLearnerRecord()))
}

func TestAcademic_RejectsOutOfRange(t *testing.T) {
	rec := testutil.NewAcademicRecord(
		testutil.WithAvgScore(120),
		testutil.WithTimeliness(-150),
	)
	rec.StudiedCredits = -10

	err := Academic(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, domain.SchemaAcademic, rangeErr.Schema)

	fields := make([]string, len(rangeErr.Violations))
	for i, v := range rangeErr.Violations {
		fields[i] = v.Field
		assert.NotEmpty(t, v.Message)
	}
	assert.Equal(t, []string{"avg_score", "studied_credits", "submission_timeliness"}, fields)
}

func TestAcademic_RejectsUnknownCategory(t *testing.T) {
	rec := testutil.NewAcademicRecord(testutil.WithRegion("Atlantis"))

	err := Academic(rec)

	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), "region")
}

func TestLearner_RejectsOutOfRange(t *testing.T) {
	rec := testutil.NewLearnerRecord(testutil.WithLessonsPerWeek(40))
	rec.WeeksInCourse = 0

	err := Learner(rec)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Len(t, rangeErr.Violations, 2)
	assert.Equal(t, "lessons_per_week", rangeErr.Violations[0].Field)
	assert.Equal(t, "weeks_in_course", rangeErr.Violations[1].Field)
}

func TestLearner_BoundaryValuesAccepted(t *testing.T) {
	rec := testutil.NewLearnerRecord(
		testutil.WithLessonsPerWeek(0),
		testutil.WithLessonScore(100),
	)
	rec.WeeksInCourse = 52
	rec.ExercisesPerLesson = 1

	assert.NoError(t, Learner(rec))
}

func TestRecord_Nil(t *testing.T) {
	err := Record(nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRange)
}

func TestOptions(t *testing.T) {
	assert.Equal(t, []string{"M", "F"}, Options(domain.SchemaAcademic, "gender"))
	assert.Contains(t, Options(domain.SchemaAcademic, "region"), "Wales")
	assert.Contains(t, Options(domain.SchemaLearner, "current_level"), "Intermediate (B1)")
	assert.Nil(t, Options(domain.SchemaAcademic, "avg_score"))
	assert.Nil(t, Options(domain.SchemaAcademic, "no_such_field"))
}
