package predictor

import (
	"testing"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRiskLevelForCount(t *testing.T) {
	want := []domain.RiskLevel{
		domain.RiskLow, domain.RiskMedium, domain.RiskMedium,
		domain.RiskHigh, domain.RiskHigh, domain.RiskHigh,
	}
	for n, level := range want {
		assert.Equal(t, level, RiskLevelForCount(n), "count=%d", n)
	}
}

func TestAssessRisk_Academic(t *testing.T) {
	f := domain.Features{
		Schema:               domain.SchemaAcademic,
		NumPrevAttempts:      2,
		AvgScore:             35,
		SubmissionTimeliness: 12,
		EngagementCV:         0.5,
		ActivityCount:        30,
	}

	risk := AssessRisk(f)

	assert.Equal(t, 3, risk.Count)
	assert.Equal(t, domain.RiskHigh, risk.Level)
	assert.Equal(t, []string{"Previous attempts", "Low scores", "Late submissions"}, risk.Factors)
}

func TestAssessRisk_LearnerThresholdsAreStricter(t *testing.T) {
	f := domain.Features{
		NumPrevAttempts:      1,
		AvgScore:             45,
		SubmissionTimeliness: 5,
		EngagementCV:         0.6,
		ActivityCount:        30,
		LessonsPerWeek:       2,
	}

	f.Schema = domain.SchemaAcademic
	academic := AssessRisk(f)
	f.Schema = domain.SchemaLearner
	learner := AssessRisk(f)

	assert.Equal(t, 0, academic.Count)
	assert.Equal(t, domain.RiskLow, academic.Level)
	assert.Empty(t, academic.Factors)
	assert.Equal(t, 5, learner.Count)
	assert.Equal(t, domain.RiskHigh, learner.Level)
}

func TestAssessRisk_IndependentOfOutcome(t *testing.T) {
	// A distinction-level student can still carry a risk flag.
	f := academicFeatures()
	f.NumPrevAttempts = 2

	risk := AssessRisk(f)

	assert.Equal(t, 1, risk.Count)
	assert.Equal(t, domain.RiskMedium, risk.Level)
}
