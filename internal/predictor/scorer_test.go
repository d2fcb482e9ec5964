package predictor

import (
	"errors"
	"testing"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func academicFeatures() domain.Features {
	return domain.Features{
		Schema:               domain.SchemaAcademic,
		AvgScore:             85,
		EngagementCV:         0.2,
		ActivityDiversity:    0.8,
		ActivityCount:        16,
		SubmissionTimeliness: -2,
		NumPrevAttempts:      0,
	}
}

func TestScore_EndToEndDistinction(t *testing.T) {
	f := academicFeatures()

	scored := NewScorer(nil).Score(f)

	assert.InDelta(t, 0.87, scored.RawScore, 1e-9)
	assert.Equal(t, domain.OutcomeDistinction, scored.Outcome.Outcome)
	assert.Equal(t, "Distinction", scored.Outcome.Label)
	assert.Equal(t, 0.85, scored.Outcome.Confidence)
	assert.Equal(t, domain.SourceHeuristic, scored.Outcome.Source)
	assert.Empty(t, scored.Notice)
	assert.Nil(t, scored.ModelProbabilities)
}

func TestScore_LearnerLabels(t *testing.T) {
	f := academicFeatures()
	f.Schema = domain.SchemaLearner

	scored := NewScorer(nil).Score(f)

	assert.Equal(t, "Excellent Progress (A/A+)", scored.Outcome.Label)
}

func TestCompositeScore_BoundaryInputsStayInRange(t *testing.T) {
	for _, score := range []float64{0, 100} {
		for _, cv := range []float64{0, 1} {
			for _, div := range []float64{0, 1} {
				for _, timeliness := range []float64{-100, 50} {
					for _, prev := range []float64{0, 5} {
						f := domain.Features{
							AvgScore:             score,
							EngagementCV:         cv,
							ActivityDiversity:    div,
							SubmissionTimeliness: timeliness,
							NumPrevAttempts:      prev,
						}
						raw := CompositeScore(f, DefaultWeights())
						assert.GreaterOrEqual(t, raw, 0.0)
						assert.LessOrEqual(t, raw, 1.0+1e-12)
					}
				}
			}
		}
	}
}

func TestBucket_Boundaries(t *testing.T) {
	tests := []struct {
		raw        float64
		outcome    domain.Outcome
		confidence float64
	}{
		{1.0, domain.OutcomeDistinction, 0.85},
		{0.75, domain.OutcomeDistinction, 0.85},
		{0.7499, domain.OutcomePass, 0.78},
		{0.55, domain.OutcomePass, 0.78},
		{0.5499, domain.OutcomeFail, 0.72},
		{0.30, domain.OutcomeFail, 0.72},
		{0.2999, domain.OutcomeWithdrawn, 0.68},
		{0, domain.OutcomeWithdrawn, 0.68},
		{-0.5, domain.OutcomeWithdrawn, 0.68},
	}
	for _, tt := range tests {
		outcome, confidence := Bucket(tt.raw)
		assert.Equal(t, tt.outcome, outcome, "raw=%v", tt.raw)
		assert.Equal(t, tt.confidence, confidence, "raw=%v", tt.raw)
	}
}

func TestScore_MonotonicInAvgScore(t *testing.T) {
	scorer := NewScorer(nil)
	for _, cv := range []float64{0, 0.3, 0.7, 1} {
		for _, prev := range []float64{0, 2} {
			f := domain.Features{
				EngagementCV:         cv,
				ActivityDiversity:    0.5,
				SubmissionTimeliness: 3,
				NumPrevAttempts:      prev,
			}
			prevRank := -1
			for score := 0.0; score <= 100; score += 2.5 {
				f.AvgScore = score
				rank := scorer.Score(f).Outcome.Outcome.Rank()
				if prevRank >= 0 {
					assert.LessOrEqual(t, rank, prevRank,
						"outcome worsened at score=%v cv=%v prev=%v", score, cv, prev)
				}
				prevRank = rank
			}
		}
	}
}

type stubModel struct {
	pred ModelPrediction
	err  error
}

func (m stubModel) PredictOutcome(domain.Features) (ModelPrediction, error) {
	return m.pred, m.err
}

func TestScore_UsesModelWhenAvailable(t *testing.T) {
	probs := domain.Probabilities{
		domain.OutcomeDistinction: 0.1,
		domain.OutcomePass:        0.6,
		domain.OutcomeFail:        0.2,
		domain.OutcomeWithdrawn:   0.1,
	}
	scorer := NewScorer(stubModel{pred: ModelPrediction{
		Outcome:       domain.OutcomePass,
		Confidence:    0.6,
		Probabilities: probs,
	}})

	scored := scorer.Score(academicFeatures())

	assert.Equal(t, domain.OutcomePass, scored.Outcome.Outcome)
	assert.Equal(t, domain.SourceModel, scored.Outcome.Source)
	assert.Equal(t, 0.6, scored.Outcome.Confidence)
	assert.Equal(t, probs, scored.ModelProbabilities)
	assert.InDelta(t, 0.87, scored.RawScore, 1e-9)
}

func TestScore_ModelErrorFallsBack(t *testing.T) {
	scorer := NewScorer(stubModel{err: errors.New("feature mismatch")})

	scored := scorer.Score(academicFeatures())

	assert.Equal(t, domain.SourceHeuristic, scored.Outcome.Source)
	assert.Equal(t, domain.OutcomeDistinction, scored.Outcome.Outcome)
	assert.Contains(t, scored.Notice, "feature mismatch")
}

func TestContributions_SumMatchesRawScoreWhenFactorsSatisfied(t *testing.T) {
	f := academicFeatures()

	contribs := Contributions(f)
	require.Len(t, contribs, 5)

	var total float64
	for _, c := range contribs {
		total += c.Impact
	}
	assert.InDelta(t, CompositeScore(f, DefaultWeights()), total, 1e-9)
}

func TestContributions_UnsatisfiedBooleansCountHalf(t *testing.T) {
	f := academicFeatures()
	f.SubmissionTimeliness = 4
	f.NumPrevAttempts = 1

	contribs := Contributions(f)

	assert.InDelta(t, 0.075, contribs[3].Impact, 1e-9)
	assert.InDelta(t, 0.05, contribs[4].Impact, 1e-9)
}
