package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/features"
	"github.com/alexanderramin/educare/internal/predictor"
	"github.com/alexanderramin/educare/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, raw domain.RawInput) *contract.PredictResponse {
	t.Helper()
	f, err := features.Normalize(raw)
	require.NoError(t, err)
	res := predictor.New(nil, nil).Evaluate(f)
	return contract.ResponseFromPrediction(&domain.Prediction{
		ID:            "0123456789abcdef",
		Schema:        raw.Schema(),
		Outcome:       res.Scored.Outcome,
		RawScore:      res.Scored.RawScore,
		Persona:       res.Persona,
		Risk:          res.Risk,
		Feedback:      res.Feedback,
		Contributions: res.Contributions,
		CreatedAt:     time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC),
	}, true)
}

func TestFormatPredictionAcademic(t *testing.T) {
	resp := evaluate(t, testutil.NewAcademicRecord())
	out := FormatPrediction(resp)

	assert.Contains(t, out, "ACADEMIC PREDICTION")
	assert.Contains(t, out, resp.Outcome.Label)
	assert.Contains(t, out, resp.Persona.Name)
	assert.Contains(t, out, "OUTCOME PROBABILITIES")
	assert.Contains(t, out, "ACTION PLAN")
	assert.Contains(t, out, "Assessment Score")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "not saved")
	for _, o := range domain.Outcomes {
		assert.Contains(t, out, predictor.OutcomeLabel(domain.SchemaAcademic, o))
	}
}

func TestFormatPredictionLearnerLabels(t *testing.T) {
	resp := evaluate(t, testutil.NewLearnerRecord(testutil.WithLessonScore(40)))
	resp.Saved = false
	resp.Notices = []string{"using heuristic predictions: model.json missing"}
	out := FormatPrediction(resp)

	assert.Contains(t, out, "LEARNER PREDICTION")
	assert.Contains(t, out, "At Risk (D/F)")
	assert.Contains(t, out, "Excellent Progress (A/A+)")
	assert.Contains(t, out, "NOTICE: using heuristic predictions")
	assert.Contains(t, out, "not saved")
	assert.Contains(t, out, "RESOURCES")
}

func TestFormatHistoryList(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	p := testutil.NewTestPrediction(domain.SchemaAcademic, domain.OutcomePass)
	p.CreatedAt = now.Add(-5 * time.Minute)

	out := FormatHistoryList(&contract.HistoryListResponse{
		Predictions: []domain.PredictionSummary{p.Summary()},
	}, now)

	assert.Contains(t, out, "PERSONA")
	assert.Contains(t, out, p.ID[:8])
	assert.Contains(t, out, "Engaged Achievers")
	assert.Contains(t, out, "78%")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "LOW RISK")
}

func TestFormatHistoryListEmpty(t *testing.T) {
	out := FormatHistoryList(&contract.HistoryListResponse{}, time.Now())
	assert.Contains(t, out, "No saved predictions.")
}

func TestFormatHistoryShow(t *testing.T) {
	p := testutil.NewTestPrediction(domain.SchemaAcademic, domain.OutcomeFail)
	resp := &contract.HistoryShowResponse{
		Prediction: contract.ResponseFromPrediction(p, true),
		Input:      testutil.NewAcademicRecord(testutil.WithRegion("Wales")),
	}

	out := FormatHistoryShow(resp)
	assert.Contains(t, out, "ACADEMIC INPUT")
	assert.Contains(t, out, "region: Wales")
	assert.Contains(t, out, "avg_score:")

	resp.Input = nil
	assert.Contains(t, FormatHistoryShow(resp), "Input record not stored.")
}
