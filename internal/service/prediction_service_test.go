package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/db"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/features"
	"github.com/alexanderramin/educare/internal/predictor"
	"github.com/alexanderramin/educare/internal/testutil"
	"github.com/alexanderramin/educare/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_AcademicHighAchiever(t *testing.T) {
	f := newFixture(t)
	rec := testutil.NewAcademicRecord(
		testutil.WithAvgScore(85),
		testutil.WithConsistency(0.8),
		testutil.WithActivityCount(16),
		testutil.WithTimeliness(-2),
	)

	resp, err := f.predict.Predict(context.Background(), contract.NewAcademicRequest(rec))
	require.NoError(t, err)

	// 0.4*0.85 + 0.2*0.8 + 0.15*0.8 + 0.15 + 0.10
	assert.InDelta(t, 0.87, resp.RawScore, 1e-9)
	assert.Equal(t, domain.OutcomeDistinction, resp.Outcome.Outcome)
	assert.Equal(t, 0.85, resp.Outcome.Confidence)
	assert.Equal(t, domain.PersonaHighAchiever, resp.Persona.ID)
	assert.Equal(t, domain.RiskLow, resp.Risk.Level)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Saved)
	assert.Empty(t, resp.Notices)

	var total float64
	for _, p := range resp.Feedback.Probabilities {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPredict_LearnerPersistsWithInput(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	rec := testutil.NewLearnerRecord()
	req := contract.NewLearnerRequest(rec)
	req.Now = &now

	resp, err := f.predict.Predict(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.SchemaLearner, resp.Schema)
	assert.Equal(t, now, resp.CreatedAt)

	stored, err := f.repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.Outcome, stored.Outcome)
	assert.Equal(t, resp.Feedback.Probabilities, stored.Feedback.Probabilities)

	input, err := f.repo.GetInput(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, input)

	event := f.observer.last()
	assert.Equal(t, "predict", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, "learner", event.Fields["schema"])
	assert.Equal(t, true, event.Fields["saved"])
}

func TestPredict_SameSeedGivesSameProbabilities(t *testing.T) {
	f := newFixture(t)
	rec := testutil.NewLearnerRecord()

	first, err := f.predict.Predict(context.Background(), contract.NewLearnerRequest(rec))
	require.NoError(t, err)
	second, err := f.predict.Predict(context.Background(), contract.NewLearnerRequest(rec))
	require.NoError(t, err)

	assert.Equal(t, first.Feedback.Probabilities, second.Feedback.Probabilities)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPredict_NoSave(t *testing.T) {
	f := newFixture(t)
	req := contract.NewAcademicRequest(testutil.NewAcademicRecord())
	req.Save = false

	resp, err := f.predict.Predict(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, resp.Saved)

	list, err := f.history.List(context.Background(), contract.HistoryListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Predictions)
}

func TestPredict_HistoryDisabled(t *testing.T) {
	svc := NewPredictionService(predictor.New(nil, nil), nil, nil)

	resp, err := svc.Predict(context.Background(), contract.NewAcademicRequest(testutil.NewAcademicRecord()))

	require.NoError(t, err)
	assert.False(t, resp.Saved)
}

func TestPredict_RequiresExactlyOneRecord(t *testing.T) {
	f := newFixture(t)

	_, err := f.predict.Predict(context.Background(), contract.PredictRequest{})

	var perr *contract.PredictError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrInvalidRequest, perr.Code)
	assert.False(t, f.observer.last().Success)
}

func TestPredict_InvalidRange(t *testing.T) {
	f := newFixture(t)
	rec := testutil.NewAcademicRecord(testutil.WithAvgScore(140))

	_, err := f.predict.Predict(context.Background(), contract.NewAcademicRequest(rec))

	var perr *contract.PredictError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrInvalidRange, perr.Code)
	assert.ErrorIs(t, err, validate.ErrInvalidRange)
}

func TestPredict_UnmappedCategoryAbortsWithoutSaving(t *testing.T) {
	f := newFixture(t)
	rec := testutil.NewLearnerRecord(testutil.WithStudyConsistency("Whenever I Feel Like It"))

	resp, err := f.predict.Predict(context.Background(), contract.NewLearnerRequest(rec))

	assert.Nil(t, resp)
	var perr *contract.PredictError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrUnmappedCategory, perr.Code)
	assert.ErrorIs(t, err, features.ErrUnmappedCategory)

	list, err := f.history.List(context.Background(), contract.HistoryListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Predictions)
}

func TestPredict_StorageFailureRollsBack(t *testing.T) {
	injected := errors.New("disk full")
	f := newFixtureWithUoW(t, func(database *sql.DB) db.UnitOfWork {
		return &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	})

	_, err := f.predict.Predict(context.Background(), contract.NewAcademicRequest(testutil.NewAcademicRecord()))

	var perr *contract.PredictError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrStorage, perr.Code)
	assert.ErrorIs(t, err, injected)

	list, err := f.history.List(context.Background(), contract.HistoryListRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Predictions, "prediction row must be rolled back with its input")
}

type failingModel struct{}

func (failingModel) PredictOutcome(domain.Features) (predictor.ModelPrediction, error) {
	return predictor.ModelPrediction{}, errors.New("coefficient shape mismatch")
}

func TestPredict_NoticesSurfaceFallbacks(t *testing.T) {
	svc := NewPredictionService(
		predictor.New(failingModel{}, nil),
		nil,
		[]string{"", "scaler.json missing"},
	)

	resp, err := svc.Predict(context.Background(), contract.NewAcademicRequest(testutil.NewAcademicRecord()))
	require.NoError(t, err)

	require.Len(t, resp.Notices, 2)
	assert.Equal(t, "scaler.json missing", resp.Notices[0])
	assert.Contains(t, resp.Notices[1], "coefficient shape mismatch")
	assert.Equal(t, domain.SourceHeuristic, resp.Outcome.Source)
}
