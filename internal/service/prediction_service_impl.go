package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/db"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/features"
	"github.com/alexanderramin/educare/internal/predictor"
	"github.com/alexanderramin/educare/internal/repository"
	"github.com/alexanderramin/educare/internal/validate"
	"github.com/google/uuid"
)

type predictionService struct {
	predictor *predictor.Predictor
	uow       db.UnitOfWork
	notices   []string
	observer  UseCaseObserver
}

// NewPredictionService wires the prediction pipeline. A nil uow disables
// history; notices are attached to every response, e.g. a model fallback.
func NewPredictionService(
	p *predictor.Predictor,
	uow db.UnitOfWork,
	notices []string,
	observers ...UseCaseObserver,
) PredictionService {
	var kept []string
	for _, n := range notices {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return &predictionService{
		predictor: p,
		uow:       uow,
		notices:   kept,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *predictionService) Predict(ctx context.Context, req contract.PredictRequest) (resp *contract.PredictResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "predict",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	input := req.Input()
	if input == nil {
		return nil, &contract.PredictError{
			Code:    contract.ErrInvalidRequest,
			Message: "exactly one of the academic or learner record must be set",
		}
	}
	fields["schema"] = string(input.Schema())

	if err := validate.Record(input); err != nil {
		if errors.Is(err, validate.ErrInvalidRange) {
			return nil, &contract.PredictError{Code: contract.ErrInvalidRange, Message: err.Error(), Err: err}
		}
		return nil, fmt.Errorf("validating record: %w", err)
	}

	f, err := features.Normalize(input)
	if err != nil {
		if errors.Is(err, features.ErrUnmappedCategory) {
			return nil, &contract.PredictError{Code: contract.ErrUnmappedCategory, Message: err.Error(), Err: err}
		}
		return nil, fmt.Errorf("normalizing record: %w", err)
	}

	result := s.predictor.Evaluate(f)

	now := startedAt
	if req.Now != nil {
		now = req.Now.UTC()
	}
	prediction := &domain.Prediction{
		ID:            uuid.New().String(),
		Schema:        f.Schema,
		Outcome:       result.Scored.Outcome,
		RawScore:      result.Scored.RawScore,
		Persona:       result.Persona,
		Risk:          result.Risk,
		Feedback:      result.Feedback,
		Contributions: result.Contributions,
		Notices:       append([]string(nil), s.notices...),
		CreatedAt:     now,
	}
	if result.Scored.Notice != "" {
		prediction.Notices = append(prediction.Notices, result.Scored.Notice)
	}
	fields["outcome"] = string(prediction.Outcome.Outcome)
	fields["source"] = string(prediction.Outcome.Source)
	fields["persona"] = prediction.Persona.ID
	fields["risk"] = string(prediction.Risk.Level)

	saved := false
	if req.Save && s.uow != nil {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			repo := repository.NewSQLitePredictionRepo(tx)
			if err := repo.Create(ctx, prediction); err != nil {
				return err
			}
			return repo.CreateInput(ctx, prediction.ID, input)
		})
		if err != nil {
			return nil, &contract.PredictError{Code: contract.ErrStorage, Message: "saving prediction", Err: err}
		}
		saved = true
	}
	fields["saved"] = saved

	return contract.ResponseFromPrediction(prediction, saved), nil
}
