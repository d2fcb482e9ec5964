package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/repository"
)

type historyService struct {
	predictions  repository.PredictionRepo
	defaultLimit int
	observer     UseCaseObserver
}

func NewHistoryService(predictions repository.PredictionRepo, defaultLimit int, observers ...UseCaseObserver) HistoryService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &historyService{
		predictions:  predictions,
		defaultLimit: defaultLimit,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *historyService) List(ctx context.Context, req contract.HistoryListRequest) (resp *contract.HistoryListResponse, err error) {
	startedAt := time.Now().UTC()
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	fields := map[string]any{"limit": limit}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "history.list",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Schema != "" && !domain.ValidSchemas[string(req.Schema)] {
		return nil, fmt.Errorf("unknown schema %q", req.Schema)
	}
	summaries, err := s.predictions.ListRecent(ctx, req.Schema, limit)
	if err != nil {
		return nil, err
	}
	fields["count"] = len(summaries)
	return &contract.HistoryListResponse{Predictions: summaries}, nil
}

func (s *historyService) Resolve(ctx context.Context, idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", fmt.Errorf("prediction ID is required")
	}
	ids, err := s.predictions.FindIDsByPrefix(ctx, idOrPrefix, 2)
	if err != nil {
		return "", err
	}
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("prediction %q: %w", idOrPrefix, repository.ErrNotFound)
	case 1:
		return ids[0], nil
	default:
		if ids[0] == idOrPrefix {
			return ids[0], nil
		}
		return "", fmt.Errorf("prediction ID prefix %q is ambiguous", idOrPrefix)
	}
}

func (s *historyService) Get(ctx context.Context, id string) (*contract.HistoryShowResponse, error) {
	p, err := s.predictions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	input, err := s.predictions.GetInput(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &contract.HistoryShowResponse{
		Prediction: contract.ResponseFromPrediction(p, true),
		Input:      input,
	}, nil
}

func (s *historyService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "history.delete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"id": id},
		})
	}()
	return s.predictions.Delete(ctx, id)
}
