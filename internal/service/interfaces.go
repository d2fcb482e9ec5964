package service

import (
	"context"

	"github.com/alexanderramin/educare/internal/contract"
)

type PredictionService interface {
	Predict(ctx context.Context, req contract.PredictRequest) (*contract.PredictResponse, error)
}

type HistoryService interface {
	List(ctx context.Context, req contract.HistoryListRequest) (*contract.HistoryListResponse, error)
	// Resolve expands a full id or unique id prefix to the stored id.
	Resolve(ctx context.Context, idOrPrefix string) (string, error)
	Get(ctx context.Context, id string) (*contract.HistoryShowResponse, error)
	Delete(ctx context.Context, id string) error
}
