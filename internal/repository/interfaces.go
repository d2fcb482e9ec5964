package repository

import (
	"context"

	"github.com/alexanderramin/educare/internal/domain"
)

// PredictionRepo stores prediction results and the records they were made from.
type PredictionRepo interface {
	Create(ctx context.Context, p *domain.Prediction) error
	CreateInput(ctx context.Context, predictionID string, input domain.RawInput) error
	GetByID(ctx context.Context, id string) (*domain.Prediction, error)
	GetInput(ctx context.Context, predictionID string) (domain.RawInput, error)
	ListRecent(ctx context.Context, schema domain.Schema, limit int) ([]domain.PredictionSummary, error)
	// FindIDsByPrefix returns the ids starting with prefix, at most limit of them.
	FindIDsByPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
	Delete(ctx context.Context, id string) error
}
