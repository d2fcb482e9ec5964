package contract

import "github.com/alexanderramin/educare/internal/domain"

// HistoryListRequest selects the most recent stored predictions.
type HistoryListRequest struct {
	// Limit <= 0 uses the configured default.
	Limit  int
	Schema domain.Schema
}

type HistoryListResponse struct {
	Predictions []domain.PredictionSummary `json:"predictions"`
}

// HistoryShowResponse is a stored prediction with the record it was made from.
type HistoryShowResponse struct {
	Prediction *PredictResponse `json:"prediction"`
	Input      domain.RawInput  `json:"input,omitempty"`
}
