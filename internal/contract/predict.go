package contract

import (
	"time"

	"github.com/alexanderramin/educare/internal/domain"
)

// PredictRequest carries exactly one input record.
type PredictRequest struct {
	Academic *domain.AcademicRecord
	Learner  *domain.LearnerRecord
	// Save persists the result when history is enabled.
	Save bool
	Now  *time.Time
}

func NewAcademicRequest(rec *domain.AcademicRecord) PredictRequest {
	return PredictRequest{Academic: rec, Save: true}
}

func NewLearnerRequest(rec *domain.LearnerRecord) PredictRequest {
	return PredictRequest{Learner: rec, Save: true}
}

// Input returns the populated record, or nil unless exactly one is set.
func (r PredictRequest) Input() domain.RawInput {
	switch {
	case r.Academic != nil && r.Learner == nil:
		return r.Academic
	case r.Learner != nil && r.Academic == nil:
		return r.Learner
	}
	return nil
}

type PredictResponse struct {
	ID            string                `json:"id"`
	Schema        domain.Schema         `json:"schema"`
	Outcome       domain.OutcomeResult  `json:"outcome"`
	RawScore      float64               `json:"raw_score"`
	Persona       domain.Persona        `json:"persona"`
	Risk          domain.RiskSummary    `json:"risk"`
	Feedback      domain.FeedbackBundle `json:"feedback"`
	Contributions []domain.Contribution `json:"contributions"`
	Notices       []string              `json:"notices,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	Saved         bool                  `json:"saved"`
}

// ResponseFromPrediction maps a stored or fresh prediction to the response.
func ResponseFromPrediction(p *domain.Prediction, saved bool) *PredictResponse {
	return &PredictResponse{
		ID:            p.ID,
		Schema:        p.Schema,
		Outcome:       p.Outcome,
		RawScore:      p.RawScore,
		Persona:       p.Persona,
		Risk:          p.Risk,
		Feedback:      p.Feedback,
		Contributions: p.Contributions,
		Notices:       p.Notices,
		CreatedAt:     p.CreatedAt,
		Saved:         saved,
	}
}

type PredictErrorCode string

const (
	ErrInvalidRequest   PredictErrorCode = "INVALID_REQUEST"
	ErrInvalidRange     PredictErrorCode = "INVALID_RANGE"
	ErrUnmappedCategory PredictErrorCode = "UNMAPPED_CATEGORY"
	ErrStorage          PredictErrorCode = "STORAGE"
)

// PredictError classifies a failed prediction. Err keeps the cause for errors.Is.
type PredictError struct {
	Code    PredictErrorCode
	Message string
	Err     error
}

func (e *PredictError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PredictError) Unwrap() error { return e.Err }
