// Package predictor holds the deterministic heuristic that maps canonical
// features to an outcome, persona, risk summary and feedback.
package predictor

import (
	"fmt"
	"math"

	"github.com/alexanderramin/educare/internal/domain"
)

type ScoringWeights struct {
	Score        float64
	Consistency  float64
	Diversity    float64
	Timeliness   float64
	FirstAttempt float64
}

// DefaultWeights returns the composite weights. They sum to 1.0.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Score:        0.40,
		Consistency:  0.20,
		Diversity:    0.15,
		Timeliness:   0.15,
		FirstAttempt: 0.10,
	}
}

type outcomeBucket struct {
	MinScore   float64
	Outcome    domain.Outcome
	Confidence float64
}

// outcomeBuckets is evaluated top-down; the first bucket whose MinScore is
// reached wins.
var outcomeBuckets = []outcomeBucket{
	{MinScore: 0.75, Outcome: domain.OutcomeDistinction, Confidence: 0.85},
	{MinScore: 0.55, Outcome: domain.OutcomePass, Confidence: 0.78},
	{MinScore: 0.30, Outcome: domain.OutcomeFail, Confidence: 0.72},
	{MinScore: math.Inf(-1), Outcome: domain.OutcomeWithdrawn, Confidence: 0.68},
}

var outcomeLabels = map[domain.Schema]map[domain.Outcome]string{
	domain.SchemaAcademic: {
		domain.OutcomeDistinction: "Distinction",
		domain.OutcomePass:        "Pass",
		domain.OutcomeFail:        "Fail",
		domain.OutcomeWithdrawn:   "Withdrawn",
	},
	domain.SchemaLearner: {
		domain.OutcomeDistinction: "Excellent Progress (A/A+)",
		domain.OutcomePass:        "Good Progress (B/B+)",
		domain.OutcomeFail:        "Needs Improvement (C)",
		domain.OutcomeWithdrawn:   "At Risk (D/F)",
	},
}

// OutcomeLabel returns the display name of an outcome for the given schema.
func OutcomeLabel(schema domain.Schema, o domain.Outcome) string {
	if label, ok := outcomeLabels[schema][o]; ok {
		return label
	}
	return string(o)
}

// CompositeScore computes the weighted raw score. Inputs inside the declared
// bounds keep it within [0,1].
func CompositeScore(f domain.Features, w ScoringWeights) float64 {
	score := w.Score*(f.AvgScore/100) +
		w.Consistency*(1-f.EngagementCV) +
		w.Diversity*f.ActivityDiversity
	if f.SubmissionTimeliness <= 0 {
		score += w.Timeliness
	}
	if f.NumPrevAttempts == 0 {
		score += w.FirstAttempt
	}
	return score
}

// Bucket maps a raw score to its outcome class and fixed confidence.
func Bucket(raw float64) (domain.Outcome, float64) {
	for _, b := range outcomeBuckets {
		if raw >= b.MinScore {
			return b.Outcome, b.Confidence
		}
	}
	last := outcomeBuckets[len(outcomeBuckets)-1]
	return last.Outcome, last.Confidence
}

// ModelPrediction is what a trained classifier returns.
type ModelPrediction struct {
	Outcome       domain.Outcome
	Confidence    float64
	Probabilities domain.Probabilities
}

// OutcomeModel is an optional trained classifier consulted before the
// heuristic. Implementations must be safe for concurrent reads.
type OutcomeModel interface {
	PredictOutcome(f domain.Features) (ModelPrediction, error)
}

// Scored is the output of the outcome scorer.
type Scored struct {
	Outcome  domain.OutcomeResult
	RawScore float64
	// ModelProbabilities is set only when the trained model produced the outcome.
	ModelProbabilities domain.Probabilities
	// Notice explains a fallback from the model path. Empty otherwise.
	Notice string
}

// Scorer produces outcomes. A nil model means heuristic only.
type Scorer struct {
	model   OutcomeModel
	weights ScoringWeights
}

func NewScorer(model OutcomeModel) *Scorer {
	return &Scorer{model: model, weights: DefaultWeights()}
}

// Score classifies f. The raw heuristic score is always computed since the
// feedback distribution is centered on it.
func (s *Scorer) Score(f domain.Features) Scored {
	raw := CompositeScore(f, s.weights)
	result := Scored{RawScore: raw}

	if s.model != nil {
		pred, err := s.model.PredictOutcome(f)
		if err == nil {
			result.Outcome = domain.OutcomeResult{
				Outcome:    pred.Outcome,
				Label:      OutcomeLabel(f.Schema, pred.Outcome),
				Confidence: pred.Confidence,
				Source:     domain.SourceModel,
			}
			result.ModelProbabilities = pred.Probabilities
			return result
		}
		result.Notice = fmt.Sprintf("trained model unavailable (%v); using heuristic", err)
	}

	outcome, confidence := Bucket(raw)
	result.Outcome = domain.OutcomeResult{
		Outcome:    outcome,
		Label:      OutcomeLabel(f.Schema, outcome),
		Confidence: confidence,
		Source:     domain.SourceHeuristic,
	}
	return result
}

// Contributions breaks the prediction down into per-factor impacts. The two
// boolean factors count half when not satisfied.
func Contributions(f domain.Features) []domain.Contribution {
	w := DefaultWeights()
	timely, firstTime := 0.5, 0.5
	if f.SubmissionTimeliness <= 0 {
		timely = 1
	}
	if f.NumPrevAttempts == 0 {
		firstTime = 1
	}
	return []domain.Contribution{
		{Factor: "Assessment Score", Impact: f.AvgScore / 100 * w.Score},
		{Factor: "Engagement Consistency", Impact: (1 - f.EngagementCV) * w.Consistency},
		{Factor: "Activity Diversity", Impact: f.ActivityDiversity * w.Diversity},
		{Factor: "Submission Timeliness", Impact: timely * w.Timeliness},
		{Factor: "First-Time Student", Impact: firstTime * w.FirstAttempt},
	}
}
