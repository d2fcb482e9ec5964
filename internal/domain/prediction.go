package domain

import "time"

// OutcomeResult is the bucketed outcome with its fixed confidence.
type OutcomeResult struct {
	Outcome    Outcome     `json:"outcome"`
	Label      string      `json:"label"`
	Confidence float64     `json:"confidence"`
	Source     ScoreSource `json:"source"`
}

// Persona is an immutable behavioral archetype.
type Persona struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Color       string    `json:"color"`
}

// RiskSummary counts the triggered risk conditions.
type RiskSummary struct {
	Count   int       `json:"count"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors,omitempty"`
}

// Improvement is one focus area with its practical tips.
type Improvement struct {
	Title string   `json:"title"`
	Issue string   `json:"issue"`
	Tips  []string `json:"tips"`
}

type ResourceGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Probabilities maps each outcome class to its share of a distribution summing to 1.
type Probabilities map[Outcome]float64

// FeedbackBundle is the personalized feedback derived from features,
// outcome and persona.
type FeedbackBundle struct {
	Strengths     []string        `json:"strengths"`
	Improvements  []Improvement   `json:"improvements"`
	ActionPlan    []string        `json:"action_plan"`
	Resources     []ResourceGroup `json:"resources"`
	Probabilities Probabilities   `json:"probabilities"`
	// Encouragement is set when one of the checklists produced nothing.
	Encouragement []string `json:"encouragement,omitempty"`
}

// Contribution is the weighted impact of one scoring factor.
type Contribution struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// Prediction is the complete result bundle for one request.
type Prediction struct {
	ID            string         `json:"id"`
	Schema        Schema         `json:"schema"`
	Outcome       OutcomeResult  `json:"outcome"`
	RawScore      float64        `json:"raw_score"`
	Persona       Persona        `json:"persona"`
	Risk          RiskSummary    `json:"risk"`
	Feedback      FeedbackBundle `json:"feedback"`
	Contributions []Contribution `json:"contributions"`
	Notices       []string       `json:"notices,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// PredictionSummary is the indexed subset of a stored prediction.
type PredictionSummary struct {
	ID           string      `json:"id"`
	Schema       Schema      `json:"schema"`
	Outcome      Outcome     `json:"outcome"`
	OutcomeLabel string      `json:"outcome_label"`
	Confidence   float64     `json:"confidence"`
	Source       ScoreSource `json:"source"`
	RawScore     float64     `json:"raw_score"`
	PersonaID    int         `json:"persona_id"`
	PersonaName  string      `json:"persona_name"`
	RiskLevel    RiskLevel   `json:"risk_level"`
	RiskCount    int         `json:"risk_count"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Summary returns the indexed subset of p.
func (p *Prediction) Summary() PredictionSummary {
	return PredictionSummary{
		ID:           p.ID,
		Schema:       p.Schema,
		Outcome:      p.Outcome.Outcome,
		OutcomeLabel: p.Outcome.Label,
		Confidence:   p.Outcome.Confidence,
		Source:       p.Outcome.Source,
		RawScore:     p.RawScore,
		PersonaID:    p.Persona.ID,
		PersonaName:  p.Persona.Name,
		RiskLevel:    p.Risk.Level,
		RiskCount:    p.Risk.Count,
		CreatedAt:    p.CreatedAt,
	}
}
