package predictor

import "github.com/alexanderramin/educare/internal/domain"

// Result bundles everything derived from one canonical feature vector.
type Result struct {
	Scored        Scored
	Persona       domain.Persona
	Risk          domain.RiskSummary
	Feedback      domain.FeedbackBundle
	Contributions []domain.Contribution
}

// Predictor runs scoring, persona classification and risk assessment over
// normalized features, then derives feedback from the first two.
type Predictor struct {
	scorer *Scorer
	rng    func() Rand
}

// New returns a Predictor. model may be nil. newRand is called once per
// evaluation; a nil newRand disables jitter.
func New(model OutcomeModel, newRand func() Rand) *Predictor {
	return &Predictor{scorer: NewScorer(model), rng: newRand}
}

func (p *Predictor) Evaluate(f domain.Features) Result {
	scored := p.scorer.Score(f)
	persona := ClassifyPersona(f)
	risk := AssessRisk(f)

	var rng Rand
	if p.rng != nil {
		rng = p.rng()
	}
	return Result{
		Scored:        scored,
		Persona:       persona,
		Risk:          risk,
		Feedback:      GenerateFeedback(f, scored, persona, rng),
		Contributions: Contributions(f),
	}
}
