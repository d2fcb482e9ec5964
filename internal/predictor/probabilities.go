package predictor

import (
	"math/rand/v2"

	"github.com/alexanderramin/educare/internal/domain"
)

// Rand is the jitter source. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type probabilityTerm struct {
	Outcome domain.Outcome
	Center  func(raw float64) float64
	Jitter  float64
}

var probabilityTerms = []probabilityTerm{
	{domain.OutcomeDistinction, func(raw float64) float64 { return raw - 0.25 }, 0.05},
	{domain.OutcomePass, func(raw float64) float64 { return raw }, 0.10},
	{domain.OutcomeFail, func(raw float64) float64 { return 1 - raw }, 0.10},
	{domain.OutcomeWithdrawn, func(raw float64) float64 { return 1 - raw - 0.2 }, 0.05},
}

// Probabilities builds the illustrative outcome distribution around raw.
// Each class is jittered uniformly within its bound, floored at zero and the
// result normalized to sum to 1. A nil rng disables jitter.
func Probabilities(raw float64, rng Rand) domain.Probabilities {
	probs := make(domain.Probabilities, len(probabilityTerms))
	var total float64
	for _, t := range probabilityTerms {
		p := t.Center(raw)
		if rng != nil {
			p += (rng.Float64()*2 - 1) * t.Jitter
		}
		p = max(p, 0)
		probs[t.Outcome] = p
		total += p
	}

	if total == 0 {
		for o := range probs {
			probs[o] = 1 / float64(len(probs))
		}
		return probs
	}
	for o := range probs {
		probs[o] /= total
	}
	return probs
}

// NewRandSource returns a jitter source factory. A zero seed gives every call
// a freshly seeded generator; any other seed restarts the same sequence on
// each call so repeated predictions are reproducible.
func NewRandSource(seed uint64) func() Rand {
	if seed == 0 {
		return func() Rand { return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) }
	}
	return func() Rand { return rand.New(rand.NewPCG(seed, seed)) }
}
