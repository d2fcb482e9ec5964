package predictor

import "github.com/alexanderramin/educare/internal/domain"

// personaRule assigns PersonaID when Match holds.
type personaRule struct {
	Name      string
	PersonaID int
	Match     func(f domain.Features) bool
}

// personaRules is evaluated in order; the first match wins. Persona 5 is the
// fallback when nothing matches.
var personaRules = []personaRule{
	{
		Name:      "returner",
		PersonaID: domain.PersonaReturner,
		Match:     func(f domain.Features) bool { return f.NumPrevAttempts > 2 },
	},
	{
		Name:      "high-achiever",
		PersonaID: domain.PersonaHighAchiever,
		Match:     func(f domain.Features) bool { return f.AvgScore >= 80 && f.EngagementCV < 0.3 },
	},
	{
		Name:      "engaged-achiever",
		PersonaID: domain.PersonaEngagedAchiever,
		Match:     func(f domain.Features) bool { return f.AvgScore >= 60 && f.ActivityCount > 20 },
	},
	{
		Name:      "struggling",
		PersonaID: domain.PersonaStruggling,
		Match:     func(f domain.Features) bool { return f.SubmissionTimeliness > 10 || f.AvgScore < 40 },
	},
	{
		Name:      "active-struggling",
		PersonaID: domain.PersonaActiveStruggling,
		Match:     func(f domain.Features) bool { return f.ActivityCount > 15 && f.SubmissionTimeliness > 5 },
	},
}

var academicPersonas = map[int]domain.Persona{
	domain.PersonaHighAchiever: {
		ID:          domain.PersonaHighAchiever,
		Name:        "High Achievers",
		Description: "Strong performance, good pace, low engagement variability",
		RiskLevel:   domain.RiskLow,
		Color:       "success",
	},
	domain.PersonaStruggling: {
		ID:          domain.PersonaStruggling,
		Name:        "Struggling & Withdrawn",
		Description: "Low engagement, many withdrawals, poor timeliness",
		RiskLevel:   domain.RiskHigh,
		Color:       "danger",
	},
	domain.PersonaEngagedAchiever: {
		ID:          domain.PersonaEngagedAchiever,
		Name:        "Engaged Achievers",
		Description: "High engagement, good performance, many first-time students",
		RiskLevel:   domain.RiskLow,
		Color:       "success",
	},
	domain.PersonaActiveStruggling: {
		ID:          domain.PersonaActiveStruggling,
		Name:        "Active but Struggling",
		Description: "High activity diversity but poor timeliness",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
	domain.PersonaReturner: {
		ID:          domain.PersonaReturner,
		Name:        "Experienced Repeaters",
		Description: "High previous attempts, moderate performance",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
	domain.PersonaFastDisengaged: {
		ID:          domain.PersonaFastDisengaged,
		Name:        "Fast but Disengaged",
		Description: "Very fast pace but low engagement",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
}

var learnerPersonas = map[int]domain.Persona{
	domain.PersonaHighAchiever: {
		ID:          domain.PersonaHighAchiever,
		Name:        "Star Learner",
		Description: "Consistent practice, strong performance, well-balanced approach",
		RiskLevel:   domain.RiskLow,
		Color:       "success",
	},
	domain.PersonaStruggling: {
		ID:          domain.PersonaStruggling,
		Name:        "Struggling & At Risk",
		Description: "Low engagement, irregular practice, needs immediate support",
		RiskLevel:   domain.RiskHigh,
		Color:       "danger",
	},
	domain.PersonaEngagedAchiever: {
		ID:          domain.PersonaEngagedAchiever,
		Name:        "Engaged Achiever",
		Description: "High engagement, good performance, on track for success",
		RiskLevel:   domain.RiskLow,
		Color:       "success",
	},
	domain.PersonaActiveStruggling: {
		ID:          domain.PersonaActiveStruggling,
		Name:        "Active but Challenged",
		Description: "Lots of practice but struggling with performance",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
	domain.PersonaReturner: {
		ID:          domain.PersonaReturner,
		Name:        "Determined Returner",
		Description: "Multiple attempts, showing perseverance",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
	domain.PersonaFastDisengaged: {
		ID:          domain.PersonaFastDisengaged,
		Name:        "Quick but Unfocused",
		Description: "Fast pace but inconsistent engagement",
		RiskLevel:   domain.RiskMedium,
		Color:       "warning",
	},
}

// PersonaID runs the decision list and returns the matching persona id and
// the name of the rule that fired ("" for the fallback).
func PersonaID(f domain.Features) (int, string) {
	for _, r := range personaRules {
		if r.Match(f) {
			return r.PersonaID, r.Name
		}
	}
	return domain.PersonaFastDisengaged, ""
}

// ClassifyPersona assigns the persona record for f from its schema's catalog.
func ClassifyPersona(f domain.Features) domain.Persona {
	id, _ := PersonaID(f)
	return PersonaCatalog(f.Schema)[id]
}

// PersonaCatalog returns the fixed persona records for a schema.
func PersonaCatalog(schema domain.Schema) map[int]domain.Persona {
	if schema == domain.SchemaLearner {
		return learnerPersonas
	}
	return academicPersonas
}
