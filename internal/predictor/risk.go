package predictor

import "github.com/alexanderramin/educare/internal/domain"

type riskCondition struct {
	Label     string
	Triggered func(f domain.Features) bool
}

var academicRiskConditions = []riskCondition{
	{"Previous attempts", func(f domain.Features) bool { return f.NumPrevAttempts > 1 }},
	{"Low scores", func(f domain.Features) bool { return f.AvgScore < 40 }},
	{"Late submissions", func(f domain.Features) bool { return f.SubmissionTimeliness > 10 }},
	{"Irregular engagement", func(f domain.Features) bool { return f.EngagementCV > 0.7 }},
	{"Low activity", func(f domain.Features) bool { return f.ActivityCount < 10 }},
}

var learnerRiskConditions = []riskCondition{
	{"Previous attempts", func(f domain.Features) bool { return f.NumPrevAttempts > 0 }},
	{"Low scores", func(f domain.Features) bool { return f.AvgScore < 50 }},
	{"Late submissions", func(f domain.Features) bool { return f.SubmissionTimeliness > 0 }},
	{"Irregular practice", func(f domain.Features) bool { return f.EngagementCV >= 0.6 }},
	{"Low practice frequency", func(f domain.Features) bool { return f.LessonsPerWeek < 3 }},
}

// AssessRisk counts the triggered threshold conditions for f's schema. It is
// independent of the outcome and persona and may disagree with them.
func AssessRisk(f domain.Features) domain.RiskSummary {
	conditions := academicRiskConditions
	if f.Schema == domain.SchemaLearner {
		conditions = learnerRiskConditions
	}

	var summary domain.RiskSummary
	for _, c := range conditions {
		if c.Triggered(f) {
			summary.Count++
			summary.Factors = append(summary.Factors, c.Label)
		}
	}
	summary.Level = RiskLevelForCount(summary.Count)
	return summary
}

// RiskLevelForCount maps 0 to Low, 1–2 to Medium and 3 or more to High.
func RiskLevelForCount(n int) domain.RiskLevel {
	switch {
	case n <= 0:
		return domain.RiskLow
	case n <= 2:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}
