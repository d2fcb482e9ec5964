package domain

// Schema identifies which input front-end produced a record.
type Schema string

const (
	SchemaAcademic Schema = "academic"
	SchemaLearner  Schema = "learner"
)

// ValidSchemas is the canonical set of accepted schema strings.
var ValidSchemas = map[string]bool{
	"academic": true, "learner": true,
}

// Outcome is one of the four ordinal outcome classes, best first.
type Outcome string

const (
	OutcomeDistinction Outcome = "distinction"
	OutcomePass        Outcome = "pass"
	OutcomeFail        Outcome = "fail"
	OutcomeWithdrawn   Outcome = "withdrawn"
)

// Outcomes lists every class in ordinal order, best first.
var Outcomes = []Outcome{OutcomeDistinction, OutcomePass, OutcomeFail, OutcomeWithdrawn}

// Rank returns the ordinal position of o (0 = best). Unknown outcomes rank last.
func (o Outcome) Rank() int {
	for i, c := range Outcomes {
		if c == o {
			return i
		}
	}
	return len(Outcomes)
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ScoreSource records which path produced an outcome.
type ScoreSource string

const (
	SourceHeuristic ScoreSource = "heuristic"
	SourceModel     ScoreSource = "model"
)

// Persona ids. They match the cluster ids of the student clustering model.
const (
	PersonaHighAchiever     = 0
	PersonaStruggling       = 1
	PersonaEngagedAchiever  = 2
	PersonaActiveStruggling = 3
	PersonaReturner         = 4
	PersonaFastDisengaged   = 5
)
