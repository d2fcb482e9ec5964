package testutil

import (
	"time"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/google/uuid"
)

// Academic record options
type AcademicOption func(*domain.AcademicRecord)

func WithAvgScore(s float64) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.AvgScore = s
	}
}

func WithPrevAttempts(n int) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.NumPrevAttempts = n
	}
}

func WithConsistency(c float64) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.EngagementConsistency = c
	}
}

func WithActivityCount(n int) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.ActivityCount = n
	}
}

func WithTimeliness(days float64) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.SubmissionTimeliness = days
	}
}

func WithClicks(n int) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.TotalClicks = n
	}
}

func WithRegion(region string) AcademicOption {
	return func(r *domain.AcademicRecord) {
		r.Region = region
	}
}

// NewAcademicRecord returns the default academic record with opts applied.
func NewAcademicRecord(opts ...AcademicOption) *domain.AcademicRecord {
	r := domain.DefaultAcademicRecord()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Learner record options
type LearnerOption func(*domain.LearnerRecord)

func WithLessonScore(s float64) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.AverageLessonScore = s
	}
}

func WithStudyConsistency(c string) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.StudyConsistency = c
	}
}

func WithAssignmentTimeliness(t string) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.AssignmentTimeliness = t
	}
}

func WithCourseAttempt(a string) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.CourseAttempt = a
	}
}

func WithLessonsPerWeek(n int) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.LessonsPerWeek = n
	}
}

func WithSkills(skills ...string) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.SkillsPracticed = skills
	}
}

func WithMotivation(m string) LearnerOption {
	return func(r *domain.LearnerRecord) {
		r.MotivationTrend = m
	}
}

// NewLearnerRecord returns the default learner record with opts applied.
func NewLearnerRecord(opts ...LearnerOption) *domain.LearnerRecord {
	r := domain.DefaultLearnerRecord()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestPrediction returns a minimal stored prediction.
func NewTestPrediction(schema domain.Schema, outcome domain.Outcome) *domain.Prediction {
	return &domain.Prediction{
		ID:     uuid.New().String(),
		Schema: schema,
		Outcome: domain.OutcomeResult{
			Outcome:    outcome,
			Label:      string(outcome),
			Confidence: 0.78,
			Source:     domain.SourceHeuristic,
		},
		RawScore: 0.6,
		Persona: domain.Persona{
			ID:        domain.PersonaEngagedAchiever,
			Name:      "Engaged Achievers",
			RiskLevel: domain.RiskLow,
		},
		Risk: domain.RiskSummary{Count: 0, Level: domain.RiskLow},
		Feedback: domain.FeedbackBundle{
			Probabilities: domain.Probabilities{
				domain.OutcomeDistinction: 0.2,
				domain.OutcomePass:        0.4,
				domain.OutcomeFail:        0.3,
				domain.OutcomeWithdrawn:   0.1,
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
