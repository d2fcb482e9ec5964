// Package features converts front-end input records into the canonical
// feature vector consumed by the predictor.
package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/educare/internal/domain"
)

// base carries the schema-independent inputs from which every derived
// ratio feature is computed.
type base struct {
	prevAttempts     float64
	credits          float64
	clicks           float64
	activityCount    float64
	diversity        float64
	score            float64
	timeliness       float64
	banked           float64
	totalAssessments float64
	days             float64
	pace             float64
	cv               float64
	engagementTrend  float64
	scoreTrend       float64
}

// Normalize maps raw into canonical features. It fails with an
// UnmappedCategoryError when a categorical label has no lookup entry.
func Normalize(raw domain.RawInput) (domain.Features, error) {
	switch r := raw.(type) {
	case *domain.AcademicRecord:
		return normalizeAcademic(r), nil
	case *domain.LearnerRecord:
		return normalizeLearner(r)
	case nil:
		return domain.Features{}, fmt.Errorf("normalizing: nil record")
	default:
		return domain.Features{}, fmt.Errorf("normalizing: unsupported record type %T", raw)
	}
}

func normalizeAcademic(r *domain.AcademicRecord) domain.Features {
	f := derive(base{
		prevAttempts:     float64(r.NumPrevAttempts),
		credits:          float64(r.StudiedCredits),
		clicks:           float64(r.TotalClicks),
		activityCount:    float64(r.ActivityCount),
		diversity:        float64(r.ActivityCount) / AcademicDiversityCap,
		score:            r.AvgScore,
		timeliness:       r.SubmissionTimeliness,
		banked:           float64(r.BankedAssessments),
		totalAssessments: float64(r.TotalAssessments),
		days:             float64(r.DaysSinceRegistration),
		pace:             r.LearningPace,
		cv:               1 - r.EngagementConsistency,
	})
	f.Schema = domain.SchemaAcademic
	f.Categorical = domain.Categorical{
		Gender:           r.Gender,
		AgeBand:          r.AgeBand,
		Region:           r.Region,
		HighestEducation: r.HighestEducation,
		IMDBand:          r.IMDBand,
		Disability:       yesNo(r.Disability),
		ActivityType:     r.ActivityType,
	}
	return f
}

func normalizeLearner(r *domain.LearnerRecord) (domain.Features, error) {
	cv, err := lookup(ConsistencyDispersion, "study_consistency", r.StudyConsistency)
	if err != nil {
		return domain.Features{}, err
	}
	timeliness, err := lookup(TimelinessDays, "assignment_timeliness", r.AssignmentTimeliness)
	if err != nil {
		return domain.Features{}, err
	}
	attempts, err := lookup(AttemptCount, "course_attempt", r.CourseAttempt)
	if err != nil {
		return domain.Features{}, err
	}
	engagementTrend, err := lookup(MotivationTrend, "motivation_trend", r.MotivationTrend)
	if err != nil {
		return domain.Features{}, err
	}
	scoreTrend, err := lookup(PerformanceTrend, "performance_trend", r.PerformanceTrend)
	if err != nil {
		return domain.Features{}, err
	}
	skills, err := distinctSkills(r.SkillsPracticed)
	if err != nil {
		return domain.Features{}, err
	}
	categorical, err := learnerCategorical(r)
	if err != nil {
		return domain.Features{}, err
	}

	lessons := float64(r.LessonsPerWeek)
	weeks := float64(r.WeeksInCourse)
	days := weeks * 7

	f := derive(base{
		prevAttempts:     attempts,
		credits:          StandardCourseCredits,
		clicks:           lessons * float64(r.ExercisesPerLesson) * weeks * InteractionsPerExercise,
		activityCount:    lessons * weeks,
		diversity:        float64(len(skills)) / MaxSkills,
		score:            r.AverageLessonScore,
		timeliness:       timeliness,
		totalAssessments: weeks,
		days:             days,
		pace:             StandardCourseCredits / math.Max(days, 1),
		cv:               cv,
		engagementTrend:  engagementTrend,
		scoreTrend:       scoreTrend,
	})
	if r.AssignmentTimeliness == "Always Early" {
		f.BankedRatio = earlyBankedRatio
	}
	f.Schema = domain.SchemaLearner
	f.LessonsPerWeek = lessons
	f.SkillsPracticed = skills
	f.Categorical = categorical
	return f, nil
}

// derive computes the canonical vector from schema-independent inputs.
// Every ratio guards its denominator with a minimum of 1.
func derive(b base) domain.Features {
	cv := clamp01(b.cv)
	return domain.Features{
		NumPrevAttempts:           b.prevAttempts,
		RepeatStudent:             b.prevAttempts > 0,
		StudiedCredits:            b.credits,
		TotalClicks:               b.clicks,
		ActivityCount:             b.activityCount,
		ActivityDiversity:         clamp01(b.diversity),
		AvgScore:                  b.score,
		ScorePerWeight:            b.score / math.Max(b.credits, 1),
		AssessmentEngagement:      b.clicks / math.Max(b.totalAssessments, 1),
		ModuleEngagementRate:      b.clicks / math.Max(b.days, 1),
		WeightedEngagement:        b.clicks * (1 - cv),
		EngagementTrend:           b.engagementTrend,
		SubmissionTimeliness:      b.timeliness,
		BankedRatio:               b.banked / math.Max(b.totalAssessments, 1),
		DaysSinceRegistration:     b.days,
		ScoreTrend:                b.scoreTrend,
		ScoreMomentum:             b.scoreTrend * b.score,
		PerformanceByRegistration: b.score / math.Max(b.days, 1),
		LearningPace:              b.pace,
		EngagementCV:              cv,
	}
}

func learnerCategorical(r *domain.LearnerRecord) (domain.Categorical, error) {
	region, err := lookup(RegionProxy, "region", r.Region)
	if err != nil {
		return domain.Categorical{}, err
	}
	education, err := lookup(EducationProxy, "education_level", r.EducationLevel)
	if err != nil {
		return domain.Categorical{}, err
	}
	age, err := lookup(AgeBandProxy, "age_group", r.AgeGroup)
	if err != nil {
		return domain.Categorical{}, err
	}
	imd, err := lookup(IMDBandProxy, "income_level", r.IncomeLevel)
	if err != nil {
		return domain.Categorical{}, err
	}
	activity, err := lookup(ActivityTypeProxy, "primary_learning_method", r.PrimaryLearningMethod)
	if err != nil {
		return domain.Categorical{}, err
	}
	return domain.Categorical{
		Gender:           r.Gender,
		AgeBand:          age,
		Region:           region,
		HighestEducation: education,
		IMDBand:          imd,
		Disability:       yesNo(r.HasDisability),
		ActivityType:     activity,
	}, nil
}

// distinctSkills validates the practiced skills and returns them deduplicated and sorted.
func distinctSkills(skills []string) ([]string, error) {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, err := lookup(Skills, "skills_practiced", s); err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
