package domain

// Features is the canonical feature vector every scoring component reads.
// It is built once per request by the normalizer and never mutated.
type Features struct {
	Schema Schema `json:"schema"`

	NumPrevAttempts           float64 `json:"num_of_prev_attempts"`
	RepeatStudent             bool    `json:"repeat_student"`
	StudiedCredits            float64 `json:"studied_credits"`
	TotalClicks               float64 `json:"sum"`
	ActivityCount             float64 `json:"count"`
	ActivityDiversity         float64 `json:"activity_diversity"`
	AvgScore                  float64 `json:"score"`
	ScorePerWeight            float64 `json:"score_per_weight"`
	AssessmentEngagement      float64 `json:"assessment_engagement_score"`
	ModuleEngagementRate      float64 `json:"module_engagement_rate"`
	WeightedEngagement        float64 `json:"weighted_engagement"`
	EngagementTrend           float64 `json:"engagement_trend"`
	SubmissionTimeliness      float64 `json:"submission_timeliness"`
	BankedRatio               float64 `json:"banked_assessment_ratio"`
	DaysSinceRegistration     float64 `json:"days_since_registration"`
	ScoreTrend                float64 `json:"score_trend"`
	ScoreMomentum             float64 `json:"score_momentum"`
	PerformanceByRegistration float64 `json:"performance_by_registration"`
	LearningPace              float64 `json:"learning_pace"`
	EngagementCV              float64 `json:"engagement_cv"`

	// LessonsPerWeek is only populated for learner records.
	LessonsPerWeek float64 `json:"lessons_per_week,omitempty"`
	// SkillsPracticed is only populated for learner records.
	SkillsPracticed []string `json:"skills_practiced,omitempty"`

	Categorical Categorical `json:"categorical"`
}

// Categorical holds the academic-schema category attributes fed to the encoder.
type Categorical struct {
	Gender           string `json:"gender"`
	AgeBand          string `json:"age_band"`
	Region           string `json:"region"`
	HighestEducation string `json:"highest_education"`
	IMDBand          string `json:"imd_band"`
	Disability       string `json:"disability"`
	ActivityType     string `json:"activity_type"`
}

// Map returns the attributes keyed by their column names.
func (c Categorical) Map() map[string]string {
	return map[string]string{
		"gender":            c.Gender,
		"age_band":          c.AgeBand,
		"region":            c.Region,
		"highest_education": c.HighestEducation,
		"imd_band":          c.IMDBand,
		"disability":        c.Disability,
		"activity_type":     c.ActivityType,
	}
}

// NamedValue is one entry of an ordered feature vector.
type NamedValue struct {
	Name  string
	Value float64
}

// Vector returns the numeric features in canonical column order.
func (f Features) Vector() []NamedValue {
	repeat := 0.0
	if f.RepeatStudent {
		repeat = 1
	}
	return []NamedValue{
		{"num_of_prev_attempts", f.NumPrevAttempts},
		{"repeat_student", repeat},
		{"studied_credits", f.StudiedCredits},
		{"sum", f.TotalClicks},
		{"count", f.ActivityCount},
		{"activity_diversity", f.ActivityDiversity},
		{"score", f.AvgScore},
		{"score_per_weight", f.ScorePerWeight},
		{"assessment_engagement_score", f.AssessmentEngagement},
		{"module_engagement_rate", f.ModuleEngagementRate},
		{"weighted_engagement", f.WeightedEngagement},
		{"engagement_trend", f.EngagementTrend},
		{"submission_timeliness", f.SubmissionTimeliness},
		{"banked_assessment_ratio", f.BankedRatio},
		{"days_since_registration", f.DaysSinceRegistration},
		{"score_trend", f.ScoreTrend},
		{"score_momentum", f.ScoreMomentum},
		{"performance_by_registration", f.PerformanceByRegistration},
		{"learning_pace", f.LearningPace},
		{"engagement_cv", f.EngagementCV},
	}
}
