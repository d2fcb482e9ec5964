package domain

// RawInput is a fully populated input record from one of the front-ends.
type RawInput interface {
	Schema() Schema
}

// AcademicRecord is the LMS-style input: every field is already in the
// canonical units.
type AcademicRecord struct {
	// Demographics
	Gender           string `json:"gender" yaml:"gender"`
	AgeBand          string `json:"age_band" yaml:"age_band"`
	Region           string `json:"region" yaml:"region"`
	HighestEducation string `json:"highest_education" yaml:"highest_education"`
	IMDBand          string `json:"imd_band" yaml:"imd_band"`
	Disability       bool   `json:"disability" yaml:"disability"`

	// Academic background
	NumPrevAttempts       int `json:"num_of_prev_attempts" yaml:"num_of_prev_attempts"`
	StudiedCredits        int `json:"studied_credits" yaml:"studied_credits"`
	DaysSinceRegistration int `json:"days_since_registration" yaml:"days_since_registration"`

	// Engagement
	TotalClicks   int    `json:"total_clicks" yaml:"total_clicks"`
	ActivityCount int    `json:"activity_count" yaml:"activity_count"`
	ActivityType  string `json:"activity_type" yaml:"activity_type"`

	// Performance
	AvgScore             float64 `json:"avg_score" yaml:"avg_score"`
	SubmissionTimeliness float64 `json:"submission_timeliness" yaml:"submission_timeliness"`
	BankedAssessments    int     `json:"banked_assessments" yaml:"banked_assessments"`
	TotalAssessments     int     `json:"total_assessments" yaml:"total_assessments"`

	// Behavior
	StudyMethod           string  `json:"study_method" yaml:"study_method"`
	LearningPace          float64 `json:"learning_pace" yaml:"learning_pace"`
	EngagementConsistency float64 `json:"engagement_consistency" yaml:"engagement_consistency"`
}

func (*AcademicRecord) Schema() Schema { return SchemaAcademic }

// LearnerRecord is the language-learner input. Most fields are friendly
// category labels that are translated through fixed lookup tables.
type LearnerRecord struct {
	Gender         string `json:"gender" yaml:"gender"`
	AgeGroup       string `json:"age_group" yaml:"age_group"`
	Region         string `json:"region" yaml:"region"`
	EducationLevel string `json:"education_level" yaml:"education_level"`
	IncomeLevel    string `json:"income_level" yaml:"income_level"`
	HasDisability  bool   `json:"has_disability" yaml:"has_disability"`

	CurrentLevel  string `json:"current_level" yaml:"current_level"`
	CourseAttempt string `json:"course_attempt" yaml:"course_attempt"`
	WeeksInCourse int    `json:"weeks_in_course" yaml:"weeks_in_course"`

	LessonsPerWeek     int    `json:"lessons_per_week" yaml:"lessons_per_week"`
	ExercisesPerLesson int    `json:"exercises_per_lesson" yaml:"exercises_per_lesson"`
	StudyConsistency   string `json:"study_consistency" yaml:"study_consistency"`

	PrimaryLearningMethod string   `json:"primary_learning_method" yaml:"primary_learning_method"`
	SkillsPracticed       []string `json:"skills_practiced" yaml:"skills_practiced"`

	AverageLessonScore   float64 `json:"average_lesson_score" yaml:"average_lesson_score"`
	AssignmentTimeliness string  `json:"assignment_timeliness" yaml:"assignment_timeliness"`

	MotivationTrend  string `json:"motivation_trend" yaml:"motivation_trend"`
	PerformanceTrend string `json:"performance_trend" yaml:"performance_trend"`
}

func (*LearnerRecord) Schema() Schema { return SchemaLearner }

// DefaultAcademicRecord returns a typical mid-course student. It seeds the
// CLI flags and interactive forms.
func DefaultAcademicRecord() *AcademicRecord {
	return &AcademicRecord{
		Gender:                "M",
		AgeBand:               "0-35",
		Region:                "London Region",
		HighestEducation:      "A Level or Equivalent",
		IMDBand:               "40-50%",
		Disability:            false,
		NumPrevAttempts:       0,
		StudiedCredits:        60,
		DaysSinceRegistration: 30,
		TotalClicks:           500,
		ActivityCount:         20,
		ActivityType:          "oucontent",
		AvgScore:              65,
		SubmissionTimeliness:  0,
		BankedAssessments:     0,
		TotalAssessments:      5,
		StudyMethod:           "Mixed",
		LearningPace:          1.0,
		EngagementConsistency: 0.5,
	}
}

// DefaultLearnerRecord returns a typical intermediate learner.
func DefaultLearnerRecord() *LearnerRecord {
	return &LearnerRecord{
		Gender:                "F",
		AgeGroup:              "25-34",
		Region:                "Europe",
		EducationLevel:        "Bachelor Degree",
		IncomeLevel:           "Middle Income",
		CurrentLevel:          "Intermediate (B1)",
		CourseAttempt:         "First Time",
		WeeksInCourse:         8,
		LessonsPerWeek:        5,
		ExercisesPerLesson:    10,
		StudyConsistency:      "Fairly Consistent",
		PrimaryLearningMethod: "Reading Lessons",
		SkillsPracticed:       []string{"Reading", "Writing", "Listening"},
		AverageLessonScore:    70,
		AssignmentTimeliness:  "Usually On Time",
		MotivationTrend:       "Staying Same",
		PerformanceTrend:      "Staying Same",
	}
}
