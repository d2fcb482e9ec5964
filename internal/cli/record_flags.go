package cli

import (
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/spf13/pflag"
)

// bindAcademicFlags registers one flag per academic field, defaulting to
// the values already in r.
func bindAcademicFlags(fs *pflag.FlagSet, r *domain.AcademicRecord) {
	fs.StringVar(&r.Gender, "gender", r.Gender, "Gender (M or F)")
	fs.StringVar(&r.AgeBand, "age-band", r.AgeBand, "Age band (0-35, 35-55, 55<=)")
	fs.StringVar(&r.Region, "region", r.Region, "Region")
	fs.StringVar(&r.HighestEducation, "highest-education", r.HighestEducation, "Highest education level")
	fs.StringVar(&r.IMDBand, "imd-band", r.IMDBand, "Deprivation index band, e.g. 40-50%")
	fs.BoolVar(&r.Disability, "disability", r.Disability, "Student has a declared disability")

	fs.IntVar(&r.NumPrevAttempts, "prev-attempts", r.NumPrevAttempts, "Previous attempts at this module (0-10)")
	fs.IntVar(&r.StudiedCredits, "studied-credits", r.StudiedCredits, "Credits being studied (0-300)")
	fs.IntVar(&r.DaysSinceRegistration, "days-registered", r.DaysSinceRegistration, "Days since registration (0-365)")

	fs.IntVar(&r.TotalClicks, "total-clicks", r.TotalClicks, "Platform interactions (0-10000)")
	fs.IntVar(&r.ActivityCount, "activity-count", r.ActivityCount, "Distinct activities used (0-100)")
	fs.StringVar(&r.ActivityType, "activity-type", r.ActivityType, "Main activity type")

	fs.Float64Var(&r.AvgScore, "avg-score", r.AvgScore, "Average assessment score (0-100)")
	fs.Float64Var(&r.SubmissionTimeliness, "timeliness", r.SubmissionTimeliness, "Days relative to deadline, negative is early (-100 to 50)")
	fs.IntVar(&r.BankedAssessments, "banked", r.BankedAssessments, "Banked assessments (0-10)")
	fs.IntVar(&r.TotalAssessments, "total-assessments", r.TotalAssessments, "Total assessments (1-20)")

	fs.StringVar(&r.StudyMethod, "study-method", r.StudyMethod, "Study method")
	fs.Float64Var(&r.LearningPace, "learning-pace", r.LearningPace, "Credits per day (0-5)")
	fs.Float64Var(&r.EngagementConsistency, "consistency", r.EngagementConsistency, "Engagement consistency (0-1)")
}

// bindLearnerFlags registers one flag per learner field.
func bindLearnerFlags(fs *pflag.FlagSet, r *domain.LearnerRecord) {
	fs.StringVar(&r.Gender, "gender", r.Gender, "Gender (M or F)")
	fs.StringVar(&r.AgeGroup, "age-group", r.AgeGroup, "Age group")
	fs.StringVar(&r.Region, "region", r.Region, "World region")
	fs.StringVar(&r.EducationLevel, "education-level", r.EducationLevel, "Education level")
	fs.StringVar(&r.IncomeLevel, "income-level", r.IncomeLevel, "Income level")
	fs.BoolVar(&r.HasDisability, "disability", r.HasDisability, "Learner has a declared disability")

	fs.StringVar(&r.CurrentLevel, "current-level", r.CurrentLevel, "Current language level")
	fs.StringVar(&r.CourseAttempt, "course-attempt", r.CourseAttempt, "Course attempt")
	fs.IntVar(&r.WeeksInCourse, "weeks", r.WeeksInCourse, "Weeks in course (1-52)")

	fs.IntVar(&r.LessonsPerWeek, "lessons-per-week", r.LessonsPerWeek, "Lessons per week (0-30)")
	fs.IntVar(&r.ExercisesPerLesson, "exercises-per-lesson", r.ExercisesPerLesson, "Exercises per lesson (1-30)")
	fs.StringVar(&r.StudyConsistency, "study-consistency", r.StudyConsistency, "Study consistency")

	fs.StringVar(&r.PrimaryLearningMethod, "learning-method", r.PrimaryLearningMethod, "Primary learning method")
	fs.StringSliceVar(&r.SkillsPracticed, "skills", r.SkillsPracticed, "Skills practiced, comma separated")

	fs.Float64Var(&r.AverageLessonScore, "lesson-score", r.AverageLessonScore, "Average lesson score (0-100)")
	fs.StringVar(&r.AssignmentTimeliness, "timeliness", r.AssignmentTimeliness, "Assignment timeliness")

	fs.StringVar(&r.MotivationTrend, "motivation", r.MotivationTrend, "Motivation trend")
	fs.StringVar(&r.PerformanceTrend, "performance", r.PerformanceTrend, "Performance trend")
}
