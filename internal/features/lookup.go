package features

import (
	"maps"
	"slices"
)

// Learner front-end constants.
const (
	// InteractionsPerExercise approximates platform clicks per exercise.
	InteractionsPerExercise = 3
	// StandardCourseCredits is the credit load of one language course.
	StandardCourseCredits = 60
	// MaxSkills is the size of the skill vocabulary.
	MaxSkills = 5
	// earlyBankedRatio is the banked ratio assumed for learners who always submit early.
	earlyBankedRatio = 0.1
)

// AcademicDiversityCap is the activity count that maps to full diversity.
const AcademicDiversityCap = 20

// ConsistencyDispersion maps study consistency to engagement dispersion.
var ConsistencyDispersion = map[string]float64{
	"Very Consistent":        0.2,
	"Fairly Consistent":      0.4,
	"Sometimes Inconsistent": 0.6,
	"Very Inconsistent":      0.8,
}

// TimelinessDays maps submission habits to days relative to the deadline
// (negative = early).
var TimelinessDays = map[string]float64{
	"Always Early":    -5,
	"Usually On Time": 0,
	"Sometimes Late":  5,
	"Often Late":      15,
}

// AttemptCount maps the course attempt label to previous attempts.
var AttemptCount = map[string]float64{
	"First Time":     0,
	"Second Attempt": 1,
	"Third or More":  2,
}

// MotivationTrend maps the motivation label to an engagement trend.
var MotivationTrend = map[string]float64{
	"Increasing":   0.1,
	"Staying Same": -0.1,
	"Decreasing":   -0.1,
}

// PerformanceTrend maps the score trajectory label to a score trend.
var PerformanceTrend = map[string]float64{
	"Improving":     0.1,
	"Staying Same":  -0.1,
	"Getting Worse": -0.1,
}

// Skills is the vocabulary of practiced skills.
var Skills = map[string]bool{
	"Reading": true, "Writing": true, "Listening": true, "Speaking": true, "Grammar": true,
}

// Learner category proxies for the academic categorical attributes.
var (
	RegionProxy = map[string]string{
		"North America": "North Region",
		"South America": "South Region",
		"Europe":        "London Region",
		"Asia":          "East Anglian Region",
		"Africa":        "West Midlands Region",
		"Oceania":       "South East Region",
		"Other":         "Scotland",
	}

	EducationProxy = map[string]string{
		"High School":           "A Level or Equivalent",
		"Some College":          "A Level or Equivalent",
		"Bachelor Degree":       "HE Qualification",
		"Graduate Degree":       "HE Qualification",
		"Less than High School": "Lower Than A Level",
	}

	AgeBandProxy = map[string]string{
		"18-24": "0-35",
		"25-34": "0-35",
		"35-44": "35+",
		"45+":   "35+",
	}

	// IMDBandProxy uses income as a proxy for the deprivation band.
	IMDBandProxy = map[string]string{
		"Low Income":    "80-90%",
		"Middle Income": "40-50%",
		"High Income":   "10-20%",
	}

	ActivityTypeProxy = map[string]string{
		"Reading Lessons":     "oucontent",
		"Listening Exercises": "resource",
		"Speaking Practice":   "forumng",
		"Writing Assignments": "quiz",
		"Grammar Drills":      "quiz",
		"Mixed/Varied":        "homepage",
	}
)

// Labels returns the accepted labels of a lookup table, sorted.
func Labels[T any](table map[string]T) []string {
	return slices.Sorted(maps.Keys(table))
}
