package predictor

import (
	"fmt"

	"github.com/alexanderramin/educare/internal/domain"
)

type strengthCheck struct {
	Match func(f domain.Features) bool
	Text  string
}

type improvementCheck struct {
	Match func(f domain.Features) bool
	Build func(f domain.Features) domain.Improvement
}

// feedbackProfile is the schema-specific wording and thresholds of the feedback.
type feedbackProfile struct {
	strengths             []strengthCheck
	improvements          []improvementCheck
	actionPlans           map[int][]string
	noStrengthsMessage    string
	noImprovementsMessage string
	resources             func(f domain.Features) []domain.ResourceGroup
}

func fixedImprovement(title, issue string, tips ...string) func(domain.Features) domain.Improvement {
	return func(domain.Features) domain.Improvement {
		return domain.Improvement{Title: title, Issue: issue, Tips: tips}
	}
}

var academicFeedback = feedbackProfile{
	strengths: []strengthCheck{
		{func(f domain.Features) bool { return f.AvgScore >= 70 },
			"Strong Academic Performance - You're scoring well on assessments!"},
		{func(f domain.Features) bool { return f.SubmissionTimeliness <= 0 },
			"Excellent Time Management - You submit assignments on time or early!"},
		{func(f domain.Features) bool { return f.ActivityDiversity > 0.6 },
			"Diverse Learning Approach - You engage with various learning resources!"},
		{func(f domain.Features) bool { return f.EngagementCV < 0.4 },
			"Consistent Engagement - You maintain steady participation in the course!"},
		{func(f domain.Features) bool { return f.NumPrevAttempts == 0 },
			"First-Time Success Track - You're tackling this course for the first time!"},
	},
	improvements: []improvementCheck{
		{func(f domain.Features) bool { return f.AvgScore < 50 },
			fixedImprovement("Assessment Scores", "Your average score is below passing.",
				"Attending office hours for additional support",
				"Joining study groups with peers",
				"Reviewing assessment feedback carefully")},
		{func(f domain.Features) bool { return f.SubmissionTimeliness > 5 },
			fixedImprovement("Submission Timeliness", "Late submissions can impact your grades.",
				"Set calendar reminders for deadlines",
				"Start assignments earlier",
				"Break large tasks into smaller milestones")},
		{func(f domain.Features) bool { return f.ActivityCount < 15 },
			fixedImprovement("Platform Engagement", "Low activity may indicate disengagement.",
				"Explore more learning resources",
				"Participate in discussion forums",
				"Watch recorded lectures and supplementary materials")},
		{func(f domain.Features) bool { return f.EngagementCV > 0.6 },
			fixedImprovement("Engagement Consistency", "Irregular participation detected.",
				"Establish a regular study schedule",
				"Dedicate specific times each week to coursework",
				"Use the Pomodoro technique for focused study sessions")},
		{func(f domain.Features) bool { return f.NumPrevAttempts > 1 },
			fixedImprovement("Repeat Attempts", "This isn't your first time.",
				"Identify what didn't work in previous attempts",
				"Seek advisor guidance on study strategies",
				"Consider adjusting your course load")},
	},
	actionPlans: map[int][]string{
		domain.PersonaHighAchiever: {
			"Maintain Excellence: Continue your current study habits",
			"Peer Mentoring: Consider helping struggling classmates",
			"Advanced Challenges: Explore supplementary advanced materials",
			"Career Preparation: Start building your portfolio or CV",
		},
		domain.PersonaStruggling: {
			"Immediate Intervention: Schedule meeting with academic advisor",
			"Support Services: Contact student support services immediately",
			"Study Schedule: Create a structured daily study plan",
			"Study Group: Join or form a study group for accountability",
			"Focus on Basics: Prioritize understanding fundamental concepts",
		},
		domain.PersonaEngagedAchiever: {
			"Consistency is Key: Maintain your engagement patterns",
			"Optimize Performance: Focus on maximizing assessment scores",
			"Strategic Study: Identify high-impact study activities",
			"Aim Higher: Challenge yourself to reach distinction level",
		},
		domain.PersonaActiveStruggling: {
			"Time Management: Implement strict deadline tracking",
			"Prioritization: Focus on high-weight assessments first",
			"Quality over Quantity: Reduce activities, increase focus",
			"Planning: Create assignment timelines with buffer time",
		},
		domain.PersonaReturner: {
			"New Approach: Try different learning strategies",
			"Tutoring: Get one-on-one help in challenging areas",
			"Resource Review: Explore different textbooks/materials",
			"Mindset Shift: Focus on growth and learning from past attempts",
		},
		domain.PersonaFastDisengaged: {
			"Re-engage: Increase platform interaction and participation",
			"Community: Join discussion forums and group activities",
			"Deeper Learning: Spend more time on comprehension vs speed",
			"Balance: Maintain pace while increasing engagement quality",
		},
	},
	noStrengthsMessage:    "Keep working hard! Your strengths will emerge as you progress through the course.",
	noImprovementsMessage: "Great job! Keep maintaining your current approach!",
	resources:             academicResources,
}

var learnerFeedback = feedbackProfile{
	strengths: []strengthCheck{
		{func(f domain.Features) bool { return f.AvgScore >= 70 },
			"Strong Performance - Your scores show good understanding of the material!"},
		{func(f domain.Features) bool { return f.SubmissionTimeliness <= 0 },
			"Excellent Time Management - You submit work on time consistently!"},
		{func(f domain.Features) bool { return len(f.SkillsPracticed) >= 3 },
			"Well-Rounded Practice - You're developing multiple English skills!"},
		{func(f domain.Features) bool { return f.EngagementCV <= 0.4 },
			"Consistent Practice - You maintain a regular study routine!"},
		{func(f domain.Features) bool { return f.NumPrevAttempts == 0 },
			"Fresh Start Success - You're making good progress on your first try!"},
		{func(f domain.Features) bool { return f.LessonsPerWeek >= 5 },
			"Dedicated Learner - You complete many lessons each week!"},
		{func(f domain.Features) bool { return f.EngagementTrend > 0 },
			"Growing Motivation - Your enthusiasm is building over time!"},
	},
	improvements: []improvementCheck{
		{func(f domain.Features) bool { return f.AvgScore < 60 },
			func(f domain.Features) domain.Improvement {
				return domain.Improvement{
					Title: "Improve Lesson Scores",
					Issue: fmt.Sprintf("Your average score (%g%%) is below target", f.AvgScore),
					Tips: []string{
						"Review lessons before taking quizzes",
						"Take notes while studying",
						"Redo exercises you got wrong",
						"Ask questions when you don't understand",
					},
				}
			}},
		{func(f domain.Features) bool { return f.SubmissionTimeliness > 0 },
			fixedImprovement("Better Time Management", "Late submissions can hurt your progress",
				"Set calendar reminders for deadlines",
				"Start assignments when they're given",
				"Break large tasks into smaller daily goals",
				"Dedicate specific times for English study")},
		{func(f domain.Features) bool { return f.LessonsPerWeek < 3 },
			func(f domain.Features) domain.Improvement {
				return domain.Improvement{
					Title: "Increase Practice Frequency",
					Issue: fmt.Sprintf("Only %g lessons/week is not enough", f.LessonsPerWeek),
					Tips: []string{
						"Aim for at least 5 lessons per week",
						"Study for 15-30 minutes daily",
						"Use mobile app for quick practice sessions",
						"Make English part of your daily routine",
					},
				}
			}},
		{func(f domain.Features) bool { return f.EngagementCV >= 0.6 },
			fixedImprovement("Build Consistent Habits", "Irregular practice slows your progress",
				"Study at the same time each day",
				"Start with small daily goals (10 min)",
				"Track your study streak",
				"Reward yourself for consistency")},
		{func(f domain.Features) bool { return len(f.SkillsPracticed) < 3 },
			fixedImprovement("Practice All Skills", "You need to develop all English skills",
				"Include reading, writing, listening, and speaking",
				"Spend time on your weakest skill each day",
				"Use real-world content (videos, articles)",
				"Balance all skills for best results")},
		{func(f domain.Features) bool { return f.NumPrevAttempts > 0 },
			fixedImprovement("Learn from Past Attempts", "This is not your first time - let's succeed now!",
				"Identify what didn't work before",
				"Use a different study method this time",
				"Get help early - don't wait until struggling",
				"Consider reducing your course load")},
	},
	actionPlans: map[int][]string{
		domain.PersonaHighAchiever: {
			"Week 1-2: Continue your excellent routine",
			"Challenge Yourself: Try advanced materials or help other students",
			"Set New Goals: Aim for 90%+ on all lessons",
			"Prepare for Next Level: Review requirements for next course",
		},
		domain.PersonaStruggling: {
			"THIS WEEK: Schedule meeting with instructor or tutor (urgent!)",
			"Create Schedule: Study 30 min every day at same time",
			"Start Small: Complete 3 easy lessons this week to build confidence",
			"Get Support: Join study group or find study partner",
			"Focus: Master basic vocabulary and grammar first",
		},
		domain.PersonaEngagedAchiever: {
			"Maintain Consistency: Keep your current study schedule",
			"Aim Higher: Target 85%+ on all lessons",
			"Focus on Weak Skills: Spend extra time on lowest skill area",
			"Challenge: Complete 2 extra lessons this week",
		},
		domain.PersonaActiveStruggling: {
			"Quality Over Quantity: Reduce lessons but increase focus",
			"Review Before New: Spend 50% of time reviewing previous lessons",
			"Master Basics: Focus on fundamentals before moving ahead",
			"Take Notes: Write down key points from each lesson",
		},
		domain.PersonaReturner: {
			"New Strategy: Try a completely different study approach",
			"Get Help: Book weekly tutoring sessions",
			"Different Materials: Use videos, apps, or different textbooks",
			"Mindset: Focus on improvement, not perfection",
			"Small Wins: Celebrate every success, no matter how small",
		},
		domain.PersonaFastDisengaged: {
			"Slow Down: Spend more time on each lesson",
			"Deep Learning: Review lessons until you truly understand",
			"Engage More: Join forums, discussions, and study groups",
			"Balance: Quality understanding beats speed",
		},
	},
	noStrengthsMessage:    "Keep practicing! Your strengths will emerge as you continue learning.",
	noImprovementsMessage: "Great job! Keep up your current approach!",
	resources:             learnerResources,
}

func profileFor(schema domain.Schema) *feedbackProfile {
	if schema == domain.SchemaLearner {
		return &learnerFeedback
	}
	return &academicFeedback
}

// ActionPlan returns the fixed recommendations for a persona.
func ActionPlan(schema domain.Schema, personaID int) []string {
	return profileFor(schema).actionPlans[personaID]
}

// GenerateFeedback derives strengths, improvements, the persona action plan
// and the outcome distribution. Only the distribution depends on rng.
func GenerateFeedback(f domain.Features, scored Scored, persona domain.Persona, rng Rand) domain.FeedbackBundle {
	profile := profileFor(f.Schema)

	bundle := domain.FeedbackBundle{
		Strengths:    []string{},
		Improvements: []domain.Improvement{},
		ActionPlan:   ActionPlan(f.Schema, persona.ID),
		Resources:    profile.resources(f),
	}
	for _, c := range profile.strengths {
		if c.Match(f) {
			bundle.Strengths = append(bundle.Strengths, c.Text)
		}
	}
	for _, c := range profile.improvements {
		if c.Match(f) {
			bundle.Improvements = append(bundle.Improvements, c.Build(f))
		}
	}
	if len(bundle.Strengths) == 0 {
		bundle.Encouragement = append(bundle.Encouragement, profile.noStrengthsMessage)
	}
	if len(bundle.Improvements) == 0 {
		bundle.Encouragement = append(bundle.Encouragement, profile.noImprovementsMessage)
	}

	if scored.ModelProbabilities != nil {
		bundle.Probabilities = scored.ModelProbabilities
	} else {
		bundle.Probabilities = Probabilities(scored.RawScore, rng)
	}
	return bundle
}
