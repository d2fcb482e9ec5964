package predictor

import (
	"slices"

	"github.com/alexanderramin/educare/internal/domain"
)

var academicResourceGroups = []domain.ResourceGroup{
	{Title: "Study Skills", Items: []string{
		"Time management workshops",
		"Note-taking strategies guide",
		"Exam preparation techniques",
	}},
	{Title: "Academic Support", Items: []string{
		"Tutoring services",
		"Writing center",
		"Library research assistance",
	}},
	{Title: "Wellbeing", Items: []string{
		"Student counseling services",
		"Stress management resources",
		"Peer support groups",
	}},
}

func academicResources(domain.Features) []domain.ResourceGroup {
	return academicResourceGroups
}

func learnerResources(f domain.Features) []domain.ResourceGroup {
	var groups []domain.ResourceGroup
	if f.AvgScore < 60 {
		groups = append(groups, domain.ResourceGroup{Title: "Grammar and Vocabulary", Items: []string{
			"Grammar practice exercises",
			"Vocabulary flashcard apps",
			"Daily reading of short articles",
		}})
	}
	if !slices.Contains(f.SkillsPracticed, "Speaking") {
		groups = append(groups, domain.ResourceGroup{Title: "Speaking Practice", Items: []string{
			"Language exchange partners",
			"Conversation clubs",
			"Recording and reviewing yourself",
		}})
	}
	if !slices.Contains(f.SkillsPracticed, "Listening") {
		groups = append(groups, domain.ResourceGroup{Title: "Listening Practice", Items: []string{
			"English podcasts for learners",
			"Videos with subtitles",
			"Short news broadcasts",
		}})
	}
	if f.EngagementCV >= 0.6 {
		groups = append(groups, domain.ResourceGroup{Title: "Study Habits", Items: []string{
			"Habit tracking apps",
			"Daily study reminders",
			"Study accountability partner",
		}})
	}
	groups = append(groups,
		domain.ResourceGroup{Title: "General Learning", Items: []string{
			"Online English courses",
			"Practice tests",
			"English learning communities",
		}},
		domain.ResourceGroup{Title: "Motivation", Items: []string{
			"Set small weekly goals",
			"Track your progress visually",
			"Celebrate milestones",
		}},
	)
	return groups
}
