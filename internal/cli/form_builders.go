package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/educare/internal/cli/formatter"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/features"
	"github.com/alexanderramin/educare/internal/validate"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// educareHuhTheme returns a huh theme using the formatter palette.
func educareHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// recordForm is a huh form whose numeric inputs are edited as text and
// written back to the record by commit.
type recordForm struct {
	form    *huh.Form
	commits []func() error
}

// commit parses every numeric buffer into its destination field.
func (f *recordForm) commit() error {
	for _, c := range f.commits {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// intBuffer registers a text buffer that commit parses into dst.
func (f *recordForm) intBuffer(title string, dst *int) *string {
	buf := strconv.Itoa(*dst)
	f.commits = append(f.commits, func() error {
		v, err := strconv.Atoi(strings.TrimSpace(buf))
		if err != nil {
			return fmt.Errorf("%s: enter a whole number", title)
		}
		*dst = v
		return nil
	})
	return &buf
}

func (f *recordForm) floatBuffer(title string, dst *float64) *string {
	buf := strconv.FormatFloat(*dst, 'f', -1, 64)
	f.commits = append(f.commits, func() error {
		v, err := strconv.ParseFloat(strings.TrimSpace(buf), 64)
		if err != nil {
			return fmt.Errorf("%s: enter a number", title)
		}
		*dst = v
		return nil
	})
	return &buf
}

func (f *recordForm) intInput(title string, dst *int) *huh.Input {
	return huh.NewInput().Title(title).Value(f.intBuffer(title, dst)).Validate(validateInt)
}

func (f *recordForm) floatInput(title string, dst *float64) *huh.Input {
	return huh.NewInput().Title(title).Value(f.floatBuffer(title, dst)).Validate(validateFloat)
}

func selectInput(title string, options []string, dst *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(dst)
}

func confirmInput(title string, dst *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(dst)
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// academicForm builds a four-page form prefilled from r.
func academicForm(r *domain.AcademicRecord) *recordForm {
	f := &recordForm{}
	opts := func(field string) []string { return validate.Options(domain.SchemaAcademic, field) }

	f.form = huh.NewForm(
		huh.NewGroup(
			selectInput("Gender", opts("gender"), &r.Gender),
			selectInput("Age Band", opts("age_band"), &r.AgeBand),
			selectInput("Region", opts("region"), &r.Region),
			selectInput("Highest Education", opts("highest_education"), &r.HighestEducation),
			selectInput("IMD Band", opts("imd_band"), &r.IMDBand),
			confirmInput("Declared Disability?", &r.Disability),
		).Title("Demographics"),
		huh.NewGroup(
			f.intInput("Previous Attempts", &r.NumPrevAttempts),
			f.intInput("Studied Credits", &r.StudiedCredits),
			f.intInput("Days Since Registration", &r.DaysSinceRegistration),
		).Title("Academic Background"),
		huh.NewGroup(
			f.intInput("Total Clicks", &r.TotalClicks),
			f.intInput("Activity Count", &r.ActivityCount),
			selectInput("Main Activity Type", opts("activity_type"), &r.ActivityType),
			selectInput("Study Method", opts("study_method"), &r.StudyMethod),
			f.floatInput("Learning Pace (credits/day)", &r.LearningPace),
			f.floatInput("Engagement Consistency (0-1)", &r.EngagementConsistency),
		).Title("Engagement"),
		huh.NewGroup(
			f.floatInput("Average Score", &r.AvgScore),
			f.floatInput("Submission Timeliness (days, negative is early)", &r.SubmissionTimeliness),
			f.intInput("Banked Assessments", &r.BankedAssessments),
			f.intInput("Total Assessments", &r.TotalAssessments),
		).Title("Performance"),
	).WithTheme(educareHuhTheme()).WithShowHelp(false)

	return f
}

// learnerForm builds the learner form. Category choices come from the
// lookup tables so every selectable label is mappable.
func learnerForm(r *domain.LearnerRecord) *recordForm {
	f := &recordForm{}

	skills := huh.NewMultiSelect[string]().
		Title("Skills Practiced").
		Options(huh.NewOptions(features.Labels(features.Skills)...)...).
		Value(&r.SkillsPracticed)

	f.form = huh.NewForm(
		huh.NewGroup(
			selectInput("Gender", validate.Options(domain.SchemaLearner, "gender"), &r.Gender),
			selectInput("Age Group", features.Labels(features.AgeBandProxy), &r.AgeGroup),
			selectInput("Region", features.Labels(features.RegionProxy), &r.Region),
			selectInput("Education Level", features.Labels(features.EducationProxy), &r.EducationLevel),
			selectInput("Income Level", features.Labels(features.IMDBandProxy), &r.IncomeLevel),
			confirmInput("Declared Disability?", &r.HasDisability),
		).Title("About You"),
		huh.NewGroup(
			selectInput("Current Level", validate.Options(domain.SchemaLearner, "current_level"), &r.CurrentLevel),
			selectInput("Course Attempt", features.Labels(features.AttemptCount), &r.CourseAttempt),
			f.intInput("Weeks in Course", &r.WeeksInCourse),
		).Title("Course"),
		huh.NewGroup(
			f.intInput("Lessons per Week", &r.LessonsPerWeek),
			f.intInput("Exercises per Lesson", &r.ExercisesPerLesson),
			selectInput("Study Consistency", features.Labels(features.ConsistencyDispersion), &r.StudyConsistency),
			selectInput("Primary Learning Method", features.Labels(features.ActivityTypeProxy), &r.PrimaryLearningMethod),
			skills,
		).Title("Study Habits"),
		huh.NewGroup(
			f.floatInput("Average Lesson Score", &r.AverageLessonScore),
			selectInput("Assignment Timeliness", features.Labels(features.TimelinessDays), &r.AssignmentTimeliness),
			selectInput("Motivation", features.Labels(features.MotivationTrend), &r.MotivationTrend),
			selectInput("Performance", features.Labels(features.PerformanceTrend), &r.PerformanceTrend),
		).Title("Progress"),
	).WithTheme(educareHuhTheme()).WithShowHelp(false)

	return f
}

// confirmForm creates a yes/no confirmation form.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(confirmInput(title, result)),
	).WithTheme(educareHuhTheme()).WithShowHelp(false)
}
