package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/educare/internal/contract"
	"github.com/alexanderramin/educare/internal/domain"
	"github.com/alexanderramin/educare/internal/predictor"
	"gopkg.in/yaml.v3"
)

const (
	probabilityBarWidth  = 20
	contributionBarWidth = 12
)

// FormatPrediction renders a prediction as the full terminal report.
func FormatPrediction(resp *contract.PredictResponse) string {
	var b strings.Builder

	outcome := OutcomeStyle(resp.Outcome.Outcome).Bold(true).Render(resp.Outcome.Label)
	fmt.Fprintf(&b, "%s  %s\n", outcome, Dim(fmt.Sprintf("%s confidence, %s", Percent(resp.Outcome.Confidence), resp.Outcome.Source)))
	fmt.Fprintf(&b, "%s %s\n", Dim("Composite score:"), StyleFg.Render(fmt.Sprintf("%.3f", resp.RawScore)))

	b.WriteString("\n" + Header("Persona") + "\n")
	fmt.Fprintf(&b, "%s  %s\n", ToneStyle(resp.Persona.Color).Bold(true).Render(resp.Persona.Name), RiskIndicator(resp.Persona.RiskLevel))
	b.WriteString(Dim(resp.Persona.Description) + "\n")

	b.WriteString("\n" + Header("Risk") + "\n")
	fmt.Fprintf(&b, "%s  %s\n", RiskIndicator(resp.Risk.Level), Dim(fmt.Sprintf("%d of 5 indicators", resp.Risk.Count)))
	for _, f := range resp.Risk.Factors {
		b.WriteString("  " + RiskColor(resp.Risk.Level).Render("! ") + f + "\n")
	}

	b.WriteString("\n" + Header("Outcome probabilities") + "\n")
	b.WriteString(formatProbabilities(resp.Schema, resp.Feedback.Probabilities))

	if len(resp.Contributions) > 0 {
		b.WriteString("\n" + Header("Factor contributions") + "\n")
		maxImpact := predictor.DefaultWeights().Score
		rows := make([][]string, 0, len(resp.Contributions))
		for _, c := range resp.Contributions {
			rows = append(rows, []string{c.Factor, RenderShareBar(c.Impact/maxImpact, contributionBarWidth, StyleBlue), fmt.Sprintf("%.3f", c.Impact)})
		}
		b.WriteString(RenderAlignedTable([]string{"FACTOR", "", "IMPACT"}, rows, []Align{AlignLeft, AlignLeft, AlignRight}))
	}

	b.WriteString("\n" + Header("Strengths") + "\n")
	for _, s := range resp.Feedback.Strengths {
		b.WriteString("  " + StyleGreen.Render("+ ") + s + "\n")
	}

	b.WriteString("\n" + Header("Areas to improve") + "\n")
	for _, imp := range resp.Feedback.Improvements {
		fmt.Fprintf(&b, "  %s%s %s\n", StyleYellow.Render("* "), Bold(imp.Title), Dim(imp.Issue))
		for _, tip := range imp.Tips {
			b.WriteString("      - " + tip + "\n")
		}
	}
	for _, msg := range resp.Feedback.Encouragement {
		b.WriteString("  " + StylePurple.Render(msg) + "\n")
	}

	b.WriteString("\n" + Header("Action plan") + "\n")
	for i, step := range resp.Feedback.ActionPlan {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	if len(resp.Feedback.Resources) > 0 {
		b.WriteString("\n" + Header("Resources") + "\n")
		for _, g := range resp.Feedback.Resources {
			b.WriteString("  " + Bold(g.Title) + "\n")
			for _, item := range g.Items {
				b.WriteString("      - " + item + "\n")
			}
		}
	}

	if len(resp.Notices) > 0 {
		b.WriteString("\n")
		for _, n := range resp.Notices {
			b.WriteString(StyleYellow.Render("  NOTICE: "+n) + "\n")
		}
	}

	footer := TruncID(resp.ID)
	if !resp.Saved {
		footer += Dim(" (not saved)")
	}
	b.WriteString("\n" + footer)

	return RenderBox(fmt.Sprintf("%s prediction", resp.Schema), b.String())
}

func formatProbabilities(schema domain.Schema, probs domain.Probabilities) string {
	rows := make([][]string, 0, len(domain.Outcomes))
	for _, o := range domain.Outcomes {
		p, ok := probs[o]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			predictor.OutcomeLabel(schema, o),
			RenderShareBar(p, probabilityBarWidth, OutcomeStyle(o)),
		})
	}
	return RenderTable([]string{"OUTCOME", "PROBABILITY"}, rows)
}

// FormatHistoryList renders stored prediction summaries as a table.
func FormatHistoryList(resp *contract.HistoryListResponse, now time.Time) string {
	if len(resp.Predictions) == 0 {
		return Dim("No saved predictions.")
	}
	rows := make([][]string, 0, len(resp.Predictions))
	for _, s := range resp.Predictions {
		rows = append(rows, []string{
			TruncID(s.ID),
			string(s.Schema),
			OutcomeStyle(s.Outcome).Render(s.OutcomeLabel),
			Percent(s.Confidence),
			s.PersonaName,
			RiskIndicator(s.RiskLevel),
			HumanTimestampFrom(s.CreatedAt, now),
		})
	}
	return RenderAlignedTable(
		[]string{"ID", "SCHEMA", "OUTCOME", "CONF", "PERSONA", "RISK", "CREATED"},
		rows,
		[]Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	)
}

// FormatHistoryShow renders a stored prediction followed by the record it
// was made from.
func FormatHistoryShow(resp *contract.HistoryShowResponse) string {
	out := FormatPrediction(resp.Prediction)
	if resp.Input == nil {
		return out + "\n" + Dim("Input record not stored.")
	}
	data, err := yaml.Marshal(resp.Input)
	if err != nil {
		return out + "\n" + Dim("Input record unavailable: "+err.Error())
	}
	return out + "\n" + RenderBox(string(resp.Input.Schema())+" input", strings.TrimRight(string(data), "\n"))
}
