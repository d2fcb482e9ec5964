package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-72 * time.Hour), "Feb 4, 2026"},
		{"future", now.Add(2 * time.Hour), "Feb 7, 2026 14:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0123456789abcdef"), "01234567")
	assert.NotContains(t, TruncID("0123456789abcdef"), "89")
	assert.Contains(t, TruncID("abc"), "abc")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "85%", Percent(0.85))
	assert.Equal(t, "0%", Percent(0))
}

func TestRiskIndicator(t *testing.T) {
	assert.Contains(t, RiskIndicator(domain.RiskHigh), "HIGH RISK")
	assert.Contains(t, RiskIndicator(domain.RiskLow), "LOW RISK")
	assert.Contains(t, RiskIndicator(""), "UNKNOWN")
}
