package analytics

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/score"
)

const (
	LowCompliance = 50

	insufficientDataSummary = "Insufficient data to generate a summary. Encourage the patient to log more readings."
)

var riskPhrases = map[schema.RiskLevel]string{
	schema.RiskLow:      "within healthy range",
	schema.RiskModerate: "slightly elevated",
	schema.RiskHigh:     "elevated and requires attention",
}

var trendSentences = map[schema.PatientTrend]string{
	schema.PatientImproving: "BP readings show an improving trend compared to the previous week.",
	schema.PatientWorsening: "BP readings are trending upward compared to the previous week.",
	schema.PatientStable:    "BP readings remain stable.",
}

var variabilitySentences = map[schema.Variability]string{
	schema.VariabilityHigh:     "High day-to-day variability detected; consider reviewing measurement timing and technique.",
	schema.VariabilityModerate: "Moderate variability in readings.",
}

var bandNames = map[score.Band]string{
	score.BandExcellent:        "excellent",
	score.BandGood:             "good",
	score.BandNeedsImprovement: "needs improvement",
}

// ClinicalSummary renders the metrics as a short text for clinicians. The
// sentences always come in the same order and optional ones are left out.
func ClinicalSummary(m *schema.PatientMetrics) string {
	if m == nil {
		return insufficientDataSummary
	}

	sentences := []string{
		fmt.Sprintf("Over the last 7 days, average BP is %d/%d, %s.", m.AvgSystolic, m.AvgDiastolic, riskPhrases[m.RiskLevel]),
		trendSentences[m.Trend],
	}

	if s, ok := variabilitySentences[m.Variability]; ok {
		sentences = append(sentences, s)
	}

	if m.FloScore != nil {
		sentences = append(sentences, fmt.Sprintf("Flo Score: %d (%s).", *m.FloScore, bandNames[score.BandOf(*m.FloScore)]))
	}

	if m.Compliance < LowCompliance {
		sentences = append(sentences, "Low compliance with recommended measurement frequency.")
	}

	return strings.Join(sentences, " ")
}
