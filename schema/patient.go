package schema

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

type PatientTrend string

const (
	PatientImproving PatientTrend = "improving"
	PatientStable    PatientTrend = "stable"
	PatientWorsening PatientTrend = "worsening"
)

type Variability string

const (
	VariabilityLow      Variability = "low"
	VariabilityModerate Variability = "moderate"
	VariabilityHigh     Variability = "high"
)

// PatientMetrics is the clinician view of a patient over the last 7 days
type PatientMetrics struct {
	AvgSystolic    int          `json:"avg_systolic"`
	AvgDiastolic   int          `json:"avg_diastolic"`
	AvgHeartRate   int          `json:"avg_heart_rate"`
	RiskLevel      RiskLevel    `json:"risk_level"`
	Trend          PatientTrend `json:"trend"`
	Variability    Variability  `json:"variability"`
	ReadingsCount  int          `json:"readings_count"`
	FloScore       *int         `json:"flo_score"`
	LastReadingAge string       `json:"last_reading_age"`
	Compliance     int          `json:"compliance"`
}
