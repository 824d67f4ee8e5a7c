package schema

import "time"

const (
	WearableMetricCollection = "wearable_metrics"
)

type MetricType string

const (
	MetricHeartRate       MetricType = "heart_rate"
	MetricHRV             MetricType = "hrv"
	MetricSleepDuration   MetricType = "sleep_duration"
	MetricSleepQuality    MetricType = "sleep_quality"
	MetricSteps           MetricType = "steps"
	MetricCalories        MetricType = "calories"
	MetricStressScore     MetricType = "stress_score"
	MetricReadinessScore  MetricType = "readiness_score"
	MetricActivityMinutes MetricType = "activity_minutes"
)

var metricUnits = map[MetricType]string{
	MetricHeartRate:       "bpm",
	MetricHRV:             "ms",
	MetricSleepDuration:   "hrs",
	MetricSleepQuality:    "%",
	MetricSteps:           "",
	MetricCalories:        "kcal",
	MetricStressScore:     "",
	MetricReadinessScore:  "",
	MetricActivityMinutes: "min",
}

// Valid reports whether the type is one of the supported metric types
func (t MetricType) Valid() bool {
	_, ok := metricUnits[t]
	return ok
}

// DefaultUnit returns the unit used when a metric is stored without one
func (t MetricType) DefaultUnit() string {
	return metricUnits[t]
}

type MetricSource string

const (
	MetricSourceManual      MetricSource = "manual"
	MetricSourceBluetooth   MetricSource = "bluetooth"
	MetricSourceAppleHealth MetricSource = "apple_health"
	MetricSourceGoogleFit   MetricSource = "google_fit"
	MetricSourceFitbit      MetricSource = "fitbit"
	MetricSourceOther       MetricSource = "other"
)

func (s MetricSource) Valid() bool {
	switch s {
	case MetricSourceManual, MetricSourceBluetooth, MetricSourceAppleHealth,
		MetricSourceGoogleFit, MetricSourceFitbit, MetricSourceOther:
		return true
	}
	return false
}

type WearableMetric struct {
	ID         string       `json:"id" bson:"_id"`
	UserID     string       `json:"user_id" bson:"user_id"`
	MetricType MetricType   `json:"metric_type" bson:"metric_type"`
	Value      float64      `json:"value" bson:"value"`
	Unit       string       `json:"unit" bson:"unit"`
	Source     MetricSource `json:"source" bson:"source"`
	Timestamp  time.Time    `json:"timestamp" bson:"timestamp"`
}

type MetricTrend string

const (
	MetricTrendUp     MetricTrend = "up"
	MetricTrendDown   MetricTrend = "down"
	MetricTrendStable MetricTrend = "stable"
)

// MetricPoint is the value of a metric on a calendar date
type MetricPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MetricSummary is the summary of one metric type. Latest, Average and Trend
// are nil when there is not enough data.
type MetricSummary struct {
	Latest     *WearableMetric `json:"latest"`
	WeeklyData []MetricPoint   `json:"weekly_data"`
	Average    *float64        `json:"average"`
	Trend      *MetricTrend    `json:"trend"`
}

type WearablesDashboard struct {
	HRV        MetricSummary `json:"hrv"`
	Sleep      MetricSummary `json:"sleep"`
	Steps      MetricSummary `json:"steps"`
	Stress     MetricSummary `json:"stress"`
	HasAnyData bool          `json:"has_any_data"`
}
