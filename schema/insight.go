package schema

import "time"

const (
	InsightCollection = "insights"
)

type InsightType string

const (
	InsightBPPattern       InsightType = "bp_pattern"
	InsightMissedLogs      InsightType = "missed_logs"
	InsightSleepPattern    InsightType = "sleep_pattern"
	InsightActivityPattern InsightType = "activity_pattern"
	InsightHRVPattern      InsightType = "hrv_pattern"
	InsightStressPattern   InsightType = "stress_pattern"
	InsightCelebration     InsightType = "celebration"
	InsightGeneralWellness InsightType = "general_wellness"
)

func (t InsightType) Valid() bool {
	switch t {
	case InsightBPPattern, InsightMissedLogs, InsightSleepPattern, InsightActivityPattern,
		InsightHRVPattern, InsightStressPattern, InsightCelebration, InsightGeneralWellness:
		return true
	}
	return false
}

// Insight is a generated text about a reading. The text is stored as is.
type Insight struct {
	ID        string      `json:"id" bson:"_id"`
	UserID    string      `json:"user_id" bson:"user_id"`
	ReadingID string      `json:"reading_id" bson:"reading_id"`
	Type      InsightType `json:"type" bson:"type"`
	Text      string      `json:"text" bson:"text"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// InsightWithReading is an insight together with the reading it is about.
// Reading is nil when the reading was deleted.
type InsightWithReading struct {
	Insight
	Reading *Reading `json:"reading"`
}
