package schema

import "time"

const (
	AlertCollection = "alerts"
)

type AlertType string

const (
	AlertCrisis          AlertType = "crisis"
	AlertPersistentHigh  AlertType = "persistent_high"
	AlertMissingReadings AlertType = "missing_readings"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type Alert struct {
	ID        string        `json:"id" bson:"_id"`
	UserID    string        `json:"user_id" bson:"user_id"`
	Type      AlertType     `json:"type" bson:"type"`
	Severity  AlertSeverity `json:"severity" bson:"severity"`
	Message   string        `json:"message" bson:"message"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	IsRead    bool          `json:"is_read" bson:"is_read"`
}
