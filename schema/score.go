package schema

import "time"

const (
	FloScoreCollection = "flo_scores"
)

type ScoreTrend string

const (
	ScoreTrendUp     ScoreTrend = "up"
	ScoreTrendStable ScoreTrend = "stable"
	ScoreTrendDown   ScoreTrend = "down"
)

// ScoreComponents are the six weighted parts of a Flo Score
type ScoreComponents struct {
	BP                  int `json:"bp_score" bson:"bp_score"`
	BPVariability       int `json:"bp_variability_score" bson:"bp_variability_score"`
	HeartRate           int `json:"hr_score" bson:"hr_score"`
	Activity            int `json:"activity_score" bson:"activity_score"`
	Sleep               int `json:"sleep_score" bson:"sleep_score"`
	MedicationAdherence int `json:"medication_adherence" bson:"medication_adherence"`
}

func (c ScoreComponents) Sum() int {
	return c.BP + c.BPVariability + c.HeartRate + c.Activity + c.Sleep + c.MedicationAdherence
}

// FloScore is the daily composite wellness score of a user. There is at most
// one record per user and date.
type FloScore struct {
	UserID       string          `json:"user_id" bson:"user_id"`
	Score        int             `json:"score" bson:"score"`
	Trend        ScoreTrend      `json:"trend" bson:"trend"`
	Components   ScoreComponents `json:"components" bson:"components"`
	Explanation  string          `json:"explanation" bson:"explanation"`
	Date         string          `json:"date" bson:"date"`
	CalculatedAt time.Time       `json:"calculated_at" bson:"calculated_at"`
}
