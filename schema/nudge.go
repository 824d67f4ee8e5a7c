package schema

import "time"

const (
	NudgeCollection = "nudges"
)

type NudgeType string

const (
	NudgeReadingReminder NudgeType = "reading_reminder"
	NudgeScoreBandChange NudgeType = "score_band_change"
)

// Nudge is the last time a kind of push notification was sent to a user
type Nudge struct {
	UserID   string    `bson:"user_id"`
	Type     NudgeType `bson:"type"`
	LastSent time.Time `bson:"last_sent"`
}
