package score

import (
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/stats"
)

const (
	MaxScore = 100
	MinScore = 0
)

// Total sums the components into a score within [0, 100]
func Total(c schema.ScoreComponents) int {
	total := c.Sum()
	if total > MaxScore {
		return MaxScore
	}
	if total < MinScore {
		return MinScore
	}
	return total
}

// Trend compares a score to the latest score of a previous day
func Trend(current int, previous *schema.FloScore) schema.ScoreTrend {
	if previous == nil {
		return schema.ScoreTrendStable
	}

	switch stats.TrendFromDelta(float64(current-previous.Score), TrendThreshold, false) {
	case stats.Up:
		return schema.ScoreTrendUp
	case stats.Down:
		return schema.ScoreTrendDown
	default:
		return schema.ScoreTrendStable
	}
}
