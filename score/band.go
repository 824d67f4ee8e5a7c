package score

type Band string

const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandNeedsImprovement Band = "needs_improvement"
)

// BandOf returns the band a score falls into
func BandOf(score int) Band {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	default:
		return BandNeedsImprovement
	}
}

// CheckBandChange reports whether two scores fall into different bands
func CheckBandChange(oldScore, newScore int) bool {
	return BandOf(oldScore) != BandOf(newScore)
}
