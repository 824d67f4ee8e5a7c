package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flo-api/schema"
)

func readings(pairs ...[3]int) []schema.Reading {
	result := make([]schema.Reading, 0, len(pairs))
	base := time.Date(2020, 5, 10, 8, 0, 0, 0, time.UTC)
	for i, p := range pairs {
		result = append(result, schema.Reading{
			Systolic:  p[0],
			Diastolic: p[1],
			HeartRate: p[2],
			Timestamp: base.Add(-time.Duration(i) * 12 * time.Hour),
		})
	}
	return result
}

func TestBPScore(t *testing.T) {
	assert.Equal(t, 0, BPScore(185, 95))
	assert.Equal(t, 5, BPScore(145, 85))
	assert.Equal(t, 12, BPScore(132, 78))
	assert.Equal(t, 20, BPScore(129.6, 79))
	assert.Equal(t, 25, BPScore(DefaultSystolic-1, 70))
	assert.Equal(t, 12, BPScore(DefaultSystolic, DefaultDiastolic))
}

func TestVariabilityScoreNeedsThreeReadings(t *testing.T) {
	assert.Equal(t, 15, VariabilityScore(nil))
	assert.Equal(t, 15, VariabilityScore([]float64{100}))
	assert.Equal(t, 15, VariabilityScore([]float64{90, 200}))
}

func TestVariabilityScore(t *testing.T) {
	assert.Equal(t, 15, VariabilityScore([]float64{120, 120, 120}))
	assert.Equal(t, 12, VariabilityScore([]float64{110, 120, 130}))
	assert.Equal(t, 8, VariabilityScore([]float64{105, 120, 135}))
	assert.Equal(t, 4, VariabilityScore([]float64{100, 120, 140}))
	assert.Equal(t, 0, VariabilityScore([]float64{90, 120, 150}))
}

func TestHeartRateScore(t *testing.T) {
	cases := map[float64]int{50: 15, 85: 15, 49: 12, 90: 12, 40: 8, 100: 8, 39: 4, 101: 4}
	for hr, expected := range cases {
		assert.Equal(t, expected, HeartRateScore(hr), "hr %v", hr)
	}
}

func TestActivityScore(t *testing.T) {
	cases := map[float64]int{12000: 20, 10000: 20, 7500: 16, 5000: 12, 2500: 8, 2499: 4, 0: 4}
	for steps, expected := range cases {
		assert.Equal(t, expected, ActivityScore(steps), "steps %v", steps)
	}
}

func TestSleepScore(t *testing.T) {
	cases := map[float64]int{7: 15, 9: 15, 6: 12, 10: 12, 5: 8, 11: 8, 4.9: 4, 12: 4}
	for hours, expected := range cases {
		assert.Equal(t, expected, SleepScore(hours), "hours %v", hours)
	}
}

func TestMedicationScore(t *testing.T) {
	cases := map[float64]int{1: 10, 0.95: 10, 0.9: 8, 0.7: 6, 0.5: 3, 0.49: 0}
	for rate, expected := range cases {
		assert.Equal(t, expected, MedicationScore(rate), "rate %v", rate)
	}
}

func TestComponentsWithEmptyInputUsesDefaults(t *testing.T) {
	c := Components(Aggregate(Input{}))
	assert.Equal(t, schema.ScoreComponents{
		BP:                  12,
		BPVariability:       15,
		HeartRate:           15,
		Activity:            12,
		Sleep:               15,
		MedicationAdherence: 10,
	}, c)
	assert.Equal(t, 79, Total(c))
}

func TestAggregateDefaultsAreAllOrNothing(t *testing.T) {
	a := Aggregate(Input{
		Steps: []float64{1000},
		MedicationLogs: []schema.MedicationLog{
			{Status: schema.MedicationTaken},
			{Status: schema.MedicationSkipped},
		},
	})

	assert.Nil(t, a.AvgSystolic)
	assert.Nil(t, a.AvgSleepHours)
	assert.Equal(t, 1000.0, *a.AvgSteps)
	assert.Equal(t, 0.5, *a.Adherence)

	c := Components(a)
	assert.Equal(t, 4, c.Activity)
	assert.Equal(t, 3, c.MedicationAdherence)
	assert.Equal(t, 15, c.Sleep)
}

func TestCalculateBestCase(t *testing.T) {
	now := time.Date(2020, 5, 10, 22, 0, 0, 0, time.UTC)
	in := Input{
		Readings:   readings([3]int{115, 75, 65}, [3]int{116, 74, 66}, [3]int{114, 76, 64}),
		Steps:      []float64{10000, 12000},
		SleepHours: []float64{8},
		MedicationLogs: []schema.MedicationLog{
			{Status: schema.MedicationTaken},
		},
	}

	s := Calculate("user", in, nil, now, time.UTC)
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, schema.ScoreTrendStable, s.Trend)
	assert.Equal(t, "2020-05-10", s.Date)
	assert.Equal(t, FloExplanation, s.Explanation)
	assert.Equal(t, "user", s.UserID)
}

func TestCalculateWorstCaseStaysInRange(t *testing.T) {
	now := time.Date(2020, 5, 10, 22, 0, 0, 0, time.UTC)
	in := Input{
		Readings:   readings([3]int{240, 130, 190}, [3]int{200, 125, 180}, [3]int{190, 122, 30}),
		Steps:      []float64{0},
		SleepHours: []float64{2},
		MedicationLogs: []schema.MedicationLog{
			{Status: schema.MedicationMissed},
		},
	}

	s := Calculate("user", in, nil, now, time.UTC)
	assert.True(t, s.Score >= MinScore && s.Score <= MaxScore)
	assert.Equal(t, 0, s.Components.BP)
	assert.Equal(t, 0, s.Components.BPVariability)
	assert.Equal(t, 0, s.Components.MedicationAdherence)
}

func TestCalculateIsIdempotent(t *testing.T) {
	now := time.Date(2020, 5, 10, 9, 0, 0, 0, time.UTC)
	in := Input{Readings: readings([3]int{142, 88, 72}, [3]int{136, 84, 70})}
	previous := &schema.FloScore{Score: 60, Date: "2020-05-09"}

	assert.Equal(t, Calculate("u", in, previous, now, time.UTC), Calculate("u", in, previous, now, time.UTC))
}

func TestCalculateDateFollowsLocation(t *testing.T) {
	now := time.Date(2020, 5, 10, 20, 0, 0, 0, time.UTC)
	loc := time.FixedZone("GMT+8", 8*60*60)

	assert.Equal(t, "2020-05-11", Calculate("u", Input{}, nil, now, loc).Date)
	assert.Equal(t, "2020-05-10", Calculate("u", Input{}, nil, now, nil).Date)
}

func TestTrend(t *testing.T) {
	assert.Equal(t, schema.ScoreTrendStable, Trend(70, nil))
	assert.Equal(t, schema.ScoreTrendUp, Trend(76, &schema.FloScore{Score: 70}))
	assert.Equal(t, schema.ScoreTrendStable, Trend(75, &schema.FloScore{Score: 70}))
	assert.Equal(t, schema.ScoreTrendStable, Trend(65, &schema.FloScore{Score: 70}))
	assert.Equal(t, schema.ScoreTrendDown, Trend(64, &schema.FloScore{Score: 70}))
}
