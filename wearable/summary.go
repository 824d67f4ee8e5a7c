// Package wearable summarizes device metrics into daily points, averages and
// trends.
package wearable

import (
	"math"
	"sort"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/stats"
)

const (
	DefaultDays = 7

	recentPoints   = 3
	trendThreshold = 0.05
	dateFormat     = "2006-01-02"
)

// DashboardTypes are the metric types shown on the wearables dashboard
var DashboardTypes = []schema.MetricType{
	schema.MetricHRV,
	schema.MetricSleepDuration,
	schema.MetricSteps,
	schema.MetricStressScore,
}

// Summarize builds the summary of the rows of a single metric type. Rows of
// the same UTC date collapse into one point holding the newest value.
func Summarize(rows []schema.WearableMetric) schema.MetricSummary {
	if len(rows) == 0 {
		return schema.MetricSummary{
			WeeklyData: []schema.MetricPoint{},
		}
	}

	sorted := make([]schema.WearableMetric, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	points := make([]schema.MetricPoint, 0)
	index := map[string]int{}
	values := make([]float64, 0, len(sorted))
	for _, r := range sorted {
		values = append(values, r.Value)

		date := r.Timestamp.UTC().Format(dateFormat)
		if i, ok := index[date]; ok {
			points[i].Value = r.Value
			continue
		}
		index[date] = len(points)
		points = append(points, schema.MetricPoint{Date: date, Value: r.Value})
	}

	mean, _ := stats.Mean(values)
	average := stats.Round(mean, 1)
	latest := sorted[len(sorted)-1]

	return schema.MetricSummary{
		Latest:     &latest,
		WeeklyData: points,
		Average:    &average,
		Trend:      Trend(points),
	}
}

// Trend compares the mean of the last three points with the mean of the
// points before them. A change within 5% of the older mean is stable.
func Trend(points []schema.MetricPoint) *schema.MetricTrend {
	if len(points) < 2 {
		return nil
	}

	split := len(points) - recentPoints
	if split < 0 {
		split = 0
	}

	recent := make([]float64, 0, recentPoints)
	for _, p := range points[split:] {
		recent = append(recent, p.Value)
	}
	recentAvg, _ := stats.Mean(recent)

	var olderSum float64
	for _, p := range points[:split] {
		olderSum += p.Value
	}
	olderAvg := olderSum / math.Max(1, float64(split))

	var trend schema.MetricTrend
	switch stats.TrendFromDelta(recentAvg-olderAvg, math.Abs(olderAvg)*trendThreshold, false) {
	case stats.Up:
		trend = schema.MetricTrendUp
	case stats.Down:
		trend = schema.MetricTrendDown
	default:
		trend = schema.MetricTrendStable
	}

	return &trend
}

// Dashboard summarizes the dashboard metric types. rows are grouped by type.
func Dashboard(rows map[schema.MetricType][]schema.WearableMetric) schema.WearablesDashboard {
	d := schema.WearablesDashboard{
		HRV:    Summarize(rows[schema.MetricHRV]),
		Sleep:  Summarize(rows[schema.MetricSleepDuration]),
		Steps:  Summarize(rows[schema.MetricSteps]),
		Stress: Summarize(rows[schema.MetricStressScore]),
	}

	d.HasAnyData = d.HRV.Latest != nil || d.Sleep.Latest != nil || d.Steps.Latest != nil || d.Stress.Latest != nil

	return d
}
