package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/cache"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/wearable"
)

const maxWearableDays = 90

func wearableDays(days int) int {
	switch {
	case days <= 0:
		return wearable.DefaultDays
	case days > maxWearableDays:
		return maxWearableDays
	}
	return days
}

// addWearableMetric stores a metric entered by the requester. The cached
// dashboards of the requester are dropped afterwards.
func (s *Server) addWearableMetric(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		MetricType schema.MetricType   `json:"metric_type"`
		Value      *float64            `json:"value"`
		Unit       *string             `json:"unit"`
		Source     schema.MetricSource `json:"source"`
		Timestamp  *time.Time          `json:"timestamp"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.MetricType.Valid() || params.Value == nil || *params.Value < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Source == "" {
		params.Source = schema.MetricSourceManual
	}
	if !params.Source.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	metric := schema.WearableMetric{
		UserID:     account.ID,
		MetricType: params.MetricType,
		Value:      *params.Value,
		Unit:       params.MetricType.DefaultUnit(),
		Source:     params.Source,
		Timestamp:  now().UTC(),
	}
	if params.Unit != nil {
		metric.Unit = *params.Unit
	}
	if params.Timestamp != nil {
		metric.Timestamp = params.Timestamp.UTC()
	}

	m, err := s.mongoStore.AddWearableMetric(metric)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.cache.Invalidate(c, account.ID); err != nil {
		log.WithError(err).WithField("account", account.ID).Warn("fail to invalidate wearables dashboard")
	}

	c.JSON(http.StatusOK, gin.H{
		"result": m,
	})
}

// getWearableSummary summarizes one metric type over the last `days` days
func (s *Server) getWearableSummary(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Type schema.MetricType `form:"type"`
		Days int               `form:"days"`
	}

	if err := c.ShouldBindQuery(&params); err != nil || !params.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	days := wearableDays(params.Days)
	since := now().Add(-time.Duration(days) * 24 * time.Hour)

	rows, err := s.mongoStore.GetWearableMetrics(account.ID, []schema.MetricType{params.Type}, since)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": wearable.Summarize(rows),
	})
}

// getWearablesDashboard returns the dashboard summaries. Dashboards are served
// from the cache until a new metric of the requester is added.
func (s *Server) getWearablesDashboard(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Days int `form:"days"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	days := wearableDays(params.Days)
	logger := log.WithField("account", account.ID)

	cached, err := s.cache.GetDashboard(c, account.ID, days)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"result": cached})
		return
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.WithError(err).Warn("fail to read wearables dashboard cache")
	}

	since := now().Add(-time.Duration(days) * 24 * time.Hour)
	rows, err := s.mongoStore.GetWearableMetrics(account.ID, wearable.DashboardTypes, since)
	if shouldInterupt(err, c) {
		return
	}

	grouped := make(map[schema.MetricType][]schema.WearableMetric)
	for _, r := range rows {
		grouped[r.MetricType] = append(grouped[r.MetricType], r)
	}

	dashboard := wearable.Dashboard(grouped)
	if err := s.cache.SetDashboard(c, account.ID, days, dashboard); err != nil {
		logger.WithError(err).Warn("fail to cache wearables dashboard")
	}

	c.JSON(http.StatusOK, gin.H{
		"result": dashboard,
	})
}
