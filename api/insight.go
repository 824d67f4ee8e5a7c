package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/external/insight"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/store"
)

const (
	defaultInsightsLimit = 20
	insightHistoryWindow = 30 * 24 * time.Hour
)

// generateInsight asks the insight service about a reading and the readings
// before it, then saves the returned text
func (s *Server) generateInsight(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	logger := log.WithField("account", account.ID)

	reading, err := s.mongoStore.GetReading(account.ID, c.Param("readingID"))
	if errors.Is(err, store.ErrReadingNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorReadingNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	earlier, err := s.mongoStore.GetReadings(account.ID,
		reading.Timestamp.Add(-insightHistoryWindow), reading.Timestamp, insight.MaxRecent+1)
	if shouldInterupt(err, c) {
		return
	}

	recent := make([]schema.Reading, 0, insight.MaxRecent)
	for _, r := range earlier {
		if r.ID == reading.ID {
			continue
		}
		if len(recent) == insight.MaxRecent {
			break
		}
		recent = append(recent, r)
	}

	text, err := s.insightClient.Generate(c, *reading, recent)
	if err != nil {
		logger.WithError(err).Error("fail to generate insight")
		abortWithEncoding(c, http.StatusBadGateway, errorInsightGeneration, err)
		return
	}

	saved, err := s.mongoStore.AddInsight(schema.Insight{
		UserID:    account.ID,
		ReadingID: reading.ID,
		Type:      schema.InsightBPPattern,
		Text:      text,
		CreatedAt: now().UTC(),
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": saved,
	})
}

// getInsights lists the latest insights of the requester, each with the
// reading it is about. The list can be filtered by type and paged by offset.
func (s *Server) getInsights(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Type   schema.InsightType `form:"type"`
		Limit  int64              `form:"limit"`
		Offset int64              `form:"offset"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Type != "" && !params.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Offset < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Limit <= 0 || params.Limit > defaultInsightsLimit {
		params.Limit = defaultInsightsLimit
	}

	insights, err := s.mongoStore.GetInsights(account.ID, params.Type, params.Limit, params.Offset)
	if shouldInterupt(err, c) {
		return
	}

	readingIDs := make([]string, 0, len(insights))
	seen := map[string]bool{}
	for _, i := range insights {
		if i.ReadingID != "" && !seen[i.ReadingID] {
			seen[i.ReadingID] = true
			readingIDs = append(readingIDs, i.ReadingID)
		}
	}

	readings, err := s.mongoStore.GetReadingsByIDs(account.ID, readingIDs)
	if shouldInterupt(err, c) {
		return
	}

	readingByID := make(map[string]schema.Reading, len(readings))
	for _, r := range readings {
		readingByID[r.ID] = r
	}

	result := make([]schema.InsightWithReading, 0, len(insights))
	for _, i := range insights {
		item := schema.InsightWithReading{Insight: i}
		if r, ok := readingByID[i.ReadingID]; ok {
			item.Reading = &r
		}
		result = append(result, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}
