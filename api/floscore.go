package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/score"
	"github.com/bitmark-inc/flo-api/utils"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

type floScoreResult struct {
	schema.FloScore
	Band score.Band `json:"band"`
}

func withBand(s schema.FloScore) floScoreResult {
	return floScoreResult{
		FloScore: s,
		Band:     score.BandOf(s.Score),
	}
}

func accountLocation(a *schema.Account) *time.Location {
	return utils.LocationOrDefault(a.Timezone)
}

// calculateFloScore calculates and saves the Flo Score of today
func (s *Server) calculateFloScore(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	current, previous, err := s.mongoStore.SyncFloScore(account.ID, now(), accountLocation(account))
	if err != nil {
		log.WithError(err).WithField("account", account.ID).Error("fail to calculate flo score")
		abortWithEncoding(c, http.StatusInternalServerError, errorScore, err)
		return
	}

	bandChanged := previous != nil && score.CheckBandChange(previous.Score, current.Score)

	c.JSON(http.StatusOK, gin.H{
		"result":       withBand(*current),
		"band_changed": bandChanged,
	})
}

// getLatestFloScore returns the latest saved score, or null when the
// requester has never been scored
func (s *Server) getLatestFloScore(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	latest, err := s.mongoStore.GetLatestFloScore(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	if latest == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": withBand(*latest),
	})
}

// getFloScoreHistory returns the scores of the last `days` days ordered by
// date ascending
func (s *Server) getFloScoreHistory(c *gin.Context) {
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

	switch {
	case params.Days <= 0:
		params.Days = defaultHistoryDays
	case params.Days > maxHistoryDays:
		params.Days = maxHistoryDays
	}

	today := now().In(accountLocation(account))
	endDate := today.Format(score.DateFormat)
	startDate := today.AddDate(0, 0, -(params.Days - 1)).Format(score.DateFormat)

	history, err := s.mongoStore.GetFloScoreHistory(account.ID, startDate, endDate)
	if shouldInterupt(err, c) {
		return
	}

	result := make([]floScoreResult, 0, len(history))
	for _, h := range history {
		result = append(result, withBand(h))
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}
