package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/bp"
	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/store"
)

const (
	defaultReadingsWindow = 7 * 24 * time.Hour
	defaultReadingsLimit  = 50
	maxReadingsLimit      = 500
)

type readingWithClassification struct {
	schema.Reading
	Classification bp.Classification `json:"classification"`
}

func classified(r schema.Reading) readingWithClassification {
	return readingWithClassification{
		Reading:        r,
		Classification: bp.Classify(r.Systolic, r.Diastolic),
	}
}

// addReading stores a blood pressure reading of the requester
func (s *Server) addReading(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Systolic  int                  `json:"systolic"`
		Diastolic int                  `json:"diastolic"`
		HeartRate int                  `json:"heart_rate"`
		Timestamp *time.Time           `json:"timestamp"`
		Notes     *string              `json:"notes"`
		Source    schema.ReadingSource `json:"source"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Source {
	case "":
		params.Source = schema.ReadingSourceManual
	case schema.ReadingSourceManual, schema.ReadingSourceBluetooth:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	reading := schema.Reading{
		UserID:    account.ID,
		Systolic:  params.Systolic,
		Diastolic: params.Diastolic,
		HeartRate: params.HeartRate,
		Timestamp: now().UTC(),
		Notes:     params.Notes,
		Source:    params.Source,
	}
	if params.Timestamp != nil {
		reading.Timestamp = params.Timestamp.UTC()
	}

	if err := reading.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReading(err))
		return
	}

	r, err := s.mongoStore.AddReading(reading)
	if shouldInterupt(err, c) {
		return
	}

	s.scheduleBackgroundJobs(c, account.ID)

	c.JSON(http.StatusOK, gin.H{
		"result": classified(*r),
	})
}

// getReadings lists the readings of a time range, newest first. The range
// defaults to the last 7 days.
func (s *Server) getReadings(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Start time.Time `form:"start" time_format:"2006-01-02T15:04:05Z07:00"`
		End   time.Time `form:"end" time_format:"2006-01-02T15:04:05Z07:00"`
		Limit int64     `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	end := now()
	if !params.End.IsZero() {
		end = params.End
	}

	start := end.Add(-defaultReadingsWindow)
	if !params.Start.IsZero() {
		start = params.Start
	}

	if start.After(end) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	switch {
	case params.Limit <= 0:
		params.Limit = defaultReadingsLimit
	case params.Limit > maxReadingsLimit:
		params.Limit = maxReadingsLimit
	}

	readings, err := s.mongoStore.GetReadings(account.ID, start, end, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	result := make([]readingWithClassification, 0, len(readings))
	for _, r := range readings {
		result = append(result, classified(r))
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}

// getLatestReading returns the most recent reading, or null when the
// requester has none
func (s *Server) getLatestReading(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	r, err := s.mongoStore.GetLatestReading(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	if r == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": classified(*r),
	})
}

// deleteReading removes a reading. Only the owner can remove it.
func (s *Server) deleteReading(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	err := s.mongoStore.DeleteReading(account.ID, c.Param("readingID"))
	if errors.Is(err, store.ErrReadingNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorReadingNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
