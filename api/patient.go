package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/flo-api/analytics"
	"github.com/bitmark-inc/flo-api/schema"
)

// patientMetrics computes the clinician metrics of a patient. It returns nil
// metrics when the patient has no reading in the last 7 days.
func (s *Server) patientMetrics(patientID string) (*schema.PatientMetrics, error) {
	current := now()
	currentStart := current.Add(-analytics.CurrentWindow)
	previousStart := current.Add(-analytics.PreviousWindow)

	var (
		currentReadings  []schema.Reading
		previousReadings []schema.Reading
		latestScore      *schema.FloScore
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		currentReadings, err = s.mongoStore.GetReadings(patientID, currentStart, current, 0)
		return
	})
	g.Go(func() (err error) {
		// the bounds are inclusive, so stop right before the current window
		previousReadings, err = s.mongoStore.GetReadings(patientID, previousStart, currentStart.Add(-time.Millisecond), 0)
		return
	})
	g.Go(func() (err error) {
		latestScore, err = s.mongoStore.GetLatestFloScore(patientID)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var floScore *int
	if latestScore != nil {
		floScore = &latestScore.Score
	}

	return analytics.Calculate(currentReadings, previousReadings, floScore, current), nil
}

// getPatientMetrics is the clinician API for the metrics of a patient
func (s *Server) getPatientMetrics(c *gin.Context) {
	metrics, err := s.patientMetrics(c.Param("patientID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": metrics,
	})
}

// getPatientSummary is the clinician API for the text summary of a patient
func (s *Server) getPatientSummary(c *gin.Context) {
	metrics, err := s.patientMetrics(c.Param("patientID"))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"metrics": metrics,
			"summary": analytics.ClinicalSummary(metrics),
		},
	})
}
