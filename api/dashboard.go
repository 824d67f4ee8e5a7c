package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/flo-api/schema"
)

// dashboard loads everything the home screen shows in one request. Alerts
// are regenerated in the background at the same time. The result of that
// run is waited for a bounded time and it never fails the request.
func (s *Server) dashboard(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}
	logger := log.WithField("account", account.ID)
	current := now()

	alertSync := s.syncAlertsAsync(account.ID)

	var (
		latest    *schema.Reading
		floScore  *schema.FloScore
		reminders []schema.Reminder
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		latest, err = s.mongoStore.GetLatestReading(account.ID)
		return
	})
	g.Go(func() (err error) {
		floScore, err = s.mongoStore.GetLatestFloScore(account.ID)
		return
	})
	g.Go(func() (err error) {
		reminders, err = s.reminders(account, current)
		return
	})

	if err := g.Wait(); shouldInterupt(err, c) {
		return
	}

	select {
	case err := <-alertSync:
		if err != nil {
			logger.WithError(err).Warn("fail to sync alerts")
		}
	case <-time.After(s.alertWait):
		logger.Warn("alert sync is still running")
	}

	alerts, err := s.mongoStore.GetActiveAlerts(account.ID, activeAlertsLimit)
	if shouldInterupt(err, c) {
		return
	}
	if alerts == nil {
		alerts = []schema.Alert{}
	}

	result := gin.H{
		"latest_reading": nil,
		"flo_score":      nil,
		"reminders":      reminders,
		"alerts":         alerts,
	}
	if latest != nil {
		result["latest_reading"] = classified(*latest)
	}
	if floScore != nil {
		result["flo_score"] = withBand(*floScore)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}
