package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/store"
)

const activeAlertsLimit = 10

// getActiveAlerts lists the unread alerts of the requester, newest first
func (s *Server) getActiveAlerts(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	alerts, err := s.mongoStore.GetActiveAlerts(account.ID, activeAlertsLimit)
	if shouldInterupt(err, c) {
		return
	}

	if alerts == nil {
		alerts = []schema.Alert{}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": alerts,
	})
}

// markAlertRead acknowledges an alert of the requester
func (s *Server) markAlertRead(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	err := s.mongoStore.MarkAlertRead(account.ID, c.Param("alertID"))
	if errors.Is(err, store.ErrAlertNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorAlertNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// generateAlerts runs the alert rules now and returns the alerts which were
// created by this run
func (s *Server) generateAlerts(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	created, err := s.mongoStore.SyncAlerts(account.ID, now())
	if shouldInterupt(err, c) {
		return
	}

	if created == nil {
		created = []schema.Alert{}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": created,
	})
}

// syncAlertsAsync generates the alerts of a user in the background. The
// returned channel receives exactly one value and is then closed.
func (s *Server) syncAlertsAsync(userID string) <-chan error {
	done := make(chan error, 1)

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("sync alerts panic: %v", r)
			}
		}()

		_, err := s.mongoStore.SyncAlerts(userID, now())
		done <- err
	}()

	return done
}
