package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/reminder"
	"github.com/bitmark-inc/flo-api/schema"
)

// reminders computes the due reminders of an account from its reading
// history of the last 30 days
func (s *Server) reminders(account *schema.Account, current time.Time) ([]schema.Reminder, error) {
	readings, err := s.mongoStore.GetReadings(account.ID, current.Add(-reminder.HistoryWindow), current, 0)
	if err != nil {
		return nil, err
	}

	return reminder.FromReadings(readings, current, accountLocation(account)), nil
}

// getReminders returns the reminders which are due now
func (s *Server) getReminders(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	reminders, err := s.reminders(account, now())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": reminders,
	})
}
