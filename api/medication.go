package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/schema"
)

const (
	defaultMedicationDays = 7
	maxMedicationDays     = 90
)

// addMedicationLog records whether a scheduled dose was taken
func (s *Server) addMedicationLog(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Name          string                  `json:"name"`
		Status        schema.MedicationStatus `json:"status"`
		ScheduledTime *time.Time              `json:"scheduled_time"`
		TakenAt       *time.Time              `json:"taken_at"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" || !params.Status.Valid() || params.ScheduledTime == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	l := schema.MedicationLog{
		UserID:        account.ID,
		Name:          params.Name,
		Status:        params.Status,
		ScheduledTime: params.ScheduledTime.UTC(),
	}

	if params.Status == schema.MedicationTaken {
		takenAt := now().UTC()
		if params.TakenAt != nil {
			takenAt = params.TakenAt.UTC()
		}
		l.TakenAt = &takenAt
	}

	saved, err := s.mongoStore.AddMedicationLog(l)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": saved,
	})
}

// getMedicationLogs lists the logs of the last `days` days, newest first
func (s *Server) getMedicationLogs(c *gin.Context) {
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
		params.Days = defaultMedicationDays
	case params.Days > maxMedicationDays:
		params.Days = maxMedicationDays
	}

	until := now()
	logs, err := s.mongoStore.GetMedicationLogs(account.ID, until.AddDate(0, 0, -params.Days), until)
	if shouldInterupt(err, c) {
		return
	}

	if logs == nil {
		logs = []schema.MedicationLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"result": logs,
	})
}
