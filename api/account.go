package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/utils"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	accountID := c.GetString("requester")

	var params struct {
		Role     schema.AccountRole `json:"role"`
		Timezone string             `json:"timezone"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	switch params.Role {
	case "":
		params.Role = schema.RolePatient
	case schema.RolePatient, schema.RoleDoctor:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Timezone == "" {
		params.Timezone = utils.DefaultTimezone
	}
	if utils.GetLocation(params.Timezone) == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownAccountTimezone)
		return
	}

	a, err := s.store.CreateAccount(accountID, params.Role, params.Timezone)
	if err != nil {
		abortWithEncoding(c, http.StatusForbidden, errorAccountTaken, err)
		return
	}

	if a.Role == schema.RolePatient {
		s.scheduleBackgroundJobs(c, a.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// scheduleBackgroundJobs makes sure the score and reminder workflows of a
// user are running. Failures are only logged since the workflows are
// restarted on the next reading.
func (s *Server) scheduleBackgroundJobs(c *gin.Context, userID string) {
	logger := log.WithField("account", userID)

	if err := utils.TriggerFloScoreUpdate(s.cadenceClient, c, []string{userID}); err != nil {
		logger.WithError(err).Error("fail to trigger flo score workflow")
	}

	if err := utils.TriggerReminderNudge(s.cadenceClient, c, userID); err != nil {
		logger.WithError(err).Error("fail to trigger reminder nudge workflow")
	}
}
