package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/flo-api/schema"
)

const (
	defaultPatientReadingDays = 7
	maxPatientReadingDays     = 90
)

// getPatients lists the patients of the requesting doctor with their status
// and latest reading
func (s *Server) getPatients(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	members, err := s.store.GetCareTeamPatients(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	patients := make([]schema.PatientOverview, len(members))

	var g errgroup.Group
	for i, m := range members {
		i, m := i, m

		status := m.Status
		if status == "" {
			status = schema.PatientStatusStable
		}
		patients[i] = schema.PatientOverview{
			PatientID: m.PatientID,
			Status:    status,
		}

		g.Go(func() error {
			latest, err := s.mongoStore.GetLatestReading(m.PatientID)
			if err != nil {
				return err
			}
			patients[i].LatestReading = latest
			return nil
		})
	}

	if err := g.Wait(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": patients,
	})
}

// getPatientReadings lists the readings of a patient in the last `days`
// days, newest first
func (s *Server) getPatientReadings(c *gin.Context) {
	var params struct {
		Days int `form:"days"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	switch {
	case params.Days <= 0:
		params.Days = defaultPatientReadingDays
	case params.Days > maxPatientReadingDays:
		params.Days = maxPatientReadingDays
	}

	end := now()
	readings, err := s.mongoStore.GetReadings(c.Param("patientID"), end.AddDate(0, 0, -params.Days), end, 0)
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

// getPatientNotes returns the status and the notes the requesting doctor
// keeps about a patient
func (s *Server) getPatientNotes(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	member, err := s.store.GetCareTeamMember(account.ID, c.Param("patientID"))
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusForbidden, errorPatientNotInCareTeam)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": member,
	})
}

// updatePatientStatus sets the status of a patient and optionally the notes
// of the requesting doctor
func (s *Server) updatePatientStatus(c *gin.Context) {
	account, ok := requestAccount(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Status      schema.PatientStatus `json:"patient_status"`
		DoctorNotes *string              `json:"doctor_notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	patientID := c.Param("patientID")
	err := s.store.UpdatePatientStatus(account.ID, patientID, params.Status, params.DoctorNotes)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusForbidden, errorPatientNotInCareTeam)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"patient_id":     patientID,
			"patient_status": params.Status,
		},
	})
}
