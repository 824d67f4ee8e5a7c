package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flo-api/schema"
)

func medicationRouter(ts *testServer) *gin.Engine {
	router := gin.New()
	router.Use(withAccount(patient()))
	router.POST("/medications", ts.addMedicationLog)
	router.GET("/medications", ts.getMedicationLogs)
	return router
}

func TestAddMedicationLog(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	router := medicationRouter(ts)

	scheduled := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	ts.mongo.EXPECT().AddMedicationLog(gomock.Any()).DoAndReturn(func(l schema.MedicationLog) (*schema.MedicationLog, error) {
		assert.Equal(t, "Lisinopril", l.Name)
		assert.Equal(t, schema.MedicationTaken, l.Status)
		assert.True(t, scheduled.Equal(l.ScheduledTime))
		if assert.NotNil(t, l.TakenAt) {
			assert.Equal(t, fixedNow, *l.TakenAt)
		}
		return &l, nil
	}).Times(1)
	ts.mongo.EXPECT().AddMedicationLog(gomock.Any()).DoAndReturn(func(l schema.MedicationLog) (*schema.MedicationLog, error) {
		assert.Equal(t, schema.MedicationSkipped, l.Status)
		assert.Nil(t, l.TakenAt)
		return &l, nil
	}).Times(1)

	w := serve(router, "POST", "/medications",
		`{"name":" Lisinopril ","status":"taken","scheduled_time":"2024-03-10T08:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, "POST", "/medications",
		`{"name":"Lisinopril","status":"skipped","scheduled_time":"2024-03-10T08:00:00Z","taken_at":"2024-03-10T09:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddMedicationLogInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	router := medicationRouter(ts)

	for _, body := range []string{
		`{"status":"taken","scheduled_time":"2024-03-10T08:00:00Z"}`,
		`{"name":"Lisinopril","status":"forgotten","scheduled_time":"2024-03-10T08:00:00Z"}`,
		`{"name":"Lisinopril","status":"taken"}`,
	} {
		w := serve(router, "POST", "/medications", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestGetMedicationLogs(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	ts.mongo.EXPECT().
		GetMedicationLogs("patient-1", fixedNow.AddDate(0, 0, -7), fixedNow).
		Return(nil, nil).
		Times(1)

	w := serve(medicationRouter(ts), "GET", "/medications", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":[]}`, w.Body.String())
}
