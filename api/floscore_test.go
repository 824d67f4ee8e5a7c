package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flo-api/schema"
	"github.com/bitmark-inc/flo-api/score"
	"github.com/bitmark-inc/flo-api/utils"
)

func scoreRouter(ts *testServer, a *schema.Account) *gin.Engine {
	router := gin.New()
	router.Use(withAccount(a))
	router.POST("/flo-score", ts.calculateFloScore)
	router.GET("/flo-score", ts.getLatestFloScore)
	router.GET("/flo-score/history", ts.getFloScoreHistory)
	return router
}

func TestCalculateFloScore(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	ts.mongo.EXPECT().
		SyncFloScore("patient-1", fixedNow, utils.GetLocation("GMT+0")).
		Return(
			&schema.FloScore{UserID: "patient-1", Score: 82, Trend: schema.ScoreTrendUp, Date: "2024-03-10"},
			&schema.FloScore{UserID: "patient-1", Score: 74, Date: "2024-03-09"},
			nil,
		).
		Times(1)

	w := serve(scoreRouter(ts, patient()), "POST", "/flo-score", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"result": {
			"user_id": "patient-1",
			"score": 82,
			"trend": "up",
			"components": {
				"bp_score": 0,
				"bp_variability_score": 0,
				"hr_score": 0,
				"activity_score": 0,
				"sleep_score": 0,
				"medication_adherence": 0
			},
			"explanation": "",
			"date": "2024-03-10",
			"calculated_at": "0001-01-01T00:00:00Z",
			"band": "excellent"
		},
		"band_changed": true
	}`, w.Body.String())
}

func TestCalculateFloScoreFirstTime(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	ts.mongo.EXPECT().
		SyncFloScore("patient-1", fixedNow, gomock.Any()).
		Return(&schema.FloScore{UserID: "patient-1", Score: 55}, nil, nil).
		Times(1)

	w := serve(scoreRouter(ts, patient()), "POST", "/flo-score", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"band_changed":false`)
	assert.Contains(t, w.Body.String(), `"band":"needs_improvement"`)
}

func TestCalculateFloScoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	ts.mongo.EXPECT().
		SyncFloScore("patient-1", fixedNow, gomock.Any()).
		Return(nil, nil, errors.New("upsert flo score: timeout")).
		Times(1)

	w := serve(scoreRouter(ts, patient()), "POST", "/flo-score", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(1103), decodeError(w).Code)
}

func TestGetLatestFloScore(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	router := scoreRouter(ts, patient())

	ts.mongo.EXPECT().GetLatestFloScore("patient-1").Return(nil, nil).Times(1)

	w := serve(router, "GET", "/flo-score", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":null}`, w.Body.String())

	ts.mongo.EXPECT().GetLatestFloScore("patient-1").Return(&schema.FloScore{Score: 65}, nil).Times(1)

	w = serve(router, "GET", "/flo-score", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var result floScoreResult
	assert.NoError(t, decodeResult(w, &result))
	assert.Equal(t, 65, result.Score)
	assert.Equal(t, score.BandGood, result.Band)
}

func TestGetFloScoreHistoryInAccountTimezone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	// 20:30 UTC is already the next day in GMT+8
	a := &schema.Account{ID: "patient-8", Timezone: "GMT+8"}

	ts.mongo.EXPECT().
		GetFloScoreHistory("patient-8", "2024-02-11", "2024-03-11").
		Return([]schema.FloScore{{Date: "2024-03-10", Score: 70}, {Date: "2024-03-11", Score: 81}}, nil).
		Times(1)
	ts.mongo.EXPECT().
		GetFloScoreHistory("patient-8", "2024-03-05", "2024-03-11").
		Return(nil, nil).
		Times(1)

	router := scoreRouter(ts, a)

	w := serve(router, "GET", "/flo-score/history", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var history []floScoreResult
	assert.NoError(t, decodeResult(w, &history))
	assert.Len(t, history, 2)
	assert.Equal(t, score.BandGood, history[0].Band)
	assert.Equal(t, score.BandExcellent, history[1].Band)

	w = serve(router, "GET", "/flo-score/history?days=7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":[]}`, w.Body.String())
}
