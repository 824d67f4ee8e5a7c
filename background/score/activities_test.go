package score

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/external/cadence"
	"github.com/bitmark-inc/flo-api/external/onesignal"
	"github.com/bitmark-inc/flo-api/mocks"
	"github.com/bitmark-inc/flo-api/schema"
)

var fixedNow = time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)

type ScoreActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env              *testsuite.TestActivityEnvironment
	worker           *FloScoreWorker
	mockCtrl         *gomock.Controller
	mongoMock        *mocks.MockMongoStore
	coreMock         *mocks.MockFloCore
	notificationMock *mocks.MockNotificationCenter
	testUserID       string
}

func (ts *ScoreActivityTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testUserID = "4b0e7f3c-8a51-4d0a-9a57-2f3f8fbc1d11"
	now = func() time.Time { return fixedNow }
}

func (ts *ScoreActivityTestSuite) TearDownSuite() {
	now = time.Now
}

func (ts *ScoreActivityTestSuite) SetupTest() {
	ts.env = ts.NewTestActivityEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		BackgroundActivityContext: context.Background(),
		DataConverter:             cadence.NewMsgPackDataConverter(),
	})

	ts.mockCtrl = gomock.NewController(ts.T())

	mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)
	coreMock := mocks.NewMockFloCore(ts.mockCtrl)
	nc := mocks.NewMockNotificationCenter(ts.mockCtrl)

	testWorker.mongo = mongoMock
	testWorker.core = coreMock
	testWorker.NotificationCenter = nc
	ts.mongoMock = mongoMock
	ts.coreMock = coreMock
	ts.notificationMock = nc
	ts.worker = testWorker
}

func (ts *ScoreActivityTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
}

// TestCalculateFloScoreActivityBandChanged uses the account timezone and
// reports a band change between two days
func (ts *ScoreActivityTestSuite) TestCalculateFloScoreActivityBandChanged() {
	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+8"}, nil)

	ts.mongoMock.EXPECT().
		SyncFloScore(gomock.Eq(ts.testUserID), gomock.Eq(fixedNow), gomock.Any()).
		DoAndReturn(func(userID string, at time.Time, loc *time.Location) (*schema.FloScore, *schema.FloScore, error) {
			ts.Equal("GMT+8", loc.String())
			return &schema.FloScore{Score: 85, Date: "2024-03-11"}, &schema.FloScore{Score: 72, Date: "2024-03-10"}, nil
		})

	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeScoreBandChange)).
		Return(fixedNow.Add(-24*time.Hour), nil)

	values, err := ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.NoError(err)

	var result ScoreResult
	ts.NoError(values.Get(&result))
	ts.Equal(85, result.Score)
	ts.Equal(72, *result.PreviousScore)
	ts.True(result.BandChanged)
}

// TestCalculateFloScoreActivityBandChangeOncePerDay reports a band change
// once even when the score is recalculated again on the same local day
func (ts *ScoreActivityTestSuite) TestCalculateFloScoreActivityBandChangeOncePerDay() {
	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+8"}, nil).
		Times(2)

	ts.mongoMock.EXPECT().
		SyncFloScore(gomock.Eq(ts.testUserID), gomock.Eq(fixedNow), gomock.Any()).
		Return(&schema.FloScore{Score: 85, Date: "2024-03-11"}, &schema.FloScore{Score: 72, Date: "2024-03-10"}, nil).
		Times(2)

	// 2024-03-10 20:30 UTC is 2024-03-11 04:30 in GMT+8
	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeScoreBandChange)).
		Return(time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC), nil)
	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeScoreBandChange)).
		Return(time.Date(2024, 3, 10, 17, 0, 0, 0, time.UTC), nil)

	var first, second ScoreResult

	values, err := ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.NoError(err)
	ts.NoError(values.Get(&first))
	ts.True(first.BandChanged)

	values, err = ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.NoError(err)
	ts.NoError(values.Get(&second))
	ts.False(second.BandChanged)
	ts.Equal(85, second.Score)
}

func (ts *ScoreActivityTestSuite) TestCalculateFloScoreActivityNudgeError() {
	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+0"}, nil)

	ts.mongoMock.EXPECT().
		SyncFloScore(gomock.Eq(ts.testUserID), gomock.Eq(fixedNow), gomock.Any()).
		Return(&schema.FloScore{Score: 85}, &schema.FloScore{Score: 50}, nil)

	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeScoreBandChange)).
		Return(time.Time{}, errors.New("mongo is down"))

	_, err := ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.Error(err)
}

// TestCalculateFloScoreActivityFirstScore falls back to the default timezone
// for an unknown account and never reports a band change for a first score
func (ts *ScoreActivityTestSuite) TestCalculateFloScoreActivityFirstScore() {
	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(nil, gorm.ErrRecordNotFound)

	ts.mongoMock.EXPECT().
		SyncFloScore(gomock.Eq(ts.testUserID), gomock.Eq(fixedNow), gomock.Any()).
		DoAndReturn(func(userID string, at time.Time, loc *time.Location) (*schema.FloScore, *schema.FloScore, error) {
			ts.Equal("GMT+0", loc.String())
			return &schema.FloScore{Score: 90}, nil, nil
		})

	values, err := ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.NoError(err)

	var result ScoreResult
	ts.NoError(values.Get(&result))
	ts.Equal(90, result.Score)
	ts.Nil(result.PreviousScore)
	ts.False(result.BandChanged)
}

func (ts *ScoreActivityTestSuite) TestCalculateFloScoreActivityStoreError() {
	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+0"}, nil)

	ts.mongoMock.EXPECT().
		SyncFloScore(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, errors.New("mongo is down"))

	_, err := ts.env.ExecuteActivity(ts.worker.CalculateFloScoreActivity, ts.testUserID)
	ts.Error(err)
}

func (ts *ScoreActivityTestSuite) TestNotifyFloScoreActivity() {
	ts.notificationMock.EXPECT().
		NotifyAccountByText(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(userID string, headings, contents map[string]string, data map[string]interface{}) error {
			ts.Equal("Your Flo Score is now 85, which is excellent.", contents["en"])
			ts.Equal("FLO_SCORE_BAND_CHANGE", data["notification_type"])
			return nil
		})

	ts.mongoMock.EXPECT().
		UpdateLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeScoreBandChange), gomock.Eq(fixedNow)).
		Return(nil)

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyFloScoreActivity, ts.testUserID, 85)
	ts.NoError(err)
}

// TestNotifyAlertsActivityNotSubscribed ignores users without a device
func (ts *ScoreActivityTestSuite) TestNotifyAlertsActivityNotSubscribed() {
	alerts := []schema.Alert{
		{ID: "alert-1", Type: schema.AlertCrisis, Severity: schema.SeverityCritical, Message: "Critical"},
	}

	ts.mongoMock.EXPECT().
		GetLatestReading(gomock.Eq(ts.testUserID)).
		Return(&schema.Reading{Systolic: 185, Diastolic: 110}, nil)

	ts.notificationMock.EXPECT().
		NotifyAccountByText(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(userID string, headings, contents map[string]string, data map[string]interface{}) error {
			ts.Contains(contents["en"], "185/110")
			return onesignal.ErrAllPlayersNotSubscribed
		})

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyAlertsActivity, ts.testUserID, alerts)
	ts.NoError(err)
}

func (ts *ScoreActivityTestSuite) TestNotifyAlertsActivityFailure() {
	alerts := []schema.Alert{
		{ID: "alert-1", Type: schema.AlertPersistentHigh, Severity: schema.SeverityCritical, Message: "High"},
	}

	ts.notificationMock.EXPECT().
		NotifyAccountByText(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("onesignal is down"))

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyAlertsActivity, ts.testUserID, alerts)
	ts.Error(err)
}

func TestScoreActivity(t *testing.T) {
	suite.Run(t, new(ScoreActivityTestSuite))
}
