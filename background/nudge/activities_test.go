package nudge

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/bitmark-inc/flo-api/external/cadence"
	"github.com/bitmark-inc/flo-api/mocks"
	"github.com/bitmark-inc/flo-api/schema"
)

var fixedNow = time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)

type NudgeActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env              *testsuite.TestActivityEnvironment
	worker           *NudgeWorker
	mockCtrl         *gomock.Controller
	mongoMock        *mocks.MockMongoStore
	coreMock         *mocks.MockFloCore
	notificationMock *mocks.MockNotificationCenter
	testUserID       string
}

func (ts *NudgeActivityTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testUserID = "0d6a2b8e-7c4e-4f57-b0b4-3d6f0e9a9c21"
	now = func() time.Time { return fixedNow }
}

func (ts *NudgeActivityTestSuite) TearDownSuite() {
	now = time.Now
}

func (ts *NudgeActivityTestSuite) SetupTest() {
	ts.env = ts.NewTestActivityEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		BackgroundActivityContext: context.Background(),
		DataConverter:             cadence.NewMsgPackDataConverter(),
	})

	ts.mockCtrl = gomock.NewController(ts.T())

	mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)
	coreMock := mocks.NewMockFloCore(ts.mockCtrl)
	nc := mocks.NewMockNotificationCenter(ts.mockCtrl)

	nudgeWorker.mongo = mongoMock
	nudgeWorker.core = coreMock
	nudgeWorker.NotificationCenter = nc
	ts.mongoMock = mongoMock
	ts.coreMock = coreMock
	ts.notificationMock = nc
	ts.worker = nudgeWorker
}

func (ts *NudgeActivityTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
}

// TestPendingReminderActivityNudgedRecently skips users nudged within eight hours
func (ts *NudgeActivityTestSuite) TestPendingReminderActivityNudgedRecently() {
	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeReadingReminder)).
		Return(fixedNow.Add(-7*time.Hour), nil)

	values, err := ts.env.ExecuteActivity(ts.worker.PendingReminderActivity, ts.testUserID)
	ts.NoError(err)

	var r *schema.Reminder
	ts.NoError(values.Get(&r))
	ts.Nil(r)
}

// TestPendingReminderActivityNoReadings falls back to the default hours and
// returns the reminder of the morning
func (ts *NudgeActivityTestSuite) TestPendingReminderActivityNoReadings() {
	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeReadingReminder)).
		Return(time.Time{}, nil)

	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+0"}, nil)

	ts.mongoMock.EXPECT().
		GetReadings(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Eq(fixedNow), gomock.Eq(int64(0))).
		Return([]schema.Reading{}, nil)

	values, err := ts.env.ExecuteActivity(ts.worker.PendingReminderActivity, ts.testUserID)
	ts.NoError(err)

	var r *schema.Reminder
	ts.NoError(values.Get(&r))
	ts.NotNil(r)
	ts.Equal("reading-8", r.ID)
	ts.Equal(schema.PriorityMedium, r.Priority)
}

// TestPendingReminderActivityRecentReading sends nothing right after a reading
func (ts *NudgeActivityTestSuite) TestPendingReminderActivityRecentReading() {
	ts.mongoMock.EXPECT().
		GetLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeReadingReminder)).
		Return(time.Time{}, nil)

	ts.coreMock.EXPECT().
		GetAccount(gomock.Eq(ts.testUserID)).
		Return(&schema.Account{ID: ts.testUserID, Timezone: "GMT+0"}, nil)

	ts.mongoMock.EXPECT().
		GetReadings(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Eq(fixedNow), gomock.Eq(int64(0))).
		Return([]schema.Reading{{Systolic: 120, Diastolic: 80, Timestamp: fixedNow.Add(-time.Hour)}}, nil)

	values, err := ts.env.ExecuteActivity(ts.worker.PendingReminderActivity, ts.testUserID)
	ts.NoError(err)

	var r *schema.Reminder
	ts.NoError(values.Get(&r))
	ts.Nil(r)
}

func (ts *NudgeActivityTestSuite) TestNotifyReminderActivity() {
	r := schema.Reminder{
		ID:       "reading-8",
		Type:     schema.ReminderReading,
		Title:    "Time to log your blood pressure",
		Message:  "Don't forget to log today!",
		Priority: schema.PriorityMedium,
	}

	ts.notificationMock.EXPECT().
		NotifyAccountByText(gomock.Eq(ts.testUserID), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(userID string, headings, contents map[string]string, data map[string]interface{}) error {
			ts.Equal("Time to log your blood pressure: Don't forget to log today!", contents["en"])
			ts.Equal("reading-8", data["reminder_id"])
			return nil
		})

	ts.mongoMock.EXPECT().
		UpdateLastNudge(gomock.Eq(ts.testUserID), gomock.Eq(schema.NudgeReadingReminder), gomock.Eq(fixedNow)).
		Return(nil)

	_, err := ts.env.ExecuteActivity(ts.worker.NotifyReminderActivity, ts.testUserID, r)
	ts.NoError(err)
}

func TestNudgeActivity(t *testing.T) {
	suite.Run(t, new(NudgeActivityTestSuite))
}
