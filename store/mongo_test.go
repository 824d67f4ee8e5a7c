package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

var (
	fixtureNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day        = 24 * time.Hour
)

type MongoStoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewMongoStoreTestSuite(connURI, dbName string) *MongoStoreTestSuite {
	return &MongoStoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoStoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)
}

// SetupTest gives every test a clean indexed database
func (s *MongoStoreTestSuite) SetupTest() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *MongoStoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MongoStoreTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *MongoStoreTestSuite) addReading(userID string, systolic, diastolic int, at time.Time) *schema.Reading {
	r, err := s.store.AddReading(schema.Reading{
		UserID:    userID,
		Systolic:  systolic,
		Diastolic: diastolic,
		HeartRate: 70,
		Timestamp: at,
		Source:    schema.ReadingSourceManual,
	})
	s.NoError(err)
	s.NotEmpty(r.ID)
	return r
}

func (s *MongoStoreTestSuite) TestReadingsNewestFirst() {
	s.addReading("user-a", 120, 80, fixtureNow.Add(-3*day))
	s.addReading("user-a", 130, 85, fixtureNow.Add(-1*day))
	s.addReading("user-a", 125, 82, fixtureNow.Add(-20*day))
	s.addReading("user-b", 110, 70, fixtureNow.Add(-1*day))

	readings, err := s.store.GetReadings("user-a", fixtureNow.Add(-7*day), fixtureNow, 50)
	s.NoError(err)
	s.Len(readings, 2)
	s.Equal(130, readings[0].Systolic)
	s.Equal(120, readings[1].Systolic)

	latest, err := s.store.GetLatestReading("user-a")
	s.NoError(err)
	s.Equal(130, latest.Systolic)

	none, err := s.store.GetLatestReading("user-c")
	s.NoError(err)
	s.Nil(none)
}

func (s *MongoStoreTestSuite) TestDeleteReadingOwnerOnly() {
	r := s.addReading("user-a", 120, 80, fixtureNow)

	s.Equal(ErrReadingNotFound, s.store.DeleteReading("user-b", r.ID))
	s.NoError(s.store.DeleteReading("user-a", r.ID))
	s.Equal(ErrReadingNotFound, s.store.DeleteReading("user-a", r.ID))
}

func (s *MongoStoreTestSuite) TestUpsertFloScoreLastWriteWins() {
	first := schema.FloScore{UserID: "user-a", Score: 70, Date: "2024-03-10", Trend: schema.ScoreTrendStable}
	second := schema.FloScore{UserID: "user-a", Score: 82, Date: "2024-03-10", Trend: schema.ScoreTrendUp}
	earlier := schema.FloScore{UserID: "user-a", Score: 60, Date: "2024-03-08", Trend: schema.ScoreTrendStable}

	s.NoError(s.store.UpsertFloScore(first))
	s.NoError(s.store.UpsertFloScore(second))
	s.NoError(s.store.UpsertFloScore(earlier))

	latest, err := s.store.GetLatestFloScore("user-a")
	s.NoError(err)
	s.Equal(82, latest.Score)

	previous, err := s.store.GetPreviousFloScore("user-a", "2024-03-10")
	s.NoError(err)
	s.Equal("2024-03-08", previous.Date)

	history, err := s.store.GetFloScoreHistory("user-a", "2024-03-01", "2024-03-10")
	s.NoError(err)
	s.Len(history, 2)
	s.Equal("2024-03-08", history[0].Date)
	s.Equal("2024-03-10", history[1].Date)
}

func (s *MongoStoreTestSuite) TestSyncAlertsDeduplicates() {
	s.addReading("user-a", 190, 100, fixtureNow.Add(-time.Hour))

	alerts, err := s.store.SyncAlerts("user-a", fixtureNow)
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal(schema.AlertCrisis, alerts[0].Type)

	// crisis alerts are raised again on every sync
	alerts, err = s.store.SyncAlerts("user-a", fixtureNow)
	s.NoError(err)
	s.Len(alerts, 1)

	active, err := s.store.GetActiveAlerts("user-a", 10)
	s.NoError(err)
	s.Len(active, 2)

	s.NoError(s.store.MarkAlertRead("user-a", active[0].ID))
	s.Equal(ErrAlertNotFound, s.store.MarkAlertRead("user-a", "missing"))

	active, err = s.store.GetActiveAlerts("user-a", 10)
	s.NoError(err)
	s.Len(active, 1)
}

func (s *MongoStoreTestSuite) TestSyncFloScoreDefaults() {
	current, previous, err := s.store.SyncFloScore("user-empty", fixtureNow, time.UTC)
	s.NoError(err)
	s.Nil(previous)
	s.Equal("2024-03-10", current.Date)
	s.Equal(schema.ScoreTrendStable, current.Trend)

	saved, err := s.store.GetLatestFloScore("user-empty")
	s.NoError(err)
	s.Equal(current.Score, saved.Score)
}

func (s *MongoStoreTestSuite) TestWearableMetricsByType() {
	for i, t := range []schema.MetricType{schema.MetricSteps, schema.MetricHRV, schema.MetricSteps} {
		_, err := s.store.AddWearableMetric(schema.WearableMetric{
			UserID:     "user-a",
			MetricType: t,
			Value:      float64(1000 * (i + 1)),
			Source:     schema.MetricSourceManual,
			Timestamp:  fixtureNow.Add(time.Duration(i-3) * day),
		})
		s.NoError(err)
	}

	metrics, err := s.store.GetWearableMetrics("user-a", []schema.MetricType{schema.MetricSteps}, fixtureNow.Add(-7*day))
	s.NoError(err)
	s.Len(metrics, 2)
	s.Equal(1000.0, metrics[0].Value)
	s.Equal(3000.0, metrics[1].Value)
}

func (s *MongoStoreTestSuite) TestLastNudge() {
	last, err := s.store.GetLastNudge("user-a", schema.NudgeReadingReminder)
	s.NoError(err)
	s.True(last.IsZero())

	s.NoError(s.store.UpdateLastNudge("user-a", schema.NudgeReadingReminder, fixtureNow))
	last, err = s.store.GetLastNudge("user-a", schema.NudgeReadingReminder)
	s.NoError(err)
	s.True(fixtureNow.Equal(last))
}

func (s *MongoStoreTestSuite) TestReadingsByIDsOwnerOnly() {
	mine := s.addReading("user-1", 120, 80, fixtureNow)
	other := s.addReading("user-2", 130, 85, fixtureNow)

	readings, err := s.store.GetReadingsByIDs("user-1", []string{mine.ID, other.ID, "unknown"})
	s.NoError(err)
	s.Len(readings, 1)
	s.Equal(mine.ID, readings[0].ID)

	readings, err = s.store.GetReadingsByIDs("user-1", nil)
	s.NoError(err)
	s.Empty(readings)
}

func (s *MongoStoreTestSuite) TestInsightsFilterAndOffset() {
	types := []schema.InsightType{schema.InsightBPPattern, schema.InsightCelebration, schema.InsightBPPattern, schema.InsightBPPattern}
	for i, t := range types {
		_, err := s.store.AddInsight(schema.Insight{
			UserID:    "user-1",
			Type:      t,
			Text:      string(t),
			CreatedAt: fixtureNow.Add(time.Duration(i) * time.Hour),
		})
		s.NoError(err)
	}

	all, err := s.store.GetInsights("user-1", "", 0, 0)
	s.NoError(err)
	s.Len(all, 4)

	bpInsights, err := s.store.GetInsights("user-1", schema.InsightBPPattern, 2, 1)
	s.NoError(err)
	if s.Len(bpInsights, 2) {
		s.True(bpInsights[0].CreatedAt.Equal(fixtureNow.Add(2 * time.Hour)))
		s.True(bpInsights[1].CreatedAt.Equal(fixtureNow))
	}
}

func TestMongoStore(t *testing.T) {
	conn := os.Getenv("FLO_TEST_MONGO_CONN")
	if conn == "" {
		t.Skip("FLO_TEST_MONGO_CONN is not set")
	}
	suite.Run(t, NewMongoStoreTestSuite(conn, "flo-test-db"))
}
