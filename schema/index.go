package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexReadingCollection())
	panicIfError(m.IndexFloScoreCollection())
	panicIfError(m.IndexAlertCollection())
	panicIfError(m.IndexWearableMetricCollection())
	panicIfError(m.IndexMedicationLogCollection())
	panicIfError(m.IndexInsightCollection())
	panicIfError(m.IndexNudgeCollection())
}

func (m *MongoDBIndexer) IndexReadingCollection() error {
	return m.createIndex(ReadingCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	})
}

// IndexFloScoreCollection creates the (user_id, date) unique index which the
// daily score upsert relies on.
func (m *MongoDBIndexer) IndexFloScoreCollection() error {
	return m.createIndex(FloScoreCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "date", Value: -1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexAlertCollection() error {
	return m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "is_read", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexWearableMetricCollection() error {
	return m.createIndex(WearableMetricCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "metric_type", Value: 1},
			{Key: "timestamp", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexMedicationLogCollection() error {
	return m.createIndex(MedicationLogCollection, mongo.IndexModel{
		Keys: bson.M{
			"user_id": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexInsightCollection() error {
	if err := m.createIndex(InsightCollection, mongo.IndexModel{
		Keys: bson.M{
			"reading_id": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(InsightCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "type", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexNudgeCollection() error {
	return m.createIndex(NudgeCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}
