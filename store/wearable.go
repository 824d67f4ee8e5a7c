package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

type WearableStore interface {
	AddWearableMetric(metric schema.WearableMetric) (*schema.WearableMetric, error)
	GetWearableMetrics(userID string, types []schema.MetricType, since time.Time) ([]schema.WearableMetric, error)
}

func (m *mongoDB) AddWearableMetric(metric schema.WearableMetric) (*schema.WearableMetric, error) {
	c := m.client.Database(m.database).Collection(schema.WearableMetricCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if metric.ID == "" {
		metric.ID = uuid.New().String()
	}

	if _, err := c.InsertOne(ctx, metric); err != nil {
		return nil, fmt.Errorf("insert wearable metric: %w", err)
	}

	return &metric, nil
}

// GetWearableMetrics returns the metrics of the given types recorded at or
// after since, oldest first. An empty types list matches every type.
func (m *mongoDB) GetWearableMetrics(userID string, types []schema.MetricType, since time.Time) ([]schema.WearableMetric, error) {
	c := m.client.Database(m.database).Collection(schema.WearableMetricCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": since},
	}
	if len(types) > 0 {
		query["metric_type"] = bson.M{"$in": types}
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"timestamp": 1}))
	if err != nil {
		return nil, fmt.Errorf("find wearable metrics: %w", err)
	}

	metrics := make([]schema.WearableMetric, 0)
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, fmt.Errorf("decode wearable metrics: %w", err)
	}

	return metrics, nil
}
