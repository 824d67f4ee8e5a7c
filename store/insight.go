package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

type InsightStore interface {
	AddInsight(insight schema.Insight) (*schema.Insight, error)
	GetInsights(userID string, insightType schema.InsightType, limit, offset int64) ([]schema.Insight, error)
}

func (m *mongoDB) AddInsight(insight schema.Insight) (*schema.Insight, error) {
	c := m.client.Database(m.database).Collection(schema.InsightCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if insight.ID == "" {
		insight.ID = uuid.New().String()
	}

	if _, err := c.InsertOne(ctx, insight); err != nil {
		return nil, fmt.Errorf("insert insight: %w", err)
	}

	return &insight, nil
}

// GetInsights lists the insights of a user, newest first. An empty type
// matches every type.
func (m *mongoDB) GetInsights(userID string, insightType schema.InsightType, limit, offset int64) ([]schema.Insight, error) {
	c := m.client.Database(m.database).Collection(schema.InsightCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": userID}
	if insightType != "" {
		query["type"] = insightType
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if offset > 0 {
		opts.SetSkip(offset)
	}

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find insights: %w", err)
	}

	insights := make([]schema.Insight, 0)
	if err := cursor.All(ctx, &insights); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}

	return insights, nil
}
