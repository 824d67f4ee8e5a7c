package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

type FloScoreHistory interface {
	UpsertFloScore(score schema.FloScore) error
	GetLatestFloScore(userID string) (*schema.FloScore, error)
	GetPreviousFloScore(userID, date string) (*schema.FloScore, error)
	GetFloScoreHistory(userID, startDate, endDate string) ([]schema.FloScore, error)
}

// UpsertFloScore saves the score of a user for its date. A later write for
// the same user and date replaces the earlier one.
func (m *mongoDB) UpsertFloScore(score schema.FloScore) error {
	c := m.client.Database(m.database).Collection(schema.FloScoreCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": score.UserID, "date": score.Date}
	update := bson.M{
		"$set": bson.M{
			"score":         score.Score,
			"trend":         score.Trend,
			"components":    score.Components,
			"explanation":   score.Explanation,
			"calculated_at": score.CalculatedAt,
		},
		"$setOnInsert": bson.M{
			"user_id": score.UserID,
			"date":    score.Date,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := c.UpdateOne(ctx, query, update, opts); err != nil {
		return fmt.Errorf("upsert flo score: %w", err)
	}

	return nil
}

func (m *mongoDB) findOneScore(query bson.M) (*schema.FloScore, error) {
	c := m.client.Database(m.database).Collection(schema.FloScoreCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var score schema.FloScore
	opts := options.FindOne().SetSort(bson.M{"date": -1})
	if err := c.FindOne(ctx, query, opts).Decode(&score); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find flo score: %w", err)
	}

	return &score, nil
}

// GetLatestFloScore returns nil when the user has no score yet
func (m *mongoDB) GetLatestFloScore(userID string) (*schema.FloScore, error) {
	return m.findOneScore(bson.M{"user_id": userID})
}

// GetPreviousFloScore returns the latest score of a date before the given one
func (m *mongoDB) GetPreviousFloScore(userID, date string) (*schema.FloScore, error) {
	return m.findOneScore(bson.M{
		"user_id": userID,
		"date":    bson.M{"$lt": date},
	})
}

// GetFloScoreHistory returns the scores between two dates, both inclusive,
// in date order.
func (m *mongoDB) GetFloScoreHistory(userID, startDate, endDate string) ([]schema.FloScore, error) {
	c := m.client.Database(m.database).Collection(schema.FloScoreCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": startDate, "$lte": endDate},
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, fmt.Errorf("find flo score history: %w", err)
	}

	scores := make([]schema.FloScore, 0)
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("decode flo score history: %w", err)
	}

	return scores, nil
}
