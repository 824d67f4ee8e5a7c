package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

type NudgeStore interface {
	GetLastNudge(userID string, nudgeType schema.NudgeType) (time.Time, error)
	UpdateLastNudge(userID string, nudgeType schema.NudgeType, at time.Time) error
}

// GetLastNudge returns the zero time if the nudge has never been sent
func (m *mongoDB) GetLastNudge(userID string, nudgeType schema.NudgeType) (time.Time, error) {
	c := m.client.Database(m.database).Collection(schema.NudgeCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var n schema.Nudge
	if err := c.FindOne(ctx, bson.M{"user_id": userID, "type": nudgeType}).Decode(&n); err != nil {
		if err == mongo.ErrNoDocuments {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("find nudge: %w", err)
	}

	return n.LastSent, nil
}

func (m *mongoDB) UpdateLastNudge(userID string, nudgeType schema.NudgeType, at time.Time) error {
	c := m.client.Database(m.database).Collection(schema.NudgeCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.UpdateOne(ctx,
		bson.M{"user_id": userID, "type": nudgeType},
		bson.M{"$set": bson.M{"last_sent": at}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update nudge: %w", err)
	}

	return nil
}
