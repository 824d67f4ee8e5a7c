package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

var ErrAlertNotFound = errors.New("alert not found")

type AlertStore interface {
	AddAlerts(alerts []schema.Alert) error
	GetRecentUnreadAlerts(userID string, since time.Time) ([]schema.Alert, error)
	GetActiveAlerts(userID string, limit int64) ([]schema.Alert, error)
	MarkAlertRead(userID, id string) error
}

func (m *mongoDB) AddAlerts(alerts []schema.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	c := m.client.Database(m.database).Collection(schema.AlertCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(alerts))
	for _, a := range alerts {
		docs = append(docs, a)
	}

	if _, err := c.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert alerts: %w", err)
	}

	return nil
}

func (m *mongoDB) findAlerts(query bson.M, opts *options.FindOptions) ([]schema.Alert, error) {
	c := m.client.Database(m.database).Collection(schema.AlertCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find alerts: %w", err)
	}

	alerts := make([]schema.Alert, 0)
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, fmt.Errorf("decode alerts: %w", err)
	}

	return alerts, nil
}

// GetRecentUnreadAlerts returns the unread alerts created at or after since
func (m *mongoDB) GetRecentUnreadAlerts(userID string, since time.Time) ([]schema.Alert, error) {
	return m.findAlerts(bson.M{
		"user_id":    userID,
		"is_read":    false,
		"created_at": bson.M{"$gte": since},
	}, options.Find().SetSort(bson.M{"created_at": -1}))
}

// GetActiveAlerts returns the unread alerts of a user, newest first
func (m *mongoDB) GetActiveAlerts(userID string, limit int64) ([]schema.Alert, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return m.findAlerts(bson.M{"user_id": userID, "is_read": false}, opts)
}

func (m *mongoDB) MarkAlertRead(userID, id string) error {
	c := m.client.Database(m.database).Collection(schema.AlertCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrAlertNotFound
	}

	return nil
}
