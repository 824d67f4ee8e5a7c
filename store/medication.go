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

type MedicationStore interface {
	AddMedicationLog(log schema.MedicationLog) (*schema.MedicationLog, error)
	GetMedicationLogs(userID string, since, until time.Time) ([]schema.MedicationLog, error)
}

func (m *mongoDB) AddMedicationLog(l schema.MedicationLog) (*schema.MedicationLog, error) {
	c := m.client.Database(m.database).Collection(schema.MedicationLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	if _, err := c.InsertOne(ctx, l); err != nil {
		return nil, fmt.Errorf("insert medication log: %w", err)
	}

	return &l, nil
}

// GetMedicationLogs returns the logs scheduled within [since, until], newest first
func (m *mongoDB) GetMedicationLogs(userID string, since, until time.Time) ([]schema.MedicationLog, error) {
	c := m.client.Database(m.database).Collection(schema.MedicationLogCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"user_id":        userID,
		"scheduled_time": bson.M{"$gte": since, "$lte": until},
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"scheduled_time": -1}))
	if err != nil {
		return nil, fmt.Errorf("find medication logs: %w", err)
	}

	logs := make([]schema.MedicationLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode medication logs: %w", err)
	}

	return logs, nil
}
