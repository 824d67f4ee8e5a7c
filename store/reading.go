package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/flo-api/schema"
)

var ErrReadingNotFound = errors.New("reading not found")

type ReadingStore interface {
	AddReading(reading schema.Reading) (*schema.Reading, error)
	GetReading(userID, id string) (*schema.Reading, error)
	GetReadingsByIDs(userID string, ids []string) ([]schema.Reading, error)
	GetReadings(userID string, start, end time.Time, limit int64) ([]schema.Reading, error)
	GetLatestReading(userID string) (*schema.Reading, error)
	DeleteReading(userID, id string) error
}

// AddReading stores a new reading. An id is generated when it is empty.
func (m *mongoDB) AddReading(reading schema.Reading) (*schema.Reading, error) {
	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if reading.ID == "" {
		reading.ID = uuid.New().String()
	}

	if _, err := c.InsertOne(ctx, reading); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("fail to insert reading")
		return nil, fmt.Errorf("insert reading: %w", err)
	}

	return &reading, nil
}

func (m *mongoDB) GetReading(userID, id string) (*schema.Reading, error) {
	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var reading schema.Reading
	if err := c.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&reading); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReadingNotFound
		}
		return nil, fmt.Errorf("find reading: %w", err)
	}

	return &reading, nil
}

// GetReadings returns the readings of a user within [start, end], newest
// first. A non-positive limit returns all of them.
// GetReadingsByIDs returns the readings of a user among the given ids.
// Unknown ids are skipped.
func (m *mongoDB) GetReadingsByIDs(userID string, ids []string) ([]schema.Reading, error) {
	readings := make([]schema.Reading, 0)
	if len(ids) == 0 {
		return readings, nil
	}

	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := c.Find(ctx, bson.M{"user_id": userID, "_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find readings by ids: %w", err)
	}

	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode readings: %w", err)
	}

	return readings, nil
}

func (m *mongoDB) GetReadings(userID string, start, end time.Time, limit int64) ([]schema.Reading, error) {
	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"user_id": userID,
		"timestamp": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}

	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).WithField("user_id", userID).Error("fail to query readings")
		return nil, fmt.Errorf("find readings: %w", err)
	}

	readings := make([]schema.Reading, 0)
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode readings: %w", err)
	}

	return readings, nil
}

// GetLatestReading returns the newest reading of a user, or nil if the user
// has never logged one.
func (m *mongoDB) GetLatestReading(userID string) (*schema.Reading, error) {
	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var reading schema.Reading
	opts := options.FindOne().SetSort(bson.M{"timestamp": -1})
	if err := c.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&reading); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest reading: %w", err)
	}

	return &reading, nil
}

func (m *mongoDB) DeleteReading(userID, id string) error {
	c := m.client.Database(m.database).Collection(schema.ReadingCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrReadingNotFound
	}

	return nil
}
