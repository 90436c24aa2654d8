package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
)

var (
	ErrFeedbackNotFound = fmt.Errorf("feedback not found")
)

// FeedbackFilter scopes feedback reads. The zero value matches everything;
// AccountID narrows to one submitter and Since to records at or after a
// point in time.
type FeedbackFilter struct {
	AccountID string
	Since     time.Time
}

func (f FeedbackFilter) query() bson.M {
	q := bson.M{}
	if f.AccountID != "" {
		q["user_id"] = f.AccountID
	}
	if !f.Since.IsZero() {
		q["timestamp"] = bson.M{"$gte": f.Since}
	}
	return q
}

type Feedback interface {
	CreateFeedback(feedback schema.Feedback) (string, error)
	GetFeedback(id primitive.ObjectID) (*schema.Feedback, error)
	ListFeedback(filter FeedbackFilter, skip, limit int64) ([]schema.Feedback, error)
	CountFeedback(filter FeedbackFilter) (int64, error)
	UpdateFeedbackMessage(id primitive.ObjectID, message string, sentiment schema.Sentiment, score int) (*schema.Feedback, error)
	DeleteFeedback(id primitive.ObjectID) error
	DeleteAllFeedback() (int64, error)
	GetSentimentSummary(filter FeedbackFilter) (*schema.SentimentSummary, error)
}

// CreateFeedback adds a feedback record into db and returns its id
func (m *mongoDB) CreateFeedback(feedback schema.Feedback) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.InsertOne(ctx, &feedback)
	if err != nil {
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if ok {
		return id.Hex(), nil
	}
	return "", fmt.Errorf("incorrect inserted id")
}

func (m *mongoDB) GetFeedback(id primitive.ObjectID) (*schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	var feedback schema.Feedback
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	return &feedback, nil
}

// ListFeedback returns matching records sorted by timestamp descending.
func (m *mongoDB) ListFeedback(filter FeedbackFilter, skip, limit int64) ([]schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if skip > 0 {
		opts = opts.SetSkip(skip)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := c.Find(ctx, filter.query(), opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list feedback fail")
		return nil, err
	}

	feedbacks := []schema.Feedback{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

func (m *mongoDB) CountFeedback(filter FeedbackFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	return c.CountDocuments(ctx, filter.query())
}

// UpdateFeedbackMessage replaces the message together with its re-derived
// sentiment and score. The original timestamp is left untouched.
func (m *mongoDB) UpdateFeedbackMessage(id primitive.ObjectID, message string, sentiment schema.Sentiment, score int) (*schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	update := bson.M{
		"$set": bson.M{
			"message":   message,
			"sentiment": sentiment,
			"score":     score,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var feedback schema.Feedback
	if err := c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFeedbackNotFound
		}
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"feedback ID": id.Hex(),
			"error":       err,
		}).Error("update feedback fail")
		return nil, err
	}

	return &feedback, nil
}

func (m *mongoDB) DeleteFeedback(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if r.DeletedCount == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

// DeleteAllFeedback removes every record and returns the number removed.
func (m *mongoDB) DeleteAllFeedback() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	return r.DeletedCount, nil
}

// GetSentimentSummary counts matching records per sentiment label with a
// single aggregation pipeline, so all three counts and the total come from
// the same point-in-time view of the collection.
func (m *mongoDB) GetSentimentSummary(filter FeedbackFilter) (*schema.SentimentSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	pipeline := mongo.Pipeline{
		AggregationMatch(filter.query()),
		AggregationGroup("$sentiment", bson.D{
			bson.E{Key: "count", Value: bson.M{"$sum": 1}},
		}),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("aggregate sentiment summary fail")
		return nil, err
	}

	var summary schema.SentimentSummary
	for cursor.Next(ctx) {
		var group struct {
			Sentiment schema.Sentiment `bson:"_id"`
			Count     int64            `bson:"count"`
		}
		if err := cursor.Decode(&group); err != nil {
			return nil, err
		}

		switch group.Sentiment {
		case schema.SentimentPositive:
			summary.Positive = group.Count
		case schema.SentimentNegative:
			summary.Negative = group.Count
		case schema.SentimentNeutral:
			summary.Neutral = group.Count
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	summary.Total = summary.Positive + summary.Negative + summary.Neutral

	return &summary, nil
}
