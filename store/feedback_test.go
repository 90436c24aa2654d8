package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
	"github.com/narenkarthik370h/smart-feedback-analysis/sentiment"
)

type FeedbackTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewFeedbackTestSuite(connURI, dbName string) *FeedbackTestSuite {
	return &FeedbackTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *FeedbackTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *FeedbackTestSuite) SetupTest() {
	_, err := s.testDatabase.Collection(schema.FeedbackCollection).DeleteMany(context.Background(), bson.M{})
	s.Require().NoError(err)
}

func (s *FeedbackTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *FeedbackTestSuite) newFeedback(accountID, message string) schema.Feedback {
	label, score := sentiment.AnalyzeMessage(message)
	return schema.Feedback{
		AccountID: accountID,
		Name:      schema.DefaultGuestName,
		Product:   schema.ProductWebsite,
		Message:   message,
		Sentiment: label,
		Score:     score,
		Timestamp: time.Now(),
	}
}

func (s *FeedbackTestSuite) TestCreateFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	id, err := store.CreateFeedback(s.newFeedback("a12345", "This is great, I love it!"))
	s.NoError(err)
	s.NotEmpty(id)

	oid, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	feedback, err := store.GetFeedback(oid)
	s.NoError(err)
	s.Equal("a12345", feedback.AccountID)
	s.Equal(schema.ProductWebsite, feedback.Product)
	s.Equal(schema.SentimentPositive, feedback.Sentiment)
	s.Equal(sentiment.Classify(feedback.Score), feedback.Sentiment)
}

func (s *FeedbackTestSuite) TestGetFeedbackNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetFeedback(primitive.NewObjectID())
	s.Equal(ErrFeedbackNotFound, err)
}

func (s *FeedbackTestSuite) TestListFeedbackSortedByTimestampDescending() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		f := s.newFeedback("lister", "It arrived")
		f.Timestamp = base.Add(time.Duration(i) * time.Minute)
		_, err := store.CreateFeedback(f)
		s.NoError(err)
	}

	feedbacks, err := store.ListFeedback(FeedbackFilter{AccountID: "lister"}, 0, 0)
	s.NoError(err)
	s.Len(feedbacks, 5)
	for i := 1; i < len(feedbacks); i++ {
		s.False(feedbacks[i].Timestamp.After(feedbacks[i-1].Timestamp))
	}
}

func (s *FeedbackTestSuite) TestListFeedbackPagination() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for i := 0; i < 7; i++ {
		_, err := store.CreateFeedback(s.newFeedback("pager", "It arrived"))
		s.NoError(err)
	}

	firstPage, err := store.ListFeedback(FeedbackFilter{}, 0, 3)
	s.NoError(err)
	s.Len(firstPage, 3)

	lastPage, err := store.ListFeedback(FeedbackFilter{}, 6, 3)
	s.NoError(err)
	s.Len(lastPage, 1)

	count, err := store.CountFeedback(FeedbackFilter{})
	s.NoError(err)
	s.Equal(int64(7), count)
}

func (s *FeedbackTestSuite) TestListFeedbackSinceFilter() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	old := s.newFeedback("weekly", "It arrived")
	old.Timestamp = time.Now().Add(-30 * 24 * time.Hour)
	_, err := store.CreateFeedback(old)
	s.NoError(err)

	_, err = store.CreateFeedback(s.newFeedback("weekly", "It arrived"))
	s.NoError(err)

	recent, err := store.ListFeedback(FeedbackFilter{
		AccountID: "weekly",
		Since:     time.Now().Add(-7 * 24 * time.Hour),
	}, 0, 0)
	s.NoError(err)
	s.Len(recent, 1)
}

func (s *FeedbackTestSuite) TestUpdateFeedbackMessageKeepsTimestamp() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	id, err := store.CreateFeedback(s.newFeedback("editor", "This is great, I love it!"))
	s.NoError(err)

	oid, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	created, err := store.GetFeedback(oid)
	s.NoError(err)
	s.Equal(schema.SentimentPositive, created.Sentiment)

	label, score := sentiment.AnalyzeMessage("Terrible, awful, late again")
	updated, err := store.UpdateFeedbackMessage(oid, "Terrible, awful, late again", label, score)
	s.NoError(err)
	s.Equal(schema.SentimentNegative, updated.Sentiment)
	s.Equal(score, updated.Score)
	s.Equal("Terrible, awful, late again", updated.Message)
	s.Equal(created.Timestamp.Unix(), updated.Timestamp.Unix())
}

func (s *FeedbackTestSuite) TestUpdateFeedbackMessageNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.UpdateFeedbackMessage(primitive.NewObjectID(), "anything", schema.SentimentNeutral, 0)
	s.Equal(ErrFeedbackNotFound, err)
}

func (s *FeedbackTestSuite) TestDeleteFeedbackTwice() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	id, err := store.CreateFeedback(s.newFeedback("deleter", "It arrived"))
	s.NoError(err)

	oid, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	s.NoError(store.DeleteFeedback(oid))
	s.Equal(ErrFeedbackNotFound, store.DeleteFeedback(oid))
}

func (s *FeedbackTestSuite) TestDeleteAllFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	for i := 0; i < 3; i++ {
		_, err := store.CreateFeedback(s.newFeedback("bulk", "It arrived"))
		s.NoError(err)
	}

	deleted, err := store.DeleteAllFeedback()
	s.NoError(err)
	s.Equal(int64(3), deleted)

	deleted, err = store.DeleteAllFeedback()
	s.NoError(err)
	s.Equal(int64(0), deleted)
}

func (s *FeedbackTestSuite) TestGetSentimentSummary() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	messages := []string{
		"This is great, I love it!",
		"Absolutely wonderful support",
		"Terrible, awful, late again",
	}
	for _, msg := range messages {
		_, err := store.CreateFeedback(s.newFeedback("summarized", msg))
		s.NoError(err)
	}

	summary, err := store.GetSentimentSummary(FeedbackFilter{AccountID: "summarized"})
	s.NoError(err)
	s.Equal(int64(3), summary.Total)
	s.Equal(int64(2), summary.Positive)
	s.Equal(int64(1), summary.Negative)
	s.Equal(int64(0), summary.Neutral)
	s.Equal(summary.Total, summary.Positive+summary.Negative+summary.Neutral)
}

func (s *FeedbackTestSuite) TestGetSentimentSummaryScoped() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateFeedback(s.newFeedback("alice", "This is great, I love it!"))
	s.NoError(err)
	_, err = store.CreateFeedback(s.newFeedback("bob", "Terrible, awful, late again"))
	s.NoError(err)

	summary, err := store.GetSentimentSummary(FeedbackFilter{AccountID: "alice"})
	s.NoError(err)
	s.Equal(int64(1), summary.Total)
	s.Equal(int64(1), summary.Positive)
	s.Equal(int64(0), summary.Negative)

	global, err := store.GetSentimentSummary(FeedbackFilter{})
	s.NoError(err)
	s.Equal(int64(2), global.Total)
}

func (s *FeedbackTestSuite) TestGetSentimentSummaryEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	summary, err := store.GetSentimentSummary(FeedbackFilter{AccountID: "nobody"})
	s.NoError(err)
	s.Equal(int64(0), summary.Total)
}

func TestFeedbackTestSuite(t *testing.T) {
	suite.Run(t, NewFeedbackTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
