package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
)

type AccountTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAccountTestSuite(connURI, dbName string) *AccountTestSuite {
	return &AccountTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AccountTestSuite) SetupSuite() {
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

func (s *AccountTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *AccountTestSuite) TestCreateAccount() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	account, err := store.CreateAccount("Alice", "alice@example.com", "$2a$10$hash", schema.RoleUser)
	s.NoError(err)
	s.False(account.ID.IsZero())
	s.Equal(schema.RoleUser, account.Role)

	fetched, err := store.GetAccount(account.ID)
	s.NoError(err)
	s.Equal("alice@example.com", fetched.Email)
	s.Equal("Alice", fetched.Name)
}

func (s *AccountTestSuite) TestCreateAccountDuplicateEmail() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CreateAccount("Bob", "bob@example.com", "$2a$10$hash", schema.RoleUser)
	s.NoError(err)

	_, err = store.CreateAccount("Bobby", "bob@example.com", "$2a$10$hash", schema.RoleUser)
	s.Equal(ErrAccountTaken, err)
}

func (s *AccountTestSuite) TestGetAccountByEmail() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateAccount("Carol", "carol@example.com", "$2a$10$hash", schema.RoleAdmin)
	s.NoError(err)

	account, err := store.GetAccountByEmail("carol@example.com")
	s.NoError(err)
	s.Equal(created.ID, account.ID)
	s.Equal(schema.RoleAdmin, account.Role)
}

func (s *AccountTestSuite) TestGetAccountNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetAccount(primitive.NewObjectID())
	s.Equal(ErrAccountNotFound, err)

	_, err = store.GetAccountByEmail("missing@example.com")
	s.Equal(ErrAccountNotFound, err)
}

func TestAccountTestSuite(t *testing.T) {
	suite.Run(t, NewAccountTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db-accounts"))
}
