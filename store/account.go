package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("account already exists")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

type Account interface {
	CreateAccount(name, email, passwordHash string, role schema.Role) (*schema.Account, error)
	GetAccount(id primitive.ObjectID) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
}

// CreateAccount registers a new account. The unique index over email turns
// duplicate registrations into ErrAccountTaken.
func (m *mongoDB) CreateAccount(name, email, passwordHash string, role schema.Role) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	account := schema.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	r, err := c.InsertOne(ctx, &account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("incorrect inserted id")
	}
	account.ID = id

	return &account, nil
}

func (m *mongoDB) GetAccount(id primitive.ObjectID) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	var account schema.Account
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (m *mongoDB) GetAccountByEmail(email string) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	var account schema.Account
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
