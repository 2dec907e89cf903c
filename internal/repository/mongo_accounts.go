package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"harmony-store/internal/auth"
	"harmony-store/internal/models"
)

type userDoc struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password"`
	IsAdmin      bool   `bson:"is_admin"`
}

func (d userDoc) toModel() *models.User {
	return &models.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
	}
}

// MongoAccounts implements AccountStore on a MongoDB collection.
type MongoAccounts struct {
	collection *mongo.Collection
}

func NewMongoAccounts(db *mongo.Database) *MongoAccounts {
	return &MongoAccounts{collection: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. Two simultaneous
// registrations with the same email then race on the index instead of on
// a read-modify-write.
func (r *MongoAccounts) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoAccounts) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoAccounts) Create(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := userDoc{
		ID:           fmt.Sprintf("user-%d", time.Now().UnixNano()),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoAccounts) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
