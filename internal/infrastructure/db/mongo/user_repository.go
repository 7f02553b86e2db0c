package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

// UserRepository stores accounts with the username as document _id, so the
// unique index on _id rejects a second registration atomically.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	Username     string `bson:"_id"`
	PasswordHash string `bson:"password_hash,omitempty"`
	// Password is the plaintext field written by the previous service.
	Password string `bson:"password,omitempty"`
	VK       string `bson:"vk,omitempty"`
	Created  int64  `bson:"created"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		VK:           user.VK,
		Created:      user.Created.UnixMilli(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": username}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		Username:       mu.Username,
		PasswordHash:   mu.PasswordHash,
		LegacyPassword: mu.Password,
		VK:             mu.VK,
		Created:        millisToTime(mu.Created),
	}, nil
}

// SetPasswordHash stores hash and drops the plaintext password field.
func (r *UserRepository) SetPasswordHash(ctx context.Context, username, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"password_hash": hash},
		"$unset": bson.M{"password": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": username}, update)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
