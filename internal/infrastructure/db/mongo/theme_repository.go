package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ThemeRepository struct {
	coll *mongo.Collection
}

func NewThemeRepository(db *mongo.Database) *ThemeRepository {
	return &ThemeRepository{coll: db.Collection(collectionThemes)}
}

type mongoTheme struct {
	Username string `bson:"_id"`
	Theme    string `bson:"theme"`
}

func (r *ThemeRepository) Find(ctx context.Context, username string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTheme
	if err := r.coll.FindOne(ctx, bson.M{"_id": username}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find theme: %w", err)
	}
	return mt.Theme, true, nil
}

// Upsert replaces the whole theme document, creating it when absent.
func (r *ThemeRepository) Upsert(ctx context.Context, username, theme string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTheme{Username: username, Theme: theme}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": username}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert theme: %w", err)
	}
	return nil
}
