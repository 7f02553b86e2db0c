package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

type UserDocRepository struct {
	coll *mongo.Collection
}

func NewUserDocRepository(db *mongo.Database) *UserDocRepository {
	return &UserDocRepository{coll: db.Collection(collectionUserDocs)}
}

type mongoUserDoc struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	Title    string `bson:"title"`
	URL      string `bson:"url"`
}

func (r *UserDocRepository) Create(ctx context.Context, d *domain.UserDoc) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUserDoc{
		ID:       primitive.NewObjectID().Hex(),
		Username: d.Username,
		Title:    d.Title,
		URL:      d.URL,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert user doc: %w", err)
	}
	return doc.ID, nil
}

func (r *UserDocRepository) ListByOwner(ctx context.Context, username string) ([]domain.UserDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("find user docs: %w", err)
	}

	var docs []mongoUserDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode user docs: %w", err)
	}

	out := make([]domain.UserDoc, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.UserDoc{ID: d.ID, Username: d.Username, Title: d.Title, URL: d.URL})
	}
	return out, nil
}
