package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lawtrack/lawsuit-tracker/internal/core/domain"
)

type LawsuitRepository struct {
	coll *mongo.Collection
}

func NewLawsuitRepository(db *mongo.Database) *LawsuitRepository {
	return &LawsuitRepository{coll: db.Collection(collectionLawsuits)}
}

// mongoLawsuit keeps the generated key both as _id and as the id field clients read.
type mongoLawsuit struct {
	Key       string `bson:"_id"`
	ID        string `bson:"id"`
	Username  string `bson:"username"`
	URL       string `bson:"url"`
	Plaintiff string `bson:"plaintiff"`
	Defendant string `bson:"defendant"`
	Note      string `bson:"note"`
	Status    string `bson:"status"`
	Created   int64  `bson:"created"`
}

// Create inserts the lawsuit under a freshly generated id and returns it.
func (r *LawsuitRepository) Create(ctx context.Context, l *domain.Lawsuit) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id := primitive.NewObjectID().Hex()
	doc := mongoLawsuit{
		Key:       id,
		ID:        id,
		Username:  l.Username,
		URL:       l.URL,
		Plaintiff: l.Plaintiff,
		Defendant: l.Defendant,
		Note:      l.Note,
		Status:    l.Status,
		Created:   l.Created,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert lawsuit: %w", err)
	}
	return id, nil
}

func (r *LawsuitRepository) ListByOwner(ctx context.Context, username string) ([]domain.Lawsuit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("find lawsuits: %w", err)
	}

	var docs []mongoLawsuit
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode lawsuits: %w", err)
	}

	out := make([]domain.Lawsuit, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomainLawsuit(d))
	}
	return out, nil
}

// UpdateStatus sets status only on the record matching both id and owner.
func (r *LawsuitRepository) UpdateStatus(ctx context.Context, id, username, status string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "username": username}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("update lawsuit: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the record matching both id and owner.
func (r *LawsuitRepository) Delete(ctx context.Context, id, username string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "username": username})
	if err != nil {
		return false, fmt.Errorf("delete lawsuit: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func toDomainLawsuit(d mongoLawsuit) domain.Lawsuit {
	id := d.ID
	if id == "" {
		id = d.Key
	}
	return domain.Lawsuit{
		ID:        id,
		Username:  d.Username,
		URL:       d.URL,
		Plaintiff: d.Plaintiff,
		Defendant: d.Defendant,
		Note:      d.Note,
		Status:    d.Status,
		Created:   d.Created,
	}
}
