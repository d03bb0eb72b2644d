package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

type ExploreRepository struct {
	collection *mongo.Collection
}

func NewExploreRepository(db *mongo.Database) *ExploreRepository {
	return &ExploreRepository{collection: db.Collection("explore")}
}

func (r *ExploreRepository) Create(ctx context.Context, entry *domain.ExploreEntry) error {
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()

	doc := &exploreDocument{
		ID:        primitive.NewObjectID(),
		List:      entry.List,
		Material:  entry.Material,
		Location:  entry.Location,
		Price:     entry.Price,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	entry.ID = doc.ID.Hex()
	return nil
}

func (r *ExploreRepository) Update(ctx context.Context, entry *domain.ExploreEntry) error {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	entry.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"list":       entry.List,
		"material":   entry.Material,
		"location":   entry.Location,
		"price":      entry.Price,
		"updated_at": entry.UpdatedAt,
	}}

	res, err := r.collection.UpdateByID(ctx, oid, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *ExploreRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntryNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *ExploreRepository) FindByID(ctx context.Context, id string) (*domain.ExploreEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	var doc exploreDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainEntry(&doc), nil
}

func (r *ExploreRepository) FindAll(ctx context.Context) ([]*domain.ExploreEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []*exploreDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	entries := make([]*domain.ExploreEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, toDomainEntry(doc))
	}
	return entries, nil
}
