package providerRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"oxywell/database"
	"oxywell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a ProviderRepository backed by the providers
// collection.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.MongoClient.Database("oxywell").Collection("providers")
	repo := &MongoProviderRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation failing is not fatal for reads.
		log.Printf("provider repo: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProviderRepo) GetAllRaw() ([]models.RawProviderRecord, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var raws []models.RawProviderRecord
	for cursor.Next(ctx) {
		var raw models.RawProviderRecord
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to decode provider row: %w", err)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

func (r *MongoProviderRepo) GetRawByID(id string) (*models.RawProviderRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var raw models.RawProviderRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &raw, nil
}
