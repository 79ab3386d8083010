package chamberRepo

import (
	"context"
	"fmt"
	"time"

	"oxywell/database"
	"oxywell/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChamberRepository defines methods for chamber catalog access.
type ChamberRepository interface {
	Create(ctx context.Context, chamber models.Chamber) (string, error)
	GetByID(ctx context.Context, id string) (*models.Chamber, error)
	GetAll(ctx context.Context) ([]models.Chamber, error)
	GetByType(ctx context.Context, chamberType string) ([]models.Chamber, error)
	Update(ctx context.Context, chamber models.Chamber) error
	Delete(ctx context.Context, id string) error
}

type mongoChamberRepo struct {
	coll *mongo.Collection
}

// NewMongoChamberRepo returns a ChamberRepository backed by MongoDB.
func NewMongoChamberRepo() ChamberRepository {
	db := database.MongoClient.Database("oxywell")
	return &mongoChamberRepo{
		coll: db.Collection("chambers"),
	}
}

func (r *mongoChamberRepo) Create(ctx context.Context, chamber models.Chamber) (string, error) {
	if chamber.ID == "" {
		chamber.ID = uuid.New().String()
	}
	chamber.CreatedAt = time.Now()
	chamber.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, chamber); err != nil {
		return "", fmt.Errorf("failed to create chamber: %w", err)
	}
	return chamber.ID, nil
}

func (r *mongoChamberRepo) GetByID(ctx context.Context, id string) (*models.Chamber, error) {
	var chamber models.Chamber
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&chamber); err != nil {
		return nil, fmt.Errorf("failed to fetch chamber with id %s: %w", id, err)
	}
	return &chamber, nil
}

func (r *mongoChamberRepo) GetAll(ctx context.Context) ([]models.Chamber, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chambers: %w", err)
	}
	defer cursor.Close(ctx)

	var chambers []models.Chamber
	if err := cursor.All(ctx, &chambers); err != nil {
		return nil, fmt.Errorf("failed to decode chambers: %w", err)
	}
	return chambers, nil
}

func (r *mongoChamberRepo) GetByType(ctx context.Context, chamberType string) ([]models.Chamber, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"chamberType": chamberType})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chambers by type: %w", err)
	}
	defer cursor.Close(ctx)

	var chambers []models.Chamber
	if err := cursor.All(ctx, &chambers); err != nil {
		return nil, fmt.Errorf("failed to decode chambers: %w", err)
	}
	return chambers, nil
}

func (r *mongoChamberRepo) Update(ctx context.Context, chamber models.Chamber) error {
	chamber.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": chamber.ID}, bson.M{"$set": chamber})
	if err != nil {
		return fmt.Errorf("failed to update chamber with id %s: %w", chamber.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("chamber with id %s not found", chamber.ID)
	}
	return nil
}

func (r *mongoChamberRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete chamber with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("chamber with id %s not found", id)
	}
	return nil
}
