package repository

import (
	"context"

	"gearcast-service/internal/domain/entity"
	"gearcast-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoForecastRunRepository implements the ForecastRunRepository interface
type MongoForecastRunRepository struct {
	collection *mongo.Collection
}

// NewMongoForecastRunRepository creates a new MongoDB forecast run repository
func NewMongoForecastRunRepository(db *mongo.Database) repository.ForecastRunRepository {
	collection := db.Collection("forecast_runs")

	// Index on generatedAt for latest-run lookups
	generatedAtIndex := mongo.IndexModel{
		Keys: bson.M{"generatedAt": -1},
	}
	collection.Indexes().CreateOne(context.Background(), generatedAtIndex)

	return &MongoForecastRunRepository{
		collection: collection,
	}
}

// Save persists one completed forecast run
func (r *MongoForecastRunRepository) Save(ctx context.Context, run *entity.ForecastRun) error {
	if run.ID == "" {
		run.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// GetLatest returns the most recently generated forecast run
func (r *MongoForecastRunRepository) GetLatest(ctx context.Context) (*entity.ForecastRun, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generatedAt", Value: -1}})

	var run entity.ForecastRun
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&run)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
