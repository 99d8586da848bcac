package infra

import (
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"travelstar/internal/config"
)

// InitMongo connects, pings the primary and returns the collection that holds
// the account documents.
func InitMongo(ctx context.Context, cfg config.MongoConfig, log *zap.Logger) (*mongo.Client, *mongo.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("Connected to MongoDB",
		zap.String("database", cfg.Database),
		zap.String("collection", cfg.Collection))

	return client, client.Database(cfg.Database).Collection(cfg.Collection), nil
}

func CloseMongo(ctx context.Context, client *mongo.Client, log *zap.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		log.Error("Error closing MongoDB connection", zap.Error(err))
		return
	}
	log.Info("MongoDB connection closed successfully")
}
