package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kebo-sukses/calius-digital/internal/platform/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func Connect(cfg *config.Config) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("database.Connect: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("database.Connect ping: %w", err)
	}

	fmt.Println("Successfully connected to MongoDB!")
	return &Mongo{Client: client, DB: client.Database(cfg.DBName)}, nil
}

func (m *Mongo) Close() {
	if m.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.Client.Disconnect(ctx); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB client: %v", err)
			return
		}
		fmt.Println("Database connection closed.")
	}
}
