package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names.
const (
	FeedbackCollection  = "feedbacks"
	TimetableCollection = "timetables"
	UserCollection      = "users"
	FacultyCollection   = "faculties"
)

var DB *mongo.Database

func Connect(uri, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return err
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	DB = client.Database(dbName)
	log.Printf("✅ Connected to MongoDB database %q", dbName)
	return nil
}

func Disconnect(ctx context.Context) error {
	if DB == nil {
		return nil
	}
	return DB.Client().Disconnect(ctx)
}

func GetCollection(name string) *mongo.Collection {
	return DB.Collection(name)
}
