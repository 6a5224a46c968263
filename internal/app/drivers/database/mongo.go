package database

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/pkg/constvars"
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}

	ensureIndexes(client.Database(driverConfig.MongoDB.DbName))

	log.Println("Successfully connected to mongo database")
	return client
}

// Slug and email uniqueness are enforced by the database, not the
// application; duplicate-key errors surface as user-facing conflicts.
func ensureIndexes(db *mongo.Database) {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(constvars.MongoCollectionOrganizations).Indexes().CreateOne(
		context.TODO(),
		mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
	)
	if err != nil {
		log.Fatalf("Failed to create organizations slug index: %s", err.Error())
	}

	_, err = db.Collection(constvars.MongoCollectionIdentityUsers).Indexes().CreateOne(
		context.TODO(),
		mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	)
	if err != nil {
		log.Fatalf("Failed to create identity_users email index: %s", err.Error())
	}
}
