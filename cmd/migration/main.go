package main

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/drivers/database"
	"clinicdesk-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensures the indexes the query paths rely on. Safe to run repeatedly;
// Mongo treats an existing identical index as a no-op.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionIdentityUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionProfiles: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "clinicId", Value: 1}}},
		},
		constvars.MongoCollectionDoctors: {
			{Keys: bson.D{{Key: "profileId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "clinicId", Value: 1}}},
		},
		constvars.MongoCollectionAssistants: {
			{Keys: bson.D{{Key: "profileId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "clinicId", Value: 1}}},
		},
		constvars.MongoCollectionOrganizations: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionPatients: {
			{Keys: bson.D{{Key: "clinicId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "principalId", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "startTime", Value: 1}}},
			{Keys: bson.D{{Key: "clinicId", Value: 1}, {Key: "startTime", Value: -1}}},
		},
		constvars.MongoCollectionPrescriptions: {
			{Keys: bson.D{{Key: "appointmentId", Value: 1}}},
			{Keys: bson.D{{Key: "clinicId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			logrus.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		logrus.Printf("Ensured indexes on %s: %v", collection, names)
	}

	if err := client.Disconnect(ctx); err != nil {
		logrus.Fatalf("Error closing MongoDB: %v", err)
	}
}
