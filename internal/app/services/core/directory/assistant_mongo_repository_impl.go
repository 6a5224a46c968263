package directory

import (
	"context"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssistantMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssistantMongoRepository(db *mongo.Client, dbName string) contracts.AssistantRepository {
	return &AssistantMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssistants),
	}
}

func (r *AssistantMongoRepository) FindByProfileID(ctx context.Context, profileID string) (*models.Assistant, error) {
	var assistant models.Assistant
	err := r.Collection.FindOne(ctx, bson.M{"profileId": profileID}).Decode(&assistant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assistant, nil
}

func (r *AssistantMongoRepository) FindByClinicID(ctx context.Context, clinicID string) ([]models.Assistant, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"clinicId": clinicID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	assistants := make([]models.Assistant, 0)
	if err := cursor.All(ctx, &assistants); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assistants, nil
}

func (r *AssistantMongoRepository) Create(ctx context.Context, assistant *models.Assistant) error {
	assistant.CreatedAt = time.Now()
	assistant.UpdatedAt = assistant.CreatedAt
	_, err := r.Collection.InsertOne(ctx, assistant)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
