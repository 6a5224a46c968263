package organizations

import (
	"context"
	"time"

	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrganizationMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrganizationMongoRepository(db *mongo.Client, dbName string) contracts.OrganizationRepository {
	return &OrganizationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrganizations),
	}
}

func (r *OrganizationMongoRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &org, nil
}

func (r *OrganizationMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &org, nil
}

func (r *OrganizationMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Organization, int, error) {
	filter := bson.M{}
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	orgs := make([]models.Organization, 0)
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orgs, int(total), nil
}

// IsOwnedBy runs the ownership test as a single filtered count so the
// caller never has to compare owner references itself.
func (r *OrganizationMongoRepository) IsOwnedBy(ctx context.Context, orgID, profileID string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"_id": orgID, "ownerProfileId": profileID})
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *OrganizationMongoRepository) Create(ctx context.Context, org *models.Organization) error {
	org.CreatedAt = time.Now()
	org.UpdatedAt = org.CreatedAt
	_, err := r.Collection.InsertOne(ctx, org)
	if err != nil {
		// The unique slug index is the source of truth for collisions.
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlugAlreadyTaken(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *OrganizationMongoRepository) Update(ctx context.Context, org *models.Organization) error {
	org.UpdatedAt = time.Now()
	filter := bson.M{"_id": org.ID}
	update := bson.M{"$set": org}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlugAlreadyTaken(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
