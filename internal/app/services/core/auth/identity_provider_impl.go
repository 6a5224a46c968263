package auth

import (
	"context"
	"sync"
	"time"

	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/models"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// identityProvider is the credential and session backend: user records
// in Mongo, live sessions in Redis, session tokens as signed JWTs whose
// only claim is the session id. Authorization claims live in the Redis
// session payload, so the gate can read them without a directory call.
type identityProvider struct {
	Collection      *mongo.Collection
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	identityProviderInstance contracts.IdentityProvider
	onceIdentityProvider     sync.Once
)

func NewIdentityProvider(
	db *mongo.Client,
	dbName string,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IdentityProvider {
	onceIdentityProvider.Do(func() {
		identityProviderInstance = &identityProvider{
			Collection:      db.Database(dbName).Collection(constvars.MongoCollectionIdentityUsers),
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return identityProviderInstance
}

func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*models.Session, string, error) {
	user, err := p.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionTTL := time.Duration(p.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Claims:    user.Claims,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := p.storeSession(ctx, session, sessionTTL); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, p.InternalConfig.JWT.Secret, p.InternalConfig.App.LoginSessionExpiredTimeInHours)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

// GetSession resolves a signed token to its live session. An expired or
// deleted session yields nil, nil rather than an error; the caller
// decides whether that is fatal for the request.
func (p *identityProvider) GetSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, p.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	data, err := p.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (p *identityProvider) SignOut(ctx context.Context, sessionID string) error {
	return p.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}

func (p *identityProvider) RefreshSessionClaims(ctx context.Context, sessionID string, claims models.SessionClaims) error {
	data, err := p.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return err
	}
	if data == "" {
		return exceptions.ErrSessionNotFound(nil)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	// A session at the edge of expiry has a non-positive remaining TTL,
	// which Redis rejects. Treat it as already gone.
	remaining := time.Until(session.ExpiresAt)
	if remaining <= 0 {
		return exceptions.ErrSessionNotFound(nil)
	}

	session.Claims = claims
	return p.storeSession(ctx, &session, remaining)
}

func (p *identityProvider) CreateUser(ctx context.Context, email, password string, claims models.SessionClaims) (string, error) {
	existing, err := p.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", exceptions.ErrEmailAlreadyExists(nil)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return "", exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.IdentityUser{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Claims:       claims,
		TimeModel:    models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := p.Collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExists(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return user.ID, nil
}

func (p *identityProvider) FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error) {
	var user models.IdentityUser
	err := p.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (p *identityProvider) UpdateClaims(ctx context.Context, userID string, claims models.SessionClaims) error {
	update := bson.M{"$set": bson.M{"claims": claims, "updatedAt": time.Now()}}
	_, err := p.Collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (p *identityProvider) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	update := bson.M{"$set": bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()}}
	_, err = p.Collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (p *identityProvider) DeleteUser(ctx context.Context, userID string) error {
	_, err := p.Collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (p *identityProvider) storeSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return p.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, payload, ttl)
}
