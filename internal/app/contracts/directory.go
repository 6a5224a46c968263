package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

// Directory resolves an authenticated principal to its authoritative,
// enriched profile. Resolution is memoized per request, never across
// requests.
type Directory interface {
	ResolveProfile(ctx context.Context, principalID string) (*models.EnrichedProfile, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id string) (*models.Profile, error)
	FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Profile, int, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Profile, int, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
}

type DoctorRepository interface {
	FindByProfileID(ctx context.Context, profileID string) (*models.Doctor, error)
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
	FindByClinicID(ctx context.Context, clinicID string) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
}

type AssistantRepository interface {
	FindByProfileID(ctx context.Context, profileID string) (*models.Assistant, error)
	FindByClinicID(ctx context.Context, clinicID string) ([]models.Assistant, error)
	Create(ctx context.Context, assistant *models.Assistant) error
}
