package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

type OrganizationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	FindBySlug(ctx context.Context, slug string) (*models.Organization, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Organization, int, error)
	// IsOwnedBy reports whether the organization exists and its owner
	// reference equals profileID.
	IsOwnedBy(ctx context.Context, orgID, profileID string) (bool, error)
	Create(ctx context.Context, org *models.Organization) error
	Update(ctx context.Context, org *models.Organization) error
}
