package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id string) (*models.Patient, error)
	FindByPrincipalID(ctx context.Context, principalID string) (*models.Patient, error)
	FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Patient, int, error)
	Create(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
}
