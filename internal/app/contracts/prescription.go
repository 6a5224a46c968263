package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

type PrescriptionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Prescription, error)
	FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Prescription, int, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) ([]models.Prescription, error)
	Create(ctx context.Context, prescription *models.Prescription) error
}
