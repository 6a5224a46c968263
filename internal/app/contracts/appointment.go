package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
	"time"
)

type AppointmentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindByClinicID(ctx context.Context, clinicID string, page, pageSize int) ([]models.Appointment, int, error)
	FindByDoctorID(ctx context.Context, doctorID string, page, pageSize int) ([]models.Appointment, int, error)
	FindByDoctorAndDay(ctx context.Context, doctorID string, day time.Time) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	UpdateStatus(ctx context.Context, id, status string) error
}
