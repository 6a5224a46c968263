package responses

import (
	"clinicdesk-service/internal/app/models"
	"time"
)

type Prescription struct {
	ID            string                    `json:"id"`
	AppointmentID string                    `json:"appointmentId"`
	PatientID     string                    `json:"patientId"`
	DoctorID      string                    `json:"doctorId"`
	Items         []models.PrescriptionItem `json:"items"`
	Notes         string                    `json:"notes,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
}
