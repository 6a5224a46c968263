package requests

type PrescriptionItem struct {
	Medication string `json:"medication" validate:"required"`
	Dosage     string `json:"dosage" validate:"required"`
	Frequency  string `json:"frequency" validate:"required"`
	Duration   string `json:"duration" validate:"omitempty"`
}

type CreatePrescription struct {
	AppointmentID string             `json:"appointmentId" validate:"required"`
	Items         []PrescriptionItem `json:"items" validate:"required,min=1,dive"`
	Notes         string             `json:"notes" validate:"omitempty,max=1000"`
}
