package models

type PrescriptionItem struct {
	Medication string `bson:"medication" json:"medication"`
	Dosage     string `bson:"dosage" json:"dosage"`
	Frequency  string `bson:"frequency" json:"frequency"`
	Duration   string `bson:"duration" json:"duration"`
}

type Prescription struct {
	ID            string             `bson:"_id"`
	ClinicID      string             `bson:"clinicId"`
	AppointmentID string             `bson:"appointmentId"`
	PatientID     string             `bson:"patientId"`
	DoctorID      string             `bson:"doctorId"`
	Items         []PrescriptionItem `bson:"items"`
	Notes         string             `bson:"notes"`
	TimeModel     `bson:",inline"`
}
