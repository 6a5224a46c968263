package models

import "time"

type Appointment struct {
	ID           string    `bson:"_id"`
	ClinicID     string    `bson:"clinicId"`
	DoctorID     string    `bson:"doctorId"`
	PatientID    string    `bson:"patientId,omitempty"`
	PatientName  string    `bson:"patientName"`
	PatientEmail string    `bson:"patientEmail"`
	PatientPhone string    `bson:"patientPhone"`
	StartTime    time.Time `bson:"startTime"`
	EndTime      time.Time `bson:"endTime"`
	Status       string    `bson:"status"`
	Reason       string    `bson:"reason"`
	TimeModel    `bson:",inline"`
}
