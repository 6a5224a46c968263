package responses

import "time"

type Appointment struct {
	ID           string    `json:"id"`
	ClinicID     string    `json:"clinicId"`
	DoctorID     string    `json:"doctorId"`
	PatientID    string    `json:"patientId,omitempty"`
	PatientName  string    `json:"patientName"`
	PatientEmail string    `json:"patientEmail"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
}

type BookingSlots struct {
	Slug    string        `json:"slug"`
	Day     string        `json:"day"`
	Doctors []DoctorSlots `json:"doctors"`
}

type DoctorSlots struct {
	DoctorID   string      `json:"doctorId"`
	TakenSlots []TakenSlot `json:"takenSlots"`
}

type TakenSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
