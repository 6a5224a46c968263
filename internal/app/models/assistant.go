package models

// Assistant is assigned to exactly one doctor. Its clinic id must equal
// the assigned doctor's clinic id.
type Assistant struct {
	ID               string `bson:"_id"`
	ProfileID        string `bson:"profileId"`
	ClinicID         string `bson:"clinicId"`
	AssignedDoctorID string `bson:"assignedDoctorId"`
	TimeModel        `bson:",inline"`
}
