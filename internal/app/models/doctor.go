package models

type Doctor struct {
	ID                 string `bson:"_id"`
	ProfileID          string `bson:"profileId"`
	ClinicID           string `bson:"clinicId"`
	Specialization     string `bson:"specialization"`
	RegistrationNumber string `bson:"registrationNumber"`
	TimeModel          `bson:",inline"`
}
