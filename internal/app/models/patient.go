package models

import "time"

// Patient is linked to its principal by PrincipalID, a stored foreign
// key. Name-string matching is not an identity join.
type Patient struct {
	ID          string     `bson:"_id"`
	PrincipalID *string    `bson:"principalId,omitempty"`
	ClinicID    string     `bson:"clinicId"`
	FullName    string     `bson:"fullName"`
	Email       string     `bson:"email"`
	Phone       string     `bson:"phone"`
	DateOfBirth *time.Time `bson:"dateOfBirth,omitempty"`
	TimeModel   `bson:",inline"`
}
