package models

// Profile is the authoritative directory record for a principal. Its ID
// equals the identity-provider user id. Created by administrative flows
// only, never by the principal itself.
type Profile struct {
	ID                string  `bson:"_id"`
	Email             string  `bson:"email"`
	Role              string  `bson:"role"`
	Active            bool    `bson:"active"`
	ClinicID          *string `bson:"clinicId,omitempty"`
	FullName          string  `bson:"fullName"`
	PictureObjectName string  `bson:"pictureObjectName,omitempty"`
	TimeModel         `bson:",inline"`
}

// DoctorContext carries the doctor-only enrichment. Ownership lives here
// so a non-doctor enriched profile cannot represent an ownership claim.
type DoctorContext struct {
	DoctorID      string `json:"doctorId"`
	IsClinicOwner bool   `json:"isClinicOwner"`
}

type AssistantContext struct {
	AssistantID      string `json:"assistantId"`
	AssignedDoctorID string `json:"assignedDoctorId"`
}

// EnrichedProfile is the directory's read-time view: never persisted,
// recomputed per request and memoized only for that request's lifetime.
type EnrichedProfile struct {
	Profile
	ClinicName string            `json:"clinicName,omitempty"`
	Doctor     *DoctorContext    `json:"doctor,omitempty"`
	Assistant  *AssistantContext `json:"assistant,omitempty"`
}

func (p *EnrichedProfile) HasClinic() bool {
	return p.ClinicID != nil && *p.ClinicID != ""
}

func (p *EnrichedProfile) IsClinicOwner() bool {
	return p.Doctor != nil && p.Doctor.IsClinicOwner
}
