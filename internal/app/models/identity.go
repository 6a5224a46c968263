package models

// SessionClaims are the authorization-relevant fields cached in the
// session. They are a cache, not a source of truth: the directory record
// wins, and the synchronizer re-issues them when drift is detected.
type SessionClaims struct {
	Role       string `bson:"role" json:"role"`
	ClinicID   string `bson:"clinicId" json:"clinicId"`
	ClinicSlug string `bson:"clinicSlug" json:"clinicSlug"`
}

// IdentityUser is the identity provider's user record.
type IdentityUser struct {
	ID           string        `bson:"_id"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"passwordHash"`
	Claims       SessionClaims `bson:"claims"`
	TimeModel    `bson:",inline"`
}
