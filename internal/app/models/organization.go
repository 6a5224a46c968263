package models

// Organization is a tenant. Slug is globally unique and URL-safe; it
// builds the tenant's login path. OwnerProfileID, when set, must resolve
// to a doctor whose clinic id equals this organization's id.
type Organization struct {
	ID             string  `bson:"_id"`
	Slug           string  `bson:"slug"`
	Name           string  `bson:"name"`
	Active         bool    `bson:"active"`
	OwnerProfileID *string `bson:"ownerProfileId,omitempty"`
	TimeModel      `bson:",inline"`
}
