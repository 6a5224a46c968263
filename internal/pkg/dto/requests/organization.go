package requests

type CreateOrganization struct {
	Slug string `json:"slug" validate:"required,slug"`
	Name string `json:"name" validate:"required,min=2,max=120"`
}

type UpdateOrganization struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Active *bool   `json:"active,omitempty"`
}

type SetOrganizationOwner struct {
	OwnerProfileID string `json:"ownerProfileId" validate:"required"`
}
