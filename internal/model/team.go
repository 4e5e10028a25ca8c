package model

import "time"

// TeamMember is a person shown in the about section.
type TeamMember struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	ImagePath       string    `json:"image_path"`
	MobileImagePath string    `json:"mobile_image_path,omitempty"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TeamMemberInput holds the fields for a new team member.
type TeamMemberInput struct {
	Name            string
	Role            string
	ImagePath       string
	MobileImagePath string
	IsActive        *bool
	DisplayOrder    int
}

// Validate checks the required fields.
func (in TeamMemberInput) Validate() error {
	return requireText("name", in.Name, "role", in.Role, "image_path", in.ImagePath)
}

// WithDefaults returns a copy with unset optional fields filled in.
func (in TeamMemberInput) WithDefaults() TeamMemberInput {
	if in.IsActive == nil {
		in.IsActive = Ptr(true)
	}
	return in
}

// TeamMemberPatch lists the mutable team member columns.
type TeamMemberPatch struct {
	Name            *string
	Role            *string
	ImagePath       *string
	MobileImagePath *string
	IsActive        *bool
	DisplayOrder    *int
}

// Validate rejects blanking a required field.
func (p TeamMemberPatch) Validate() error {
	return firstError(
		requireIfSet("name", p.Name),
		requireIfSet("role", p.Role),
		requireIfSet("image_path", p.ImagePath),
	)
}
