package profile

type UpdateProfileRequest struct {
	FullName  *string  `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Bio       *string  `json:"bio,omitempty"`
	City      *string  `json:"city,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Interests []string `json:"interests,omitempty"`
}
