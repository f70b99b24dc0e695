package httpdto

import (
	"heartlink/internal/domain/user"
)

// UserDTO is the public view of a user record. The password hash is never
// part of a response body.
type UserDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	GenderPreference string `json:"genderPreference"`
	Bio              string `json:"bio,omitempty"`
	Image            string `json:"image,omitempty"`
}

func NewUserDTO(u user.User) UserDTO {
	return UserDTO{
		ID:               u.ID.String(),
		Name:             u.Name,
		Email:            u.Email,
		Age:              u.Age,
		Gender:           u.Gender,
		GenderPreference: u.GenderPreference,
		Bio:              u.Bio,
		Image:            u.ImageURL,
	}
}

// ProfileUpdateRequest is used for PUT /users/profile. Absent fields keep
// their stored values; image is mandatory.
type ProfileUpdateRequest struct {
	Image            string  `json:"image"`
	Name             *string `json:"name,omitempty"`
	Bio              *string `json:"bio,omitempty"`
	Age              *int    `json:"age,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	GenderPreference *string `json:"genderPreference,omitempty"`
}
