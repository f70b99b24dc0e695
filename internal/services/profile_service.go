package services

import (
	"context"
	"strings"
	"time"

	"heartlink/internal/domain/user"
	"heartlink/internal/repository"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
)

// ImageUploader forwards an inline image payload to the media host and
// returns the canonical URL of the stored object.
type ImageUploader interface {
	UploadImage(ctx context.Context, dataURI string) (string, error)
}

type ProfileService struct {
	userRepo repository.UserRepository
	uploader ImageUploader
}

func NewProfileService(userRepo repository.UserRepository, uploader ImageUploader) *ProfileService {
	return &ProfileService{userRepo: userRepo, uploader: uploader}
}

// ProfileUpdateInput carries the image payload plus the optional attributes
// to merge. Nil pointers leave the stored value untouched.
type ProfileUpdateInput struct {
	Image            string
	Name             *string
	Bio              *string
	Age              *int
	Gender           *string
	GenderPreference *string
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.User, error) {
	if in.Image == "" {
		return user.User{}, heartlink_errors.Invalid("Profile pic is required")
	}
	if in.Age != nil && *in.Age < 18 {
		return user.User{}, heartlink_errors.Invalid("You must be at least 18 years old")
	}

	// Upload before touching the store so a failed upload persists nothing.
	var imageURL string
	if strings.HasPrefix(in.Image, "data:image") {
		url, err := s.uploader.UploadImage(ctx, in.Image)
		if err != nil {
			return user.User{}, heartlink_errors.Upload("Error uploading image")
		}
		imageURL = url
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if imageURL != "" {
		u.ImageURL = imageURL
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
	if in.GenderPreference != nil {
		u.GenderPreference = *in.GenderPreference
	}
	u.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return user.User{}, err
	}

	return u, nil
}
