package services

import (
	"context"
	"errors"
	"testing"

	"heartlink/internal/domain/user"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const pngDataURI = "data:image/png;base64,iVBORw0KGgo="

func seedUser(repo *fakeUserRepo) user.User {
	u := user.User{
		ID:               uuid.New(),
		Name:             "A",
		Email:            "a@x.com",
		PasswordHash:     "$2a$10$hash",
		Age:              25,
		Gender:           "male",
		GenderPreference: "female",
		ImageURL:         "https://cdn.example.com/old.png",
	}
	repo.users[u.ID] = u
	return u
}

func TestProfileUpdate_MissingImage(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	u := seedUser(repo)
	svc := NewProfileService(repo, &fakeUploader{})

	_, err := svc.Update(context.Background(), u.ID, ProfileUpdateInput{})
	require.ErrorIs(t, err, heartlink_errors.ErrInvalidInput)
	require.Equal(t, "Profile pic is required", err.Error())
	require.Zero(t, repo.updates, "nothing may be persisted")
}

func TestProfileUpdate_InlineImageUploaded(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	u := seedUser(repo)
	uploader := &fakeUploader{url: "https://cdn.example.com/avatars/new.png"}
	svc := NewProfileService(repo, uploader)

	bio := "hello"
	updated, err := svc.Update(context.Background(), u.ID, ProfileUpdateInput{
		Image: pngDataURI,
		Bio:   &bio,
	})
	require.NoError(t, err)
	require.Equal(t, 1, uploader.calls)
	// The stored image is the media host URL, not the raw payload.
	require.Equal(t, "https://cdn.example.com/avatars/new.png", updated.ImageURL)
	require.Equal(t, "hello", updated.Bio)
	require.Equal(t, updated, repo.users[u.ID])
}

func TestProfileUpdate_UploadFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	u := seedUser(repo)
	uploader := &fakeUploader{err: errors.New("media host down")}
	svc := NewProfileService(repo, uploader)

	name := "B"
	_, err := svc.Update(context.Background(), u.ID, ProfileUpdateInput{
		Image: pngDataURI,
		Name:  &name,
	})
	require.ErrorIs(t, err, heartlink_errors.ErrUploadFailed)
	require.Equal(t, "Error uploading image", err.Error())
	require.Zero(t, repo.updates, "failed upload must not persist partial changes")
	require.Equal(t, "A", repo.users[u.ID].Name)
}

func TestProfileUpdate_NonInlineImageLeavesStoredValue(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	u := seedUser(repo)
	uploader := &fakeUploader{url: "unused"}
	svc := NewProfileService(repo, uploader)

	name := "B"
	updated, err := svc.Update(context.Background(), u.ID, ProfileUpdateInput{
		Image: "https://elsewhere.example.com/pic.png",
		Name:  &name,
	})
	require.NoError(t, err)
	require.Zero(t, uploader.calls)
	require.Equal(t, "https://cdn.example.com/old.png", updated.ImageURL)
	require.Equal(t, "B", updated.Name)
}

func TestProfileUpdate_UnderageRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	u := seedUser(repo)
	svc := NewProfileService(repo, &fakeUploader{})

	age := 17
	_, err := svc.Update(context.Background(), u.ID, ProfileUpdateInput{
		Image: pngDataURI,
		Age:   &age,
	})
	require.ErrorIs(t, err, heartlink_errors.ErrInvalidInput)
	require.Zero(t, repo.updates)
}

func TestProfileUpdate_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewProfileService(repo, &fakeUploader{url: "https://cdn.example.com/x.png"})

	_, err := svc.Update(context.Background(), uuid.New(), ProfileUpdateInput{Image: pngDataURI})
	require.ErrorIs(t, err, heartlink_errors.ErrNotFound)
}
