package services

import (
	"context"
	"testing"

	heartlink_errors "heartlink/pkg/errors"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validSignup() SignupInput {
	return SignupInput{
		Name:             "A",
		Email:            "a@x.com",
		Password:         "secret1",
		Age:              25,
		Gender:           "male",
		GenderPreference: "female",
	}
}

func TestSignup_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	u, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	require.Equal(t, "a@x.com", u.Email)
	require.NotEmpty(t, u.ID)

	// The stored secret is a hash, never the plaintext.
	stored := repo.users[u.ID]
	require.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		message string
	}{
		{"missing name", func(in *SignupInput) { in.Name = "" }, "All fields are required"},
		{"missing email", func(in *SignupInput) { in.Email = "" }, "All fields are required"},
		{"missing password", func(in *SignupInput) { in.Password = "" }, "All fields are required"},
		{"missing age", func(in *SignupInput) { in.Age = 0 }, "All fields are required"},
		{"missing gender", func(in *SignupInput) { in.Gender = "" }, "All fields are required"},
		{"missing preference", func(in *SignupInput) { in.GenderPreference = "" }, "All fields are required"},
		{"underage", func(in *SignupInput) { in.Age = 17 }, "You must be at least 18 years old"},
		{"short password", func(in *SignupInput) { in.Password = "abc12" }, "Password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewAuthService(repo)

			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Signup(context.Background(), in)
			require.ErrorIs(t, err, heartlink_errors.ErrInvalidInput)
			require.Equal(t, tt.message, err.Error())
			require.Empty(t, repo.users, "no user document may be created")
		})
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validSignup())
	require.ErrorIs(t, err, heartlink_errors.ErrConflict)
	require.Equal(t, "Email already exists", err.Error())
	require.Len(t, repo.users, 1, "store must be unchanged")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, created.ID, u.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	require.ErrorIs(t, err, heartlink_errors.ErrInvalidInput)
	require.Equal(t, "Invalid email", err.Error())
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", "wrong-pass")
	require.ErrorIs(t, err, heartlink_errors.ErrInvalidInput)
	require.Equal(t, "Invalid credentials", err.Error())
}
