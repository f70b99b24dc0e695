package services

import (
	"context"
	"errors"
	"time"

	"heartlink/internal/domain/user"
	"heartlink/internal/repository"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type SignupInput struct {
	Name             string
	Email            string
	Password         string
	Age              int
	Gender           string
	GenderPreference string
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (user.User, error) {
	if err := validateSignup(in); err != nil {
		return user.User{}, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return user.User{}, heartlink_errors.Conflict("Email already exists")
	} else if !errors.Is(err, heartlink_errors.ErrNotFound) {
		return user.User{}, err
	}

	// Hashing happens here, before anything reaches the store. The repository
	// only ever sees PasswordHash.
	hash, err := hashPassword(in.Password)
	if err != nil {
		return user.User{}, err
	}

	newUser := &user.User{
		ID:               uuid.New(),
		Name:             in.Name,
		Email:            in.Email,
		PasswordHash:     hash,
		Age:              in.Age,
		Gender:           in.Gender,
		GenderPreference: in.GenderPreference,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, heartlink_errors.ErrAlreadyExists) {
			return user.User{}, heartlink_errors.Conflict("Email already exists")
		}
		return user.User{}, err
	}

	return *newUser, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (user.User, error) {
	if email == "" || password == "" {
		return user.User{}, heartlink_errors.Invalid("All fields are required")
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, heartlink_errors.ErrNotFound) {
			return user.User{}, heartlink_errors.Invalid("Invalid email")
		}
		return user.User{}, err
	}

	if err := comparePassword(u.PasswordHash, password); err != nil {
		return user.User{}, heartlink_errors.Invalid("Invalid credentials")
	}

	return u, nil
}

func validateSignup(in SignupInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Age == 0 ||
		in.Gender == "" || in.GenderPreference == "" {
		return heartlink_errors.Invalid("All fields are required")
	}
	if in.Age < 18 {
		return heartlink_errors.Invalid("You must be at least 18 years old")
	}
	if len(in.Password) < minPasswordLength {
		return heartlink_errors.Invalid("Password must be at least 6 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
