package services

import (
	"context"

	"heartlink/internal/domain/message"
	"heartlink/internal/domain/user"
	heartlink_errors "heartlink/pkg/errors"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users   map[uuid.UUID]user.User
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return heartlink_errors.ErrAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, heartlink_errors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, heartlink_errors.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return heartlink_errors.ErrNotFound
	}
	r.users[u.ID] = *u
	r.updates++
	return nil
}

func seedUser2(repo *fakeUserRepo) user.User {
	u := user.User{
		ID:               uuid.New(),
		Name:             "B",
		Email:            "b@x.com",
		PasswordHash:     "$2a$10$hash",
		Age:              30,
		Gender:           "female",
		GenderPreference: "male",
	}
	repo.users[u.ID] = u
	return u
}

type fakeMessageRepo struct {
	messages []message.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, m *message.Message) error {
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) ListConversation(_ context.Context, a, b uuid.UUID) ([]message.Message, error) {
	var out []message.Message
	for _, m := range r.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (u *fakeUploader) UploadImage(_ context.Context, _ string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}
