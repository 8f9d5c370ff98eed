package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/store"
)

// Identity is what the identity provider vouches for in a verified token.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	IsStaff  bool
}

type UserService interface {
	// Sync mirrors the identity into the users table and returns the stored user.
	Sync(ctx context.Context, identity Identity) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	userStore store.UserStore
}

func NewUserService(userStore store.UserStore) UserService {
	return &userService{userStore: userStore}
}

func (s *userService) Sync(ctx context.Context, identity Identity) (*model.User, error) {
	if identity.UserID == uuid.Nil {
		return nil, validationErr("sub", "missing user id")
	}
	user := &model.User{
		ID:       identity.UserID,
		Username: strings.TrimSpace(identity.Username),
		Email:    strings.ToLower(strings.TrimSpace(identity.Email)),
		IsStaff:  identity.IsStaff,
	}
	if user.Username == "" {
		user.Username = user.Email
	}
	if err := s.userStore.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("syncing user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr("user", err)
	}
	return user, nil
}
