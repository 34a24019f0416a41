package auth

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type UseCase interface {
	// Login authenticates and establishes the persisted session.
	Login(ctx context.Context, input *dto.LoginInput) (*model.User, error)

	// Register creates an account, then logs in with the same credentials.
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)

	// Logout clears the session and invalidates every cached entity
	// list, so no per-user data survives a session change.
	Logout() error

	// CurrentUser returns the active session's profile, if any.
	CurrentUser() (model.User, bool)
}
