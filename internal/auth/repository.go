package auth

import (
	"context"

	"github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
)

type Repository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new account. The caller logs in afterwards;
	// registration itself does not return a token.
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (*model.User, error)
}
