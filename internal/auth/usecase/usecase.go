package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/auth"
	"github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/session"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type authUseCase struct {
	repo    auth.Repository
	session *session.Store
	caches  []cache.Invalidator
	logger  *zap.Logger
}

// NewAuthUseCase wires the auth flows to the session store. Every
// entity list cache must be registered here so logout can reset them.
func NewAuthUseCase(repo auth.Repository, sess *session.Store, caches []cache.Invalidator, log *zap.Logger) auth.UseCase {
	return &authUseCase{
		repo:    repo,
		session: sess,
		caches:  caches,
		logger:  log,
	}
}

func (uc *authUseCase) Login(ctx context.Context, input *dto.LoginInput) (*model.User, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	token, err := uc.repo.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// The profile call needs the fresh token before the session is
	// persisted.
	uc.session.SetToken(token)
	user, err := uc.repo.Me(ctx)
	if err != nil {
		_ = uc.session.Clear()
		return nil, err
	}

	if err := uc.session.Establish(token, *user); err != nil {
		return nil, err
	}

	// A new identity must not see the previous user's cached lists.
	uc.invalidateAll()

	uc.logger.Info("logged in", zap.String("email", user.Email))
	return user, nil
}

func (uc *authUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	if errs := validate.Struct(input); errs != nil {
		return nil, errs
	}

	if _, err := uc.repo.Register(ctx, input); err != nil {
		return nil, err
	}

	return uc.Login(ctx, &dto.LoginInput{Email: input.Email, Password: input.Password})
}

func (uc *authUseCase) Logout() error {
	if err := uc.session.Clear(); err != nil {
		return err
	}
	uc.invalidateAll()
	uc.logger.Info("logged out")
	return nil
}

func (uc *authUseCase) CurrentUser() (model.User, bool) {
	sess, ok := uc.session.Current()
	if !ok {
		return model.User{}, false
	}
	return sess.User, true
}

func (uc *authUseCase) invalidateAll() {
	for _, c := range uc.caches {
		c.Invalidate()
	}
}
