package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/internal/auth/dto"
	"github.com/zhengyang6751/inventory-management-system/internal/cache"
	"github.com/zhengyang6751/inventory-management-system/internal/model"
	"github.com/zhengyang6751/inventory-management-system/internal/session"
	"github.com/zhengyang6751/inventory-management-system/pkg/validate"
)

type fakeRepo struct {
	loginToken string
	loginErr   error

	registered *model.User
	registerErr error

	me    *model.User
	meErr error

	tokenAtMe string
	sess      *session.Store
}

func (f *fakeRepo) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeRepo) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	return f.registered, f.registerErr
}

func (f *fakeRepo) Me(ctx context.Context) (*model.User, error) {
	if f.sess != nil {
		// Record what token the profile call would go out with.
		f.tokenAtMe = f.sess.Token()
	}
	return f.me, f.meErr
}

func newSession(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestLogin_EstablishesSessionAndResetsCaches(t *testing.T) {
	sess := newSession(t)
	user := &model.User{ID: 3, Email: "admin@example.com"}
	repo := &fakeRepo{loginToken: "tok-abc", me: user, sess: sess}

	stale := cache.NewList[model.Product]()
	stale.Put([]model.Product{{ID: 1}})

	uc := NewAuthUseCase(repo, sess, []cache.Invalidator{stale}, zap.NewNop())

	got, err := uc.Login(context.Background(), &dto.LoginInput{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-abc", sess.Token())
	// The profile fetch already carried the fresh token.
	assert.Equal(t, "tok-abc", repo.tokenAtMe)

	_, ok := stale.Get()
	assert.False(t, ok, "previous user's lists must not survive a login")
}

func TestLogin_ValidatesInput(t *testing.T) {
	uc := NewAuthUseCase(&fakeRepo{}, newSession(t), nil, zap.NewNop())

	_, err := uc.Login(context.Background(), &dto.LoginInput{Email: "nope", Password: ""})
	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Invalid email address", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
}

func TestLogin_ProfileFailureClearsToken(t *testing.T) {
	sess := newSession(t)
	repo := &fakeRepo{loginToken: "tok-abc", meErr: errors.New("unauthorized")}
	uc := NewAuthUseCase(repo, sess, nil, zap.NewNop())

	_, err := uc.Login(context.Background(), &dto.LoginInput{Email: "a@b.co", Password: "x"})
	require.Error(t, err)
	assert.Empty(t, sess.Token())
	assert.False(t, sess.Authenticated())
}

func TestRegister_LogsInAfterCreatingAccount(t *testing.T) {
	sess := newSession(t)
	user := &model.User{ID: 9, Email: "new@example.com"}
	repo := &fakeRepo{registered: user, loginToken: "tok-new", me: user}
	uc := NewAuthUseCase(repo, sess, nil, zap.NewNop())

	got, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "new@example.com",
		Password: "longenough",
		FullName: "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.True(t, sess.Authenticated())
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	uc := NewAuthUseCase(&fakeRepo{}, newSession(t), nil, zap.NewNop())

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Email:    "new@example.com",
		Password: "short",
		FullName: "New User",
	})
	var errs validate.FieldErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Password must be at least 8", errs["password"])
}

func TestLogout_ClearsSessionAndAllCaches(t *testing.T) {
	sess := newSession(t)
	require.NoError(t, sess.Establish("tok", model.User{ID: 1}))

	products := cache.NewList[model.Product]()
	products.Put([]model.Product{{ID: 1}})
	sales := cache.NewList[model.Sale]()
	sales.Put([]model.Sale{{ID: 1}})

	uc := NewAuthUseCase(&fakeRepo{}, sess, []cache.Invalidator{products, sales}, zap.NewNop())

	require.NoError(t, uc.Logout())
	assert.False(t, sess.Authenticated())
	_, ok := products.Get()
	assert.False(t, ok)
	_, ok = sales.Get()
	assert.False(t, ok)

	_, loggedIn := uc.CurrentUser()
	assert.False(t, loggedIn)
}
